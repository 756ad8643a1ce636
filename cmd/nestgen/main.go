// Package main is the entry point for the nestgen CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/nestgen/cli/internal/cmd"
	oerrors "github.com/nestgen/cli/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		code := oerrors.ExitCodeFromError(err)

		// Only print if the command layer hasn't already printed it
		var exitErr *oerrors.ExitError
		if !errors.As(err, &exitErr) || !exitErr.Printed {
			fmt.Fprintln(os.Stderr, "Error: "+cmd.FormatError(err))
		}
		stop()
		os.Exit(code)
	}
}
