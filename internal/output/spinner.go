package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// RunWithSpinner executes action behind a spinner when stdout is a
// terminal, and directly otherwise. It returns only after action has
// finished, with the action's error.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{title: "Working..."}
	for _, opt := range opts {
		opt(cfg)
	}

	if !IsTTY() {
		return action()
	}
	return spin(ctx, cfg.title, action, showSpinner)
}

// showSpinner animates until ctx is done.
func showSpinner(ctx context.Context, title string) error {
	return spinner.New().Context(ctx).Title(title).Run()
}

// spin runs action in its own goroutine while show animates. The spinner
// context ends when action returns, and action is always awaited.
func spin(ctx context.Context, title string, action func() error, show func(context.Context, string) error) error {
	spinCtx, stop := context.WithCancel(ctx)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- action()
		stop()
	}()

	showErr := show(spinCtx, title)
	stoppedByAction := spinCtx.Err() != nil

	if err := <-done; err != nil {
		return err
	}
	if showErr != nil && !stoppedByAction {
		return fmt.Errorf("spinner error: %w", showErr)
	}
	return nil
}
