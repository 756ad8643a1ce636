package scaffold

import (
	"bytes"
	"os"
	"path/filepath"

	oerrors "github.com/nestgen/cli/internal/errors"
)

// WriteFile writes content to dest, creating the parent directory if
// needed and replacing any existing file. Leading and trailing whitespace
// is trimmed before writing.
func WriteFile(dest string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return &oerrors.WriteError{Path: dest, Err: err}
	}

	if err := os.WriteFile(dest, bytes.TrimSpace(content), 0o644); err != nil {
		return &oerrors.WriteError{Path: dest, Err: err}
	}
	return nil
}
