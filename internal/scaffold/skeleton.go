// Package scaffold materializes the project layout on disk: the directory
// skeleton first, then the rendered template files.
package scaffold

import (
	"os"
	"path"
	"path/filepath"

	oerrors "github.com/nestgen/cli/internal/errors"
)

// DefaultSourceRoot is the conventional source root under the project root.
const DefaultSourceRoot = "src"

// DirectorySpec is an ordered set of directories, slash separated and
// relative to the source root, that must exist before any file is written.
type DirectorySpec []string

// DefaultDirectorySpec returns the directories the built-in templates need.
func DefaultDirectorySpec() DirectorySpec {
	return DirectorySpec{
		"common/guards",
		"common/interceptors",
		"common/decorators/auth",
		"common/decorators/response",
		"prisma",
		"auth/dto",
	}
}

// Skeleton creates a DirectorySpec under <root>/<sourceRoot>.
type Skeleton struct {
	Root       string
	SourceRoot string
	Dirs       DirectorySpec
}

// NewSkeleton returns a skeleton for the default directory spec.
func NewSkeleton(root, sourceRoot string) *Skeleton {
	if sourceRoot == "" {
		sourceRoot = DefaultSourceRoot
	}
	return &Skeleton{Root: root, SourceRoot: sourceRoot, Dirs: DefaultDirectorySpec()}
}

// Base returns the absolute-or-relative source root directory.
func (s *Skeleton) Base() string {
	return filepath.Join(s.Root, filepath.FromSlash(s.SourceRoot))
}

// Paths returns the filesystem paths the skeleton creates, in order.
func (s *Skeleton) Paths() []string {
	paths := make([]string, len(s.Dirs))
	for i, d := range s.Dirs {
		paths[i] = filepath.Join(s.Base(), filepath.FromSlash(path.Clean(d)))
	}
	return paths
}

// Ensure creates every directory, tolerating ones that already exist.
// Running it twice has no further effect.
func (s *Skeleton) Ensure() ([]string, error) {
	paths := s.Paths()
	for _, p := range paths {
		if err := ensureDir(p); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func ensureDir(p string) error {
	if err := os.MkdirAll(p, 0o755); err != nil {
		return &oerrors.DirectoryCreationError{Path: p, Err: err}
	}
	return nil
}
