package scaffold

import (
	"os"
	"path/filepath"

	"github.com/nestgen/cli/internal/output"
	"github.com/nestgen/cli/internal/templates"
)

// Generator renders every registered template and writes it under the
// source root.
type Generator struct {
	renderer *templates.Renderer
	base     string
}

// NewGenerator creates a generator writing below base, usually Skeleton.Base().
func NewGenerator(renderer *templates.Renderer, base string) *Generator {
	return &Generator{renderer: renderer, base: base}
}

// WrittenFile records one file the generator produced.
type WrittenFile struct {
	ID templates.ID

	// Rel is the path relative to the source root, slash separated.
	Rel string

	// Path is the filesystem path written.
	Path string

	// Overwritten is true when a file already existed at Path.
	Overwritten bool
}

// Generate renders and writes files in registry order, stopping at the
// first failure. Files written before the failure are left in place.
func (g *Generator) Generate() ([]WrittenFile, error) {
	files, err := g.renderer.RenderAll()
	if err != nil {
		return nil, err
	}

	written := make([]WrittenFile, 0, len(files))
	for _, f := range files {
		dest := filepath.Join(g.base, filepath.FromSlash(f.Path))
		_, statErr := os.Stat(dest)
		existed := statErr == nil

		if err := WriteFile(dest, f.Content); err != nil {
			return written, err
		}
		if existed {
			output.Warn("overwrote existing file", "path", f.Path)
		}
		output.Debug("wrote file", "template", f.ID, "path", f.Path)
		written = append(written, WrittenFile{ID: f.ID, Rel: f.Path, Path: dest, Overwritten: existed})
	}
	return written, nil
}
