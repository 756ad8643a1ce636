package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// RenderContext is the data passed to every template. Shared names come
// from the embedded ProjectConstants; Import resolves paths to siblings.
type RenderContext struct {
	ProjectConstants

	// Self is the descriptor being rendered.
	Self Descriptor

	registry *Registry
}

// Import returns the relative module specifier for a declared import.
func (c RenderContext) Import(id string) (string, error) {
	return c.registry.ImportPath(c.Self.ID, ID(id))
}

// Renderer renders registry templates against one ProjectConstants value.
type Renderer struct {
	registry  *Registry
	constants ProjectConstants
	fsys      fs.FS
}

// NewRenderer creates a renderer over the embedded template files.
func NewRenderer(registry *Registry, constants ProjectConstants) *Renderer {
	return &Renderer{registry: registry, constants: constants, fsys: TemplateFS}
}

// WithFS returns a copy of the renderer reading template sources from fsys.
func (r *Renderer) WithFS(fsys fs.FS) *Renderer {
	cp := *r
	cp.fsys = fsys
	return &cp
}

// Constants returns the constants the renderer was built with.
func (r *Renderer) Constants() ProjectConstants {
	return r.constants
}

// Render renders one template. The output depends only on the constants.
func (r *Renderer) Render(id ID) (File, error) {
	desc, err := r.registry.Get(id)
	if err != nil {
		return File{}, err
	}

	src, err := fs.ReadFile(r.fsys, desc.Source)
	if err != nil {
		return File{}, fmt.Errorf("reading template %s: %w", id, err)
	}

	tmpl, err := template.New(string(id)).
		Option("missingkey=error").
		Funcs(funcMap()).
		Parse(string(src))
	if err != nil {
		return File{}, fmt.Errorf("parsing template %s: %w", id, err)
	}

	var buf bytes.Buffer
	ctx := RenderContext{ProjectConstants: r.constants, Self: desc, registry: r.registry}
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return File{}, fmt.Errorf("executing template %s: %w", id, err)
	}

	return File{ID: id, Path: desc.Path, Content: buf.Bytes()}, nil
}

// RenderAll renders every template in registry order.
func (r *Renderer) RenderAll() ([]File, error) {
	files := make([]File, 0, r.registry.Len())
	for _, id := range r.registry.IDs() {
		f, err := r.Render(id)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func funcMap() template.FuncMap {
	fm := sprig.TxtFuncMap()
	fm["tsString"] = tsString
	return fm
}

// tsString quotes s as a single-quoted TypeScript string literal.
func tsString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
