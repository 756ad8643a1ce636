package deps

import (
	"strings"

	oerrors "github.com/nestgen/cli/internal/errors"
)

// Specifier is a package name with an optional version suffix.
// Identity is the package name.
type Specifier struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`

	// Pinned is true when Version must be appended, even if empty.
	Pinned bool `json:"pinned"`
}

// String renders the specifier the way package managers expect it.
func (s Specifier) String() string {
	if !s.Pinned {
		return s.Name
	}
	return s.Name + "@" + s.Version
}

// Package is one entry of the fixed dependency catalogue.
type Package struct {
	Name string

	// FollowsToken marks framework packages that receive the version suffix.
	FollowsToken bool
}

// DefaultPackages is the dependency catalogue in installer order.
var DefaultPackages = []Package{
	{Name: "@nestjs/jwt"},
	{Name: "@nestjs/core", FollowsToken: true},
	{Name: "@nestjs/common", FollowsToken: true},
	{Name: "@prisma/client"},
	{Name: "prisma"},
	{Name: "class-validator"},
	{Name: "class-transformer"},
	{Name: "@nestjs/swagger", FollowsToken: true},
	{Name: "swagger-ui-express"},
	{Name: "bcrypt"},
}

// Builder produces dependency sets from a catalogue.
type Builder struct {
	packages []Package
}

// NewBuilder creates a Builder over DefaultPackages followed by extra
// unqualified package names. A version suffix on an extra is dropped.
func NewBuilder(extra ...string) *Builder {
	packages := make([]Package, 0, len(DefaultPackages)+len(extra))
	packages = append(packages, DefaultPackages...)
	for _, raw := range extra {
		packages = append(packages, Package{Name: PackageName(raw)})
	}
	return &Builder{packages: packages}
}

// NewBuilderWithPackages creates a Builder over an explicit catalogue.
func NewBuilderWithPackages(packages []Package) *Builder {
	return &Builder{packages: packages}
}

// Build returns the ordered, deduplicated specifiers for token.
// The first occurrence of a name wins.
func (b *Builder) Build(token Token) ([]Specifier, error) {
	if token.IsZero() {
		return nil, &oerrors.MissingParameterError{Name: "version"}
	}

	seen := make(map[string]bool, len(b.packages))
	specs := make([]Specifier, 0, len(b.packages))
	for _, p := range b.packages {
		name := PackageName(p.Name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		spec := Specifier{Name: name}
		if p.FollowsToken && !token.IsLatest() {
			spec.Version = token.String()
			spec.Pinned = true
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

// PackageName returns raw without surrounding whitespace or a trailing
// @version. A leading @ marks a scope, not a version.
func PackageName(raw string) string {
	name := strings.TrimSpace(raw)
	if i := strings.LastIndex(name, "@"); i > 0 {
		name = name[:i]
	}
	return name
}

// Strings renders specs as installer arguments.
func Strings(specs []Specifier) []string {
	out := make([]string, len(specs))
	for i, s := range specs {
		out[i] = s.String()
	}
	return out
}
