package templates

import (
	"fmt"
	"path"
	"strings"

	oerrors "github.com/nestgen/cli/internal/errors"
)

// defaultDescriptors is the built-in template set in generation order.
var defaultDescriptors = []Descriptor{
	{
		ID:          JWTConstants,
		Path:        "common/guards/jwt.constants.ts",
		Description: "JWT signing secret",
		Source:      "files/jwt-constants.ts.tmpl",
	},
	{
		ID:          PublicDecorator,
		Path:        "common/decorators/auth/public.decorator.ts",
		Description: "Marks a route as public",
		Source:      "files/public-decorator.ts.tmpl",
	},
	{
		ID:          ResponseMessageDecorator,
		Path:        "common/decorators/response/response-message.decorator.ts",
		Description: "Sets the response envelope message",
		Source:      "files/response-message-decorator.ts.tmpl",
	},
	{
		ID:          AuthGuard,
		Path:        "common/guards/auth.guard.ts",
		Description: "Bearer token guard honoring public routes",
		Source:      "files/auth-guard.ts.tmpl",
		Imports:     []ID{PublicDecorator, JWTConstants},
	},
	{
		ID:          ResponseInterceptor,
		Path:        "common/interceptors/response.interceptor.ts",
		Description: "Wraps handler results in a response envelope",
		Source:      "files/response-interceptor.ts.tmpl",
		Imports:     []ID{ResponseMessageDecorator},
	},
	{
		ID:          PrismaService,
		Path:        "prisma/prisma.service.ts",
		Description: "Prisma client provider",
		Source:      "files/prisma-service.ts.tmpl",
	},
	{
		ID:          PrismaModule,
		Path:        "prisma/prisma.module.ts",
		Description: "Global module exporting the Prisma client",
		Source:      "files/prisma-module.ts.tmpl",
		Imports:     []ID{PrismaService},
	},
	{
		ID:          RegisterDTO,
		Path:        "auth/dto/register.dto.ts",
		Description: "Registration request body",
		Source:      "files/register-dto.ts.tmpl",
	},
	{
		ID:          LoginDTO,
		Path:        "auth/dto/login.dto.ts",
		Description: "Login request body",
		Source:      "files/login-dto.ts.tmpl",
	},
	{
		ID:          AuthService,
		Path:        "auth/auth.service.ts",
		Description: "Password hashing and token issuing",
		Source:      "files/auth-service.ts.tmpl",
		Imports:     []ID{PrismaService},
	},
	{
		ID:          AuthController,
		Path:        "auth/auth.controller.ts",
		Description: "Register and login endpoints",
		Source:      "files/auth-controller.ts.tmpl",
		Imports:     []ID{AuthService, RegisterDTO, LoginDTO, PublicDecorator, ResponseMessageDecorator},
	},
	{
		ID:          AuthModule,
		Path:        "auth/auth.module.ts",
		Description: "Auth wiring with a global guard",
		Source:      "files/auth-module.ts.tmpl",
		Imports:     []ID{AuthService, AuthController, PrismaModule, AuthGuard, JWTConstants},
	},
	{
		ID:          Main,
		Path:        "main.ts",
		Description: "Application bootstrap with validation, prefix and Swagger",
		Source:      "files/main.ts.tmpl",
		Imports:     []ID{ResponseInterceptor},
	},
}

// Registry is an ordered, validated set of template descriptors.
type Registry struct {
	descriptors []Descriptor
	index       map[ID]int
}

// NewRegistry builds a registry, rejecting duplicate IDs or paths and
// imports of unknown templates.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{
		descriptors: make([]Descriptor, 0, len(descriptors)),
		index:       make(map[ID]int, len(descriptors)),
	}
	paths := make(map[string]ID, len(descriptors))

	for _, d := range descriptors {
		if d.ID == "" {
			return nil, oerrors.NewValidationError("template id cannot be empty", "", "id", "")
		}
		if _, dup := r.index[d.ID]; dup {
			return nil, oerrors.NewValidationError(fmt.Sprintf("duplicate template id %q", d.ID), string(d.ID), "id", "")
		}
		clean := path.Clean(d.Path)
		if d.Path == "" || path.IsAbs(clean) || strings.HasPrefix(clean, "..") {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("template %q has invalid path %q", d.ID, d.Path), string(d.ID), "path",
				"paths are relative to the source root")
		}
		if other, dup := paths[clean]; dup {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("templates %q and %q share path %q", other, d.ID, clean), string(d.ID), "path", "")
		}
		d.Path = clean
		paths[clean] = d.ID
		r.index[d.ID] = len(r.descriptors)
		r.descriptors = append(r.descriptors, d)
	}

	for _, d := range r.descriptors {
		for _, imp := range d.Imports {
			if _, ok := r.index[imp]; !ok {
				return nil, oerrors.NewValidationError(
					fmt.Sprintf("template %q imports unknown template %q", d.ID, imp), string(d.ID), "imports", "")
			}
			if imp == d.ID {
				return nil, oerrors.NewValidationError(
					fmt.Sprintf("template %q imports itself", d.ID), string(d.ID), "imports", "")
			}
		}
	}

	return r, nil
}

// Default returns the built-in registry.
func Default() *Registry {
	r, err := NewRegistry(defaultDescriptors...)
	if err != nil {
		panic(fmt.Sprintf("built-in template registry is invalid: %v", err))
	}
	return r
}

// Get returns a descriptor by ID.
func (r *Registry) Get(id ID) (Descriptor, error) {
	i, ok := r.index[id]
	if !ok {
		return Descriptor{}, oerrors.NewNotFoundError(
			fmt.Sprintf("unknown template %q", id), string(id),
			"run 'nestgen templates' to list available templates")
	}
	return r.descriptors[i], nil
}

// List returns all descriptors in generation order.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// IDs returns all template IDs in generation order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, len(r.descriptors))
	for i, d := range r.descriptors {
		ids[i] = d.ID
	}
	return ids
}

// Len returns the number of templates.
func (r *Registry) Len() int {
	return len(r.descriptors)
}

// ImportPath returns the TypeScript module specifier that from uses to
// import to. The target must be declared in from's Imports.
func (r *Registry) ImportPath(from, to ID) (string, error) {
	src, err := r.Get(from)
	if err != nil {
		return "", err
	}
	declared := false
	for _, imp := range src.Imports {
		if imp == to {
			declared = true
			break
		}
	}
	if !declared {
		return "", fmt.Errorf("%w: template %q imports %q without declaring it", oerrors.ErrValidation, from, to)
	}
	dst, err := r.Get(to)
	if err != nil {
		return "", err
	}
	return relativeImport(src.Path, dst.Path), nil
}

// CheckLayout verifies that every template's parent directory is one of
// dirs or an ancestor of one, so the skeleton always precedes the files.
func (r *Registry) CheckLayout(dirs []string) error {
	for _, d := range r.descriptors {
		parent := path.Dir(d.Path)
		if parent == "." {
			continue
		}
		if !covered(parent, dirs) {
			return oerrors.NewValidationError(
				fmt.Sprintf("directory %q for template %q is not part of the skeleton", parent, d.ID),
				string(d.ID), "path", "")
		}
	}
	return nil
}

func covered(dir string, dirs []string) bool {
	for _, d := range dirs {
		d = path.Clean(d)
		if d == dir || strings.HasPrefix(d, dir+"/") {
			return true
		}
	}
	return false
}

// relativeImport computes a relative module specifier from one source-root
// relative file to another, without the .ts extension.
func relativeImport(from, to string) string {
	fromParts := splitDir(path.Dir(from))
	toDir := splitDir(path.Dir(to))

	common := 0
	for common < len(fromParts) && common < len(toDir) && fromParts[common] == toDir[common] {
		common++
	}

	var parts []string
	for i := common; i < len(fromParts); i++ {
		parts = append(parts, "..")
	}
	parts = append(parts, toDir[common:]...)
	parts = append(parts, strings.TrimSuffix(path.Base(to), ".ts"))

	rel := strings.Join(parts, "/")
	if !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}
	return rel
}

func splitDir(dir string) []string {
	if dir == "." || dir == "" {
		return nil
	}
	return strings.Split(dir, "/")
}
