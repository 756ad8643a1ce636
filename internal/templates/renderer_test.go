package templates

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/nestgen/cli/internal/errors"
)

func renderAll(t *testing.T, c ProjectConstants) map[ID]string {
	t.Helper()
	files, err := NewRenderer(Default(), c).RenderAll()
	require.NoError(t, err)
	out := make(map[ID]string, len(files))
	for _, f := range files {
		out[f.ID] = string(f.Content)
	}
	return out
}

func TestRenderAllProducesEveryTemplate(t *testing.T) {
	files, err := NewRenderer(Default(), DefaultConstants()).RenderAll()
	require.NoError(t, err)
	require.Len(t, files, 13)

	for _, f := range files {
		assert.NotEmpty(t, strings.TrimSpace(string(f.Content)), f.ID)
		assert.NotContains(t, string(f.Content), "{{", f.ID)
		assert.NotContains(t, string(f.Content), "<no value>", f.ID)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	a := renderAll(t, DefaultConstants())
	b := renderAll(t, DefaultConstants())
	assert.Equal(t, a, b)
}

func TestPublicKeyIsShared(t *testing.T) {
	files := renderAll(t, DefaultConstants())

	assert.Contains(t, files[PublicDecorator], "export const IS_PUBLIC_KEY = 'isPublic';")
	assert.Contains(t, files[PublicDecorator], "export const Public = () => SetMetadata(IS_PUBLIC_KEY, true);")
	assert.Contains(t, files[AuthGuard], "import { IS_PUBLIC_KEY } from '../decorators/auth/public.decorator';")
	assert.Contains(t, files[AuthGuard], "IS_PUBLIC_KEY,\n")
	assert.Contains(t, files[AuthController], "import { Public } from '../common/decorators/auth/public.decorator';")
	assert.Contains(t, files[AuthController], "@Public()")
}

func TestResponseMessageKeyIsShared(t *testing.T) {
	files := renderAll(t, DefaultConstants())

	assert.Contains(t, files[ResponseMessageDecorator], "export const RESPONSE_MESSAGE_KEY = 'response_message';")
	assert.Contains(t, files[ResponseInterceptor],
		"import { RESPONSE_MESSAGE_KEY } from '../decorators/response/response-message.decorator';")
	assert.Contains(t, files[AuthController], "@ResponseMessage('User registered successfully')")
}

func TestSecretIsShared(t *testing.T) {
	c := DefaultConstants()
	c.Secret = "s3cr3t"
	files := renderAll(t, c)

	assert.Contains(t, files[JWTConstants], "export const jwtConstants = {\n  secret: 's3cr3t',\n};")
	assert.Contains(t, files[AuthGuard], "secret: jwtConstants.secret,")
	assert.Contains(t, files[AuthModule], "secret: jwtConstants.secret,")
	assert.Contains(t, files[AuthModule], "import { jwtConstants } from '../common/guards/jwt.constants';")

	for id, content := range files {
		if id != JWTConstants {
			assert.NotContains(t, content, "s3cr3t", "%s must reference the secret, not copy it", id)
		}
	}
}

func TestChangingAConstantPropagates(t *testing.T) {
	c := DefaultConstants()
	c.PublicRouteKey = MetadataKey{Const: "SKIP_AUTH_KEY", Value: "skipAuth"}
	c.PublicDecorator = "SkipAuth"
	files := renderAll(t, c)

	for _, id := range []ID{PublicDecorator, AuthGuard, AuthController} {
		assert.NotContains(t, files[id], "IS_PUBLIC_KEY", id)
		assert.NotContains(t, files[id], "@Public()", id)
	}
	assert.Contains(t, files[PublicDecorator], "export const SKIP_AUTH_KEY = 'skipAuth';")
	assert.Contains(t, files[AuthGuard], "import { SKIP_AUTH_KEY } from")
	assert.Contains(t, files[AuthController], "@SkipAuth()")
}

func TestMainBootstrap(t *testing.T) {
	c := DefaultConstants()
	c.GlobalPrefix = "/api/v2/"
	c.DefaultPort = 8080
	main := renderAll(t, c)[Main]

	assert.Contains(t, main, "app.setGlobalPrefix('api/v2');")
	assert.Contains(t, main, "app.useGlobalInterceptors(new ResponseInterceptor(app.get(Reflector)));")
	assert.Contains(t, main, "import { ResponseInterceptor } from './common/interceptors/response.interceptor';")
	assert.Contains(t, main, "SwaggerModule.setup('api', app, document);")
	assert.Contains(t, main, "await app.listen(process.env.PORT ?? 8080);")
	assert.Contains(t, main, ".addBearerAuth()")
}

// importRegex captures relative import specifiers in rendered output.
var importRegex = regexp.MustCompile(`from '(\.{1,2}/[^']+)'`)

func TestRelativeImportsResolveToRegisteredFiles(t *testing.T) {
	r := Default()
	paths := map[string]bool{}
	for _, d := range r.List() {
		paths[strings.TrimSuffix(d.Path, ".ts")] = true
	}

	files, err := NewRenderer(r, DefaultConstants()).RenderAll()
	require.NoError(t, err)

	for _, f := range files {
		for _, m := range importRegex.FindAllStringSubmatch(string(f.Content), -1) {
			spec := m[1]
			if f.ID == Main && spec == "./app.module" {
				continue
			}
			target := resolveSpecifier(f.Path, spec)
			assert.True(t, paths[target], "%s imports %q which resolves to unregistered %q", f.ID, spec, target)
		}
	}
}

func resolveSpecifier(from, spec string) string {
	parts := strings.Split(from, "/")
	parts = parts[:len(parts)-1]
	for _, seg := range strings.Split(spec, "/") {
		switch seg {
		case ".":
		case "..":
			parts = parts[:len(parts)-1]
		default:
			parts = append(parts, seg)
		}
	}
	return strings.Join(parts, "/")
}

func TestRenderUndeclaredImportFails(t *testing.T) {
	r, err := NewRegistry(
		Descriptor{ID: "a", Path: "a.ts", Source: "a.tmpl"},
		Descriptor{ID: "b", Path: "b.ts", Source: "b.tmpl"},
	)
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"a.tmpl": {Data: []byte(`import { X } from '{{ .Import "b" }}';`)},
		"b.tmpl": {Data: []byte(`export const X = 1;`)},
	}

	_, err = NewRenderer(r, DefaultConstants()).WithFS(fsys).Render("a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestRenderUnknownFieldFails(t *testing.T) {
	r, err := NewRegistry(Descriptor{ID: "a", Path: "a.ts", Source: "a.tmpl"})
	require.NoError(t, err)

	fsys := fstest.MapFS{"a.tmpl": {Data: []byte(`{{ .NoSuchField }}`)}}

	_, err = NewRenderer(r, DefaultConstants()).WithFS(fsys).Render("a")
	assert.Error(t, err)
}

func TestTSString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", `'plain'`},
		{"it's", `'it\'s'`},
		{`back\slash`, `'back\\slash'`},
		{"line\nbreak", `'line\nbreak'`},
		{"", `''`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tsString(tt.in))
	}
}
