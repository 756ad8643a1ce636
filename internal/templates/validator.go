package templates

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	oerrors "github.com/nestgen/cli/internal/errors"
)

// TypeScript identifier validation regex, restricted to ASCII.
var tsIdentifierRegex = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// routeRegex accepts slash separated URL path segments without leading or
// trailing slashes.
var routeRegex = regexp.MustCompile(`^[A-Za-z0-9._~-]+(/[A-Za-z0-9._~-]+)*$`)

// msDurationRegex matches the expiry strings accepted by the ms package
// behind @nestjs/jwt, e.g. "24h", "7d", "2 days".
var msDurationRegex = regexp.MustCompile(`^\d+(\.\d+)?\s*(ms|msecs?|milliseconds?|s|secs?|seconds?|m|mins?|minutes?|h|hrs?|hours?|d|days?|w|weeks?|y|yrs?|years?)?$`)

// ValidateIdentifier checks that name is usable as a TypeScript binding.
func ValidateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("identifier cannot be empty")
	}

	if !tsIdentifierRegex.MatchString(name) {
		return fmt.Errorf("invalid TypeScript identifier %q: must start with a letter, underscore or $ and contain only letters, digits, underscores and $", name)
	}

	if isReservedWord(name) {
		return fmt.Errorf("invalid TypeScript identifier %q: cannot use reserved word", name)
	}

	return nil
}

// ValidateRoute checks a route prefix such as "api/v1".
func ValidateRoute(route string) error {
	if route == "" {
		return fmt.Errorf("route cannot be empty")
	}
	if !routeRegex.MatchString(strings.Trim(route, "/")) {
		return fmt.Errorf("invalid route %q: use letters, digits and '-._~' separated by '/'", route)
	}
	return nil
}

// ValidateConstants checks every field that ends up in generated code.
// All problems are reported together.
func ValidateConstants(c ProjectConstants) error {
	var errs []error
	add := func(field string, err error) {
		if err != nil {
			errs = append(errs, oerrors.NewValidationError(err.Error(), "constants", field, ""))
		}
	}

	if c.Secret == "" {
		add("secret", fmt.Errorf("secret cannot be empty"))
	}
	if !msDurationRegex.MatchString(strings.ToLower(c.TokenTTL)) {
		add("tokenTTL", fmt.Errorf("invalid token TTL %q: expected a duration like 24h or 7d", c.TokenTTL))
	}

	idents := map[string]string{
		"jwtConstants":                c.JWTConstants,
		"publicRouteKey.const":        c.PublicRouteKey.Const,
		"responseMessageKey.const":    c.ResponseMessageKey.Const,
		"publicDecorator":             c.PublicDecorator,
		"responseMessageDecorator":    c.ResponseMessageDecorator,
		"symbols.authGuard":           c.Symbols.AuthGuard,
		"symbols.responseInterceptor": c.Symbols.ResponseInterceptor,
		"symbols.prismaService":       c.Symbols.PrismaService,
		"symbols.prismaModule":        c.Symbols.PrismaModule,
		"symbols.authService":         c.Symbols.AuthService,
		"symbols.authController":      c.Symbols.AuthController,
		"symbols.authModule":          c.Symbols.AuthModule,
		"symbols.registerDto":         c.Symbols.RegisterDTO,
		"symbols.loginDto":            c.Symbols.LoginDTO,
		"portEnv":                     c.PortEnv,
	}
	seen := make(map[string]string, len(idents))
	for _, field := range slices.Sorted(maps.Keys(idents)) {
		name := idents[field]
		if err := ValidateIdentifier(name); err != nil {
			add(field, err)
			continue
		}
		if field == "portEnv" {
			continue
		}
		if other, dup := seen[name]; dup {
			add(field, fmt.Errorf("identifier %q is already used by %s", name, other))
			continue
		}
		seen[name] = field
	}

	if c.PublicRouteKey.Value == "" {
		add("publicRouteKey.value", fmt.Errorf("metadata key cannot be empty"))
	}
	if c.ResponseMessageKey.Value == "" {
		add("responseMessageKey.value", fmt.Errorf("metadata key cannot be empty"))
	}
	if c.PublicRouteKey.Value != "" && c.PublicRouteKey.Value == c.ResponseMessageKey.Value {
		add("responseMessageKey.value", fmt.Errorf("metadata key %q collides with the public route key", c.ResponseMessageKey.Value))
	}

	add("authRoute", ValidateRoute(c.AuthRoute))
	add("globalPrefix", ValidateRoute(c.GlobalPrefix))
	add("docsPath", ValidateRoute(c.DocsPath))

	if c.DefaultPort < 1 || c.DefaultPort > 65535 {
		add("defaultPort", fmt.Errorf("port %d out of range 1-65535", c.DefaultPort))
	}
	if c.HashRounds < 4 || c.HashRounds > 31 {
		add("hashRounds", fmt.Errorf("bcrypt cost %d out of range 4-31", c.HashRounds))
	}

	return errors.Join(errs...)
}

// isReservedWord checks if a name is a TypeScript reserved word.
func isReservedWord(name string) bool {
	reserved := map[string]bool{
		"break":      true,
		"case":       true,
		"catch":      true,
		"class":      true,
		"const":      true,
		"continue":   true,
		"debugger":   true,
		"default":    true,
		"delete":     true,
		"do":         true,
		"else":       true,
		"enum":       true,
		"export":     true,
		"extends":    true,
		"false":      true,
		"finally":    true,
		"for":        true,
		"function":   true,
		"if":         true,
		"implements": true,
		"import":     true,
		"in":         true,
		"instanceof": true,
		"interface":  true,
		"let":        true,
		"new":        true,
		"null":       true,
		"package":    true,
		"private":    true,
		"protected":  true,
		"public":     true,
		"return":     true,
		"static":     true,
		"super":      true,
		"switch":     true,
		"this":       true,
		"throw":      true,
		"true":       true,
		"try":        true,
		"typeof":     true,
		"var":        true,
		"void":       true,
		"while":      true,
		"with":       true,
		"yield":      true,
	}
	return reserved[name]
}
