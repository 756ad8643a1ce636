// Package templates holds the registry of generated source files and renders
// them from a single shared ProjectConstants value.
package templates

// ID is the stable logical name of one generated file.
type ID string

// Template identifiers.
const (
	JWTConstants             ID = "jwt-constants"
	PublicDecorator          ID = "public-decorator"
	ResponseMessageDecorator ID = "response-message-decorator"
	AuthGuard                ID = "auth-guard"
	ResponseInterceptor      ID = "response-interceptor"
	PrismaService            ID = "prisma-service"
	PrismaModule             ID = "prisma-module"
	RegisterDTO              ID = "register-dto"
	LoginDTO                 ID = "login-dto"
	AuthService              ID = "auth-service"
	AuthController           ID = "auth-controller"
	AuthModule               ID = "auth-module"
	Main                     ID = "main"
)

// Descriptor describes one generated file.
type Descriptor struct {
	// ID is the template identifier.
	ID ID `json:"id"`

	// Path is the destination relative to the source root, slash separated.
	Path string `json:"path"`

	// Description is shown in listings and the file tree.
	Description string `json:"description"`

	// Source is the template file inside TemplateFS.
	Source string `json:"-"`

	// Imports lists the templates this file may import from.
	Imports []ID `json:"imports,omitempty"`
}

// File is a rendered template ready to be written.
type File struct {
	ID ID

	// Path is the destination relative to the source root, slash separated.
	Path string

	Content []byte
}

// MetadataKey is a route metadata key shared between the decorator that
// writes it and the guard or interceptor that reads it.
type MetadataKey struct {
	// Const is the exported TypeScript constant holding the key.
	Const string `json:"const" yaml:"const"`

	// Value is the metadata key string itself.
	Value string `json:"value" yaml:"value"`
}

// Symbols are the class names that cross file boundaries.
type Symbols struct {
	AuthGuard           string `json:"authGuard"`
	ResponseInterceptor string `json:"responseInterceptor"`
	PrismaService       string `json:"prismaService"`
	PrismaModule        string `json:"prismaModule"`
	AuthService         string `json:"authService"`
	AuthController      string `json:"authController"`
	AuthModule          string `json:"authModule"`
	RegisterDTO         string `json:"registerDto"`
	LoginDTO            string `json:"loginDto"`
}

// ProjectConstants is the one record every template renders from. A name
// that appears in more than one generated file must come from here.
type ProjectConstants struct {
	// Secret is the JWT signing-secret placeholder.
	Secret string `json:"secret"`

	// TokenTTL is the JWT expiry passed to JwtModule.
	TokenTTL string `json:"tokenTTL"`

	// JWTConstants is the exported object holding the secret.
	JWTConstants string `json:"jwtConstants"`

	// PublicRouteKey marks routes that skip the auth guard.
	PublicRouteKey MetadataKey `json:"publicRouteKey"`

	// ResponseMessageKey carries the per-route message for the response envelope.
	ResponseMessageKey MetadataKey `json:"responseMessageKey"`

	// PublicDecorator is the decorator that sets PublicRouteKey.
	PublicDecorator string `json:"publicDecorator"`

	// ResponseMessageDecorator is the decorator that sets ResponseMessageKey.
	ResponseMessageDecorator string `json:"responseMessageDecorator"`

	// DefaultResponseMessage is used when a route sets no message.
	DefaultResponseMessage string `json:"defaultResponseMessage"`

	Symbols Symbols `json:"symbols"`

	// AuthRoute is the controller prefix for register and login.
	AuthRoute string `json:"authRoute"`

	// GlobalPrefix is the route prefix set in main.ts.
	GlobalPrefix string `json:"globalPrefix"`

	// DocsPath is where the Swagger UI is mounted.
	DocsPath string `json:"docsPath"`

	// PortEnv is the environment variable read for the listen port.
	PortEnv string `json:"portEnv"`

	// DefaultPort is used when PortEnv is unset.
	DefaultPort int `json:"defaultPort"`

	// HashRounds is the bcrypt cost factor.
	HashRounds int `json:"hashRounds"`
}

// DefaultConstants returns the constants used when nothing is overridden.
func DefaultConstants() ProjectConstants {
	return ProjectConstants{
		Secret:       "change-me-before-deploying",
		TokenTTL:     "24h",
		JWTConstants: "jwtConstants",
		PublicRouteKey: MetadataKey{
			Const: "IS_PUBLIC_KEY",
			Value: "isPublic",
		},
		ResponseMessageKey: MetadataKey{
			Const: "RESPONSE_MESSAGE_KEY",
			Value: "response_message",
		},
		PublicDecorator:          "Public",
		ResponseMessageDecorator: "ResponseMessage",
		DefaultResponseMessage:   "Success",
		Symbols: Symbols{
			AuthGuard:           "AuthGuard",
			ResponseInterceptor: "ResponseInterceptor",
			PrismaService:       "PrismaService",
			PrismaModule:        "PrismaModule",
			AuthService:         "AuthService",
			AuthController:      "AuthController",
			AuthModule:          "AuthModule",
			RegisterDTO:         "RegisterDto",
			LoginDTO:            "LoginDto",
		},
		AuthRoute:    "auth",
		GlobalPrefix: "api/v1",
		DocsPath:     "api",
		PortEnv:      "PORT",
		DefaultPort:  3000,
		HashRounds:   10,
	}
}
