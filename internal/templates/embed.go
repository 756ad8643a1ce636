package templates

import "embed"

// TemplateFS holds the TypeScript template sources.
//
//go:embed files/*.tmpl
var TemplateFS embed.FS
