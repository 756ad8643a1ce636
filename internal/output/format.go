package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"
)

// Format specifies a machine or human output format.
type Format string

const (
	// FormatTable outputs a styled table.
	FormatTable Format = "table"

	// FormatYAML outputs YAML.
	FormatYAML Format = "yaml"

	// FormatJSON outputs indented JSON.
	FormatJSON Format = "json"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	switch f {
	case FormatTable, FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseFormat parses s case-insensitively. The second result is false for
// unknown values, in which case FormatTable is returned.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(s) {
	case "", "table":
		return FormatTable, true
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	default:
		return FormatTable, false
	}
}

// ValidFormats returns the accepted format names.
func ValidFormats() []string {
	return []string{"table", "yaml", "json"}
}

// WriteStructured encodes v as YAML or JSON. The YAML form is derived from
// the JSON encoding so both honor the same json struct tags.
func WriteStructured(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("format %s is not a structured format", format)
	}
}
