package cmd

import (
	"strings"
)

// FormatError renders err as a single line. Multi-line messages such as
// joined validation errors are folded with "; ", and a line ending in a
// colon is joined to the next with a space.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	prev := ""
	for _, line := range strings.Split(err.Error(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case prev == "":
		case strings.HasSuffix(prev, ":"):
			sb.WriteString(" ")
		default:
			sb.WriteString("; ")
		}
		sb.WriteString(line)
		prev = line
	}
	return sb.String()
}
