package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these rather than inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: paths, package names, template IDs.
	ColorCyan = lipgloss.Color("14")

	colorGreen = lipgloss.Color("82")

	// ColorYellow marks files that replaced existing content.
	ColorYellow = lipgloss.Color("220")

	colorBoldRed = lipgloss.Color("204")

	colorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	colorBlue = lipgloss.Color("12")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (installing, rendering, writing).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
)

// File status values.
const (
	StatusCreated     = "created"
	StatusOverwritten = "overwritten"
	StatusPinned      = "pinned"
	StatusUnpinned    = "unpinned"
	StatusFailed      = "failed"
)

// statusStyle returns the style for a status word. Unknown statuses are unstyled.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated, StatusPinned:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusOverwritten:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusUnpinned:
		return lipgloss.NewStyle().Faint(true)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth keeps status words aligned across lines.
const minPathColumnWidth = 56

// FormatFileLine renders a written file with a right-aligned status.
//
// Format: f:<path>  <status>
func FormatFileLine(path, status string) string {
	padding := max(minPathColumnWidth-len(path), 2)

	return StyleDim.Render("f:") +
		StyleNoun.Render(path) +
		strings.Repeat(" ", padding) +
		statusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCount renders "N noun" with naive pluralization.
func FormatCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
