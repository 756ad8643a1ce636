package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.TerminalColor
		wantDim  bool
	}{
		{name: "created returns green", status: StatusCreated, wantFG: colorGreen},
		{name: "pinned returns green", status: StatusPinned, wantFG: colorGreen},
		{name: "overwritten returns yellow", status: StatusOverwritten, wantFG: ColorYellow},
		{name: "unpinned returns faint", status: StatusUnpinned, wantDim: true},
		{name: "failed returns bold red", status: StatusFailed, wantBold: true, wantFG: colorBoldRed},
		{name: "unknown returns default", status: "unknown-value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := statusStyle(tt.status)
			assert.Equal(t, tt.wantBold, style.GetBold())
			assert.Equal(t, tt.wantDim, style.GetFaint())
			if tt.wantFG != nil {
				assert.Equal(t, tt.wantFG, style.GetForeground())
			}
		})
	}
}

func TestFormatFileLine(t *testing.T) {
	line := FormatFileLine("src/main.ts", StatusCreated)
	assert.Contains(t, line, "f:")
	assert.Contains(t, line, "src/main.ts")
	assert.Contains(t, line, "created")

	short := FormatFileLine("a.ts", StatusCreated)
	long := FormatFileLine(strings.Repeat("x", 80)+".ts", StatusCreated)
	assert.Greater(t, strings.Count(short, " "), strings.Count(long, " "))
	assert.Contains(t, long, strings.Repeat("x", 80)+".ts  ")
}

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("Project scaffolded")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "Project scaffolded")
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "1 file", FormatCount(1, "file"))
	assert.Equal(t, "13 files", FormatCount(13, "file"))
	assert.Equal(t, "0 files", FormatCount(0, "file"))
}
