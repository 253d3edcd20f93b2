package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/heatmap/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorRed    = lipgloss.Color("#fb4934")
)

// Level colors run from the empty-cell background to bright green.
var levelColors = [...]lipgloss.Color{
	lipgloss.Color("#3c3836"),
	lipgloss.Color("#79740e"),
	lipgloss.Color("#98971a"),
	lipgloss.Color("#b8bb26"),
	lipgloss.Color("#8ec07c"),
}

// Predefined lipgloss styles.
var (
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// LevelStyle returns the cell style for an intensity level.
func LevelStyle(l domain.Level) lipgloss.Style {
	if !l.Valid() {
		return StyleRed
	}
	return lipgloss.NewStyle().Foreground(levelColors[l])
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
