// Package styles holds the lipgloss styles used for CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	ColorGray   = lipgloss.Color("#6c757d")
	ColorAccent = lipgloss.Color("#8BC34A")

	DimStyle    = lipgloss.NewStyle().Foreground(ColorGray)
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
)

// RenderHeader renders s as a section header.
func RenderHeader(s string) string {
	return HeaderStyle.Render(s)
}

// RenderDim renders s in the muted color.
func RenderDim(s string) string {
	return DimStyle.Render(s)
}

// RenderBox wraps content in a rounded gray border.
func RenderBox(content string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorGray).
		Padding(0, 1).
		Render(content)
}
