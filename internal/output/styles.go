package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: paths, module names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "changed" status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "planned" status in dry runs.
	ColorYellow = lipgloss.Color("220")

	// ColorOrange is used for the "skipped" status.
	ColorOrange = lipgloss.Color("214")

	// ColorBoldRed is used for the "failed" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (paths, module names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (replaced, renamed).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators, arrows).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleWarning styles the confirmation banner.
	StyleWarning = lipgloss.NewStyle().Bold(true).Foreground(ColorYellow)
)

// Result status names.
const (
	StatusChanged   = "changed"
	StatusPlanned   = "planned"
	StatusUnchanged = "unchanged"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

// StatusStyle returns the lipgloss style for a given status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusChanged:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusPlanned:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusUnchanged:
		return lipgloss.NewStyle().Faint(true)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorOrange)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth is the minimum width of the path column so that status
// words line up.
const minPathColumnWidth = 56

// FormatResultLine renders a path with a right-aligned, color-coded status.
//
// Format: f:<path>  <status>
// When target is non-empty: f:<path> -> <target>  <status>
func FormatResultLine(path, target, status string) string {
	width := len(path)
	line := StyleDim.Render("f:") + StyleNoun.Render(path)
	if target != "" {
		line += StyleDim.Render(" -> ") + StyleNoun.Render(target)
		width += len(" -> ") + len(target)
	}

	padding := minPathColumnWidth - width
	if padding < 2 {
		padding = 2
	}

	return line + strings.Repeat(" ", padding) + StatusStyle(status).Render(status)
}

// FormatReplacement renders a `"match" -> "replacement"` pair.
func FormatReplacement(match, replacement string) string {
	return fmt.Sprintf("%q %s %q", match, StyleDim.Render("->"), replacement)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
