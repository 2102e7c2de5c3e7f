package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff returns a unified diff between two versions of a file.
func UnifiedDiff(path, from, to string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(from),
		B:        difflib.SplitLines(to),
		FromFile: path,
		ToFile:   path,
		Context:  2,
	}
	return difflib.GetUnifiedDiffString(diff)
}

// ColorizeDiff styles added and removed lines of a unified diff.
func ColorizeDiff(diff string) string {
	if diff == "" {
		return ""
	}

	added := lipgloss.NewStyle().Foreground(ColorGreen)
	removed := lipgloss.NewStyle().Foreground(ColorBoldRed)

	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"), strings.HasPrefix(line, "@@"):
			sb.WriteString(StyleDim.Render(line))
		case strings.HasPrefix(line, "+"):
			sb.WriteString(added.Render(line))
		case strings.HasPrefix(line, "-"):
			sb.WriteString(removed.Render(line))
		default:
			sb.WriteString(line)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// IndentDiff indents every non-empty line of a diff.
func IndentDiff(diff string, indent string) string {
	if diff == "" {
		return ""
	}

	var sb strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		if line != "" {
			sb.WriteString(indent)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
