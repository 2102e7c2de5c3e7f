package output

import "strings"

// Format specifies how the run summary is printed.
type Format string

const (
	// FormatText prints a styled table.
	FormatText Format = "text"

	// FormatYAML prints the summary as YAML.
	FormatYAML Format = "yaml"

	// FormatJSON prints the summary as JSON.
	FormatJSON Format = "json"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the format is known.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseFormat parses a string into a Format. Unknown values are returned
// as-is so callers can reject them with IsValid.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "table":
		return FormatText
	case "yaml", "yml":
		return FormatYAML
	case "json":
		return FormatJSON
	default:
		return Format(s)
	}
}

// ValidFormats returns a slice of valid format strings.
func ValidFormats() []string {
	return []string{"text", "yaml", "json"}
}
