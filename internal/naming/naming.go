// Package naming derives the identifier forms of a hyphenated module name.
//
// Given "order-service" it produces:
//
//	LowerCamel  orderService
//	UpperCamel  OrderService
//	Package     order.service
//	Directory   order/service
package naming

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Separator delimits segments of a module name.
const Separator = "-"

// Names holds every derived form of a module name.
type Names struct {
	// Name is the module name as supplied.
	Name string `json:"name" yaml:"name"`

	// LowerCamel is the lowerCamelCase form.
	LowerCamel string `json:"lowerCamel" yaml:"lowerCamel"`

	// UpperCamel is the UpperCamelCase form.
	UpperCamel string `json:"upperCamel" yaml:"upperCamel"`

	// Package is the dotted Java package form.
	Package string `json:"package" yaml:"package"`

	// Directory is the slash-separated directory form.
	Directory string `json:"directory" yaml:"directory"`
}

// Derive computes all name forms. It does not validate name.
func Derive(name string) Names {
	return Names{
		Name:       name,
		LowerCamel: LowerCamel(name),
		UpperCamel: UpperCamel(name),
		Package:    Package(name),
		Directory:  Directory(name),
	}
}

// LowerCamel lowercases the first segment and capitalizes the first letter
// of every following segment, leaving the rest of each segment as supplied.
func LowerCamel(name string) string {
	segments := strings.Split(name, Separator)

	var sb strings.Builder
	sb.WriteString(strings.ToLower(segments[0]))
	for _, seg := range segments[1:] {
		sb.WriteString(capitalize(seg))
	}
	return sb.String()
}

// UpperCamel is LowerCamel with its first character uppercased.
// An empty name yields an empty string.
func UpperCamel(name string) string {
	return capitalize(LowerCamel(name))
}

// Package replaces every separator with a dot.
func Package(name string) string {
	return strings.ReplaceAll(name, Separator, ".")
}

// Directory replaces every separator with a slash.
func Directory(name string) string {
	return strings.ReplaceAll(name, Separator, "/")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// ValidationError describes why a module name was rejected.
type ValidationError struct {
	Name   string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid module name %q: %s", e.Name, e.Reason)
}

// Validate rejects names that would leave the tree half-migrated: empty or
// blank names, embedded whitespace, path separators and empty segments.
func Validate(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Name: name, Reason: "must not be empty"}
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return &ValidationError{Name: name, Reason: "must not contain whitespace"}
	}
	if strings.ContainsAny(name, `/\.`) {
		return &ValidationError{Name: name, Reason: "must not contain '/', '\\' or '.'"}
	}
	for _, seg := range strings.Split(name, Separator) {
		if seg == "" {
			return &ValidationError{Name: name, Reason: "must not start or end with '-' or contain '--'"}
		}
	}
	return nil
}
