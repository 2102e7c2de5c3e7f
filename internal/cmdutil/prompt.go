package cmdutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vivekraman/modsetup/internal/naming"
	"github.com/vivekraman/modsetup/internal/output"
)

// Confirm writes question and reads one line from in. Only "y" or "Y"
// confirms; EOF without input declines.
func Confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s (y/N) ", question); err != nil {
		return false, err
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}

	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

// WriteNames renders the derived forms of a module name as a table, or as
// YAML or JSON.
func WriteNames(w io.Writer, names naming.Names, format output.Format) error {
	switch format {
	case output.FormatYAML:
		return output.WriteYAML(w, names)
	case output.FormatJSON:
		return output.WriteJSON(w, names)
	}

	tbl := output.NewTable("FORM", "VALUE").
		Row("name", names.Name).
		Row("lowerCamelCase", names.LowerCamel).
		Row("UpperCamelCase", names.UpperCamel).
		Row("package.name", names.Package).
		Row("directory/name", names.Directory)
	_, err := fmt.Fprintln(w, tbl.String())
	return err
}
