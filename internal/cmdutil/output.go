package cmdutil

import (
	"errors"
	"fmt"

	"github.com/vivekraman/modsetup/internal/config"
	"github.com/vivekraman/modsetup/internal/output"
)

// PrintValidationError prints a config validation error in a user-friendly
// format: a short summary line followed by one line per offending field.
// Other errors fall back to the standard key-value log format.
func PrintValidationError(msg string, err error) {
	var verrs config.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		output.Error(fmt.Sprintf("%s: %d invalid field(s)", msg, len(verrs)))
		for _, e := range verrs {
			output.Details(fmt.Sprintf("  %s: %s", output.StyleNoun.Render(e.Field), e.Message))
		}
		return
	}
	output.Error(msg, "error", err)
}
