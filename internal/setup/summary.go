package setup

import (
	"fmt"
	"io"

	"github.com/vivekraman/modsetup/internal/edit"
	"github.com/vivekraman/modsetup/internal/naming"
	"github.com/vivekraman/modsetup/internal/output"
)

// Counts tallies results by status.
type Counts struct {
	Changed   int `json:"changed" yaml:"changed"`
	Planned   int `json:"planned" yaml:"planned"`
	Unchanged int `json:"unchanged" yaml:"unchanged"`
	Skipped   int `json:"skipped" yaml:"skipped"`
	Failed    int `json:"failed" yaml:"failed"`
}

func (c *Counts) add(status edit.Status) {
	switch status {
	case edit.StatusChanged:
		c.Changed++
	case edit.StatusPlanned:
		c.Planned++
	case edit.StatusUnchanged:
		c.Unchanged++
	case edit.StatusSkipped:
		c.Skipped++
	case edit.StatusFailed:
		c.Failed++
	}
}

// Summary is the outcome of a run.
type Summary struct {
	Names   naming.Names  `json:"names" yaml:"names"`
	Root    string        `json:"root" yaml:"root"`
	DryRun  bool          `json:"dryRun" yaml:"dryRun"`
	Policy  edit.Policy   `json:"policy" yaml:"policy"`
	Counts  Counts        `json:"counts" yaml:"counts"`
	Results []edit.Result `json:"results" yaml:"results"`

	// Missing lists expected layout paths absent before the run.
	Missing []string `json:"missing,omitempty" yaml:"missing,omitempty"`

	// Built is true when the build ran and succeeded.
	Built bool `json:"built" yaml:"built"`
}

func (s *Summary) record(r edit.Result) {
	s.Results = append(s.Results, r)
	s.Counts.add(r.Status)
}

// Failures returns the failed results.
func (s *Summary) Failures() []edit.Result {
	var out []edit.Result
	for _, r := range s.Results {
		if r.Failed() {
			out = append(out, r)
		}
	}
	return out
}

// Write renders the summary in the given format. The text format is a
// table of every result that is not unchanged followed by the counts.
func (s *Summary) Write(w io.Writer, format output.Format) error {
	switch format {
	case output.FormatYAML:
		return output.WriteYAML(w, s)
	case output.FormatJSON:
		return output.WriteJSON(w, s)
	}

	tbl := output.NewTable("OP", "PATH", "TARGET", "STATUS", "DETAIL")
	for _, r := range s.Results {
		if r.Status == edit.StatusUnchanged {
			continue
		}
		detail := r.Message
		if r.Match != "" {
			detail = output.FormatReplacement(r.Match, r.Replacement)
		}
		tbl.Row(string(r.Op), r.Path, r.Target,
			output.StatusStyle(string(r.Status)).Render(string(r.Status)), detail)
	}
	if tbl.Len() > 0 {
		if _, err := fmt.Fprintln(w, tbl.String()); err != nil {
			return err
		}
	}

	c := s.Counts
	_, err := fmt.Fprintf(w, "%s changed, %s planned, %s unchanged, %s skipped, %s failed\n",
		output.StatusStyle(output.StatusChanged).Render(fmt.Sprint(c.Changed)),
		output.StatusStyle(output.StatusPlanned).Render(fmt.Sprint(c.Planned)),
		output.StatusStyle(output.StatusUnchanged).Render(fmt.Sprint(c.Unchanged)),
		output.StatusStyle(output.StatusSkipped).Render(fmt.Sprint(c.Skipped)),
		output.StatusStyle(output.StatusFailed).Render(fmt.Sprint(c.Failed)),
	)
	return err
}
