package setup

import (
	"bytes"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vivekraman/modsetup/internal/edit"
	"github.com/vivekraman/modsetup/internal/naming"
	"github.com/vivekraman/modsetup/internal/output"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func sampleSummary() *Summary {
	s := &Summary{
		Names:  naming.Derive("payments-api"),
		Root:   "/work/backend",
		DryRun: true,
		Policy: edit.PolicyStrict,
	}
	s.record(edit.Result{Op: edit.OpRewrite, Path: "pom.xml", Status: edit.StatusPlanned,
		Match: "<version>0.9-rc3</version>", Replacement: "<version>1.0-rc1</version>"})
	s.record(edit.Result{Op: edit.OpRewrite, Path: "template/pom.xml", Status: edit.StatusUnchanged, Message: "no change"})
	s.record(edit.Result{Op: edit.OpRename, Path: "template", Target: "payments-api", Status: edit.StatusFailed,
		Message: "destination payments-api already exists"})
	return s
}

func TestSummary_Counts(t *testing.T) {
	s := sampleSummary()

	assert.Equal(t, Counts{Planned: 1, Unchanged: 1, Failed: 1}, s.Counts)
	require.Len(t, s.Failures(), 1)
	assert.Equal(t, "template", s.Failures()[0].Path)
}

func TestSummary_WriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleSummary().Write(&buf, output.FormatText))

	out := stripANSI(buf.String())
	assert.Contains(t, out, "pom.xml")
	assert.Contains(t, out, `"<version>0.9-rc3</version>"`)
	assert.Contains(t, out, "already exists")
	assert.NotContains(t, out, "template/pom.xml", "unchanged results are left out of the table")
	assert.Contains(t, out, "0 changed, 1 planned, 1 unchanged, 0 skipped, 1 failed")
}

func TestSummary_WriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleSummary().Write(&buf, output.FormatYAML))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, true, decoded["dryRun"])
	assert.Equal(t, "strict", decoded["policy"])

	names, ok := decoded["names"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "payments/api", names["directory"])

	results, ok := decoded["results"].([]any)
	require.True(t, ok)
	assert.Len(t, results, 3)
}

func TestSummary_WriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleSummary().Write(&buf, output.FormatJSON))

	var decoded Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1, decoded.Counts.Failed)
	assert.Equal(t, "PaymentsApi", decoded.Names.UpperCamel)
	assert.Equal(t, edit.StatusFailed, decoded.Results[2].Status)
}
