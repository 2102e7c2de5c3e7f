package cmdutil

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivekraman/modsetup/internal/config"
	"github.com/vivekraman/modsetup/internal/naming"
	"github.com/vivekraman/modsetup/internal/output"
)

func TestSetupFlags_AddTo(t *testing.T) {
	var f SetupFlags
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	f.AddTo(cmd)

	for _, name := range []string{"name", "dry-run", "yes", "build", "policy"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s", name)
	}

	cmd.SetArgs([]string{"--name", "orders", "--dry-run", "-y", "--policy", "replace"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, SetupFlags{Name: "orders", DryRun: true, Yes: true, Policy: "replace"}, f)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"  y  \n", true},
		{"y", true},
		{"yes\n", false},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			got, err := Confirm(strings.NewReader(tt.input), &out, "Continue?")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Continue? (y/N) ", out.String())
		})
	}
}

func TestWriteNames(t *testing.T) {
	names := naming.Derive("payments-api")

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteNames(&buf, names, output.FormatText))
		out := buf.String()
		assert.Contains(t, out, "paymentsApi")
		assert.Contains(t, out, "PaymentsApi")
		assert.Contains(t, out, "payments.api")
		assert.Contains(t, out, "payments/api")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteNames(&buf, names, output.FormatJSON))

		var decoded naming.Names
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, names, decoded)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteNames(&buf, names, output.FormatYAML))
		assert.Contains(t, buf.String(), "upperCamel: PaymentsApi")
	})
}

func TestPrintValidationError(t *testing.T) {
	var buf bytes.Buffer
	output.SetupLogging(output.LogConfig{Timestamps: output.BoolPtr(false)})
	output.SetLogOutput(&buf)
	t.Cleanup(func() { output.SetLogOutput(os.Stderr) })

	PrintValidationError("invalid config", config.ValidationErrors{
		{Field: "renamePolicy", Message: "value not allowed"},
		{Field: "layout.groupPackage", Message: "invalid value"},
	})

	out := buf.String()
	assert.Contains(t, out, "invalid config: 2 invalid field(s)")
	assert.Contains(t, out, "renamePolicy")
	assert.Contains(t, out, "layout.groupPackage")
}
