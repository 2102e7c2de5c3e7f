package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_DefaultsAreValid(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(DefaultConfig()))
}

func TestValidator_Rejects(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "unknown rename policy",
			mutate:    func(c *Config) { c.RenamePolicy = "overwrite" },
			wantField: "renamePolicy",
		},
		{
			name:      "target version with spaces",
			mutate:    func(c *Config) { c.Versions.Target = "1.0 rc1" },
			wantField: "versions.target",
		},
		{
			name:      "spring boot version not semver",
			mutate:    func(c *Config) { c.Versions.SpringBoot = "latest" },
			wantField: "versions.springBoot",
		},
		{
			name:      "group package with uppercase",
			mutate:    func(c *Config) { c.Layout.GroupPackage = "Dev.Vivek" },
			wantField: "layout.groupPackage",
		},
		{
			name:      "module directory with slash",
			mutate:    func(c *Config) { c.Layout.AppModule = "apps/module-app" },
			wantField: "layout.appModule",
		},
	}

	v, err := NewValidator()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := v.Validate(cfg)
			require.Error(t, err)

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs), "got %T: %v", err, err)

			var fields []string
			for _, e := range verrs {
				fields = append(fields, e.Field)
			}
			assert.Contains(t, fields, tt.wantField)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestValidationErrors_Empty(t *testing.T) {
	assert.Equal(t, "no validation errors", ValidationErrors(nil).Error())
}
