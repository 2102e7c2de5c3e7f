package config

import (
	_ "embed"
	"fmt"
	"io"
	"text/template"
)

//go:embed templates/modsetup.yaml.tmpl
var configTemplateText string

var configTemplate = template.Must(template.New("modsetup.yaml").Parse(configTemplateText))

// WriteTemplate renders a commented config file holding the values of cfg.
func WriteTemplate(w io.Writer, cfg *Config) error {
	if err := configTemplate.Execute(w, cfg.WithDefaults()); err != nil {
		return fmt.Errorf("rendering config template: %w", err)
	}
	return nil
}
