package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Default preprocessor extensions.
const (
	DefaultViews       = "pug"
	DefaultStylesheets = "css"
	DefaultJavascripts = "js"
)

// projectConfigNames lists the project config files in resolution order.
var projectConfigNames = []string{"frodo.yml", "frodo.yaml", "frodo.json"}

// Preprocessors maps asset categories to file extensions.
type Preprocessors struct {
	Views       string `yaml:"views,omitempty"`
	Stylesheets string `yaml:"stylesheets,omitempty"`
	Javascripts string `yaml:"javascripts,omitempty"`
}

// DefaultPreprocessors returns pug views, css stylesheets and js scripts.
func DefaultPreprocessors() Preprocessors {
	return Preprocessors{
		Views:       DefaultViews,
		Stylesheets: DefaultStylesheets,
		Javascripts: DefaultJavascripts,
	}
}

// Merge returns p with every non-empty value of override applied.
func (p Preprocessors) Merge(override *Preprocessors) Preprocessors {
	if override == nil {
		return p
	}
	if override.Views != "" {
		p.Views = override.Views
	}
	if override.Stylesheets != "" {
		p.Stylesheets = override.Stylesheets
	}
	if override.Javascripts != "" {
		p.Javascripts = override.Javascripts
	}
	return p
}

// ProjectConfig is the optional project-local configuration (config/frodo.yml).
type ProjectConfig struct {
	Preprocessors *Preprocessors `yaml:"preprocessors,omitempty"`
}

// LoadProjectConfig reads the first config/frodo.{yml,yaml,json} found under dir.
// Returns nil, nil when no config file exists - absence is not an error.
// JSON files are decoded by the YAML decoder.
func LoadProjectConfig(fs afero.Fs, dir string) (*ProjectConfig, error) {
	for _, name := range projectConfigNames {
		path := filepath.Join(dir, "config", name)
		data, err := afero.ReadFile(fs, path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return &cfg, nil
	}

	return nil, nil
}
