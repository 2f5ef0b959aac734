// Package config holds the program configuration: built-in defaults from an
// embedded YAML template, optionally overridden by a user supplied file.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"github.com/simp-lee/epubtoc/outline"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	OutlineConfig struct {
		DefaultTitle  string `yaml:"default_title" validate:"required"`
		HeadingMarker string `yaml:"heading_marker" validate:"required,printascii"`
		OutputSuffix  string `yaml:"output_suffix" validate:"required"`
	}

	Config struct {
		Version int           `yaml:"version" validate:"eq=1"`
		Outline OutlineConfig `yaml:"outline"`
		Logging LoggingConfig `yaml:"logging"`
	}
)

// Renderer returns the outline renderer described by the configuration.
func (oc *OutlineConfig) Renderer() outline.Renderer {
	return outline.Renderer{Marker: oc.HeadingMarker, DefaultTitle: oc.DefaultTitle}
}

// OutputPath names the outline file for the EPUB at src.
func (oc *OutlineConfig) OutputPath(src string) string {
	return outline.OutputPathWithSuffix(src, oc.OutputSuffix)
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// unknown keys are errors, yaml.Unmarshal would silently drop them
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration expands the embedded template to get defaults and, when
// path is not empty, decodes the file at path on top of them. The result is
// sanitized and validated.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare returns the expanded default configuration.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

// Dump marshals cfg back to YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
