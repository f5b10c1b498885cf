package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tempo/internal/spec"
)

const SupportedSchema = "v1"

// LoadPipeline parses a pipeline YAML and validates its schema_version.
func LoadPipeline(path string) (spec.File, error) {
	var cfg spec.File
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	if cfg.SchemaVersion == "" {
		cfg.SchemaVersion = SupportedSchema
	}
	if cfg.SchemaVersion != SupportedSchema {
		return cfg, fmt.Errorf("pipeline schema_version %q not supported (want %q)", cfg.SchemaVersion, SupportedSchema)
	}
	return cfg, nil
}
