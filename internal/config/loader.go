package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"csv-rewriter/internal/common"
)

// LoadFile loads, parses, and normalizes a configuration file.
// YAML (.yaml/.yml) and JSON (.json, the legacy config.json format) are
// both supported; the extension decides the parser.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseJSON(data)
	}

	return Parse(data)
}

// Parse parses YAML data into a normalized Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// ParseJSON parses JSON data into a normalized Config.
func ParseJSON(data []byte) (*Config, error) {
	var cfg Config

	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values and folds the basic-variant flat
// type lists into per-column types.
func applyDefaults(cfg *Config) {
	if cfg.Delimiter == "" {
		cfg.Delimiter = ";"
	}

	for i := range cfg.Columns {
		col := &cfg.Columns[i]

		if col.Source == "" {
			col.Source = col.Name
		}

		// Explicit per-column type wins over the flat lists.
		if col.Type == TypeInvalid {
			switch {
			case common.Contains(cfg.DateColumns, col.Name):
				col.Type = TypeDate
			case common.Contains(cfg.NumericColumns, col.Name):
				col.Type = TypeNumeric
			default:
				col.Type = TypeAlphanumeric
			}
		}
	}
}
