package store

import (
	"fmt"

	"github.com/mwantia/resorter/pkg/filter"
	"gopkg.in/yaml.v3"
)

func encodePreset(cfg filter.Config) (string, error) {
	data, err := yaml.Marshal(cfg.Normalize())
	if err != nil {
		return "", fmt.Errorf("failed to encode filter preset: %w", err)
	}
	return string(data), nil
}

func decodePreset(definition string) (filter.Config, error) {
	var cfg filter.Config
	if err := yaml.Unmarshal([]byte(definition), &cfg); err != nil {
		return filter.Config{}, fmt.Errorf("failed to decode filter preset: %w", err)
	}
	return cfg.Normalize(), nil
}
