package server

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type BaseServerConfig struct {
	ShutdownTimeout string `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`

	Log      LogServerConfig      `mapstructure:"log"      yaml:"log"`
	Metadata MetadataServerConfig `mapstructure:"metadata" yaml:"metadata"`
	Intake   IntakeServerConfig   `mapstructure:"intake"   yaml:"intake"`
	Extract  ExtractServerConfig  `mapstructure:"extract"  yaml:"extract"`
	Classify ClassifyServerConfig `mapstructure:"classify" yaml:"classify"`
	HTTP     HTTPServerConfig     `mapstructure:"http"     yaml:"http"`
}

func LoadServerConfig() (*BaseServerConfig, error) {
	cfg := &BaseServerConfig{}

	setDefaults()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects configurations that cannot be served
func (cfg *BaseServerConfig) Validate() error {
	switch cfg.Metadata.Type {
	case MetadataTypeSQLite, MetadataTypePostgres, MetadataTypeMemory:
	default:
		return fmt.Errorf("unsupported metadata type '%s'", cfg.Metadata.Type)
	}

	if cfg.Intake.Dir == "" {
		return fmt.Errorf("intake directory must not be empty")
	}
	if cfg.Classify.Threshold < 1 {
		return fmt.Errorf("classify threshold must be at least 1, got %d", cfg.Classify.Threshold)
	}

	return nil
}

// ShutdownDuration parses the shutdown timeout, falling back to 60 seconds
func (cfg *BaseServerConfig) ShutdownDuration() time.Duration {
	timeout, err := time.ParseDuration(cfg.ShutdownTimeout)
	if err != nil || timeout <= 0 {
		return 60 * time.Second
	}
	return timeout
}
