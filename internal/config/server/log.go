package server

// LogServerConfig controls the application logger
type LogServerConfig struct {
	Level      string `mapstructure:"level"       yaml:"level"`
	TimeFormat string `mapstructure:"time_format" yaml:"time_format"`
	NoColor    bool   `mapstructure:"no_color"    yaml:"no_color"`
	JSON       bool   `mapstructure:"json"        yaml:"json"`
	NoTerminal bool   `mapstructure:"no_terminal" yaml:"no_terminal"`

	// SQL enables statement logging of the metadata store
	SQL bool `mapstructure:"sql" yaml:"sql"`

	// File additionally writes entries to a rotated log file
	File     string                  `mapstructure:"file"     yaml:"file"`
	Rotation LogServerRotationConfig `mapstructure:"rotation" yaml:"rotation"`
}

// LogServerRotationConfig is passed on to lumberjack, sizes are in megabytes and ages in days
type LogServerRotationConfig struct {
	MaxSize    int  `mapstructure:"max_size"    yaml:"max_size"`
	MaxBackups int  `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int  `mapstructure:"max_age"     yaml:"max_age"`
	Compress   bool `mapstructure:"compress"    yaml:"compress"`
}
