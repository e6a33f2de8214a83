package server

// IntakeServerConfig controls where documents are copied to and sorted into
type IntakeServerConfig struct {
	Dir       string `mapstructure:"dir"        yaml:"dir"`
	SortedDir string `mapstructure:"sorted_dir" yaml:"sorted_dir"`
}

type ExtractServerConfig struct {
	// ReferenceYear is used to turn birth years into ages, 0 uses the current year
	ReferenceYear int `mapstructure:"reference_year" yaml:"reference_year"`
}

type ClassifyServerConfig struct {
	Threshold int      `mapstructure:"threshold" yaml:"threshold"`
	Keywords  []string `mapstructure:"keywords"  yaml:"keywords"`
}

type HTTPServerConfig struct {
	Address string `mapstructure:"address" yaml:"address"`
}
