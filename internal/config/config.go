// Package config handles xformtool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig controls how matrices and vectors are printed.
type OutputConfig struct {
	Precision int    `yaml:"precision"` // Fractional digits when printing
	Format    string `yaml:"format"`    // "table" or "yaml"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Precision: 6,
			Format:    "table",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
