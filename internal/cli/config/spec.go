package config

// CLIConfig is the configuration for sigmesh-cli.
type CLIConfig struct {
	// ConnectionString is the service connection string
	// (Endpoint=...;AccessKey=...;Version=...).
	ConnectionString string `koanf:"connection_string" yaml:"connection_string"`

	// Hub is the default hub name.
	Hub string `koanf:"hub" yaml:"hub"`

	// Output is the default output format (table, json, yaml).
	Output string `koanf:"output" yaml:"output"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `koanf:"log_level" yaml:"log_level"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Output:   "table",
		LogLevel: "info",
	}
}
