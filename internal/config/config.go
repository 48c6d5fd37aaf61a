// Package config provides centralized configuration for both pipelines.
// It loads settings from environment variables with sensible defaults and
// validates everything on startup to fail fast on misconfiguration.
package config

// Config holds all settings for the transform and validation pipelines.
// All settings can be configured via environment variables.
type Config struct {
	Input   InputConfig
	Output  OutputConfig
	Sales   SalesConfig
	Logging LoggingConfig
}

// InputConfig holds raw export settings.
type InputConfig struct {
	// CSVPath is the path of the flat sales export (default: data/raw/amazon_sales_data.csv)
	CSVPath string `env:"INPUT_CSV" default:"data/raw/amazon_sales_data.csv"`
}

// OutputConfig holds processed artifact settings. The validation pipeline
// reads the same directory the transform pipeline writes.
type OutputConfig struct {
	// Dir is the directory holding the four JSON collections (default: data/processed)
	Dir string `env:"OUTPUT_DIR" default:"data/processed"`
}

// SalesConfig holds synthetic sales generation settings.
type SalesConfig struct {
	// Count is the number of sales to generate (default: 1000)
	Count int `env:"SALES_COUNT" default:"1000"`

	// Seed seeds the random source; 0 derives a seed from the clock (default: 0)
	Seed int64 `env:"RANDOM_SEED" default:"0"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
