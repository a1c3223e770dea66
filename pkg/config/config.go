// Package config provides configuration management for RegattaDB.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Environment Variables
//
// Use REGATTADB_ prefix with underscores for nesting:
//
//	REGATTADB_DATABASE_HOST=localhost
//	REGATTADB_DATABASE_PORT=5432
//	REGATTADB_CLASSIFIER_API_KEY=...
//	REGATTADB_LOG_LEVEL=info
package config

import (
	"runtime"
)

// Config represents the complete RegattaDB configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Classifier contains settings for the language-model intent
	// classifier used by the ask command.
	Classifier ClassifierConfig `mapstructure:"classifier" yaml:"classifier"`

	// Import contains settings specific to CSV ingestion.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel
	// operations such as the status count queries.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize defines the number of records per batch for bulk inserts.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`

	// AllowDestructive must be true for operations that remove data
	// (schema overwrite, clear). It is an explicit configuration value
	// passed into the components that perform destructive operations,
	// not a global flag.
	AllowDestructive bool `mapstructure:"allow_destructive" yaml:"allow_destructive"`
}

// ClassifierConfig contains language-model classifier parameters.
type ClassifierConfig struct {
	// APIKey authenticates against the Gemini API. Without it the ask
	// command fails with a classification error before touching storage.
	APIKey string `mapstructure:"api_key" yaml:"api_key"`

	// Model is the Gemini model used for intent classification.
	Model string `mapstructure:"model" yaml:"model"`
}

// ImportConfig contains settings specific to the import command.
type ImportConfig struct {
	// MaxFieldLen is the per-column ceiling for textual CSV fields.
	// Oversized input is a fatal ingestion error for that row,
	// never silently truncated.
	MaxFieldLen int `mapstructure:"max_field_len" yaml:"max_field_len"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "regattadb",
			SSLMode:   "disable",
			BatchSize: 5_000,
		},
		Classifier: ClassifierConfig{
			Model: "gemini-2.0-flash",
		},
		Import: ImportConfig{
			MaxFieldLen: 300,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
