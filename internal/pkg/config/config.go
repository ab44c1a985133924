package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// DefaultPort is the REST API port used when none is configured
const DefaultPort = "8080"

// Config is the top-level application configuration
type Config struct {
	Port     string           `yaml:"port"`
	Logger   LoggerSettings   `yaml:"logger"`
	Database DatabaseSettings `yaml:"database"`
	KeyStore KeyStoreSettings `yaml:"key_store"`
	Cipher   CipherSettings   `yaml:"cipher"`
}

// NewDefaultConfig returns a configuration that runs without any file:
// console logging, an in-memory SQLite store and key files in the working directory.
func NewDefaultConfig() *Config {
	return &Config{
		Port: DefaultPort,
		Logger: LoggerSettings{
			LogLevel: LogLevelInfo,
			LogType:  LogTypeConsole,
		},
		Database: DatabaseSettings{
			Type: SqliteDbType,
			DSN:  ":memory:",
		},
		KeyStore: KeyStoreSettings{
			Directory:      ".",
			PublicKeyFile:  DefaultPublicKeyFile,
			PrivateKeyFile: DefaultPrivateKeyFile,
		},
		Cipher: CipherSettings{
			KeyBitLength: DefaultKeyBitLength,
		},
	}
}

// InitializeConfig loads the YAML file at path on top of the defaults and validates the result.
// An empty path yields the validated defaults.
func InitializeConfig(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section and reports all failures at once
func (c *Config) Validate() error {
	var result *multierror.Error

	if err := validator.New().Var(c.Port, "required,numeric"); err != nil {
		result = multierror.Append(result, fmt.Errorf("validation failed for Port: %w", err))
	}
	if err := c.Logger.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.Database.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.KeyStore.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.Cipher.Validate(); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}
