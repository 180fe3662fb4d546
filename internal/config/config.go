// Package config provides functionality for managing configuration options
// for the application using command-line flags, an optional JSON config
// file, and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Address defines the server's listening address (ip:port).
	Address string `json:"address"`

	// DatabaseDSN selects the PostgreSQL store backend when non-empty.
	DatabaseDSN string `json:"database_dsn"`

	// StorageFile is the path of the file-backed store, used when no DSN
	// is configured.
	StorageFile string `json:"storage_file"`

	// PushEndpoint overrides the push delivery endpoint. Empty selects the
	// Expo default.
	PushEndpoint string `json:"push_endpoint"`

	// LogLevel sets the logging verbosity.
	LogLevel string `json:"log_level"`

	// Config is the path to the config file.
	Config string `json:"-"`
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Address, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.StorageFile, "s", "healthmate.json", "path to the file store")
	flag.StringVar(&options.PushEndpoint, "p", "", "push delivery endpoint override")
	flag.StringVar(&options.LogLevel, "l", "info", "log level")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags, config file, and environment
// variables to set configuration values. Environment variables take
// precedence over the config file, which takes precedence over flags.
// It returns a pointer to the Options struct containing the parsed
// configuration values.
func Parse() *Options {
	flag.Parse()

	// Load a .env file when present; variables already set win.
	_ = godotenv.Load()

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Address = serverAddress
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}
	if storageFile := os.Getenv("STORAGE_FILE"); storageFile != "" {
		options.StorageFile = storageFile
	}
	if pushEndpoint := os.Getenv("PUSH_ENDPOINT"); pushEndpoint != "" {
		options.PushEndpoint = pushEndpoint
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		options.LogLevel = level
	}

	return options
}
