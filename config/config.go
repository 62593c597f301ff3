package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvAPIKey       = "OPENWEATHER_API_KEY"
	EnvOTelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvServiceName  = "OTEL_SERVICE_NAME"
	EnvPort         = "PORT"

	DefaultPort = "8080"
)

var ErrAPIKeyMissing = errors.New(EnvAPIKey + " is not set. Get a key at https://openweathermap.org/api and set it in your environment or a .env file")

type Config struct {
	APIKey       string
	OTelEndpoint string
	ServiceName  string
	Port         string
}

// LoadEnvFile loads the first .env found in dir candidates. Variables already
// present in the environment are never overridden.
func LoadEnvFile(candidates ...string) (string, bool) {
	for _, dir := range candidates {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			log.Printf("failed to load %s: %v", path, err)
			continue
		}
		return path, true
	}
	return "", false
}

// DefaultEnvDirs returns the working directory followed by the directory of
// the running executable.
func DefaultEnvDirs() []string {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	return dirs
}

// Load reads the configuration from the environment. serviceName is used
// when OTEL_SERVICE_NAME is unset.
func Load(serviceName string) (Config, error) {
	cfg := Config{
		APIKey:       strings.TrimSpace(os.Getenv(EnvAPIKey)),
		OTelEndpoint: strings.TrimSpace(os.Getenv(EnvOTelEndpoint)),
		ServiceName:  strings.TrimSpace(os.Getenv(EnvServiceName)),
		Port:         strings.TrimSpace(os.Getenv(EnvPort)),
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = serviceName
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.APIKey == "" {
		return cfg, ErrAPIKeyMissing
	}
	return cfg, nil
}
