// Package config loads the dashboard's runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"time"

	"github.com/joho/godotenv"
)

const (
	envPort       = "PORT"
	envSourceURL  = "SOURCE_URL"
	envTableIndex = "FINALS_TABLE_INDEX"
	envTimeout    = "FETCH_TIMEOUT"
	envLogLevel   = "LOG_LEVEL"
	envTheme      = "DASHBOARD_THEME"

	// Host is the listening interface; it is not configurable
	Host = "0.0.0.0"

	defaultPort       = 8050
	defaultSourceURL  = "https://en.wikipedia.org/wiki/List_of_FIFA_World_Cup_finals"
	defaultTableIndex = 3
	defaultTimeout    = 30 * time.Second
	defaultLogLevel   = "INFO"
	defaultTheme      = "classic"
)

// Config holds runtime configuration for the dashboard
type Config struct {
	Host         string
	Port         int
	SourceURL    string
	TableIndex   int
	FetchTimeout time.Duration
	LogLevel     string
	Theme        string
}

// Addr returns the host:port the server listens on
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, fmt.Sprint(c.Port))
}

// Load reads .env files (".env" when none are named) into the environment,
// then builds the Config from environment variables with defaults. Missing
// .env files are ignored; variables already set in the environment win.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	return Config{
		Host:         Host,
		Port:         portEnvOrDefault(envPort, defaultPort),
		SourceURL:    envOrDefault(envSourceURL, defaultSourceURL),
		TableIndex:   intEnvOrDefault(envTableIndex, defaultTableIndex),
		FetchTimeout: durationEnvOrDefault(envTimeout, defaultTimeout),
		LogLevel:     envOrDefault(envLogLevel, defaultLogLevel),
		Theme:        envOrDefault(envTheme, defaultTheme),
	}, nil
}
