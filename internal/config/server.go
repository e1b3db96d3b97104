package config

import (
	"os"

	"github.com/joho/godotenv"
)

// DefaultServerAddr is used when neither a flag nor the environment sets one.
const DefaultServerAddr = ":8080"

// Environment variables read by LoadServerConfig.
const (
	EnvServerAddr = "FEN_SERVER_ADDR"
	EnvGinMode    = "GIN_MODE"
)

// ServerConfig holds settings for the fen-server command.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// Mode is the gin mode: "debug", "release" or "test"
	Mode string
}

// LoadServerConfig reads the server settings from the environment. Each
// existing file in envFiles is loaded first; variables already set in the
// process environment win over file values.
func LoadServerConfig(envFiles ...string) (*ServerConfig, error) {
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return nil, err
		}
	}

	cfg := &ServerConfig{
		Addr: os.Getenv(EnvServerAddr),
		Mode: os.Getenv(EnvGinMode),
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultServerAddr
	}
	return cfg, nil
}
