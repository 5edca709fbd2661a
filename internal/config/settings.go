package config

import (
	"os"
	"strconv"
)

// Environment variables read by LoadSettings. A .env file in the working
// directory is loaded into the environment by cmd/cluedo before this runs.
const (
	EnvPlayers  = "CLUEDO_PLAYERS"
	EnvLogLevel = "CLUEDO_LOGLEVEL"
	EnvConfig   = "CLUEDO_CONFIG"
)

// Settings are the runtime knobs that are not part of the card catalog.
type Settings struct {
	Players    int
	LogLevel   string
	ConfigPath string
}

// DefaultSettings is a four-player table logging at info level.
func DefaultSettings() Settings {
	return Settings{Players: 4, LogLevel: "info"}
}

// LoadSettings starts from DefaultSettings and applies any CLUEDO_* variables.
// Unparseable values are ignored.
func LoadSettings() Settings {
	s := DefaultSettings()
	if v := os.Getenv(EnvPlayers); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.Players = n
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv(EnvConfig); v != "" {
		s.ConfigPath = v
	}
	return s
}
