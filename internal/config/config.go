package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cluedo-toolbox/internal/cards"

	"gopkg.in/yaml.v3"
)

//go:embed default_config.json
var defaultConfig []byte

// CardEntry is one card as written in a catalog file.
type CardEntry struct {
	Key  string `json:"key,omitempty" yaml:"key,omitempty"`
	Name string `json:"name" yaml:"name"`
}

// GameConfig holds the static card definitions for a game of Cluedo.
type GameConfig struct {
	Suspects []CardEntry `json:"suspects" yaml:"suspects"`
	Weapons  []CardEntry `json:"weapons" yaml:"weapons"`
	Rooms    []CardEntry `json:"rooms" yaml:"rooms"`
}

// Default returns the classic 6 suspects, 6 weapons and 9 rooms.
func Default() *GameConfig {
	var cfg GameConfig
	if err := json.Unmarshal(defaultConfig, &cfg); err != nil {
		panic(fmt.Sprintf("embedded default_config.json is invalid: %v", err))
	}
	return &cfg
}

// Load reads and parses a catalog file. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON. Declaration order is kept.
func Load(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg GameConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadOrDefault loads path, or returns the embedded catalog when path is empty.
func LoadOrDefault(path string) (*GameConfig, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Catalog turns the configuration into an immutable card catalog.
func (c *GameConfig) Catalog() (*cards.Catalog, error) {
	return cards.NewCatalog(definitions(c.Suspects), definitions(c.Weapons), definitions(c.Rooms))
}

func definitions(entries []CardEntry) []cards.Definition {
	out := make([]cards.Definition, 0, len(entries))
	for _, e := range entries {
		out = append(out, cards.Definition{Key: e.Key, Name: e.Name})
	}
	return out
}
