package config

import (
	"os"
	"path/filepath"
	"testing"

	"cluedo-toolbox/internal/cards"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	// GIVEN the embedded configuration
	catalog, err := Default().Catalog()
	require.NoError(t, err)

	t.Run("it has the classic card counts", func(t *testing.T) {
		assert.Len(t, catalog.InCategory(cards.CategorySuspect), 6)
		assert.Len(t, catalog.InCategory(cards.CategoryWeapon), 6)
		assert.Len(t, catalog.InCategory(cards.CategoryRoom), 9)
		assert.Equal(t, 18, catalog.InPlay())
	})

	t.Run("it keeps declaration order", func(t *testing.T) {
		assert.Equal(t, "scarlet", catalog.InCategory(cards.CategorySuspect)[0].Key)
	})
}

func TestLoadYAML(t *testing.T) {
	// GIVEN a small YAML catalog on disk
	dir := t.TempDir()
	path := filepath.Join(dir, "mini.yaml")
	body := `suspects:
  - name: Miss Scarlet
    key: scarlet
  - name: Colonel Mustard
weapons:
  - name: Rope
  - name: Lead Pipe
rooms:
  - name: Hall
  - name: Study
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	// WHEN it is loaded and turned into a catalog
	cfg, err := Load(path)
	require.NoError(t, err)
	catalog, err := cfg.Catalog()
	require.NoError(t, err)

	// THEN missing keys are derived from names
	card, err := catalog.Lookup("lead_pipe")
	require.NoError(t, err)
	assert.Equal(t, "Lead Pipe", card.Name)
	assert.Equal(t, cards.CategoryWeapon, card.Category)
	_, err = catalog.Lookup("colonel_mustard")
	assert.NoError(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = LoadOrDefault(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadSettingsFromEnv(t *testing.T) {
	t.Setenv(EnvPlayers, "5")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvConfig, "")

	s := LoadSettings()

	assert.Equal(t, Settings{Players: 5, LogLevel: "debug"}, s)
}

func TestLoadSettingsIgnoresGarbage(t *testing.T) {
	t.Setenv(EnvPlayers, "lots")
	assert.Equal(t, DefaultSettings().Players, LoadSettings().Players)
}
