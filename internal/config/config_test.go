package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "deck.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "slides.md", cfg.Entry)
	assert.Equal(t, "node_modules", cfg.DepsDir)
	assert.Equal(t, "dist", cfg.Output)
	assert.Equal(t, "", cfg.PackageManager)
	assert.Equal(t, "dev", cfg.Scripts.Dev)
	assert.Equal(t, "build", cfg.Scripts.Build)
	assert.Equal(t, "export", cfg.Scripts.Export)
	assert.False(t, cfg.Dev.WatchConfig)
}

func TestLoadAppliesDefaultsToPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	raw := `
entry: presentation.md
scripts:
  export: export-pdf
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "presentation.md", cfg.Entry)
	assert.Equal(t, "export-pdf", cfg.Scripts.Export)
	// Untouched fields keep defaults.
	assert.Equal(t, "dev", cfg.Scripts.Dev)
	assert.Equal(t, "node_modules", cfg.DepsDir)
}

func TestLoadNormalizesManager(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package_manager: \" PNPM \"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "pnpm", cfg.PackageManager)
}

func TestLoadRejectsUnknownManager(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package_manager: bower\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported package_manager")
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("DECK_ENTRY", "talk.md")

	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entry: ${DECK_ENTRY}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "talk.md", cfg.Entry)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entry: [unclosed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")

	require.NoError(t, Init(path, false))

	// Re-running without force refuses to overwrite.
	err := Init(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// Force overwrites.
	require.NoError(t, Init(path, true))

	// The generated file round-trips through Load.
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "slides.md", cfg.Entry)
	assert.Equal(t, "npm", cfg.PackageManager)
}
