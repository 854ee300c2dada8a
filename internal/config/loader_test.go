package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	var kitty KittyConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML("kitty"), &kitty))
	assert.Equal(t, DefaultKittyConfig(), kitty)

	var train TrainConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML("train"), &train))
	assert.Equal(t, DefaultTrainConfig(), train)

	assert.Nil(t, GetDefaultYAML("pong"))
}

func TestLoadCustomPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kitty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  lives: 5\n"), 0o600))

	cfg, src, err := LoadKitty(path)
	require.NoError(t, err)
	assert.Equal(t, SourceCustom, src)
	assert.Equal(t, 5, cfg.Player.Lives)
	assert.Equal(t, 60.0, cfg.Player.Width, "unnamed keys keep defaults")
	assert.Len(t, cfg.Level.Platforms, 12)
}

func TestLoadCustomErrors(t *testing.T) {
	_, _, err := LoadTrain(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("view: [oops"), 0o600))
	_, _, err = LoadTrain(bad)
	assert.Error(t, err)

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("level:\n  target_distance: 0\n"), 0o600))
	_, _, err = LoadTrain(invalid)
	assert.ErrorContains(t, err, "target_distance")
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, src, err := LoadTrain("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, src)
	assert.Equal(t, DefaultTrainConfig(), cfg)
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "kitty.yaml"),
		[]byte("dog:\n  speed: 3\n"), 0o600))

	cfg, src, err := LoadKitty("")
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, src)
	assert.Equal(t, 3.0, cfg.Dog.Speed)
}

func TestValidate(t *testing.T) {
	k := DefaultKittyConfig()
	k.Player.Lives = 0
	assert.Error(t, ValidateKitty(k))

	tr := DefaultTrainConfig()
	tr.Level.Tunnels = append(tr.Level.Tunnels, TunnelSpec{WorldX: 1, Length: 0})
	assert.Error(t, ValidateTrain(tr))

	assert.NoError(t, ValidateKitty(DefaultKittyConfig()))
	assert.NoError(t, ValidateTrain(DefaultTrainConfig()))
}
