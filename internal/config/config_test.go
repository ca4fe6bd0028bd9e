package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, ModeOne, cfg.Mode)
	assert.Equal(t, OutputSexpr, cfg.Format)
	assert.True(t, cfg.Color)
	assert.Equal(t, cfg.MaxDepth, cfg.ParserOptions().MaxDepth)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
mode = "all"
format = "tree"
max_depth = 64
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ModeAll, cfg.Mode)
	assert.Equal(t, OutputTree, cfg.Format)
	assert.Equal(t, 64, cfg.MaxDepth)
	// unset keys keep their defaults
	assert.Equal(t, "lispy> ", cfg.Prompt)
	assert.True(t, cfg.Color)
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.yml"} {
		path := writeFile(t, name, "prompt: \"> \"\ncolor: false\n")

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "> ", cfg.Prompt)
		assert.False(t, cfg.Color)
		assert.Equal(t, ModeOne, cfg.Mode)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.toml", `mode = `))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "mode: [\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "invalid.toml", `mode = "some"`))
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestLoadDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	dir := filepath.Join(home, ".config", "lispy")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`format = "tree"`), 0o600))

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, OutputTree, cfg.Format)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LISPY_MODE", "all")
	t.Setenv("LISPY_MAX_DEPTH", "12")
	t.Setenv("LISPY_COLOR", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ModeAll, cfg.Mode)
	assert.Equal(t, 12, cfg.MaxDepth)
	assert.False(t, cfg.Color)

	t.Setenv("LISPY_MAX_DEPTH", "many")
	_, err = Load("")
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"LISPY_FORMAT": "tree",
		"LISPY_PROMPT": "? ",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, cfg.applyEnv(lookup))
	assert.Equal(t, OutputTree, cfg.Format)
	assert.Equal(t, "? ", cfg.Prompt)

	env["LISPY_COLOR"] = "maybe"
	assert.True(t, errors.Is(cfg.applyEnv(lookup), ErrInvalid))
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		Mutate func(*Config)
		Valid  bool
	}{
		{func(c *Config) {}, true},
		{func(c *Config) { c.Mode = ModeAll }, true},
		{func(c *Config) { c.Mode = "" }, false},
		{func(c *Config) { c.Format = "json" }, false},
		{func(c *Config) { c.MaxDepth = 0 }, false},
	}

	for i := range testCases {
		cfg := Default()
		testCases[i].Mutate(cfg)
		err := cfg.Validate()
		if testCases[i].Valid {
			assert.NoError(t, err, "case %d", i)
		} else {
			assert.True(t, errors.Is(err, ErrInvalid), "case %d", i)
		}
	}
}

func TestLoadFromString(t *testing.T) {
	cfg, err := LoadFromString(`mode = "all"`, FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, ModeAll, cfg.Mode)

	cfg, err = LoadFromString("format: tree\n", FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, OutputTree, cfg.Format)

	_, err = LoadFromString(`x`, Format(9))
	assert.Error(t, err)

	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "unknown", Format(9).String())
}
