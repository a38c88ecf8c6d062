package jsontestgeninternal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsontestgeninternal "github.com/sublee/jsontestgen/internal/jsontestgen"
	"github.com/sublee/jsontestgen/internal/jsontestgen/compose"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := jsontestgeninternal.LoadConfig(viper.New(), t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, jsontestgeninternal.DefaultConfig(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "codec: goccy\nsuffix: RoundTrip\ntests: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".jsontestgen.yaml"), []byte(yaml), 0o644))

	cfg, err := jsontestgeninternal.LoadConfig(viper.New(), dir, "")
	require.NoError(t, err)
	assert.Equal(t, "goccy", cfg.Codec)
	assert.Equal(t, "RoundTrip", cfg.Suffix)
	assert.False(t, cfg.Tests)
}

func TestLoadConfigEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".jsontestgen.yaml"), []byte("codec: goccy\n"), 0o644))
	t.Setenv("JSONTESTGEN_CODEC", "sonic")
	t.Setenv("JSONTESTGEN_VERBOSE", "true")

	cfg, err := jsontestgeninternal.LoadConfig(viper.New(), dir, "")
	require.NoError(t, err)
	assert.Equal(t, "sonic", cfg.Codec)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tags: integration\n"), 0o644))

	cfg, err := jsontestgeninternal.LoadConfig(viper.New(), t.TempDir(), path)
	require.NoError(t, err)
	assert.Equal(t, "integration", cfg.Tags)

	_, err = jsontestgeninternal.LoadConfig(viper.New(), dir, filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".jsontestgen.yaml"), []byte("codec: xml\n"), 0o644))

	_, err := jsontestgeninternal.LoadConfig(viper.New(), dir, "")
	assert.ErrorContains(t, err, `unknown codec "xml"`)
}

func TestConfigValidate(t *testing.T) {
	cfg := jsontestgeninternal.DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Suffix = "Round-Trip"
	assert.ErrorContains(t, cfg.Validate(), "cannot be part of a Go identifier")

	cfg.Suffix = "_2"
	assert.NoError(t, cfg.Validate())
}

func TestConfigComposeOptions(t *testing.T) {
	cfg := jsontestgeninternal.DefaultConfig()
	cfg.Codec = "goccy"
	cfg.Suffix = "Wire"

	opts := cfg.ComposeOptions()
	assert.Equal(t, compose.Options{Codec: "goccy", Suffix: "Wire", Version: jsontestgeninternal.Version}, opts)
}
