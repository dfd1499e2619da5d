package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func TestLoadEnv(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Chdir(t.TempDir())
	assert.False(t, LoadEnv(logger))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OILFIELD_LOAD_ENV_TEST=1\n"), 0o600))
	t.Chdir(dir)
	t.Cleanup(func() { os.Unsetenv("OILFIELD_LOAD_ENV_TEST") }) //nolint:errcheck
	assert.True(t, LoadEnv(logger))
	assert.Equal(t, "1", os.Getenv("OILFIELD_LOAD_ENV_TEST"))
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	require.NotNil(t, cfg.Log)
	assert.Equal(t, 0, cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "[oilfield]", cfg.Log.Prefix)
	require.NotNil(t, cfg.Report)
	assert.Equal(t, ColorAuto, cfg.Report.Color)
	assert.False(t, cfg.Report.JSON)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("REPORT_COLOR", "never")
	t.Setenv("REPORT_JSON", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, ColorNever, cfg.Report.Color)
	assert.True(t, cfg.Report.JSON)
}

func TestLoadRejectsUnknownColor(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("REPORT_COLOR", "rainbow")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte("LOG_PREFIX=[file]\n"), 0o600))
	t.Chdir(dir)
	t.Cleanup(func() { os.Unsetenv("LOG_PREFIX") }) //nolint:errcheck

	cfg, err := Load(".env.missing", ".env.test")
	require.NoError(t, err)
	assert.Equal(t, "[file]", cfg.Log.Prefix)
}

func TestFindEnvFile(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), nil, 0o600))
	t.Chdir(nested)

	found, err := FindEnvFile("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".env"), found)

	_, err = FindEnvFile(".env.nowhere-to-be-found")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindEnvFileStopsAtModuleRoot(t *testing.T) {
	outer := t.TempDir()
	module := filepath.Join(outer, "module")
	require.NoError(t, os.MkdirAll(module, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(outer, ".env"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(module, "go.mod"), []byte("module x\n"), 0o600))
	t.Chdir(module)

	_, err := FindEnvFile("")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
