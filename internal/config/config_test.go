package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	SetDir("")
	t.Setenv("QUERYLENS_CONFIG_DIR", dir)
	for _, k := range []string{
		"QUERYLENS_PROVIDER", "QUERYLENS_API_KEY", "QUERYLENS_MODEL", "QUERYLENS_BASE_URL",
		"QUERYLENS_ENV", "QUERYLENS_LOG_LEVEL", "QUERYLENS_PROXY_ADDR",
		"OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY", "GROQ_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
	return dir
}

func TestLoadMissingFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Nil(t, cfg)
	assert.False(t, Exists())
}

func TestSaveThenLoad(t *testing.T) {
	dir := isolate(t)

	cfg := DefaultConfig()
	cfg.Provider = "groq"
	cfg.APIKey = "gsk-test"
	cfg.Debounce = "750ms"
	require.NoError(t, cfg.Save())

	info, err := os.Stat(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "groq", loaded.Provider)
	assert.Equal(t, "gsk-test", loaded.APIKey)
	assert.Equal(t, 750*time.Millisecond, loaded.DebounceInterval())
	assert.Equal(t, DefaultProxyAddr, loaded.ProxyAddr())
}

func TestLoadKeepsDefaultsForOmittedFields(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("provider: ollama\nmodel: qwen2.5:7b\n"), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ollama", cfg.Provider)
	assert.Equal(t, DefaultMinQueryLength, cfg.MinLength())
	assert.Equal(t, DefaultSuggestions, cfg.Suggestions())
	assert.Equal(t, DefaultDebounce, cfg.DebounceInterval())
}

func TestLoadRejectsBadYAML(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("provider: [unclosed"), 0600))

	_, err := Load()
	assert.Error(t, err)
}

func TestApplyEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("QUERYLENS_PROVIDER", "anthropic")
	t.Setenv("QUERYLENS_MODEL", "claude-3-5-sonnet-20241022")
	t.Setenv("QUERYLENS_ENV", "production")
	t.Setenv("QUERYLENS_PROXY_ADDR", ":9000")

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "claude-3-5-sonnet-20241022", cfg.Model)
	assert.True(t, cfg.Env().IsProduction())
	assert.Equal(t, ":9000", cfg.ProxyAddr())
}

func TestKeyPrecedence(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, "sk-from-env", cfg.Key())
	assert.Empty(t, cfg.APIKey)

	cfg.APIKey = "sk-from-file"
	assert.Equal(t, "sk-from-file", cfg.Key())

	t.Setenv("QUERYLENS_API_KEY", "sk-explicit")
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, "sk-explicit", cfg.Key())

	cfg.Provider = "ollama"
	cfg.APIKey = ""
	t.Setenv("QUERYLENS_API_KEY", "")
	require.NoError(t, cfg.ApplyEnv())
	assert.Empty(t, cfg.Key())
}

func TestSaveLeavesEnvironmentKeysOut(t *testing.T) {
	dir := isolate(t)
	t.Setenv("QUERYLENS_API_KEY", "sk-explicit")
	t.Setenv("GROQ_API_KEY", "gsk-env")

	cfg := DefaultConfig()
	cfg.Provider = "groq"
	require.NoError(t, cfg.ApplyEnv())
	require.NoError(t, cfg.Save())

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "sk-explicit")
	assert.NotContains(t, string(data), "gsk-env")
	assert.NotContains(t, string(data), "api_key")
}

func TestConfigDirPrecedence(t *testing.T) {
	isolate(t)
	t.Setenv("QUERYLENS_CONFIG_DIR", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "querylens"), dir)

	SetDir("/pinned")
	t.Cleanup(func() { SetDir("") })
	dir, err = ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/pinned", dir)
}

func TestDebounceIntervalFallback(t *testing.T) {
	cfg := &Config{Debounce: "soon"}
	assert.Equal(t, DefaultDebounce, cfg.DebounceInterval())

	cfg.Debounce = "-1s"
	assert.Equal(t, DefaultDebounce, cfg.DebounceInterval())
}

func TestParseEnvironment(t *testing.T) {
	assert.Equal(t, Production, ParseEnvironment("production"))
	assert.Equal(t, Development, ParseEnvironment("staging"))
	assert.Equal(t, Development, ParseEnvironment(""))
}

func TestGetProvider(t *testing.T) {
	p := GetProvider("gemini")
	require.NotNil(t, p)
	assert.Equal(t, "GEMINI_API_KEY", p.KeyEnv)
	assert.Nil(t, GetProvider("nope"))
	assert.Equal(t, 0, ProviderIndex("nope"))
	assert.Equal(t, "ollama", Providers[ProviderIndex("ollama")].ID)
}
