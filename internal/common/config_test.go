package common

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auspexlabs/auspex/internal/interfaces"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "auspex.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, 8585, cfg.Server.Port)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, 3, cfg.Signals.ConfidenceThreshold)
	assert.Equal(t, 24*time.Hour, cfg.Registry.CacheTTL)
	assert.Equal(t, "preprocessed_articles.json", cfg.Pipeline.CleanedFile)
	assert.Equal(t, "analyzed_articles.json", cfg.Pipeline.AnalyzedFile)
	assert.Len(t, cfg.Registry.Sources, 2)
}

func TestLoadFromFiles_NoFilesUsesDefaults(t *testing.T) {
	cfg, err := LoadFromFiles()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadFromFiles_FileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
[server]
port = 9999

[llm]
provider = "claude"

[signals]
confidence_threshold = 4
`)

	cfg, err := LoadFromFiles(path)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, 4, cfg.Signals.ConfidenceThreshold)
	// Untouched sections keep defaults
	assert.Equal(t, "localhost", cfg.Server.Host)
}

func TestLoadFromFiles_LaterFileWins(t *testing.T) {
	first := writeConfigFile(t, "[server]\nport = 7000\n")
	second := writeConfigFile(t, "[server]\nport = 8000\n")

	cfg, err := LoadFromFiles(first, second)
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	_, err := LoadFromFiles("/nonexistent/auspex.toml")
	assert.Error(t, err)
}

func TestLoadFromFiles_RejectsInvalidProvider(t *testing.T) {
	path := writeConfigFile(t, "[llm]\nprovider = \"skynet\"\n")

	_, err := LoadFromFiles(path)
	assert.Error(t, err)
}

func TestLoadFromFiles_RejectsThresholdOutOfRange(t *testing.T) {
	path := writeConfigFile(t, "[signals]\nconfidence_threshold = 7\n")

	_, err := LoadFromFiles(path)
	assert.Error(t, err)
}

func TestLoadFromFiles_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "[server]\nport = 7000\n")
	t.Setenv("AUSPEX_SERVER_PORT", "7500")
	t.Setenv("AUSPEX_LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := LoadFromFiles(path)
	require.NoError(t, err)

	assert.Equal(t, 7500, cfg.Server.Port)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "env-key", cfg.Gemini.APIKey)
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := NewDefaultConfig()

	ApplyFlagOverrides(cfg, 9000, "0.0.0.0")
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)

	// Zero values leave config untouched
	ApplyFlagOverrides(cfg, 0, "")
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

// fixedKV returns canned values for ResolveAPIKey tests.
type fixedKV struct {
	values map[string]string
}

func (f *fixedKV) Get(ctx context.Context, key string) (string, error) {
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return "", interfaces.ErrKeyNotFound
}

func (f *fixedKV) Set(ctx context.Context, key, value, description string) error { return nil }
func (f *fixedKV) Delete(ctx context.Context, key string) error                  { return nil }
func (f *fixedKV) GetAll(ctx context.Context) (map[string]string, error)         { return f.values, nil }
func (f *fixedKV) ListByPrefix(ctx context.Context, prefix string) ([]interfaces.KeyValuePair, error) {
	return nil, nil
}

func TestResolveAPIKey_StorageFirst(t *testing.T) {
	kv := &fixedKV{values: map[string]string{"news_api_key": "from-kv"}}

	key, err := ResolveAPIKey(context.Background(), kv, "news_api_key", "from-config")
	require.NoError(t, err)
	assert.Equal(t, "from-kv", key)
}

func TestResolveAPIKey_ConfigFallback(t *testing.T) {
	kv := &fixedKV{values: map[string]string{}}

	key, err := ResolveAPIKey(context.Background(), kv, "news_api_key", "from-config")
	require.NoError(t, err)
	assert.Equal(t, "from-config", key)
}

func TestResolveAPIKey_Missing(t *testing.T) {
	kv := &fixedKV{values: map[string]string{}}

	_, err := ResolveAPIKey(context.Background(), kv, "news_api_key", "")
	assert.Error(t, err)
}
