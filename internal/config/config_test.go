package config

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.False(t, cfg.AutoPush)
	assert.Empty(t, cfg.CustomPrompt)
}

func TestUnmarshalMergesOverDefaults(t *testing.T) {
	// Partial file: only auto_push set; model must keep its default
	data := []byte("auto_push = true\n")

	cfg := DefaultConfig()
	require.NoError(t, toml.Unmarshal(data, cfg))

	assert.True(t, cfg.AutoPush)
	assert.Equal(t, DefaultModel, cfg.Model)
}

func TestUnmarshalUserValuesWin(t *testing.T) {
	data := []byte(`
api_key = "sk-or-abc"
model = "anthropic/claude-3.5-haiku"
custom_prompt = "Summarize:\n%s"
`)

	cfg := DefaultConfig()
	require.NoError(t, toml.Unmarshal(data, cfg))

	assert.Equal(t, "sk-or-abc", cfg.APIKey)
	assert.Equal(t, "anthropic/claude-3.5-haiku", cfg.Model)
	assert.Equal(t, "Summarize:\n%s", cfg.CustomPrompt)
}

func TestResolveAPIKeyPrecedence(t *testing.T) {
	t.Run("config value wins over environment", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "from-env")
		cfg := &Config{APIKey: "from-config"}

		key, err := cfg.ResolveAPIKey()
		require.NoError(t, err)
		assert.Equal(t, "from-config", key)
	})

	t.Run("environment fallback", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "from-env")
		cfg := &Config{}

		key, err := cfg.ResolveAPIKey()
		require.NoError(t, err)
		assert.Equal(t, "from-env", key)
	})

	t.Run("missing everywhere", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "")
		cfg := &Config{}

		_, err := cfg.ResolveAPIKey()
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("whitespace-only values do not count", func(t *testing.T) {
		t.Setenv(EnvAPIKey, "  ")
		cfg := &Config{APIKey: "\t"}

		_, err := cfg.ResolveAPIKey()
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})
}
