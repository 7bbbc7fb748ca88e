package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// EnvAPIKey is the environment fallback consulted when the config file
// carries no api_key.
const EnvAPIKey = "OPENROUTER_API_KEY"

// DefaultModel is the model used when the config does not override it.
const DefaultModel = "google/gemini-2.0-flash-001"

// ErrMissingAPIKey is returned when neither the config file nor the
// environment provides a credential.
var ErrMissingAPIKey = errors.New(
	"API key not found: set api_key in the config file or export " + EnvAPIKey)

type Config struct {
	// APIKey overrides the environment credential when set
	APIKey string `toml:"api_key"`
	// Model is the chat-completion model identifier
	Model string `toml:"model"`
	// AutoPush triggers a push after every successful commit
	AutoPush bool `toml:"auto_push"`
	// CustomPrompt replaces the default prompt template verbatim.
	// Must contain exactly one %s, substituted with the diff.
	CustomPrompt string `toml:"custom_prompt"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:    DefaultModel,
		AutoPush: false,
	}
}

// Path returns the location of the config file
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "comet.toml"), nil
}

// Load reads the config file, merging user values over defaults.
// A missing file yields defaults and writes them out best-effort.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			_ = cfg.Save() // Best effort save
			return cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ResolveAPIKey returns the credential to use for the API call.
// Precedence: config value first, environment variable second.
func (c *Config) ResolveAPIKey() (string, error) {
	if key := strings.TrimSpace(c.APIKey); key != "" {
		return key, nil
	}
	if key := strings.TrimSpace(os.Getenv(EnvAPIKey)); key != "" {
		return key, nil
	}
	return "", ErrMissingAPIKey
}
