package config

import (
	"os"

	"github.com/spf13/viper"

	apperrors "github.com/acommit/acommit/internal/pkg/errors"
)

// ConfigFileName is the config file discovered in the current directory.
const ConfigFileName = "acommit.json"

// ExampleConfig is the sample config file printed by --example-config.
const ExampleConfig = `{
  "default_provider": "ollama",
  "verbose": false,
  "gemini": {
    "model": "gemini-2.5-flash-lite",
    "api_key": "your-gemini-api-key"
  },
  "ollama": {
    "model": "llama3.2:3b",
    "url": "http://localhost:11434"
  },
  "openai": {
    "model": "gpt-3.5-turbo",
    "url": "https://api.openai.com/v1",
    "api_key": "sk-your-openai-api-key"
  }
}
`

// LocateFile determines which config file to load, in order: the --config
// flag, the ACOMMIT_CONFIG environment variable, then acommit.json in the
// current directory. explicit is true when the path was named by flag or
// environment, in which case a missing file is an error rather than a
// fall-through.
func LocateFile(flagPath string) (path string, explicit bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		return envPath, true
	}
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName, false
	}
	return "", false
}

// LoadFile loads and validates the config file at path. A missing discovered
// file yields (nil, nil); a missing or malformed explicitly named file is a
// fatal configuration error. A malformed discovered file is also fatal so a
// broken file is never silently ignored.
func LoadFile(path string, explicit bool) (*FileConfig, error) {
	if path == "" {
		return nil, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		if !explicit && os.IsNotExist(err) {
			// Discovered file vanished between Stat and read.
			return nil, nil
		}
		return nil, apperrors.NewConfigFileError(path, err)
	}

	var cfg FileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperrors.NewConfigFileError(path, err)
	}

	if cfg.DefaultProvider != "" && !KnownProvider(cfg.DefaultProvider) {
		return nil, apperrors.NewUnknownProviderError(cfg.DefaultProvider)
	}

	return &cfg, nil
}

// WriteFile persists a config file record to path as JSON. Used by the
// setup wizard; never called during normal resolution.
func WriteFile(path string, cfg *FileConfig) error {
	v := viper.New()
	v.SetConfigType("json")

	v.Set("default_provider", cfg.DefaultProvider)
	v.Set("verbose", cfg.Verbose)
	if cfg.Gemini.Model != "" {
		v.Set("gemini.model", cfg.Gemini.Model)
	}
	if cfg.Gemini.APIKey != "" {
		v.Set("gemini.api_key", cfg.Gemini.APIKey)
	}
	if cfg.Ollama.Model != "" {
		v.Set("ollama.model", cfg.Ollama.Model)
	}
	if cfg.Ollama.URL != "" {
		v.Set("ollama.url", cfg.Ollama.URL)
	}
	if cfg.OpenAI.Model != "" {
		v.Set("openai.model", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.URL != "" {
		v.Set("openai.url", cfg.OpenAI.URL)
	}
	if cfg.OpenAI.APIKey != "" {
		v.Set("openai.api_key", cfg.OpenAI.APIKey)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return apperrors.Wrap(err, apperrors.ErrFileSystemError, "failed to write config file")
	}

	return nil
}
