package config

import "os"

// Environment variable names read during resolution.
const (
	// EnvGeminiAPIKey selects Gemini as a fallback provider when set.
	EnvGeminiAPIKey = "GEMINI_API_KEY"

	// EnvOpenAIAPIKey supplies the OpenAI-compatible key when no flag or
	// config file value is present.
	EnvOpenAIAPIKey = "OPENAI_API_KEY"

	// EnvConfigPath points at the config file to load.
	EnvConfigPath = "ACOMMIT_CONFIG"
)

// EnvFragment reads the environment into a raw fragment.
func EnvFragment() *Fragment {
	return &Fragment{
		GeminiKey: os.Getenv(EnvGeminiAPIKey),
		OpenAIKey: os.Getenv(EnvOpenAIAPIKey),
	}
}
