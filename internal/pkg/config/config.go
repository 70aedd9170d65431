// Package config provides configuration loading and provider resolution for acommit.
package config

// Provider name constants for the supported backends.
const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

// Built-in defaults applied when no source supplies a value.
const (
	// DefaultGeminiModel is the default model for the Gemini backend.
	DefaultGeminiModel = "gemini-2.5-flash-lite"

	// DefaultOllamaModel is the default model for the Ollama backend.
	DefaultOllamaModel = "llama3.2:3b"

	// DefaultOllamaURL is the default base URL for a local Ollama server.
	DefaultOllamaURL = "http://localhost:11434"

	// DefaultOpenAIModel is the default model for OpenAI-compatible backends.
	DefaultOpenAIModel = "gpt-3.5-turbo"

	// DefaultOpenAIURL is the default base URL for OpenAI-compatible backends
	// when a config file selects the provider without naming an endpoint.
	DefaultOpenAIURL = "https://api.openai.com/v1"
)

// Selection is the fully resolved provider choice for one invocation.
// Exactly one concrete variant exists per backend; constructing a Selection
// through Resolve guarantees its fields are populated and valid.
type Selection interface {
	// Provider returns the canonical provider name.
	Provider() string

	sealed()
}

// Gemini selects the Google generative-content API.
type Gemini struct {
	APIKey string
	Model  string
}

// Ollama selects a local-inference Ollama server. No authentication.
type Ollama struct {
	BaseURL string
	Model   string
}

// OpenAI selects an OpenAI-compatible chat-completion API.
// An empty APIKey means no Authorization header is sent.
type OpenAI struct {
	BaseURL string
	APIKey  string
	Model   string
}

func (Gemini) Provider() string { return ProviderGemini }
func (Ollama) Provider() string { return ProviderOllama }
func (OpenAI) Provider() string { return ProviderOpenAI }

func (Gemini) sealed() {}
func (Ollama) sealed() {}
func (OpenAI) sealed() {}

// FileConfig is the declarative config file record (acommit.json).
// Its absence is not an error; resolution falls through to other sources.
type FileConfig struct {
	DefaultProvider string       `mapstructure:"default_provider"`
	Verbose         bool         `mapstructure:"verbose"`
	Gemini          GeminiBlock  `mapstructure:"gemini"`
	Ollama          OllamaBlock  `mapstructure:"ollama"`
	OpenAI          OpenAIBlock  `mapstructure:"openai"`
}

// GeminiBlock holds the per-provider settings for Gemini.
type GeminiBlock struct {
	Model  string `mapstructure:"model"`
	APIKey string `mapstructure:"api_key"`
}

// OllamaBlock holds the per-provider settings for Ollama.
type OllamaBlock struct {
	Model string `mapstructure:"model"`
	URL   string `mapstructure:"url"`
}

// OpenAIBlock holds the per-provider settings for OpenAI-compatible backends.
type OpenAIBlock struct {
	Model  string `mapstructure:"model"`
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
}

// KnownProvider reports whether name is one of the supported provider names.
func KnownProvider(name string) bool {
	switch name {
	case ProviderGemini, ProviderOllama, ProviderOpenAI:
		return true
	}
	return false
}
