package config

import (
	apperrors "github.com/acommit/acommit/internal/pkg/errors"
)

// Resolve merges the command line, the config file, and the environment into
// exactly one provider Selection.
//
// Selection precedence, highest first:
//  1. CLI flags that name a provider: --openai outranks --ollama-url, which
//     outranks --gemini-key. When several are passed at once the higher
//     ranked flag wins; this is deliberate and never an error.
//  2. The config file, with --provider overriding its default_provider.
//  3. GEMINI_API_KEY in the environment.
//  4. Ollama at the default local URL.
//
// Within each provider's fields, CLI > config file > environment > built-in
// default applies independently per field.
func Resolve(flags *Flags, file *FileConfig, env *Fragment) (Selection, error) {
	if flags == nil {
		flags = &Flags{}
	}
	if env == nil {
		env = &Fragment{}
	}

	switch {
	case flags.OpenAIURL != "":
		return resolveOpenAI(flags, file, env, flags.OpenAIURL), nil

	case flags.OllamaURL != "":
		return resolveOllama(flags, file, flags.OllamaURL), nil

	case flags.GeminiKey != "":
		return resolveGemini(flags, file, flags.GeminiKey)
	}

	if file != nil {
		name := firstNonEmpty(flags.Provider, file.DefaultProvider)
		if name == "" {
			return nil, apperrors.New(apperrors.ErrInvalidConfig,
				"config file does not set default_provider and no --provider was given")
		}
		switch name {
		case ProviderGemini:
			return resolveGemini(flags, file, firstNonEmpty(flags.GeminiKey, file.Gemini.APIKey, env.GeminiKey))
		case ProviderOllama:
			return resolveOllama(flags, file, firstNonEmpty(flags.OllamaURL, file.Ollama.URL, DefaultOllamaURL)), nil
		case ProviderOpenAI:
			return resolveOpenAI(flags, file, env, firstNonEmpty(flags.OpenAIURL, file.OpenAI.URL, DefaultOpenAIURL)), nil
		default:
			return nil, apperrors.NewUnknownProviderError(name)
		}
	}

	if flags.Provider != "" {
		return nil, apperrors.New(apperrors.ErrInvalidConfig,
			"--provider requires a config file").
			WithSuggestion("Create acommit.json (see --example-config) or pass a provider flag directly")
	}

	if env.GeminiKey != "" {
		return resolveGemini(flags, file, env.GeminiKey)
	}

	return resolveOllama(flags, file, DefaultOllamaURL), nil
}

// Verbose merges the verbose flag across sources: the CLI flag or the config
// file's flag enables it.
func Verbose(flags *Flags, file *FileConfig) bool {
	if flags != nil && flags.Verbose {
		return true
	}
	return file != nil && file.Verbose
}

func resolveGemini(flags *Flags, file *FileConfig, apiKey string) (Selection, error) {
	if apiKey == "" {
		return nil, apperrors.NewMissingAPIKeyError(ProviderGemini)
	}

	var fileModel string
	if file != nil {
		fileModel = file.Gemini.Model
	}

	return Gemini{
		APIKey: apiKey,
		Model:  firstNonEmpty(flags.Model, fileModel, DefaultGeminiModel),
	}, nil
}

func resolveOllama(flags *Flags, file *FileConfig, baseURL string) Selection {
	var fileModel string
	if file != nil {
		fileModel = file.Ollama.Model
	}

	return Ollama{
		BaseURL: baseURL,
		Model:   firstNonEmpty(flags.Model, fileModel, DefaultOllamaModel),
	}
}

func resolveOpenAI(flags *Flags, file *FileConfig, env *Fragment, baseURL string) Selection {
	var fileModel, fileKey string
	if file != nil {
		fileModel = file.OpenAI.Model
		fileKey = file.OpenAI.APIKey
	}

	return OpenAI{
		BaseURL: baseURL,
		// The key stays empty for endpoints that require no auth.
		APIKey: firstNonEmpty(flags.OpenAIKey, fileKey, env.OpenAIKey),
		Model:  firstNonEmpty(flags.Model, fileModel, DefaultOpenAIModel),
	}
}

// firstNonEmpty returns the first value a source actually supplied, so each
// field's precedence chain is a single ordered lookup.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
