package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/acommit/acommit/internal/pkg/config"
)

// RunInteractiveSetup runs the setup wizard and writes acommit.json in the
// current directory.
func RunInteractiveSetup() error {
	fmt.Println("Let's set up acommit!")
	fmt.Println()

	var provider string

	err := huh.NewSelect[string]().
		Title("Select default AI provider").
		Options(
			huh.NewOption("Gemini", config.ProviderGemini),
			huh.NewOption("Ollama (local)", config.ProviderOllama),
			huh.NewOption("OpenAI compatible", config.ProviderOpenAI),
		).
		Value(&provider).
		Run()
	if err != nil {
		return err
	}

	var apiKey string
	var model string
	var endpoint string

	switch provider {
	case config.ProviderGemini:
		model = config.DefaultGeminiModel
	case config.ProviderOllama:
		model = config.DefaultOllamaModel
		endpoint = config.DefaultOllamaURL
	case config.ProviderOpenAI:
		model = config.DefaultOpenAIModel
		endpoint = config.DefaultOpenAIURL
	}

	fields := []huh.Field{}

	if provider == config.ProviderGemini {
		fields = append(fields,
			huh.NewInput().
				Title("API Key").
				Description("Gemini API key").
				Value(&apiKey).
				Password(true).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("api key cannot be empty")
					}
					return nil
				}),
		)
	}
	if provider == config.ProviderOpenAI {
		fields = append(fields,
			huh.NewInput().
				Title("API Key").
				Description("Leave empty for keyless local servers").
				Value(&apiKey).
				Password(true),
		)
	}

	fields = append(fields,
		huh.NewInput().
			Title("Model Name").
			Description("Model to use").
			Value(&model).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("model name cannot be empty")
				}
				return nil
			}),
	)

	if provider != config.ProviderGemini {
		fields = append(fields,
			huh.NewInput().
				Title("Base URL").
				Description("Server base URL").
				Value(&endpoint).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("base URL cannot be empty")
					}
					return nil
				}),
		)
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return err
	}

	cfg := &config.FileConfig{DefaultProvider: provider}
	switch provider {
	case config.ProviderGemini:
		cfg.Gemini.APIKey = apiKey
		cfg.Gemini.Model = model
	case config.ProviderOllama:
		cfg.Ollama.URL = endpoint
		cfg.Ollama.Model = model
	case config.ProviderOpenAI:
		cfg.OpenAI.URL = endpoint
		cfg.OpenAI.APIKey = apiKey
		cfg.OpenAI.Model = model
	}

	if err := config.WriteFile(config.ConfigFileName, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", config.ConfigFileName)
	fmt.Println("Setup complete! You can now use acommit.")

	return nil
}
