// Package cmd contains the CLI command definitions for acommit.
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/acommit/acommit/internal/app"
	"github.com/acommit/acommit/internal/pkg/ai"
	"github.com/acommit/acommit/internal/pkg/config"
	apperrors "github.com/acommit/acommit/internal/pkg/errors"
	"github.com/acommit/acommit/internal/pkg/git"
	"github.com/acommit/acommit/internal/pkg/ui"
)

// runTimeout bounds a whole invocation, generation included.
const runTimeout = 5 * time.Minute

const usageText = `Usage: acommit [OPTIONS]

OPTIONS:
  --gemini-key, -gk <KEY>     Use Gemini API with provided key
  --ollama-url, -ou <URL>     Use Ollama at specified URL
  --openai <URL>              Use OpenAI-compatible API at specified URL
  --openai-key, -ok <KEY>     API key for OpenAI-compatible API (optional)
  --model, -m <MODEL>         Model name to use
  --provider <NAME>           Provider from the config file (gemini, ollama, openai)
  --config <PATH>             Config file to load (default: ./acommit.json)
  --setup                     Run the interactive setup wizard
  --example-config            Print an example config file and exit
  --verbose                   Show debug information
  --version                   Print version information and exit
  --help, -h                  Show this help

Examples:
  acommit                                           # Use GEMINI_API_KEY env var or default Ollama
  acommit --ollama-url http://localhost:11434       # Use local Ollama
  acommit --openai http://localhost:8080/v1 --model bitnet-model
  acommit --openai https://api.openai.com/v1 --openai-key sk-xxx --model gpt-4
  acommit --model llama3.2:3b                       # Specify model
  acommit --gemini-key xyz --model gemini-2.5-flash # Use Gemini with specific key
  acommit -ou http://server:11434 -m codellama:7b   # Remote Ollama with CodeLlama

Environment Variables:
  GEMINI_API_KEY              Used as fallback if no provider specified
  OPENAI_API_KEY              Used for OpenAI-compatible APIs when --openai-key not provided
  ACOMMIT_CONFIG              Config file to load
`

// NewRootCmd creates the root command for the acommit CLI.
//
// Flag parsing is disabled on the cobra side: the flag grammar includes
// multi-character short aliases (-gk, -ou, -ok) that pflag cannot express,
// so the raw arguments are handed to config.ParseArgs instead.
func NewRootCmd(version, commitHash, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:                "acommit",
		Short:              "AI-powered git commit message generator",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := config.ParseArgs(args)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), usageText)
				return err
			}

			switch {
			case flags.Help:
				fmt.Fprint(cmd.OutOrStdout(), usageText)
				return nil
			case flags.Version:
				fmt.Fprintf(cmd.OutOrStdout(), "acommit %s\nCommit: %s\nBuilt:  %s\n", version, commitHash, date)
				return nil
			case flags.ExampleConfig:
				fmt.Fprint(cmd.OutOrStdout(), config.ExampleConfig)
				return nil
			case flags.Setup:
				return ui.RunInteractiveSetup()
			}

			return runCommit(cmd.Context(), flags)
		},
	}

	return rootCmd
}

// runCommit resolves the provider selection and drives the commit workflow.
func runCommit(ctx context.Context, flags *config.Flags) error {
	path, explicit := config.LocateFile(flags.ConfigPath)
	file, err := config.LoadFile(path, explicit)
	if err != nil {
		return err
	}

	env := config.EnvFragment()
	sel, err := config.Resolve(flags, file, env)
	if err != nil {
		return err
	}

	verbose := config.Verbose(flags, file)
	apperrors.SetVerbose(verbose)
	if verbose {
		apperrors.Debug("provider: %s", describeSelection(sel))
		if path != "" {
			apperrors.Debug("config file: %s", path)
		}
	}

	gen, err := ai.NewGenerator(sel)
	if err != nil {
		return err
	}

	service := app.NewCommitService(
		git.NewClient(),
		ai.Instrument(gen, sel),
		ui.NewDefaultManager(true),
	)

	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	return service.Run(ctx)
}

func describeSelection(sel config.Selection) string {
	switch s := sel.(type) {
	case config.Gemini:
		return fmt.Sprintf("gemini (model %s)", s.Model)
	case config.Ollama:
		return fmt.Sprintf("ollama at %s (model %s)", s.BaseURL, s.Model)
	case config.OpenAI:
		auth := "no auth"
		if s.APIKey != "" {
			auth = "with api key"
		}
		return fmt.Sprintf("openai-compatible at %s (model %s, %s)", s.BaseURL, s.Model, auth)
	default:
		return sel.Provider()
	}
}
