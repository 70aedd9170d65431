package config

import (
	"strings"

	apperrors "github.com/acommit/acommit/internal/pkg/errors"
)

// Fragment is a partially filled record of raw values from a single source.
// Empty strings mean the source did not supply the value; validity is only
// enforced on the merged Selection, never on a fragment.
type Fragment struct {
	GeminiKey string
	OllamaURL string
	OpenAIURL string
	OpenAIKey string
	Model     string
	Verbose   bool
}

// Flags holds everything extracted from the command line: the provider
// fragment plus the control flags that steer the run itself.
type Flags struct {
	Fragment

	ConfigPath    string
	Provider      string
	Setup         bool
	ExampleConfig bool
	Help          bool
	Version       bool
}

// valueFlags maps every flag (and alias) that consumes a value to the
// canonical flag name.
var valueFlags = map[string]string{
	"--gemini-key": "--gemini-key",
	"-gk":          "--gemini-key",
	"--ollama-url": "--ollama-url",
	"-ou":          "--ollama-url",
	"--openai":     "--openai",
	"--openai-key": "--openai-key",
	"-ok":          "--openai-key",
	"--model":      "--model",
	"-m":           "--model",
	"--config":     "--config",
	"--provider":   "--provider",
}

// boolFlags maps every flag (and alias) that takes no value to the canonical
// flag name.
var boolFlags = map[string]string{
	"--verbose":        "--verbose",
	"--setup":          "--setup",
	"--example-config": "--example-config",
	"--help":           "--help",
	"-h":               "--help",
	"--version":        "--version",
}

// ParseArgs scans command-line arguments into a Flags record.
// Both "--flag=value" and "--flag value" forms are accepted. Unknown flags
// abort with an unknown-argument error; bare tokens are ignored so stray
// positional input is never fatal.
func ParseArgs(args []string) (*Flags, error) {
	flags := &Flags{}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if key, value, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(key, "-") {
			name, known := valueFlags[key]
			if !known {
				if bname, bknown := boolFlags[key]; bknown {
					// "--verbose=x" style is tolerated; the value is discarded.
					flags.setBool(bname)
					continue
				}
				return nil, apperrors.NewUnknownArgumentError(key)
			}
			if err := flags.setValue(name, value); err != nil {
				return nil, err
			}
			continue
		}

		if name, ok := boolFlags[arg]; ok {
			flags.setBool(name)
			continue
		}

		if name, ok := valueFlags[arg]; ok {
			if i+1 >= len(args) {
				return nil, apperrors.New(apperrors.ErrUnknownArgument,
					"missing value for "+arg).
					WithSuggestion("Pass the flag as '" + name + " <value>' or '" + name + "=<value>'")
			}
			i++
			if err := flags.setValue(name, args[i]); err != nil {
				return nil, err
			}
			continue
		}

		if strings.HasPrefix(arg, "-") {
			return nil, apperrors.NewUnknownArgumentError(arg)
		}

		// Bare token: ignored.
	}

	return flags, nil
}

func (f *Flags) setValue(name, value string) error {
	switch name {
	case "--gemini-key":
		f.GeminiKey = value
	case "--ollama-url":
		f.OllamaURL = value
	case "--openai":
		f.OpenAIURL = value
	case "--openai-key":
		f.OpenAIKey = value
	case "--model":
		f.Model = value
	case "--config":
		f.ConfigPath = value
	case "--provider":
		f.Provider = value
	}
	return nil
}

func (f *Flags) setBool(name string) {
	switch name {
	case "--verbose":
		f.Verbose = true
	case "--setup":
		f.Setup = true
	case "--example-config":
		f.ExampleConfig = true
	case "--help":
		f.Help = true
	case "--version":
		f.Version = true
	}
}
