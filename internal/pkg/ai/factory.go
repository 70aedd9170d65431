package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/acommit/acommit/internal/pkg/config"
	apperrors "github.com/acommit/acommit/internal/pkg/errors"
)

// NewGenerator creates the backend adapter matching the resolved selection.
func NewGenerator(sel config.Selection) (Generator, error) {
	switch s := sel.(type) {
	case config.Gemini:
		return NewGeminiGenerator(s), nil
	case config.Ollama:
		return NewOllamaGenerator(s), nil
	case config.OpenAI:
		return NewOpenAIGenerator(s), nil
	default:
		return nil, fmt.Errorf("unsupported provider selection: %T", sel)
	}
}

// Generate is the generation facade: it dispatches the prompt to the adapter
// matching the selection and returns the adapter's sanitized string
// unchanged. Stateless; one call per program invocation.
func Generate(ctx context.Context, sel config.Selection, prompt string) (string, error) {
	gen, err := NewGenerator(sel)
	if err != nil {
		return "", err
	}
	return Instrument(gen, sel).Generate(ctx, prompt)
}

// Instrument wraps a generator so each call logs a short request ID, the
// endpoint, and the round-trip duration at debug level.
func Instrument(gen Generator, sel config.Selection) Generator {
	return &instrumentedGenerator{
		gen:      gen,
		endpoint: endpointOf(gen, sel),
		model:    modelOf(sel),
	}
}

type instrumentedGenerator struct {
	gen      Generator
	endpoint string
	model    string
}

func (g *instrumentedGenerator) Name() string { return g.gen.Name() }

func (g *instrumentedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	requestID := uuid.NewString()[:8]
	apperrors.LogAPIRequest(requestID, g.gen.Name(), g.endpoint, g.model, len(prompt))
	start := time.Now()

	message, err := g.gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	apperrors.LogAPIResponse(requestID, g.gen.Name(), len(message), time.Since(start))
	return message, nil
}

func endpointOf(gen Generator, sel config.Selection) string {
	type endpointer interface{ Endpoint() string }
	if e, ok := gen.(endpointer); ok {
		return e.Endpoint()
	}
	return sel.Provider()
}

func modelOf(sel config.Selection) string {
	switch s := sel.(type) {
	case config.Gemini:
		return s.Model
	case config.Ollama:
		return s.Model
	case config.OpenAI:
		return s.Model
	default:
		return ""
	}
}
