package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acommit/acommit/internal/pkg/config"
)

func TestNewGenerator_Dispatch(t *testing.T) {
	gen, err := NewGenerator(config.Gemini{APIKey: "k", Model: "m"})
	require.NoError(t, err)
	assert.IsType(t, &GeminiGenerator{}, gen)
	assert.Equal(t, config.ProviderGemini, gen.Name())

	gen, err = NewGenerator(config.Ollama{BaseURL: "http://localhost:11434", Model: "m"})
	require.NoError(t, err)
	assert.IsType(t, &OllamaGenerator{}, gen)
	assert.Equal(t, config.ProviderOllama, gen.Name())

	gen, err = NewGenerator(config.OpenAI{BaseURL: "http://localhost:8080/v1", Model: "m"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIGenerator{}, gen)
	assert.Equal(t, config.ProviderOpenAI, gen.Name())
}

type staticGenerator struct {
	message string
}

func (g *staticGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.message, nil
}

func (g *staticGenerator) Name() string { return "static" }

func TestInstrument_PassesThrough(t *testing.T) {
	inner := &staticGenerator{message: "feat: wrapped"}
	gen := Instrument(inner, config.Ollama{BaseURL: "http://localhost:11434", Model: "m"})

	assert.Equal(t, "static", gen.Name())

	msg, err := gen.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "feat: wrapped", msg)
}

func TestGenerate_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(ollamaResponse{Response: "docs: update readme"})
	}))
	defer server.Close()

	msg, err := Generate(context.Background(), config.Ollama{
		BaseURL: server.URL,
		Model:   "llama3.2:3b",
	}, "prompt")
	require.NoError(t, err)
	assert.Equal(t, "docs: update readme", msg)
}

func TestBuildPrompt_IncludesDiff(t *testing.T) {
	prompt := BuildPrompt("M\tmain.go\nA\tparser.go")
	assert.Contains(t, prompt, "M\tmain.go")
	assert.Contains(t, prompt, "A\tparser.go")
	assert.Contains(t, prompt, "conventional commits")
}
