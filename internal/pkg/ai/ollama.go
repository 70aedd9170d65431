package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/acommit/acommit/internal/pkg/config"
	apperrors "github.com/acommit/acommit/internal/pkg/errors"
)

// OllamaAPIPath is the non-streaming generate endpoint appended to the
// server's base URL.
const OllamaAPIPath = "/api/generate"

// OllamaGenerator implements the Generator interface for a local Ollama
// server. No authentication is sent.
type OllamaGenerator struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

// NewOllamaGenerator creates an Ollama adapter from a resolved selection.
func NewOllamaGenerator(sel config.Ollama) *OllamaGenerator {
	return &OllamaGenerator{
		baseURL:    sel.BaseURL,
		model:      sel.Model,
		httpClient: newHTTPClient(),
	}
}

// Name returns the provider name.
func (g *OllamaGenerator) Name() string {
	return config.ProviderOllama
}

// Endpoint returns the URL the adapter posts to.
func (g *OllamaGenerator) Endpoint() string {
	return g.baseURL + OllamaAPIPath
}

// Generate issues a non-streaming prompt request and reads the single
// response field. Local models sometimes append explanatory chatter, so
// only the first line survives.
func (g *OllamaGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := ollamaRequest{
		Model:  g.model,
		Prompt: prompt,
		Stream: false,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", wrapOllamaTransportError(err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", apperrors.NewNetworkError(err)
	}

	if httpResp.StatusCode != http.StatusOK {
		apiErr := &APIError{
			Provider:   config.ProviderOllama,
			StatusCode: httpResp.StatusCode,
			Message:    string(respBody),
		}
		appErr := apperrors.NewProviderError("Ollama", apiErr)
		if httpResp.StatusCode == http.StatusNotFound {
			appErr.WithSuggestion("Please ensure the model is pulled using 'ollama pull <model>'")
		}
		return "", appErr
	}

	var resp ollamaResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", apperrors.NewProviderError("Ollama", fmt.Errorf("failed to parse response: %w", err))
	}

	return Sanitize(resp.Response, true), nil
}

// wrapOllamaTransportError gives connection failures to a local server a
// more actionable message.
func wrapOllamaTransportError(err error) error {
	appErr := apperrors.NewNetworkError(err)
	appErr.WithSuggestion("Please ensure Ollama is running using 'ollama serve'")
	return appErr
}
