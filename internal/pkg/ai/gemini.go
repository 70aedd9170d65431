package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/acommit/acommit/internal/pkg/config"
	apperrors "github.com/acommit/acommit/internal/pkg/errors"
)

// DefaultGeminiBaseURL is the Google generative-content API host.
const DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiGenerator implements the Generator interface for the Gemini
// generative-content API.
type GeminiGenerator struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// Request/response wire types. Every nesting level on the response side is
// optional; absence degrades to the fallback message, not an error.

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content *geminiReplyContent `json:"content"`
}

type geminiReplyContent struct {
	Parts []geminiReplyPart `json:"parts"`
}

type geminiReplyPart struct {
	Text string `json:"text"`
}

// NewGeminiGenerator creates a Gemini adapter from a resolved selection.
func NewGeminiGenerator(sel config.Gemini) *GeminiGenerator {
	return &GeminiGenerator{
		apiKey:     sel.APIKey,
		model:      sel.Model,
		baseURL:    DefaultGeminiBaseURL,
		httpClient: newHTTPClient(),
	}
}

// Name returns the provider name.
func (g *GeminiGenerator) Name() string {
	return config.ProviderGemini
}

// Endpoint returns the per-model URL the adapter posts to, without the key.
func (g *GeminiGenerator) Endpoint() string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
}

// Generate issues a single-turn content request and extracts the first
// candidate's first part. The key travels as a query parameter; the full
// response is treated as one logical line, so embedded newlines are
// collapsed rather than truncated.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	requestURL := g.Endpoint() + "?key=" + url.QueryEscape(g.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", apperrors.NewNetworkError(err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", apperrors.NewNetworkError(err)
	}

	if httpResp.StatusCode != http.StatusOK {
		apiErr := &APIError{
			Provider:   config.ProviderGemini,
			StatusCode: httpResp.StatusCode,
			Message:    string(respBody),
		}
		if httpResp.StatusCode == http.StatusUnauthorized || httpResp.StatusCode == http.StatusForbidden {
			return "", apperrors.NewAuthenticationError("Gemini")
		}
		return "", apperrors.NewProviderError("Gemini", apiErr)
	}

	var resp geminiResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", apperrors.NewProviderError("Gemini", fmt.Errorf("failed to parse response: %w", err))
	}

	return Sanitize(extractGeminiText(&resp), false), nil
}

// extractGeminiText walks the optional nesting of a Gemini response and
// returns the first part's text, or "" when any level is missing.
func extractGeminiText(resp *geminiResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return ""
	}
	return content.Parts[0].Text
}
