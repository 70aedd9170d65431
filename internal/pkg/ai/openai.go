package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/acommit/acommit/internal/pkg/config"
	apperrors "github.com/acommit/acommit/internal/pkg/errors"
)

const (
	// openAIMaxTokens caps the completion length; a commit message never
	// needs more.
	openAIMaxTokens = 100

	// openAITemperature is fixed, not configurable.
	openAITemperature = 0.7
)

// OpenAIGenerator implements the Generator interface for OpenAI-compatible
// chat-completion APIs, including local and self-hosted endpoints that
// require no auth. With an empty API key the client sends no Authorization
// header at all.
type OpenAIGenerator struct {
	client  *openai.Client
	baseURL string
	model   string
}

// NewOpenAIGenerator creates an OpenAI-compatible adapter from a resolved
// selection.
func NewOpenAIGenerator(sel config.OpenAI) *OpenAIGenerator {
	baseURL := strings.TrimSuffix(sel.BaseURL, "/")

	clientConfig := openai.DefaultConfig(sel.APIKey)
	clientConfig.BaseURL = baseURL
	clientConfig.HTTPClient = newHTTPClient()

	return &OpenAIGenerator{
		client:  openai.NewClientWithConfig(clientConfig),
		baseURL: baseURL,
		model:   sel.Model,
	}
}

// Name returns the provider name.
func (g *OpenAIGenerator) Name() string {
	return config.ProviderOpenAI
}

// Endpoint returns the URL the adapter posts to.
func (g *OpenAIGenerator) Endpoint() string {
	return g.baseURL + "/chat/completions"
}

// Generate issues a single user-role chat completion and reads the first
// choice's message content. Anything after the first line is discarded.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   openAIMaxTokens,
		Temperature: openAITemperature,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", wrapOpenAIError(err)
	}

	raw := ""
	if len(resp.Choices) > 0 {
		raw = resp.Choices[0].Message.Content
	}

	return Sanitize(raw, true), nil
}

// wrapOpenAIError maps go-openai client errors onto the transport error
// taxonomy.
func wrapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return apperrors.NewAuthenticationError("OpenAI-compatible endpoint")
		default:
			return apperrors.NewProviderError("OpenAI-compatible endpoint", &APIError{
				Provider:   config.ProviderOpenAI,
				StatusCode: apiErr.HTTPStatusCode,
				Message:    apiErr.Message,
			})
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewTimeoutError(err)
	}

	return apperrors.NewNetworkError(err)
}
