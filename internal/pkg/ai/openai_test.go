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
	apperrors "github.com/acommit/acommit/internal/pkg/errors"
)

// chatRequest mirrors the fields of the outgoing completion request the
// tests care about.
type chatRequest struct {
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func chatCompletionBody(content string) string {
	b, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	return string(b)
}

func TestOpenAIGenerate_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody chatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatCompletionBody("feat: add openai adapter")))
	}))
	defer server.Close()

	g := NewOpenAIGenerator(config.OpenAI{
		BaseURL: server.URL + "/v1",
		APIKey:  "sk-test",
		Model:   "gpt-4",
	})

	msg, err := g.Generate(context.Background(), "prompt text")
	require.NoError(t, err)

	assert.Equal(t, "feat: add openai adapter", msg)
	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-4", gotBody.Model)
	assert.Equal(t, openAIMaxTokens, gotBody.MaxTokens)
	assert.InDelta(t, openAITemperature, gotBody.Temperature, 0.001)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "user", gotBody.Messages[0].Role)
	assert.Equal(t, "prompt text", gotBody.Messages[0].Content)
}

// Keyless local endpoints must not receive an Authorization header at all.
func TestOpenAIGenerate_NoAuthHeaderWithoutKey(t *testing.T) {
	var sawAuthHeader bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuthHeader = r.Header["Authorization"]
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatCompletionBody("chore: tidy")))
	}))
	defer server.Close()

	g := NewOpenAIGenerator(config.OpenAI{
		BaseURL: server.URL + "/v1",
		Model:   "bitnet-model",
	})

	msg, err := g.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "chore: tidy", msg)
	assert.False(t, sawAuthHeader)
}

func TestOpenAIGenerate_FirstLineOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatCompletionBody("fix: close body\n\nAlso refactors the client.")))
	}))
	defer server.Close()

	g := NewOpenAIGenerator(config.OpenAI{BaseURL: server.URL + "/v1", Model: "gpt-4"})

	msg, err := g.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "fix: close body", msg)
}

func TestOpenAIGenerate_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-test","object":"chat.completion","choices":[]}`))
	}))
	defer server.Close()

	g := NewOpenAIGenerator(config.OpenAI{BaseURL: server.URL + "/v1", Model: "gpt-4"})

	msg, err := g.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, FallbackMessage, msg)
}

func TestOpenAIGenerate_AuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	g := NewOpenAIGenerator(config.OpenAI{
		BaseURL: server.URL + "/v1",
		APIKey:  "sk-bad",
		Model:   "gpt-4",
	})

	_, err := g.Generate(context.Background(), "prompt")
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrAuthenticationFailed, appErr.Code)
}

func TestOpenAIGenerate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"overloaded","type":"server_error"}}`))
	}))
	defer server.Close()

	g := NewOpenAIGenerator(config.OpenAI{BaseURL: server.URL + "/v1", Model: "gpt-4"})

	_, err := g.Generate(context.Background(), "prompt")
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrProviderFailed, appErr.Code)
}

func TestOpenAIGenerate_ConnectionRefused(t *testing.T) {
	g := NewOpenAIGenerator(config.OpenAI{BaseURL: "http://127.0.0.1:1/v1", Model: "gpt-4"})

	_, err := g.Generate(context.Background(), "prompt")
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrNetworkError, appErr.Code)
}

func TestOpenAIGenerator_TrimsTrailingSlash(t *testing.T) {
	g := NewOpenAIGenerator(config.OpenAI{BaseURL: "http://localhost:8080/v1/", Model: "m"})
	assert.Equal(t, "http://localhost:8080/v1/chat/completions", g.Endpoint())
}
