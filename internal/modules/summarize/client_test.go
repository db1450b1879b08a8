package summarize

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aisumm/core/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModelClientRequiresAPIKey(t *testing.T) {
	_, err := NewModelClient(config.AIProvider{Type: "openai-compatible"})

	assert.Error(t, err)
}

func TestNewModelClientRejectsUnknownProvider(t *testing.T) {
	_, err := NewModelClient(config.AIProvider{Type: "carrier-pigeon", APIKey: "k"})

	assert.Error(t, err)
}

func TestOpenAIClientComplete(t *testing.T) {
	var gotBody struct {
		Model       string  `json:"model"`
		MaxTokens   int     `json:"max_tokens"`
		Temperature float64 `json:"temperature"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{"content": "  A summary. Keywords: a, b  "}},
			},
		})
	}))
	t.Cleanup(srv.Close)

	client, err := NewModelClient(config.AIProvider{
		Type:     "openai-compatible",
		APIKey:   "test-key",
		Endpoint: srv.URL,
		Model:    "test-model",
	})
	require.NoError(t, err)

	raw, err := client.Complete(context.Background(), "some article text")

	require.NoError(t, err)
	assert.Equal(t, "A summary. Keywords: a, b", raw)

	assert.Equal(t, "test-model", gotBody.Model)
	assert.Equal(t, maxCompletionTokens, gotBody.MaxTokens)
	assert.InDelta(t, completionTemperature, gotBody.Temperature, 0.001)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, "user", gotBody.Messages[1].Role)
	assert.Contains(t, gotBody.Messages[1].Content, "some article text")
}

func TestOpenAIClientCompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	client, err := NewModelClient(config.AIProvider{
		APIKey:   "test-key",
		Endpoint: srv.URL,
	})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "text")

	assert.ErrorIs(t, err, ErrModelCall)
}

func TestNormalizeOpenAIBaseURL(t *testing.T) {
	assert.Equal(t, "https://api.together.xyz/v1", normalizeOpenAIBaseURL("https://api.together.xyz"))
	assert.Equal(t, "https://api.together.xyz/v1", normalizeOpenAIBaseURL("https://api.together.xyz/v1"))
	assert.Equal(t, "https://api.together.xyz/v1", normalizeOpenAIBaseURL("https://api.together.xyz/v1/"))
}
