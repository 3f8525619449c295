package article

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

func completionResponse(content string) string {
	return `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "gpt-4o-mini",
		"choices": [
			{
				"index": 0,
				"message": {"role": "assistant", "content": ` + jsonString(content) + `},
				"finish_reason": "stop"
			}
		]
	}`
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestSynthesize(t *testing.T) {
	const transcript = "Today we talk about writing Go services that stay small."

	var got chatRequest
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionResponse("# Generated Article\n\nBody text.")))
	}))
	defer server.Close()

	s := NewSynthesizerWithBaseURL("test-key", "gpt-4o-mini", server.URL+"/v1")
	content, err := s.Synthesize(context.Background(), transcript)
	require.NoError(t, err)
	assert.Equal(t, "# Generated Article\n\nBody text.", content)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, 1500, got.MaxTokens)
	assert.InDelta(t, 0.7, got.Temperature, 0.001)

	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "You are an expert blog writer.", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Contains(t, got.Messages[1].Content, transcript,
		"prompt must embed the transcript verbatim")
	assert.Contains(t, got.Messages[1].Content, "A catchy title")
	assert.Contains(t, got.Messages[1].Content, "Conclusion")
}

func TestSynthesizeProviderErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			wantErr: ErrRateLimited,
		},
		{
			name:    "bad credentials",
			status:  http.StatusUnauthorized,
			wantErr: ErrAuthFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"error": {"message": "provider says no", "type": "api_error"}}`))
			}))
			defer server.Close()

			s := NewSynthesizerWithBaseURL("test-key", "gpt-4o-mini", server.URL+"/v1")
			_, err := s.Synthesize(context.Background(), "some transcript")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestSynthesizeOtherProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "boom", "type": "api_error"}}`))
	}))
	defer server.Close()

	s := NewSynthesizerWithBaseURL("test-key", "gpt-4o-mini", server.URL+"/v1")
	_, err := s.Synthesize(context.Background(), "some transcript")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrRateLimited))
	assert.False(t, errors.Is(err, ErrAuthFailed))
}

func TestSynthesizeTrimsWhitespace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionResponse("\n\nArticle body\n\n")))
	}))
	defer server.Close()

	s := NewSynthesizerWithBaseURL("test-key", "gpt-4o-mini", server.URL+"/v1")
	content, err := s.Synthesize(context.Background(), "transcript")
	require.NoError(t, err)
	assert.Equal(t, "Article body", content)
	assert.False(t, strings.HasPrefix(content, "\n"))
}
