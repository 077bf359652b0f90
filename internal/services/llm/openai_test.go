package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/onegreenvn/campaign-generator-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIGenerate(t *testing.T) {
	var got openAIRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"big_idea\":\"x\"}"}}]}`))
	}))
	defer srv.Close()

	g := NewOpenAIGenerator("sk-test", srv.URL+"/", Options{Temperature: 0.7, MaxTokens: 1000}, 5*time.Second)
	text, err := g.Generate(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, `{"big_idea":"x"}`, text)

	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.InDelta(t, 0.7, got.Temperature, 0.0001)
	assert.Equal(t, 1000, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Content)
}

func TestOpenAIGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "http error with message",
			status:  http.StatusUnauthorized,
			body:    `{"error":{"message":"Incorrect API key provided"}}`,
			wantErr: "OpenAI API error: 401 Unauthorized: Incorrect API key provided",
		},
		{
			name:    "http error without body",
			status:  http.StatusBadGateway,
			body:    `upstream down`,
			wantErr: "OpenAI API error: 502 Bad Gateway",
		},
		{
			name:    "no choices",
			status:  http.StatusOK,
			body:    `{"choices":[]}`,
			wantErr: ErrEmptyCompletion.Error(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			g := NewOpenAIGenerator("sk-test", srv.URL, Options{}, 5*time.Second)
			_, err := g.Generate(context.Background(), "s", "u")
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestOpenAIGenerateWithoutKey(t *testing.T) {
	g := NewOpenAIGenerator("", "", Options{}, time.Second)
	_, err := g.Generate(context.Background(), "s", "u")
	assert.Error(t, err)
}

func TestNewSelectsProvider(t *testing.T) {
	g, err := New(context.Background(), &config.Config{LLMProvider: "openai", OpenAIModel: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.Equal(t, "openai:gpt-4o-mini", g.Name())

	_, err = New(context.Background(), &config.Config{LLMProvider: "gemini"})
	assert.Error(t, err, "gemini needs an API key")

	_, err = New(context.Background(), &config.Config{LLMProvider: "claude"})
	assert.Error(t, err)
}
