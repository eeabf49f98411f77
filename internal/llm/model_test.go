package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIModelGenerate(t *testing.T) {
	var gotReq completionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_, err := w.Write([]byte(`{"choices":[{"text":" ok"}]}`))
		require.NoError(t, err)
	}))
	defer server.Close()

	m := &apiModel{
		name:       "gpt2",
		baseURL:    server.URL,
		apiKey:     "test-key",
		tokenizer:  runeTokenizer{},
		httpClient: server.Client(),
	}

	input := runeTokenizer{}.Encode("hello")
	out, err := m.Generate(context.Background(), input, len(input)+10, 0)
	require.NoError(t, err)

	assert.Equal(t, "hello", gotReq.Prompt)
	assert.Equal(t, 10, gotReq.MaxTokens)
	assert.Equal(t, 1, gotReq.N)
	assert.Equal(t, "hello ok", runeTokenizer{}.Decode(out))
}

func TestAPIModelGenerateNothingRequested(t *testing.T) {
	m := &apiModel{tokenizer: runeTokenizer{}}

	input := runeTokenizer{}.Encode("hi")
	out, err := m.Generate(context.Background(), input, len(input), 0)
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestAPIModelGenerateHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	m := &apiModel{
		name:       "nope",
		baseURL:    server.URL,
		tokenizer:  runeTokenizer{},
		httpClient: server.Client(),
	}

	_, err := m.Generate(context.Background(), []int{1}, 5, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}
