package llm

import (
	"fmt"
	"net/http"
)

// APIRegistry loads tiktoken tokenizers and models served by an
// OpenAI-compatible completions endpoint.
type APIRegistry struct {
	BaseURL string
	APIKey  string

	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

func (r *APIRegistry) LoadTokenizer(name string) (Tokenizer, error) {
	return newTiktokenTokenizer(name)
}

func (r *APIRegistry) LoadModel(name string) (Model, error) {
	if r.BaseURL == "" {
		return nil, fmt.Errorf("completion URL not set: set OPENADAPT_COMPLETION_URL or add completion_url to config")
	}

	tokenizer, err := newTiktokenTokenizer(name)
	if err != nil {
		return nil, err
	}

	client := r.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &apiModel{
		name:       name,
		baseURL:    r.BaseURL,
		apiKey:     r.APIKey,
		tokenizer:  tokenizer,
		httpClient: client,
	}, nil
}
