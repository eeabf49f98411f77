package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
)

// apiModel runs generation against an OpenAI-compatible completions
// endpoint. Token accounting stays on this side: the prompt tokens are
// decoded to text for the request, and the generated text is re-encoded and
// appended to the input so callers see one full sequence.
type apiModel struct {
	name       string
	baseURL    string
	apiKey     string
	tokenizer  Tokenizer
	httpClient *http.Client
}

type completionRequest struct {
	Model     string `json:"model"`
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
	N         int    `json:"n"`
}

type completionResponse struct {
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
}

func (m *apiModel) Generate(ctx context.Context, input []int, maxLength int, padID int) ([]int, error) {
	maxNew := maxLength - len(input)
	if maxNew <= 0 {
		return slices.Clone(input), nil
	}

	reqBody := completionRequest{
		Model:     m.name,
		Prompt:    m.tokenizer.Decode(input),
		MaxTokens: maxNew,
		N:         1,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", m.baseURL+"/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if m.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+m.apiKey)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling completion API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("completion API error (HTTP %d): %s", resp.StatusCode, string(respBody))
	}

	var apiResp completionResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("parsing completion response: %w", err)
	}
	if len(apiResp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from completion API")
	}

	generated := m.tokenizer.Encode(apiResp.Choices[0].Text)
	if len(generated) > maxNew {
		generated = generated[:maxNew]
	}

	return append(slices.Clone(input), generated...), nil
}
