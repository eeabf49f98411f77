// Package llm wraps a pretrained causal language model behind a single
// prompt-to-completion call.
package llm

import (
	"context"
	"log/slog"
	"strings"
)

// Tokenizer converts between text and model token ids.
type Tokenizer interface {
	Encode(text string) []int
	Decode(tokens []int) string
	// EOSToken returns the end-of-sequence token id, used as padding
	// during generation.
	EOSToken() int
}

// Model generates a continuation of the input token sequence. The returned
// sequence includes the echoed input tokens followed by up to
// maxLength-len(input) newly generated ones.
type Model interface {
	Generate(ctx context.Context, input []int, maxLength int, padID int) ([]int, error)
}

// Registry loads tokenizers and models by name. Load errors for unknown or
// unavailable models propagate untranslated.
type Registry interface {
	LoadTokenizer(name string) (Tokenizer, error)
	LoadModel(name string) (Model, error)
}

// Completer adapts a tokenizer/model pair to a one-call completion
// interface.
type Completer struct {
	tokenizer Tokenizer
	model     Model
	maxLength int
}

// NewCompleter loads the named model and its tokenizer from the registry.
// maxLength bounds prompt length in characters; longer prompts are
// truncated in Complete.
func NewCompleter(registry Registry, modelName string, maxLength int) (*Completer, error) {
	slog.Info("loading completion model", "model", modelName)

	tokenizer, err := registry.LoadTokenizer(modelName)
	if err != nil {
		return nil, err
	}
	model, err := registry.LoadModel(modelName)
	if err != nil {
		return nil, err
	}

	return &Completer{
		tokenizer: tokenizer,
		model:     model,
		maxLength: maxLength,
	}, nil
}

// Complete generates a continuation of prompt with up to maxNewTokens new
// tokens. Only the newly generated span is decoded; the echoed prompt
// tokens are excluded from the result.
func (c *Completer) Complete(ctx context.Context, prompt string, maxNewTokens int) (string, error) {
	if c.maxLength > 0 {
		if runes := []rune(prompt); len(runes) > c.maxLength {
			slog.Warn("truncating prompt", "from", len(runes), "to", c.maxLength)
			prompt = string(runes[:c.maxLength])
		}
	}

	input := c.tokenizer.Encode(prompt)
	padID := c.tokenizer.EOSToken()

	output, err := c.model.Generate(ctx, input, len(input)+maxNewTokens, padID)
	if err != nil {
		return "", err
	}

	if len(output) <= len(input) {
		return "", nil
	}

	completion := c.tokenizer.Decode(output[len(input):])
	return cleanupTokenizationSpaces(completion), nil
}

// tokenization artifacts left around punctuation and contractions
var spaceCleanups = strings.NewReplacer(
	" .", ".",
	" ?", "?",
	" !", "!",
	" ,", ",",
	" ' ", "' ",
	" n't", "n't",
	" 'm", "'m",
	" 's", "'s",
	" 've", "'ve",
	" 're", "'re",
)

func cleanupTokenizationSpaces(text string) string {
	return spaceCleanups.Replace(text)
}
