package llm

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

const endOfText = "<|endoftext|>"

// tiktokenTokenizer backs the Tokenizer interface with a tiktoken BPE
// encoding resolved from the model name.
type tiktokenTokenizer struct {
	enc *tiktoken.Tiktoken
	eos int
}

func newTiktokenTokenizer(modelName string) (*tiktokenTokenizer, error) {
	enc, err := tiktoken.EncodingForModel(modelName)
	if err != nil {
		// Allow passing an encoding name directly (e.g. "gpt2")
		enc, err = tiktoken.GetEncoding(modelName)
		if err != nil {
			return nil, fmt.Errorf("loading tokenizer for %q: %w", modelName, err)
		}
	}

	eosIDs := enc.Encode(endOfText, []string{"all"}, nil)
	if len(eosIDs) != 1 {
		return nil, fmt.Errorf("tokenizer for %q has no end-of-text token", modelName)
	}

	return &tiktokenTokenizer{enc: enc, eos: eosIDs[0]}, nil
}

func (t *tiktokenTokenizer) Encode(text string) []int {
	return t.enc.Encode(text, nil, nil)
}

func (t *tiktokenTokenizer) Decode(tokens []int) string {
	return t.enc.Decode(tokens)
}

func (t *tiktokenTokenizer) EOSToken() int {
	return t.eos
}
