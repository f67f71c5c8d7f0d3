package spell

import (
	"context"
	"fmt"
	"strings"

	"github.com/rezonia/receipt-processor/internal/llm"
)

// LLM corrects lines through an OpenAI-compatible chat model. A network
// or API failure propagates to the pipeline unmasked; there is no retry
// policy here.
type LLM struct {
	client *llm.Client
	model  string
}

// LLMOption configures the LLM speller.
type LLMOption func(*LLM)

// WithModel overrides the client's default model.
func WithModel(model string) LLMOption {
	return func(s *LLM) {
		s.model = model
	}
}

// NewLLM creates an LLM-backed speller.
func NewLLM(client *llm.Client, opts ...LLMOption) *LLM {
	s := &LLM{client: client}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Correct sends one line for correction. The model is instructed to be
// replacement-only; a response that changes the token count is discarded
// in favor of the original line.
func (s *LLM) Correct(ctx context.Context, line string) (string, error) {
	if strings.TrimSpace(line) == "" {
		return line, nil
	}

	out, err := s.client.ChatText(ctx, s.model,
		llm.SystemPromptSpellCorrector,
		fmt.Sprintf(llm.UserPromptSpellCorrection, line))
	if err != nil {
		return "", err
	}

	out = strings.TrimSpace(out)
	if len(strings.Fields(out)) != len(strings.Fields(line)) {
		return line, nil
	}
	return out, nil
}
