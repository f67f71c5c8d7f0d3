package ocr

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rezonia/receipt-processor/internal/llm"
)

// Vision reads receipts with a multimodal LLM instead of a local OCR
// engine. Useful where Tesseract is not installed or the photo quality
// defeats it. Safe for concurrent use.
type Vision struct {
	client *llm.Client
	model  string
}

// VisionOption configures the vision reader.
type VisionOption func(*Vision)

// WithVisionModel overrides the client's default model.
func WithVisionModel(model string) VisionOption {
	return func(v *Vision) {
		v.model = model
	}
}

// NewVision creates a vision reader over an LLM client. Without an
// explicit model it transcribes with llm.ModelGeminiFlash.
func NewVision(client *llm.Client, opts ...VisionOption) *Vision {
	v := &Vision{client: client, model: llm.ModelGeminiFlash}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Lines asks the model to transcribe the receipt line by line and parses
// the JSON array it replies with.
func (v *Vision) Lines(ctx context.Context, imageData []byte, mimeType string) ([]string, error) {
	if mimeType == "" {
		mimeType = "image/png"
	}

	resp, err := v.client.ChatWithImage(ctx, v.model,
		llm.SystemPromptLineReader, llm.UserPromptLineReading,
		imageData, mimeType)
	if err != nil {
		return nil, fmt.Errorf("vision OCR: %w", err)
	}

	var lines []string
	if err := json.Unmarshal([]byte(llm.ExtractJSON(resp)), &lines); err != nil {
		return nil, fmt.Errorf("vision OCR: unexpected response shape: %w", err)
	}
	return lines, nil
}
