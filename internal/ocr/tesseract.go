package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// DefaultLanguages matches the receipts this service targets: Ukrainian
// text with Latin product names mixed in.
const DefaultLanguages = "ukr+eng"

// Tesseract recognizes text with a local Tesseract install via gosseract.
// It holds a native handle: Close it when done, and do not share one
// instance across concurrent requests.
type Tesseract struct {
	client *gosseract.Client
}

// NewTesseract creates a Tesseract reader. languages is a "+"-separated
// Tesseract language list; empty means DefaultLanguages.
func NewTesseract(languages string) (*Tesseract, error) {
	if languages == "" {
		languages = DefaultLanguages
	}
	client := gosseract.NewClient()
	if err := client.SetLanguage(languages); err != nil {
		client.Close()
		return nil, fmt.Errorf("set OCR language: %w", err)
	}
	return &Tesseract{client: client}, nil
}

// Close releases the native Tesseract resources.
func (t *Tesseract) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}

// Lines recognizes the image and returns its text lines in reading
// order. Tesseract runs locally, so ctx is not consulted.
func (t *Tesseract) Lines(_ context.Context, imageData []byte, _ string) ([]string, error) {
	if err := t.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}
	text, err := t.client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}
	return splitLines(text), nil
}
