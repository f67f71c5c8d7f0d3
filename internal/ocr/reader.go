// Package ocr provides the text-recognition collaborators that feed the
// receipt pipeline: a local Tesseract engine and an LLM-vision reader.
// Both produce the same thing the pipeline consumes, an ordered list of
// UTF-8 text lines in reading order.
package ocr

import (
	"context"
	"strings"
)

// Reader turns a receipt image into ordered text lines. Implementations
// make no promise about line content; cleaning it up is the pipeline's
// job.
type Reader interface {
	Lines(ctx context.Context, imageData []byte, mimeType string) ([]string, error)
}

// splitLines breaks recognized text into trimmed, non-empty lines,
// preserving reading order.
func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
