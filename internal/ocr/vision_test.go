package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rezonia/receipt-processor/internal/llm"
)

func TestNewVision_DefaultModel(t *testing.T) {
	v := NewVision(llm.NewClient("test-key"))
	assert.Equal(t, llm.ModelGeminiFlash, v.model)
}

func TestNewVision_ModelOverride(t *testing.T) {
	v := NewVision(llm.NewClient("test-key"), WithVisionModel(llm.ModelGPT4o))
	assert.Equal(t, llm.ModelGPT4o, v.model)
}
