// Package receiptlib is the public embedding API for the receipt
// extraction pipeline. Programs that already have OCR lines in hand call
// ProcessLines; ProcessImage runs recognition first. The HTTP server and
// CLI under cmd/ wrap the same internals with transport concerns.
package receiptlib

import (
	"context"
	"io"
	"sync"

	"github.com/rezonia/receipt-processor/internal/llm"
	"github.com/rezonia/receipt-processor/internal/ocr"
	"github.com/rezonia/receipt-processor/internal/receipt"
	"github.com/rezonia/receipt-processor/internal/spell"
)

// Result is the structured receipt record.
type Result = receipt.Result

// Item is one purchased position, serialized as [name, price].
type Item = receipt.Item

// Tables is the canonicalization configuration.
type Tables = receipt.Tables

// DefaultTables returns the built-in Ukrainian-locale tables.
func DefaultTables() *Tables {
	return receipt.DefaultTables()
}

// LoadTables reads tables from a YAML file.
func LoadTables(path string) (*Tables, error) {
	return receipt.Load(path)
}

// OCRReader turns a receipt image into ordered text lines. It mirrors
// the internal reader contract so embedders can plug in their own OCR.
type OCRReader interface {
	Lines(ctx context.Context, imageData []byte, mimeType string) ([]string, error)
}

// Options configures a Processor.
type Options struct {
	// Tables overrides the default canonicalization tables.
	Tables *Tables

	// SpellWords overrides the offline corrector's vocabulary.
	SpellWords []string

	// EnableLLM switches spell correction from the offline dictionary to
	// an OpenAI-compatible model. Requires LLMAPIKey.
	EnableLLM  bool
	LLMAPIKey  string
	LLMBaseURL string
	LLMModel   string

	// LLMVisionModel makes ProcessImage recognize text through the LLM
	// instead of a local Tesseract install. Requires EnableLLM and
	// LLMAPIKey.
	LLMVisionModel string

	// OCRLanguages is the Tesseract language list, e.g. "ukr+eng".
	OCRLanguages string

	// Reader overrides OCR entirely; when set, the LLMVisionModel and
	// OCRLanguages options are ignored.
	Reader OCRReader
}

// DefaultOptions returns options with the built-in tables and the
// offline corrector.
func DefaultOptions() Options {
	return Options{}
}

// Processor runs the extraction pipeline.
type Processor struct {
	pipeline *receipt.Pipeline

	// The Tesseract fallback holds a native handle, so it is built on
	// first ProcessImage call rather than at construction.
	reader     ocr.Reader
	languages  string
	readerOnce sync.Once
	readerErr  error
}

// NewProcessor creates a processor with the given options.
func NewProcessor(opts Options) (*Processor, error) {
	tables := opts.Tables
	if tables == nil {
		tables = receipt.DefaultTables()
	}

	var speller receipt.Speller = spell.NewDictionary(opts.SpellWords)
	var llmClient *llm.Client
	if opts.EnableLLM && opts.LLMAPIKey != "" {
		var clientOpts []llm.ClientOption
		if opts.LLMBaseURL != "" {
			clientOpts = append(clientOpts, llm.WithBaseURL(opts.LLMBaseURL))
		}
		llmClient = llm.NewClient(opts.LLMAPIKey, clientOpts...)

		var spellOpts []spell.LLMOption
		if opts.LLMModel != "" {
			spellOpts = append(spellOpts, spell.WithModel(opts.LLMModel))
		}
		speller = spell.NewLLM(llmClient, spellOpts...)
	}

	pipeline, err := receipt.NewPipeline(
		receipt.WithTables(tables),
		receipt.WithSpeller(speller),
	)
	if err != nil {
		return nil, err
	}

	p := &Processor{pipeline: pipeline, languages: opts.OCRLanguages}
	if opts.Reader != nil {
		p.reader = opts.Reader
	} else if llmClient != nil && opts.LLMVisionModel != "" {
		p.reader = ocr.NewVision(llmClient, ocr.WithVisionModel(opts.LLMVisionModel))
	}
	return p, nil
}

// NewDefaultProcessor creates a processor with default options.
func NewDefaultProcessor() (*Processor, error) {
	return NewProcessor(DefaultOptions())
}

// ProcessLines runs the pipeline over OCR lines in reading order.
func (p *Processor) ProcessLines(ctx context.Context, lines []string) (*Result, error) {
	return p.pipeline.Process(ctx, lines)
}

// ProcessImage recognizes the receipt image and runs the pipeline over
// its lines. PDFs ("application/pdf") go through page-image extraction
// first; everything else is treated as a single image.
func (p *Processor) ProcessImage(ctx context.Context, imageData []byte, mimeType string) (*Result, error) {
	reader, err := p.ocrReader()
	if err != nil {
		return nil, err
	}

	var lines []string
	if mimeType == "application/pdf" {
		lines, err = ocr.PDFLines(ctx, reader, imageData)
	} else {
		lines, err = reader.Lines(ctx, imageData, mimeType)
	}
	if err != nil {
		return nil, err
	}

	return p.pipeline.Process(ctx, lines)
}

func (p *Processor) ocrReader() (ocr.Reader, error) {
	p.readerOnce.Do(func() {
		if p.reader != nil {
			return
		}
		tess, err := ocr.NewTesseract(p.languages)
		if err != nil {
			p.readerErr = err
			return
		}
		p.reader = tess
	})
	return p.reader, p.readerErr
}

// Close releases the OCR reader when it holds native resources. Safe to
// call on a processor that never recognized an image.
func (p *Processor) Close() error {
	if closer, ok := p.reader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
