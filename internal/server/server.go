// Package server exposes the receipt pipeline over HTTP. The core
// raises no HTTP-specific errors; this layer owns request deadlines and
// maps failures to status codes: 400 for a missing upload, 500 for a
// collaborator (OCR, spell-correction) failure.
package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rezonia/receipt-processor/internal/llm"
	"github.com/rezonia/receipt-processor/internal/ocr"
	"github.com/rezonia/receipt-processor/internal/receipt"
	"github.com/rezonia/receipt-processor/internal/spell"
)

// Config holds server configuration
type Config struct {
	Address        string
	Languages      string // Tesseract language list, e.g. "ukr+eng"
	TablesPath     string // optional YAML tables override
	APIKey         string
	LLMBaseURL     string
	LLMModel       string // spell-correction model
	LLMVisionModel string // vision OCR model; empty disables vision OCR
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	Debug          bool
}

// Server represents the HTTP API server
type Server struct {
	config   *Config
	router   *gin.Engine
	pipeline *receipt.Pipeline
	reader   ocr.Reader
}

// Option overrides parts of the server wiring.
type Option func(*Server)

// WithReader injects the OCR reader, replacing the default Tesseract
// client. Tests use this to run without a Tesseract install.
func WithReader(r ocr.Reader) Option {
	return func(s *Server) {
		s.reader = r
	}
}

// NewServer creates a new API server
func NewServer(config *Config, opts ...Option) (*Server, error) {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	tables := receipt.DefaultTables()
	if config.TablesPath != "" {
		var err error
		tables, err = receipt.Load(config.TablesPath)
		if err != nil {
			return nil, err
		}
	}

	// With an API key the speller runs through the LLM; without one the
	// offline dictionary corrector covers the keyword vocabulary.
	var speller receipt.Speller = spell.NewDictionary(nil)
	var llmClient *llm.Client
	if config.APIKey != "" {
		var clientOpts []llm.ClientOption
		if config.LLMBaseURL != "" {
			clientOpts = append(clientOpts, llm.WithBaseURL(config.LLMBaseURL))
		}
		llmClient = llm.NewClient(config.APIKey, clientOpts...)

		var spellOpts []spell.LLMOption
		if config.LLMModel != "" {
			spellOpts = append(spellOpts, spell.WithModel(config.LLMModel))
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

	s := &Server{
		config:   config,
		router:   router,
		pipeline: pipeline,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.reader == nil {
		if llmClient != nil && config.LLMVisionModel != "" {
			s.reader = ocr.NewVision(llmClient, ocr.WithVisionModel(config.LLMVisionModel))
		} else {
			tess, err := ocr.NewTesseract(config.Languages)
			if err != nil {
				return nil, err
			}
			s.reader = tess
		}
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api/receipt")
	{
		api.POST("/processing", s.handleProcessing)
		api.POST("/test", s.handleTest)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close releases the OCR reader when it holds native resources.
func (s *Server) Close() error {
	if closer, ok := s.reader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleProcessing(c *gin.Context) {
	data, _, ok := s.readUpload(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Minute)
	defer cancel()

	lines, err := s.recognize(ctx, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := s.pipeline.Process(ctx, lines)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleTest(c *gin.Context) {
	_, name, ok := s.readUpload(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, TestResponse{
		Status:    "success",
		Message:   "This is a test response",
		ImageName: name,
	})
}

// readUpload pulls the uploaded image out of the multipart form. On
// failure it writes the 400 response itself and reports ok=false.
func (s *Server) readUpload(c *gin.Context) (data []byte, name string, ok bool) {
	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no image provided"})
		return nil, "", false
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read upload"})
		return nil, "", false
	}
	defer f.Close()

	data, err = io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read upload"})
		return nil, "", false
	}

	return data, header.Filename, true
}

// recognize routes the upload to OCR: PDFs go through page-image
// extraction first, everything else is treated as a single image.
func (s *Server) recognize(ctx context.Context, data []byte) ([]string, error) {
	mimeType := detectMimeType(data)
	if mimeType == "application/pdf" {
		return ocr.PDFLines(ctx, s.reader, data)
	}
	return s.reader.Lines(ctx, data, mimeType)
}

func detectMimeType(data []byte) string {
	if len(data) < 8 {
		return "application/octet-stream"
	}

	// PNG
	if data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 {
		return "image/png"
	}
	// JPEG
	if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return "image/jpeg"
	}
	// TIFF
	if (data[0] == 0x49 && data[1] == 0x49) || (data[0] == 0x4D && data[1] == 0x4D) {
		return "image/tiff"
	}
	// PDF
	if data[0] == '%' && data[1] == 'P' && data[2] == 'D' && data[3] == 'F' {
		return "application/pdf"
	}

	return "application/octet-stream"
}
