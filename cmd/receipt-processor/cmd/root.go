package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
	tablesPath   string
	ocrLanguages string
	apiKey       string
	llmBaseURL   string
	llmModel     string
	visionModel  string
)

var rootCmd = &cobra.Command{
	Use:   "receipt-processor",
	Short: "Extract structured data from photographed retail receipts",
	Long: `Receipt Processor turns noisy OCR output from photographed retail
receipts (Ukrainian fiscal receipts) into structured records: purchase
date, payment method, currency, line items and a reconciled total.

Inputs:
  - Images: .png, .jpg, .jpeg, .tiff (OCR'd with Tesseract or LLM vision)
  - PDF: scanned receipts (page images extracted, then OCR'd)
  - Text: .txt dumps of OCR lines, one line each (no OCR engine needed)

Examples:
  # Process a receipt photo
  receipt-processor process receipt.png

  # Process an OCR line dump, print a table
  receipt-processor process lines.txt -f table

  # Use LLM spell correction and vision OCR
  receipt-processor process receipt.jpg --api-key <key> --vision-model openai/gpt-4o

  # Start the HTTP API
  receipt-processor serve --address :5001`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json, table)")
	rootCmd.PersistentFlags().StringVar(&tablesPath, "tables", "", "YAML file overriding the canonicalization tables")
	rootCmd.PersistentFlags().StringVar(&ocrLanguages, "lang", "", "Tesseract language list (default: ukr+eng)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "API key for LLM provider (env: LLM_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&llmBaseURL, "llm-base-url", "", "LLM API base URL (env: LLM_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&llmModel, "llm-model", "", "LLM model for spell correction (env: LLM_MODEL)")
	rootCmd.PersistentFlags().StringVar(&visionModel, "vision-model", "", "LLM model for vision OCR (env: LLM_VISION_MODEL)")

	// Load from environment variables if not set via flags
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if apiKey == "" {
		apiKey = os.Getenv("LLM_API_KEY")
	}
	if llmBaseURL == "" {
		llmBaseURL = os.Getenv("LLM_BASE_URL")
	}
	if llmModel == "" {
		llmModel = os.Getenv("LLM_MODEL")
	}
	if visionModel == "" {
		visionModel = os.Getenv("LLM_VISION_MODEL")
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
