package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/receipt-processor/internal/llm"
	"github.com/rezonia/receipt-processor/internal/ocr"
	"github.com/rezonia/receipt-processor/internal/receipt"
	"github.com/rezonia/receipt-processor/internal/spell"
)

var (
	outputFile string
	timeout    time.Duration
)

var processCmd = &cobra.Command{
	Use:   "process [files...]",
	Short: "Process receipt files",
	Long: `Process one or more receipt files and extract structured data.

Supported formats:
  - Images: .png, .jpg, .jpeg, .tiff (requires a Tesseract install,
    or --api-key with --vision-model for LLM vision OCR)
  - PDF: .pdf scanned receipts
  - Text: .txt files with one OCR line per line (no OCR engine needed)

Examples:
  receipt-processor process receipt.png
  receipt-processor process scans/ -f table
  receipt-processor process lines.txt -o result.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	processCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "Processing timeout per file")
}

func runProcess(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no files found to process")
	}

	printVerbose("Found %d files to process\n", len(files))

	pipeline, reader, cleanup, err := buildPipeline(files)
	if err != nil {
		return err
	}
	defer cleanup()

	results := make([]*ProcessResult, 0, len(files))
	for _, file := range files {
		printVerbose("Processing: %s\n", file)

		result := processFile(pipeline, reader, file)
		results = append(results, result)

		if result.Error != "" {
			printVerbose("  Error: %s\n", result.Error)
		} else {
			printVerbose("  Items: %d, Total: %s\n", len(result.Receipt.Items), result.Receipt.TotalPrice)
		}
	}

	return outputResults(results)
}

// buildPipeline wires the pipeline and, when any input needs OCR, the
// reader. The cleanup closes native OCR resources.
func buildPipeline(files []string) (*receipt.Pipeline, ocr.Reader, func(), error) {
	cleanup := func() {}

	tables := receipt.DefaultTables()
	if tablesPath != "" {
		var err error
		tables, err = receipt.Load(tablesPath)
		if err != nil {
			return nil, nil, cleanup, err
		}
	}

	var speller receipt.Speller = spell.NewDictionary(nil)
	var llmClient *llm.Client
	if apiKey != "" {
		var clientOpts []llm.ClientOption
		if llmBaseURL != "" {
			clientOpts = append(clientOpts, llm.WithBaseURL(llmBaseURL))
		}
		llmClient = llm.NewClient(apiKey, clientOpts...)

		var spellOpts []spell.LLMOption
		if llmModel != "" {
			spellOpts = append(spellOpts, spell.WithModel(llmModel))
		}
		speller = spell.NewLLM(llmClient, spellOpts...)
		printVerbose("LLM spell correction enabled (model: %s)\n", llmModel)
	}

	pipeline, err := receipt.NewPipeline(
		receipt.WithTables(tables),
		receipt.WithSpeller(speller),
	)
	if err != nil {
		return nil, nil, cleanup, err
	}

	var reader ocr.Reader
	if needsOCR(files) {
		if llmClient != nil && visionModel != "" {
			reader = ocr.NewVision(llmClient, ocr.WithVisionModel(visionModel))
			printVerbose("Vision OCR enabled (model: %s)\n", visionModel)
		} else {
			tess, err := ocr.NewTesseract(ocrLanguages)
			if err != nil {
				return nil, nil, cleanup, err
			}
			reader = tess
			cleanup = func() { tess.Close() }
		}
	}

	return pipeline, reader, cleanup, nil
}

func needsOCR(files []string) bool {
	for _, f := range files {
		if strings.ToLower(filepath.Ext(f)) != ".txt" {
			return true
		}
	}
	return false
}

func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		// Check if it's a glob pattern
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", arg, err)
		}

		if len(matches) == 0 {
			info, err := os.Stat(arg)
			if err != nil {
				return nil, fmt.Errorf("file not found: %s", arg)
			}

			if info.IsDir() {
				err := filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
					if err != nil {
						return err
					}
					if !info.IsDir() && isSupportedFile(path) {
						files = append(files, path)
					}
					return nil
				})
				if err != nil {
					return nil, err
				}
			} else {
				files = append(files, arg)
			}
		} else {
			for _, match := range matches {
				info, err := os.Stat(match)
				if err != nil {
					continue
				}
				if !info.IsDir() && isSupportedFile(match) {
					files = append(files, match)
				}
			}
		}
	}

	return files, nil
}

func isSupportedFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".pdf", ".png", ".jpg", ".jpeg", ".tiff", ".tif":
		return true
	default:
		return false
	}
}

func processFile(pipeline *receipt.Pipeline, reader ocr.Reader, filePath string) *ProcessResult {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result := &ProcessResult{
		File: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Error = fmt.Sprintf("failed to read file: %v", err)
		return result
	}

	lines, err := readLines(ctx, reader, filePath, data)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	res, err := pipeline.Process(ctx, lines)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Receipt = res
	return result
}

func readLines(ctx context.Context, reader ocr.Reader, filePath string, data []byte) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	if ext == ".txt" {
		var lines []string
		for _, line := range strings.Split(string(data), "\n") {
			if line = strings.TrimRight(line, "\r"); line != "" {
				lines = append(lines, line)
			}
		}
		return lines, nil
	}

	if reader == nil {
		return nil, fmt.Errorf("no OCR reader available for %s", filePath)
	}

	if ext == ".pdf" {
		return ocr.PDFLines(ctx, reader, data)
	}
	return reader.Lines(ctx, data, getMimeType(ext))
}

func getMimeType(ext string) string {
	switch ext {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".tiff", ".tif":
		return "image/tiff"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

func outputResults(results []*ProcessResult) error {
	var writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	switch outputFormat {
	case "json":
		return outputJSON(writer, results)
	case "table":
		return outputTable(writer, results)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

func outputJSON(w *os.File, results []*ProcessResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

func outputTable(w *os.File, results []*ProcessResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tDATE\tPAYMENT\tCURRENCY\tITEMS\tTOTAL")
	fmt.Fprintln(tw, "----\t----\t-------\t--------\t-----\t-----")

	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(tw, "%s\tERROR: %s\t\t\t\t\n", r.File, r.Error)
			continue
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			r.File,
			r.Receipt.Date,
			r.Receipt.PaymentMethod,
			r.Receipt.Currency,
			len(r.Receipt.Items),
			r.Receipt.TotalPrice,
		)
	}

	return tw.Flush()
}

// ProcessResult holds the result of processing a single file
type ProcessResult struct {
	File    string          `json:"file"`
	Receipt *receipt.Result `json:"receipt,omitempty"`
	Error   string          `json:"error,omitempty"`
}
