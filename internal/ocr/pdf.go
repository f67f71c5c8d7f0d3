package ocr

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFImage is one raster image pulled out of a PDF receipt, page order
// preserved.
type PDFImage struct {
	Data     []byte
	MimeType string
}

// ExtractPDFImages pulls the embedded page images out of a scanned-PDF
// receipt so they can be fed to an image Reader.
func ExtractPDFImages(data []byte) ([]PDFImage, error) {
	pageImages, err := api.ExtractImagesRaw(bytes.NewReader(data), nil, pdfmodel.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("extract PDF images: %w", err)
	}

	var out []PDFImage
	for _, page := range pageImages {
		for _, img := range page {
			raw, err := io.ReadAll(img)
			if err != nil {
				return nil, fmt.Errorf("read PDF image %s: %w", img.Name, err)
			}
			out = append(out, PDFImage{Data: raw, MimeType: imageMime(img.FileType)})
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no images found in PDF")
	}
	return out, nil
}

func imageMime(fileType string) string {
	switch fileType {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "tif", "tiff":
		return "image/tiff"
	case "png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

// PDFLines OCRs every page image of a PDF receipt with the given Reader
// and concatenates the lines in page order.
func PDFLines(ctx context.Context, r Reader, data []byte) ([]string, error) {
	images, err := ExtractPDFImages(data)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, img := range images {
		pageLines, err := r.Lines(ctx, img.Data, img.MimeType)
		if err != nil {
			return nil, err
		}
		lines = append(lines, pageLines...)
	}
	return lines, nil
}
