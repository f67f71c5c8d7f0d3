package receiptlib_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/receipt-processor/pkg/receiptlib"
)

func TestNewDefaultProcessor(t *testing.T) {
	processor, err := receiptlib.NewDefaultProcessor()
	require.NoError(t, err)
	require.NotNil(t, processor)
}

func TestProcessLines(t *testing.T) {
	processor, err := receiptlib.NewDefaultProcessor()
	require.NoError(t, err)

	result, err := processor.ProcessLines(context.Background(), []string{
		"Хліб 1 x 25,50 = 25,50 Молоко 2 x 45,00 = 90,00",
		"Сума 115.50",
		"Готівка",
	})
	require.NoError(t, err)

	assert.Equal(t, "готівка", result.PaymentMethod)
	assert.Equal(t, "115.50", result.TotalPrice)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "хліб", result.Items[0].Name)
	assert.Equal(t, "25.50", result.Items[0].Price)
	assert.Equal(t, "молоко", result.Items[1].Name)
	assert.Equal(t, "90.00", result.Items[1].Price)
}

func TestProcessLines_CustomTables(t *testing.T) {
	tables := receiptlib.DefaultTables()
	tables.TotalKeyword = "suma"
	tables.CashKeyword = "gotówka"

	processor, err := receiptlib.NewProcessor(receiptlib.Options{Tables: tables})
	require.NoError(t, err)

	result, err := processor.ProcessLines(context.Background(), []string{
		"Chleb 1 x 1 = 4.50",
		"Suma 4.50",
		"Gotówka",
	})
	require.NoError(t, err)

	assert.Equal(t, "gotówka", result.PaymentMethod)
	assert.Equal(t, "4.50", result.TotalPrice)
}

func TestProcessLines_CustomSpellWords(t *testing.T) {
	processor, err := receiptlib.NewProcessor(receiptlib.Options{
		SpellWords: []string{"молоко"},
	})
	require.NoError(t, err)

	result, err := processor.ProcessLines(context.Background(), []string{
		"молоео 1 x 1 = 45.00",
	})
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "молоко", result.Items[0].Name)
}

func TestProcessLines_EmptyInput(t *testing.T) {
	processor, err := receiptlib.NewDefaultProcessor()
	require.NoError(t, err)

	result, err := processor.ProcessLines(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, result.Date)
	assert.Empty(t, result.TotalPrice)
	assert.NotNil(t, result.Items)
	assert.Len(t, result.Items, 0)
}

type stubReader struct {
	lines []string
	err   error
}

func (s stubReader) Lines(context.Context, []byte, string) ([]string, error) {
	return s.lines, s.err
}

func TestProcessImage(t *testing.T) {
	processor, err := receiptlib.NewProcessor(receiptlib.Options{
		Reader: stubReader{lines: []string{
			"Бойлер Atlantic VM 080",
			"Сума Без ПДВ (0.0035) Готівка",
			"2859.00",
		}},
	})
	require.NoError(t, err)
	defer processor.Close()

	result, err := processor.ProcessImage(context.Background(), []byte{0x89, 0x50, 0x4E, 0x47}, "image/png")
	require.NoError(t, err)

	assert.Equal(t, "готівка", result.PaymentMethod)
	assert.Equal(t, "2859.00", result.TotalPrice)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "2859.00", result.Items[0].Price)
}

func TestProcessImage_ReaderFailure(t *testing.T) {
	processor, err := receiptlib.NewProcessor(receiptlib.Options{
		Reader: stubReader{err: fmt.Errorf("OCR failed: engine crashed")},
	})
	require.NoError(t, err)
	defer processor.Close()

	_, err = processor.ProcessImage(context.Background(), []byte("img"), "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OCR failed")
}

func TestProcessImage_BrokenPDF(t *testing.T) {
	processor, err := receiptlib.NewProcessor(receiptlib.Options{
		Reader: stubReader{lines: []string{"сума 1.00"}},
	})
	require.NoError(t, err)
	defer processor.Close()

	_, err = processor.ProcessImage(context.Background(),
		[]byte("%PDF-1.4 not really a pdf"), "application/pdf")
	require.Error(t, err)
}

func TestClose_WithoutImageProcessing(t *testing.T) {
	processor, err := receiptlib.NewDefaultProcessor()
	require.NoError(t, err)
	require.NoError(t, processor.Close())
}

func TestNewProcessor_InvalidTables(t *testing.T) {
	tables := receiptlib.DefaultTables()
	tables.TotalKeyword = ""

	_, err := receiptlib.NewProcessor(receiptlib.Options{Tables: tables})
	require.Error(t, err)
}
