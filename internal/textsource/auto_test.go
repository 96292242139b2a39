package textsource

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewKnownSources(t *testing.T) {
	ctx := context.Background()

	for _, source := range []string{SourceTesseract, SourcePDF, SourceAuto, ""} {
		ext, err := New(ctx, source, Options{}, nil)
		require.NoError(t, err, "source %q", source)
		assert.NotNil(t, ext, "source %q", source)
	}
}

func TestNewUnknownSource(t *testing.T) {
	_, err := New(context.Background(), "gpt4-vision", Options{}, nil)

	assert.Error(t, err)
}

func TestAutoExtractorFallsBackToOCRForEmptyPDF(t *testing.T) {
	stub := &stubRunner{
		pdfPages: 1,
		ocrText:  map[string]string{".png": "Sender\nJOHN TAN"},
	}
	tess := NewTesseractExtractor(TesseractConfig{}, nil)
	tess.runner = stub
	auto := &AutoExtractor{
		pdfText:   NewPDFTextExtractor(nil),
		tesseract: tess,
		logger:    discardLogger(),
	}

	// a path that is not a parseable PDF: the text layer read fails and the
	// OCR path takes over
	raw, err := auto.Extract(context.Background(), "/receipts/not-really-a.pdf")

	require.NoError(t, err)
	assert.Equal(t, []string{"Sender", "JOHN TAN"}, raw.Lines)
	assert.Equal(t, "pdf-ocr", raw.Method)
}

func TestAutoExtractorRejectsUnsupportedExtension(t *testing.T) {
	auto := &AutoExtractor{
		pdfText:   NewPDFTextExtractor(nil),
		tesseract: NewTesseractExtractor(TesseractConfig{}, nil),
		logger:    discardLogger(),
	}

	_, err := auto.Extract(context.Background(), "/receipts/notes.docx")

	assert.Error(t, err)
}
