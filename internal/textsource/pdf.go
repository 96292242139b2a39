package textsource

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

// PDFTextExtractor reads the embedded text layer of digital PDFs. Scanned
// PDFs have no text layer and come back as ErrNoText; auto mode then falls
// through to OCR.
type PDFTextExtractor struct {
	logger *slog.Logger
}

func NewPDFTextExtractor(logger *slog.Logger) *PDFTextExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFTextExtractor{logger: logger}
}

func (e *PDFTextExtractor) Extract(_ context.Context, path string) (RawText, error) {
	start := time.Now()

	f, r, err := pdf.Open(path)
	if err != nil {
		return RawText{Method: "pdf-text"}, fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var b strings.Builder
	var warns []string
	for p := 1; p <= r.NumPage(); p++ {
		page := r.Page(p)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			warns = append(warns, fmt.Sprintf("page %d: %v", p, err))
			continue
		}
		for _, row := range rows {
			for _, word := range row.Content {
				b.WriteString(word.S)
				b.WriteString(" ")
			}
			b.WriteString("\n")
		}
	}

	res, err := makeRawText(b.String(), "pdf-text", warns)
	res.Duration = time.Since(start)
	return res, err
}
