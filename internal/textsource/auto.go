package textsource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/chuntim/receipt-renamer/constants"
)

// Source names accepted by the CLI's -source flag.
const (
	SourceAuto      = "auto"
	SourceTextract  = "textract"
	SourceTesseract = "tesseract"
	SourcePDF       = "pdf"
)

// Options collects everything any adapter might need; New picks what the
// chosen source actually uses.
type Options struct {
	AWSRegion string
	Tesseract TesseractConfig
}

// New builds the extractor for a source name.
func New(ctx context.Context, source string, opts Options, logger *slog.Logger) (Extractor, error) {
	if logger == nil {
		logger = slog.Default()
	}
	switch source {
	case SourceTextract:
		return NewTextractExtractor(ctx, opts.AWSRegion, logger)
	case SourceTesseract:
		return NewTesseractExtractor(opts.Tesseract, logger), nil
	case SourcePDF:
		return NewPDFTextExtractor(logger), nil
	case SourceAuto, "":
		return &AutoExtractor{
			pdfText:   NewPDFTextExtractor(logger),
			tesseract: NewTesseractExtractor(opts.Tesseract, logger),
			logger:    logger,
		}, nil
	default:
		return nil, fmt.Errorf("unknown text source %q", source)
	}
}

// AutoExtractor picks a strategy per file: the embedded text layer for PDFs
// (falling back to rasterize+OCR when the layer is empty), local OCR for
// images.
type AutoExtractor struct {
	pdfText   *PDFTextExtractor
	tesseract *TesseractExtractor
	logger    *slog.Logger
}

func (e *AutoExtractor) Extract(ctx context.Context, path string) (RawText, error) {
	switch constants.MapExtToFormat(filepath.Ext(path)) {
	case constants.PDF:
		res, err := e.pdfText.Extract(ctx, path)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, ErrNoText) {
			e.logger.Warn("pdf text layer unreadable, trying OCR", "path", path, "error", err)
		} else {
			e.logger.Debug("pdf has no text layer, trying OCR", "path", path)
		}
		return e.tesseract.Extract(ctx, path)
	case constants.IMAGE:
		return e.tesseract.Extract(ctx, path)
	default:
		return RawText{}, fmt.Errorf("unsupported extension: %q", filepath.Ext(path))
	}
}
