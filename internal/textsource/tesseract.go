package textsource

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/chuntim/receipt-renamer/constants"
)

// TesseractConfig configures the local OCR adapter. Zero values fall back to
// binaries on PATH and sensible defaults.
type TesseractConfig struct {
	Tesseract string // binary name or absolute path; default "tesseract"
	Pdftoppm  string // rasterizer for scanned PDFs; default "pdftoppm"
	Lang      string // default "eng"
	DPI       int    // rasterization DPI, default 300
	MaxPages  int    // 0 = no limit

	// Preprocess runs grayscale/contrast/upscale on images before OCR.
	Preprocess bool
}

// TesseractExtractor runs OCR via subprocess so the tool builds without cgo
// and tests can stub the binary through Runner.
type TesseractExtractor struct {
	cfg    TesseractConfig
	runner Runner
	logger *slog.Logger
}

func NewTesseractExtractor(cfg TesseractConfig, logger *slog.Logger) *TesseractExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Lang == "" {
		cfg.Lang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &TesseractExtractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

func (e *TesseractExtractor) Extract(ctx context.Context, path string) (RawText, error) {
	start := time.Now()
	switch constants.MapExtToFormat(filepath.Ext(path)) {
	case constants.IMAGE:
		res, err := e.extractImage(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	case constants.PDF:
		res, err := e.extractPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	default:
		return RawText{}, fmt.Errorf("unsupported extension: %q", filepath.Ext(path))
	}
}

func (e *TesseractExtractor) extractImage(ctx context.Context, path string) (RawText, error) {
	var warns []string
	if e.cfg.Preprocess {
		tmpDir, err := os.MkdirTemp("", "rr-pre-*")
		if err != nil {
			return RawText{}, err
		}
		defer func() {
			_ = os.RemoveAll(tmpDir)
		}()
		if pre, err := preprocessImage(path, tmpDir); err != nil {
			// OCR the original; preprocessing is best effort.
			warns = append(warns, fmt.Sprintf("preprocess: %v", err))
		} else {
			path = pre
		}
	}
	txt, w, err := e.runOCR(ctx, path)
	warns = append(warns, w...)
	if err != nil {
		return RawText{Method: "image-ocr", Warnings: warns}, err
	}
	return makeRawText(txt, "image-ocr", warns)
}

// extractPDF rasterizes pages with pdftoppm and OCRs each page image.
func (e *TesseractExtractor) extractPDF(ctx context.Context, path string) (RawText, error) {
	tmpDir, err := os.MkdirTemp("", "rr-pp-*")
	if err != nil {
		return RawText{}, err
	}
	defer func() {
		_ = os.RemoveAll(tmpDir)
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return RawText{Method: "pdf-ocr", Warnings: []string{string(errb)}}, fmt.Errorf("pdftoppm: %w", err)
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return RawText{Method: "pdf-ocr"}, fmt.Errorf("pdftoppm produced no images: %w", ErrNoText)
	}

	var b strings.Builder
	var warns []string
	for _, img := range matches {
		txt, w, err := e.runOCR(ctx, img)
		warns = append(warns, w...)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(txt)
	}
	return makeRawText(b.String(), "pdf-ocr", warns)
}

func (e *TesseractExtractor) runOCR(ctx context.Context, path string) (string, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.Lang}
	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil, nil
}
