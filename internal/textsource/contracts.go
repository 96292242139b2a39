// Package textsource obtains raw text lines from a receipt file. Three
// adapters share one contract: AWS Textract (cloud OCR), local tesseract
// (subprocess OCR) and the embedded PDF text layer.
package textsource

import (
	"context"
	"errors"
	"time"
)

// ErrNoText signals that extraction ran but produced no usable text. The
// pipeline reports it as its own status, distinct from "no name found".
var ErrNoText = errors.New("no text extracted")

// RawText is the ordered line sequence for one extraction attempt, plus the
// joined full text. Immutable once produced.
type RawText struct {
	Lines    []string
	FullText string
	Method   string // "textract" | "image-ocr" | "pdf-text" | "pdf-ocr"
	Duration time.Duration
	Warnings []string
}

// Extractor is the text source boundary: file path in, ordered lines out, or
// an explicit failure.
type Extractor interface {
	Extract(ctx context.Context, path string) (RawText, error)
}
