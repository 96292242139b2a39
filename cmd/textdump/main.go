// textdump prints the text lines extracted from a single receipt file.
// Useful for seeing exactly what the heuristics see when a receipt refuses
// to yield a name.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/chuntim/receipt-renamer/internal/textsource"
)

func main() {
	var (
		source = flag.String("source", textsource.SourceAuto, "text source: auto|textract|tesseract|pdf")
		region = flag.String("region", "us-east-1", "AWS region for textract")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: textdump [-source auto|textract|tesseract|pdf] <receipt-file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	src, err := textsource.New(ctx, *source, textsource.Options{
		AWSRegion: *region,
		Tesseract: textsource.TesseractConfig{Preprocess: true},
	}, logger)
	if err != nil {
		logger.Error("text source setup failed", "error", err)
		os.Exit(1)
	}

	raw, err := src.Extract(ctx, path)
	if err != nil {
		logger.Error("extraction failed", "path", path, "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s (%s, %d lines, %s)\n\n", path, raw.Method, len(raw.Lines), raw.Duration)
	for i, ln := range raw.Lines {
		fmt.Printf("%3d. %s\n", i+1, ln)
	}
	for _, w := range raw.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}
