package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/chuntim/receipt-renamer/internal/batch"
	"github.com/chuntim/receipt-renamer/internal/config"
	"github.com/chuntim/receipt-renamer/internal/history"
	"github.com/chuntim/receipt-renamer/internal/report"
	"github.com/chuntim/receipt-renamer/internal/textsource"
)

func main() {
	var (
		dir         = flag.String("dir", "", "directory to watch for new receipts (required)")
		configPath  = flag.String("config", "bank_config.json", "bank configuration file")
		source      = flag.String("source", textsource.SourceAuto, "text source: auto|textract|tesseract|pdf")
		region      = flag.String("region", "us-east-1", "AWS region for textract")
		format      = flag.String("format", "json", "report format written on shutdown: json|csv|xlsx")
		historyPath = flag.String("history", "receipt_history.db", "history database path (empty disables)")
		withAmount  = flag.Bool("amount", false, "also extract the payment amount into the filename")
		debounce    = flag.Duration("debounce", 2*time.Second, "settle time before processing a new file")
		debug       = flag.Bool("debug", false, "verbose logging")
	)
	flag.Parse()

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "Error: -dir is required")
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath, slog.Default())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *debug || cfg.Settings.DebugMode {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := textsource.New(ctx, *source, textsource.Options{
		AWSRegion: *region,
		Tesseract: textsource.TesseractConfig{Preprocess: true},
	}, logger)
	if err != nil {
		logger.Error("text source setup failed", "source", *source, "error", err)
		os.Exit(1)
	}

	var opts []batch.ProcessorOption
	if *withAmount {
		opts = append(opts, batch.WithAmount())
	}

	runID := uuid.New()
	var store *history.Store
	if *historyPath != "" {
		store, err = history.Open(*historyPath, logger)
		if err != nil {
			logger.Error("history store open failed", "path", *historyPath, "error", err)
			os.Exit(1)
		}
		defer func() {
			_ = store.Close()
		}()
		if err := store.BeginRun(runID, *dir); err != nil {
			logger.Error("history run start failed", "error", err)
			os.Exit(1)
		}
		opts = append(opts, batch.WithHistory(store, runID, false))
	}

	proc := batch.NewProcessor(cfg, src, logger, opts...)
	watcher := batch.NewWatcher(proc, *debounce, logger)

	rep, err := watcher.Watch(ctx, *dir)
	if err != nil {
		logger.Error("watch failed", "error", err)
		os.Exit(1)
	}

	sum := rep.Summary()
	if store != nil {
		if err := store.FinishRun(runID, sum); err != nil {
			logger.Warn("history run finish failed", "error", err)
		}
	}
	if sum.Total > 0 {
		if path, err := rep.Write(*dir, report.Format(*format)); err != nil {
			logger.Error("report write failed", "error", err)
		} else {
			logger.Info("report written", "path", path)
		}
	}
	logger.Info("watch stopped",
		"processed", sum.Total, "renamed", sum.Success, "no_name", sum.NoName, "errors", sum.Errors)
}
