package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

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
		dir         = flag.String("dir", "", "directory of receipts to process (required)")
		configPath  = flag.String("config", "bank_config.json", "bank configuration file")
		source      = flag.String("source", textsource.SourceAuto, "text source: auto|textract|tesseract|pdf")
		region      = flag.String("region", "us-east-1", "AWS region for textract")
		workers     = flag.Int("workers", 0, "parallel workers (0 = from config)")
		format      = flag.String("format", "json", "report format: json|csv|xlsx")
		historyPath = flag.String("history", "", "history database path (empty disables skip-on-rerun)")
		withAmount  = flag.Bool("amount", false, "also extract the payment amount into the filename")
		interactive = flag.Bool("interactive", false, "manually review files where no name was found")
		force       = flag.Bool("force", false, "reprocess files already recorded in history")
		debug       = flag.Bool("debug", false, "verbose logging")
	)
	flag.Parse()

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "Error: -dir is required")
		flag.Usage()
		os.Exit(2)
	}

	// .env carries AWS credentials for the textract source.
	_ = godotenv.Load()

	cfg, logger, err := setup(*configPath, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

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

	var store *history.Store
	runID := uuid.New()
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
		opts = append(opts, batch.WithHistory(store, runID, *force))
	}

	proc := batch.NewProcessor(cfg, src, logger, opts...)

	n := *workers
	if n <= 0 {
		n = cfg.Settings.ParallelWorkers
	}
	orch := batch.NewOrchestrator(proc, n, logger)
	if *interactive {
		orch = orch.WithReview(promptForName)
	}

	rep, err := orch.Run(ctx, *dir)
	if err != nil {
		logger.Error("batch failed", "error", err)
		os.Exit(1)
	}

	sum := rep.Summary()
	if store != nil {
		if err := store.FinishRun(runID, sum); err != nil {
			logger.Warn("history run finish failed", "error", err)
		}
	}

	if sum.Total > 0 {
		path, err := rep.Write(*dir, report.Format(*format))
		if err != nil {
			logger.Error("report write failed", "error", err)
			os.Exit(1)
		}
		logger.Info("report written", "path", path)
	}

	printSummary(sum)
}

func setup(configPath string, debug bool) (config.Config, *slog.Logger, error) {
	// bootstrap logger so config loading has one; level fixed after load
	cfg, err := config.Load(configPath, slog.Default())
	if err != nil {
		return config.Config{}, nil, err
	}

	level := slog.LevelInfo
	if debug || cfg.Settings.DebugMode {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// promptForName shows the extracted text and asks for a name on stdin.
func promptForName(path string, lines []string) (string, bool) {
	fmt.Printf("\n%s\n%s\n", strings.Repeat("-", 60), path)
	if len(lines) == 0 {
		fmt.Println("  (no text could be extracted from this file)")
	} else {
		show := lines
		if len(show) > 20 {
			show = show[:20]
		}
		for i, ln := range show {
			fmt.Printf("  %2d. %s\n", i+1, ln)
		}
		if len(lines) > 20 {
			fmt.Printf("  ... and %d more lines\n", len(lines)-20)
		}
	}
	fmt.Print("Enter customer name (or press Enter to skip): ")

	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		return "", false
	}
	name := strings.TrimSpace(sc.Text())
	return name, name != ""
}

func printSummary(sum report.Summary) {
	fmt.Println("\nProcessing summary")
	fmt.Printf("  total:            %d\n", sum.Total)
	fmt.Printf("  renamed:          %d\n", sum.Success)
	if sum.SuccessManual > 0 {
		fmt.Printf("  renamed manually: %d\n", sum.SuccessManual)
	}
	fmt.Printf("  no name found:    %d\n", sum.NoName)
	fmt.Printf("  no text:          %d\n", sum.NoText)
	fmt.Printf("  rename failed:    %d\n", sum.RenameFailed)
	if sum.Skipped > 0 {
		fmt.Printf("  skipped:          %d\n", sum.Skipped)
	}
	fmt.Printf("  errors:           %d\n", sum.Errors)
}
