package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/chuntim/receipt-renamer/constants"
	"github.com/chuntim/receipt-renamer/internal/config"
	"github.com/chuntim/receipt-renamer/internal/extract"
	"github.com/chuntim/receipt-renamer/internal/history"
	"github.com/chuntim/receipt-renamer/internal/rename"
	"github.com/chuntim/receipt-renamer/internal/report"
	"github.com/chuntim/receipt-renamer/internal/textsource"
)

// Processor runs one file through the whole pipeline:
// text source -> bank detect -> name engine -> amount -> rename.
// All failures are contained at file granularity; ProcessFile never returns
// an error, it returns a result with the failure status.
type Processor struct {
	cfg      config.Config
	source   textsource.Extractor
	engine   *extract.Engine
	resolver *rename.Resolver
	logger   *slog.Logger

	// optional collaborators
	store       *history.Store
	runID       uuid.UUID
	withAmount  bool
	force       bool
}

type ProcessorOption func(*Processor)

// WithHistory records outcomes in the store and skips content that already
// has a terminal outcome (unless forced).
func WithHistory(store *history.Store, runID uuid.UUID, force bool) ProcessorOption {
	return func(p *Processor) {
		p.store = store
		p.runID = runID
		p.force = force
	}
}

// WithAmount also extracts a payment amount and includes it in the filename.
func WithAmount() ProcessorOption {
	return func(p *Processor) { p.withAmount = true }
}

func NewProcessor(cfg config.Config, source textsource.Extractor, logger *slog.Logger, opts ...ProcessorOption) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Processor{
		cfg:      cfg,
		source:   source,
		engine:   extract.NewEngine(cfg, logger),
		resolver: rename.NewResolver(logger),
		logger:   logger,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// ProcessFile produces exactly one ProcessResult for the file, whatever
// happens. A panic anywhere in the pipeline is recovered into an error
// status so one file cannot abort the batch.
func (p *Processor) ProcessFile(ctx context.Context, path string) (res report.ProcessResult) {
	res = report.NewResult(filepath.Base(path))
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("panic processing file", "file", res.OriginalFile, "panic", r)
			res.Status = constants.StatusError
			res.Error = fmt.Sprintf("panic: %v", r)
		}
		p.record(path, res)
	}()

	p.logger.Info("processing", "file", res.OriginalFile)

	if p.store != nil && !p.force {
		if hash, err := history.HashFile(path); err == nil {
			if skip, err := p.store.ShouldSkip(hash); err == nil && skip {
				p.logger.Info("skipping, already processed", "file", res.OriginalFile)
				res.Status = constants.StatusSkipped
				return res
			}
		}
	}

	raw, err := p.source.Extract(ctx, path)
	if err != nil || len(raw.Lines) == 0 {
		if err == nil {
			err = textsource.ErrNoText
		}
		if errors.Is(err, textsource.ErrNoText) {
			p.logger.Warn("no text extracted", "file", res.OriginalFile, "method", raw.Method)
			res.Status = constants.StatusNoText
			res.Error = "no text extracted"
		} else {
			p.logger.Error("text extraction failed", "file", res.OriginalFile, "error", err)
			res.Status = constants.StatusError
			res.Error = err.Error()
		}
		return res
	}
	p.logger.Debug("text extracted",
		"file", res.OriginalFile, "method", raw.Method, "lines", len(raw.Lines))

	name, ok := p.engine.ExtractName(raw.Lines, raw.FullText)
	if !ok {
		res.Status = constants.StatusNoName
		return res
	}
	res.CustomerName = name

	if p.withAmount {
		if amount, ok := extract.ExtractAmount(raw.FullText); ok {
			res.Amount = amount
		}
	}

	target, err := p.resolver.Resolve(filepath.Dir(path), name, res.Amount, filepath.Ext(path))
	if err != nil {
		res.Status = constants.StatusRenameFailed
		res.Error = err.Error()
		return res
	}
	if err := p.resolver.Rename(path, target); err != nil {
		// The extracted name is still reported; only the rename failed.
		res.Status = constants.StatusRenameFailed
		res.Error = err.Error()
		return res
	}

	res.Status = constants.StatusSuccess
	res.NewFilename = filepath.Base(target)
	return res
}

// record writes the outcome to the history store, keyed by content hash.
// For renamed files the hash is computed from the new path.
func (p *Processor) record(origPath string, res report.ProcessResult) {
	if p.store == nil || res.Status == constants.StatusSkipped {
		return
	}
	hashPath := origPath
	if res.NewFilename != "" {
		hashPath = filepath.Join(filepath.Dir(origPath), res.NewFilename)
	}
	hash, err := history.HashFile(hashPath)
	if err != nil {
		p.logger.Warn("history hash failed", "file", res.OriginalFile, "error", err)
		return
	}
	if err := p.store.Record(p.runID, hash, res); err != nil {
		p.logger.Warn("history record failed", "file", res.OriginalFile, "error", err)
	}
}
