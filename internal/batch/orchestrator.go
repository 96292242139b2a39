package batch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/chuntim/receipt-renamer/constants"
	"github.com/chuntim/receipt-renamer/internal/report"
)

// ReviewFunc is the interactive fallback: given a failed file and the text
// lines extracted from it (nil when extraction failed), it returns a
// manually entered name, or ok=false to skip. Composition keeps the
// orchestrator a plain pipeline; there is no "interactive processor" type.
type ReviewFunc func(path string, lines []string) (name string, ok bool)

// Orchestrator fans a directory of receipts across a fixed worker pool and
// aggregates per-file outcomes. One worker means strictly sequential
// processing.
type Orchestrator struct {
	proc    *Processor
	workers int
	review  ReviewFunc
	logger  *slog.Logger
}

func NewOrchestrator(proc *Processor, workers int, logger *slog.Logger) *Orchestrator {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{proc: proc, workers: workers, logger: logger}
}

// WithReview enables the interactive post-pass over failed files.
func (o *Orchestrator) WithReview(fn ReviewFunc) *Orchestrator {
	o.review = fn
	return o
}

// Run processes every receipt in dir and returns the aggregated report.
// The batch never aborts early on a single file's failure; report order
// reflects completion order when parallel.
func (o *Orchestrator) Run(ctx context.Context, dir string) (*report.Report, error) {
	files, _, err := Discover(dir, o.logger)
	if err != nil {
		return nil, err
	}
	o.logger.Info("batch starting", "dir", dir, "files", len(files), "workers", o.workers)

	rep := report.New()
	if len(files) == 0 {
		o.logger.Warn("no receipt files found", "dir", dir)
		return rep, nil
	}

	if o.workers == 1 {
		for _, path := range files {
			rep.Append(o.proc.ProcessFile(ctx, path))
		}
	} else {
		jobs := make(chan string)
		var wg sync.WaitGroup
		for i := 0; i < o.workers; i++ {
			wg.Add(1)
			go func(workerID int) {
				defer wg.Done()
				for path := range jobs {
					rep.Append(o.proc.ProcessFile(ctx, path))
				}
			}(i + 1)
		}
		for _, path := range files {
			jobs <- path
		}
		close(jobs)
		wg.Wait()
	}

	if o.review != nil {
		o.reviewPass(ctx, dir, rep)
	}
	return rep, nil
}

// reviewPass re-offers failed files for manual name entry. Only the filename
// resolver step re-runs; text extraction happens once more purely to show
// the reviewer what the OCR saw.
func (o *Orchestrator) reviewPass(ctx context.Context, dir string, rep *report.Report) {
	for _, res := range rep.Results() {
		switch res.Status {
		case constants.StatusNoText, constants.StatusNoName, constants.StatusError:
		default:
			continue
		}

		path := filepath.Join(dir, res.OriginalFile)
		var lines []string
		if raw, err := o.proc.source.Extract(ctx, path); err == nil {
			lines = raw.Lines
		}

		name, ok := o.review(path, lines)
		if !ok || name == "" {
			continue
		}

		target, err := o.proc.resolver.Resolve(dir, name, res.Amount, filepath.Ext(path))
		if err == nil {
			err = o.proc.resolver.Rename(path, target)
		}
		if err != nil {
			res.Status = constants.StatusRenameFailed
			res.Error = err.Error()
		} else {
			res.Status = constants.StatusSuccessManual
			res.CustomerName = name
			res.NewFilename = filepath.Base(target)
			res.Error = ""
		}
		rep.Update(res)
	}
}
