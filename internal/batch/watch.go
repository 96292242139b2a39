package batch

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/chuntim/receipt-renamer/constants"
	"github.com/chuntim/receipt-renamer/internal/report"
)

// Watcher processes receipts as they land in a directory instead of
// enumerating it once. Create/write bursts (downloads, camera transfers) are
// debounced so a file is processed only after it has settled.
type Watcher struct {
	proc     *Processor
	debounce time.Duration
	logger   *slog.Logger
}

func NewWatcher(proc *Processor, debounce time.Duration, logger *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = 2 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{proc: proc, debounce: debounce, logger: logger}
}

// Watch blocks until ctx is cancelled, then returns the report of everything
// processed in the meantime.
func (w *Watcher) Watch(ctx context.Context, dir string) (*report.Report, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = fsw.Close()
	}()
	if err := fsw.Add(dir); err != nil {
		return nil, err
	}
	w.logger.Info("watching", "dir", dir, "debounce", w.debounce)

	rep := report.New()
	var mu sync.Mutex
	timers := make(map[string]*time.Timer)

	// our own renames also generate events; skip anything already carrying
	// the output suffix
	isOwnOutput := func(name string) bool {
		base := strings.TrimSuffix(name, filepath.Ext(name))
		return strings.Contains(base, "_receipt")
	}

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			for _, t := range timers {
				t.Stop()
			}
			mu.Unlock()
			return rep, nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return rep, nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			name := filepath.Base(ev.Name)
			if strings.HasPrefix(name, ".") || !constants.IsAllowedPath(name) || isOwnOutput(name) {
				continue
			}
			path := ev.Name
			mu.Lock()
			if t, exists := timers[path]; exists {
				t.Reset(w.debounce)
			} else {
				timers[path] = time.AfterFunc(w.debounce, func() {
					mu.Lock()
					delete(timers, path)
					mu.Unlock()
					rep.Append(w.proc.ProcessFile(ctx, path))
				})
			}
			mu.Unlock()

		case err, ok := <-fsw.Errors:
			if !ok {
				return rep, nil
			}
			w.logger.Error("watch error", "error", err)
		}
	}
}
