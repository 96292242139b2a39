// Package rename turns a validated customer name into a collision-free
// filesystem path and issues the rename.
package rename

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// suffix appended to every renamed receipt, before the extension.
const suffix = "_receipt"

// filesystem-invalid characters dropped from candidate names.
const invalidChars = `<>:"/\|?*`

type Resolver struct {
	logger *slog.Logger
}

func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{logger: logger}
}

// Sanitize removes characters that are invalid in filenames and joins the
// remaining words with underscores: "Wong Chun Tim" -> "Wong_Chun_Tim".
func Sanitize(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidChars, r) {
			return -1
		}
		return r
	}, name)
	return strings.Join(strings.Fields(cleaned), "_")
}

// Resolve produces a free target path inside dir for the given name, optional
// amount and original extension. When the base name is taken, a numeric
// suffix is incremented until a free slot is found; an existing file is never
// chosen as the target.
func (r *Resolver) Resolve(dir, name, amount, ext string) (string, error) {
	base := Sanitize(name)
	if base == "" {
		return "", fmt.Errorf("name %q sanitized to nothing", name)
	}
	if amount != "" {
		base += " - " + Sanitize(amount)
	}

	target := filepath.Join(dir, base+suffix+ext)
	for counter := 1; ; counter++ {
		_, err := os.Stat(target)
		if os.IsNotExist(err) {
			return target, nil
		}
		if err != nil {
			return "", fmt.Errorf("probe %s: %w", target, err)
		}
		// target exists, probe the next numbered slot
		target = filepath.Join(dir, fmt.Sprintf("%s%s_%d%s", base, suffix, counter, ext))
	}
}

// Rename moves the file to its resolved target. Callers must pass a target
// obtained from Resolve so an existing file is never overwritten.
func (r *Resolver) Rename(oldPath, newPath string) error {
	if err := os.Rename(oldPath, newPath); err != nil {
		r.logger.Error("rename failed", "from", oldPath, "to", newPath, "error", err)
		return fmt.Errorf("rename: %w", err)
	}
	r.logger.Info("renamed", "from", filepath.Base(oldPath), "to", filepath.Base(newPath))
	return nil
}
