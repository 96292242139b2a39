package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chuntim/receipt-renamer/constants"
)

// Discover enumerates receipt files in dir (non-recursive), deduplicating
// case-insensitively: on case-insensitive filesystems "Receipt.JPG" and
// "receipt.jpg" are the same physical file and must not be processed twice.
// The first enumerated name wins; skipped case-variants are returned for
// logging.
func Discover(dir string, logger *slog.Logger) (files []string, skipped []string, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	seen := make(map[string]struct{})
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !constants.IsAllowedPath(name) {
			continue
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			logger.Warn("skipping case-variant duplicate", "file", name)
			skipped = append(skipped, name)
			continue
		}
		seen[key] = struct{}{}
		files = append(files, filepath.Join(dir, name))
	}
	return files, skipped, nil
}
