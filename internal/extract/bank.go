package extract

import (
	"log/slog"
	"strings"

	"github.com/cloudflare/ahocorasick"

	"github.com/chuntim/receipt-renamer/internal/config"
)

// Detector identifies which bank issued a receipt by scanning the full text
// for bank keywords and app names. All patterns for all banks are compiled
// into a single Aho-Corasick matcher so detection is one pass over the text
// regardless of how many banks are configured.
type Detector struct {
	matcher  *ahocorasick.Matcher
	profiles []config.BankProfile
	// patternBank[i] is the index into profiles for pattern i.
	patternBank []int
	logger      *slog.Logger
}

// NewDetector builds a detector from bank profiles. Profile order is the
// tie-break order: when patterns from several banks occur in the same text,
// the earliest-declared bank wins.
func NewDetector(profiles []config.BankProfile, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Detector{profiles: profiles, logger: logger}

	var patterns [][]byte
	for bi, p := range profiles {
		for _, kw := range append(append([]string{}, p.Keywords...), p.AppNames...) {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			patterns = append(patterns, []byte(kw))
			d.patternBank = append(d.patternBank, bi)
		}
	}
	if len(patterns) > 0 {
		d.matcher = ahocorasick.NewMatcher(patterns)
	}
	return d
}

// Detect returns the first configured bank with any keyword or app name
// present in the text. Absence of a match is a normal outcome, not an error.
func (d *Detector) Detect(fullText string) (config.BankProfile, bool) {
	if d.matcher == nil || fullText == "" {
		return config.BankProfile{}, false
	}
	hits := d.matcher.Match([]byte(strings.ToLower(fullText)))
	if len(hits) == 0 {
		d.logger.Debug("bank not identified")
		return config.BankProfile{}, false
	}
	best := -1
	for _, h := range hits {
		if bi := d.patternBank[h]; best == -1 || bi < best {
			best = bi
		}
	}
	d.logger.Debug("bank detected", "bank", d.profiles[best].Name)
	return d.profiles[best], true
}
