package extract

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chuntim/receipt-renamer/internal/config"
)

// Engine locates a customer/recipient name in noisy OCR output.
//
// Heuristic tiers run in strict priority order and the first candidate that
// passes every validation gate wins; there is no re-ranking of multiple valid
// candidates and no fuzzy matching. A wrong rename is worse than a skipped
// one, so the gates err on the side of rejection.
type Engine struct {
	cfg      config.Config
	detector *Detector
	logger   *slog.Logger
}

func NewEngine(cfg config.Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		cfg:      cfg,
		detector: NewDetector(cfg.Banks, logger),
		logger:   logger,
	}
}

// ExtractName applies the heuristic tiers to the extracted lines. The second
// return value is false when every tier exhausts without an accepted
// candidate; that is a normal terminal outcome.
func (e *Engine) ExtractName(lines []string, fullText string) (string, bool) {
	keywords := e.cfg.NameKeywords
	if bank, ok := e.detector.Detect(fullText); ok {
		// Bank-specific keywords take priority over the generic table.
		keywords = append(append([]string{}, bank.Keywords...), e.cfg.NameKeywords...)
		e.logger.Debug("using bank keyword table", "bank", bank.Name)
	}

	if name, ok := e.keywordScan(lines, keywords); ok {
		return name, true
	}
	if name, ok := e.topOfDocumentScan(lines); ok {
		return name, true
	}
	e.logger.Debug("no customer name found", "lines", len(lines))
	return "", false
}

// keywordScan is tier 1: an ordered scan anchoring on known keyword
// vocabulary. The candidate is the remainder of the matched line when the
// keyword and value share it, otherwise the immediately following line. One
// candidate per line; no backtracking.
func (e *Engine) keywordScan(lines []string, keywords []string) (string, bool) {
	for i, line := range lines {
		lineLower := strings.ToLower(line)

		matched := ""
		matchedAt := -1
		for _, kw := range keywords {
			kw = strings.ToLower(kw)
			if kw == "" {
				continue
			}
			if idx := strings.Index(lineLower, kw); idx >= 0 {
				matched = kw
				matchedAt = idx
				break
			}
		}
		if matched == "" {
			continue
		}

		candidate := strings.Trim(line[matchedAt+len(matched):], " \t:;-.")
		if candidate == "" && i+1 < len(lines) {
			candidate = strings.TrimSpace(lines[i+1])
		}
		if candidate == "" {
			continue
		}

		clean := CleanName(candidate)
		if e.validate(clean) {
			e.logger.Debug("name accepted via keyword scan",
				"keyword", matched, "line", i, "name", clean)
			return titleCase(clean), true
		}
	}
	return "", false
}

// topOfDocumentScan is the fallback tier: many receipt layouts put the
// counterparty near the top, so scan the first max(10, len/3) lines for a
// line that is purely letters and spaces and shaped like a person's name.
func (e *Engine) topOfDocumentScan(lines []string) (string, bool) {
	window := len(lines) / 3
	if window < 10 {
		window = 10
	}
	if window > len(lines) {
		window = len(lines)
	}

	for i, line := range lines[:window] {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) < 6 {
			continue
		}
		if !lettersAndSpacesOnly(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > e.cfg.Settings.MaxNameWords {
			continue
		}
		clean := strings.Join(words, " ")
		if e.containsExcludedWord(clean) {
			continue
		}
		e.logger.Debug("name accepted via top-of-document scan", "line", i, "name", clean)
		return titleCase(clean), true
	}
	return "", false
}

// validate applies the acceptance gates, all of which must hold.
func (e *Engine) validate(clean string) bool {
	if utf8.RuneCountInString(clean) <= e.cfg.Settings.MinNameLength {
		return false
	}
	if len(strings.Fields(clean)) > e.cfg.Settings.MaxNameWords {
		return false
	}
	if !containsLetter(clean) {
		return false
	}
	return !e.containsExcludedWord(clean)
}

// containsExcludedWord reports whether any excluded word occurs as a
// case-insensitive substring of the candidate.
func (e *Engine) containsExcludedWord(candidate string) bool {
	lower := strings.ToLower(candidate)
	for _, w := range e.cfg.ExcludedWords {
		if w == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

// CleanName strips a raw candidate down to letters and single spaces:
// whitespace runs collapse to one space, every other non-letter rune is
// dropped. Applying it twice yields the same string.
func CleanName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func lettersAndSpacesOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return true
}

// titleCase renders an accepted name for filenames: "JOHN TAN WEI MING"
// becomes "John Tan Wei Ming". A fresh caser per call; cases.Caser carries
// transform state and engines are shared across workers.
func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}
