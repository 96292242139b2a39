package textsource

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reBoxNoise   = regexp.MustCompile(`(?m)^\s*[_\-]{3,}\s*$`)
)

// normalize collapses noisy whitespace and drops OCR box-drawing noise while
// keeping line breaks, which the extraction heuristics depend on.
func normalize(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reBoxNoise.ReplaceAllString(s, "")
	s = reMultiSpace.ReplaceAllString(s, " ")
	return s
}

// splitLines breaks normalized text into trimmed, non-empty lines.
func splitLines(s string) []string {
	var lines []string
	for _, ln := range strings.Split(s, "\n") {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}

// makeRawText packages normalized text into the adapter result. Empty text
// yields ErrNoText.
func makeRawText(text, method string, warnings []string) (RawText, error) {
	text = normalize(text)
	lines := splitLines(text)
	if len(lines) == 0 {
		return RawText{Method: method, Warnings: warnings}, ErrNoText
	}
	return RawText{
		Lines:    lines,
		FullText: strings.Join(lines, "\n"),
		Method:   method,
		Warnings: warnings,
	}, nil
}
