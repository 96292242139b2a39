package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Ordered amount patterns: labelled amounts first, bare currency markers
// last. The first pattern that matches anywhere in the text is authoritative;
// no cross-validation against later occurrences.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Amount[\s:]*(?:MYR|RM)\s*([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)Total Debit Amount[\s:]*(?:MYR|RM)\s*([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)(?:MYR|RM)\s*([\d,]+\.\d{2})`),
}

// ExtractAmount scans the full text for a payment amount and formats the
// first non-zero match with a fixed RM prefix and two decimal places,
// e.g. "RM123.45". Absence of an amount is a normal outcome.
func ExtractAmount(fullText string) (string, bool) {
	for _, re := range amountPatterns {
		m := re.FindStringSubmatch(fullText)
		if m == nil {
			continue
		}
		raw := strings.ReplaceAll(m[1], ",", "")
		amt, err := decimal.NewFromString(raw)
		if err != nil || !amt.IsPositive() {
			continue
		}
		return "RM" + amt.StringFixed(2), true
	}
	return "", false
}
