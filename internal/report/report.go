// Package report collects per-file processing outcomes and persists them in
// JSON, CSV or XLSX form for offline audit.
package report

import (
	"sync"
	"time"

	"github.com/chuntim/receipt-renamer/constants"
)

// ProcessResult is one record per input file, regardless of outcome.
type ProcessResult struct {
	OriginalFile string           `json:"original_file" csv:"original_file"`
	Status       constants.Status `json:"status" csv:"status"`
	CustomerName string           `json:"customer_name,omitempty" csv:"customer_name"`
	Amount       string           `json:"amount,omitempty" csv:"amount"`
	NewFilename  string           `json:"new_filename,omitempty" csv:"new_filename"`
	Error        string           `json:"error,omitempty" csv:"error"`
	Timestamp    string           `json:"timestamp" csv:"timestamp"`
}

// NewResult starts a result for a file with the timestamp already stamped.
func NewResult(originalFile string) ProcessResult {
	return ProcessResult{
		OriginalFile: originalFile,
		Timestamp:    time.Now().Format(time.RFC3339),
	}
}

// Report is an append-only collection of results, safe for concurrent
// appends from worker goroutines. Order reflects completion, not input
// enumeration.
type Report struct {
	mu      sync.Mutex
	results []ProcessResult
}

func New() *Report {
	return &Report{}
}

func (r *Report) Append(res ProcessResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
}

// Results returns a copy of the collected results.
func (r *Report) Results() []ProcessResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ProcessResult, len(r.results))
	copy(out, r.results)
	return out
}

// Update replaces the record for originalFile, used by the interactive
// review pass. Returns false when no such record exists.
func (r *Report) Update(res ProcessResult) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.results {
		if r.results[i].OriginalFile == res.OriginalFile {
			r.results[i] = res
			return true
		}
	}
	return false
}

// Summary counts results by status.
type Summary struct {
	Total         int
	Success       int
	SuccessManual int
	NoText        int
	NoName        int
	RenameFailed  int
	Skipped       int
	Errors        int
}

func (r *Report) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	var s Summary
	s.Total = len(r.results)
	for _, res := range r.results {
		switch res.Status {
		case constants.StatusSuccess:
			s.Success++
		case constants.StatusSuccessManual:
			s.SuccessManual++
		case constants.StatusNoText:
			s.NoText++
		case constants.StatusNoName:
			s.NoName++
		case constants.StatusRenameFailed:
			s.RenameFailed++
		case constants.StatusSkipped:
			s.Skipped++
		default:
			s.Errors++
		}
	}
	return s
}
