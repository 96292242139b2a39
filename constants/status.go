package constants

// Status is the canonical per-file processing outcome.
// These exact strings are written to reports and the history store.
type Status string

const (
	StatusSuccess       Status = "success"           // name extracted, file renamed
	StatusSuccessManual Status = "success_manual"    // name entered during interactive review
	StatusNoText        Status = "no_text_extracted" // text source produced nothing
	StatusNoName        Status = "no_name_found"     // heuristics exhausted; not an error
	StatusRenameFailed  Status = "rename_failed"     // name found but filesystem rename failed
	StatusSkipped       Status = "skipped"           // already has a terminal outcome in history
	StatusError         Status = "error"             // any other per-file fault
)

// Terminal reports whether a status is final: re-running the pipeline on the
// same content would not change the outcome, so history-aware runs skip it.
func (s Status) Terminal() bool {
	switch s {
	case StatusSuccess, StatusSuccessManual, StatusNoName:
		return true
	default:
		return false
	}
}
