package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chuntim/receipt-renamer/constants"
	"github.com/chuntim/receipt-renamer/internal/report"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func result(file string, status constants.Status) report.ProcessResult {
	return report.ProcessResult{
		OriginalFile: file,
		Status:       status,
		Timestamp:    time.Now().Format(time.RFC3339),
	}
}

func TestOpenCreatesSchema(t *testing.T) {
	s := openStore(t)

	// fresh store knows nothing
	skip, err := s.ShouldSkip("deadbeef")
	require.NoError(t, err)
	assert.False(t, skip)
}

func TestRecordTerminalOutcomeSkipsNextTime(t *testing.T) {
	s := openStore(t)
	runID := uuid.New()
	require.NoError(t, s.BeginRun(runID, "/receipts"))

	require.NoError(t, s.Record(runID, "aaa", result("a.jpg", constants.StatusSuccess)))
	require.NoError(t, s.Record(runID, "bbb", result("b.jpg", constants.StatusNoName)))

	for _, hash := range []string{"aaa", "bbb"} {
		skip, err := s.ShouldSkip(hash)
		require.NoError(t, err)
		assert.True(t, skip, "hash %s", hash)
	}
}

func TestNonTerminalOutcomeStaysRetryable(t *testing.T) {
	s := openStore(t)
	runID := uuid.New()
	require.NoError(t, s.BeginRun(runID, "/receipts"))

	require.NoError(t, s.Record(runID, "ccc", result("c.jpg", constants.StatusError)))
	require.NoError(t, s.Record(runID, "ddd", result("d.jpg", constants.StatusRenameFailed)))
	require.NoError(t, s.Record(runID, "eee", result("e.jpg", constants.StatusNoText)))

	for _, hash := range []string{"ccc", "ddd", "eee"} {
		skip, err := s.ShouldSkip(hash)
		require.NoError(t, err)
		assert.False(t, skip, "hash %s", hash)
	}
}

func TestLaterTerminalOutcomeWins(t *testing.T) {
	s := openStore(t)
	runID := uuid.New()
	require.NoError(t, s.BeginRun(runID, "/receipts"))

	require.NoError(t, s.Record(runID, "fff", result("f.jpg", constants.StatusError)))
	require.NoError(t, s.Record(runID, "fff", result("f.jpg", constants.StatusSuccess)))

	skip, err := s.ShouldSkip("fff")
	require.NoError(t, err)
	assert.True(t, skip)
}

func TestFinishRun(t *testing.T) {
	s := openStore(t)
	runID := uuid.New()
	require.NoError(t, s.BeginRun(runID, "/receipts"))

	require.NoError(t, s.FinishRun(runID, report.Summary{Total: 3, Success: 2, SuccessManual: 1}))
}

func TestHashFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.jpg")
	b := filepath.Join(dir, "b.jpg")
	require.NoError(t, os.WriteFile(a, []byte("same bytes"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("same bytes"), 0o644))

	ha, err := HashFile(a)
	require.NoError(t, err)
	hb, err := HashFile(b)
	require.NoError(t, err)

	assert.Equal(t, ha, hb)
	assert.Len(t, ha, 64)

	require.NoError(t, os.WriteFile(b, []byte("different"), 0o644))
	hb2, err := HashFile(b)
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb2)
}
