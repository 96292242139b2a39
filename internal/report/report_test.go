package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chuntim/receipt-renamer/constants"
)

func sampleReport() *Report {
	r := New()
	r.Append(ProcessResult{OriginalFile: "a.jpg", Status: constants.StatusSuccess, CustomerName: "John Tan", NewFilename: "John_Tan_receipt.jpg"})
	r.Append(ProcessResult{OriginalFile: "b.jpg", Status: constants.StatusNoName})
	r.Append(ProcessResult{OriginalFile: "c.pdf", Status: constants.StatusNoText})
	r.Append(ProcessResult{OriginalFile: "d.png", Status: constants.StatusError, Error: "boom"})
	r.Append(ProcessResult{OriginalFile: "e.jpg", Status: constants.StatusSkipped})
	return r
}

func TestSummaryCountsByStatus(t *testing.T) {
	s := sampleReport().Summary()

	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 1, s.Success)
	assert.Equal(t, 0, s.SuccessManual)
	assert.Equal(t, 1, s.NoText)
	assert.Equal(t, 1, s.NoName)
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, 1, s.Errors)
}

func TestUpdateReplacesByOriginalFile(t *testing.T) {
	r := sampleReport()

	ok := r.Update(ProcessResult{
		OriginalFile: "b.jpg",
		Status:       constants.StatusSuccessManual,
		CustomerName: "Mary Lee",
		NewFilename:  "Mary_Lee_receipt.jpg",
	})

	require.True(t, ok)
	s := r.Summary()
	assert.Equal(t, 1, s.SuccessManual)
	assert.Equal(t, 0, s.NoName)
	assert.False(t, r.Update(ProcessResult{OriginalFile: "missing.jpg"}))
}

func TestResultsReturnsCopy(t *testing.T) {
	r := sampleReport()

	out := r.Results()
	out[0].CustomerName = "mutated"

	assert.Equal(t, "John Tan", r.Results()[0].CustomerName)
}

func TestConcurrentAppends(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Append(ProcessResult{OriginalFile: "x.jpg", Status: constants.StatusSuccess})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, r.Summary().Total)
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()

	path, err := sampleReport().Write(dir, FormatJSON)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "receipt_processing_report_"))
	assert.True(t, strings.HasSuffix(path, ".json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded []ProcessResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 5)
	assert.Equal(t, "a.jpg", decoded[0].OriginalFile)
	assert.Equal(t, constants.StatusSuccess, decoded[0].Status)
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()

	path, err := sampleReport().Write(dir, FormatCSV)

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 6) // header + 5 rows
	assert.Contains(t, lines[0], "original_file")
	assert.Contains(t, lines[1], "John_Tan_receipt.jpg")
}

func TestWriteXLSX(t *testing.T) {
	dir := t.TempDir()

	path, err := sampleReport().Write(dir, FormatXLSX)

	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestWriteUnknownFormat(t *testing.T) {
	_, err := sampleReport().Write(t.TempDir(), Format("yaml"))

	assert.Error(t, err)
}
