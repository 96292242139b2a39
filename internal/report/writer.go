package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// Format selects the on-disk report representation.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Write persists the report into dir using a timestamped filename and
// returns the path written.
func (r *Report) Write(dir string, format Format) (string, error) {
	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("receipt_processing_report_%s.%s", stamp, format))
	switch format {
	case FormatJSON:
		return path, r.writeJSON(path)
	case FormatCSV:
		return path, r.writeCSV(path)
	case FormatXLSX:
		return path, r.writeXLSX(path)
	default:
		return "", fmt.Errorf("unknown report format %q", format)
	}
}

func (r *Report) writeJSON(path string) error {
	data, err := json.MarshalIndent(r.Results(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (r *Report) writeCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	results := r.Results()
	if err := gocsv.MarshalFile(&results, f); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func (r *Report) writeXLSX(path string) error {
	f := excelize.NewFile()
	const sheet = "Results"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if idx, _ := f.GetSheetIndex(sheet); idx >= 0 {
		f.SetActiveSheet(idx)
	}
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"Original File",
		"Status",
		"Customer Name",
		"Amount",
		"New Filename",
		"Error",
		"Timestamp",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for row, res := range r.Results() {
		values := []any{
			res.OriginalFile,
			string(res.Status),
			res.CustomerName,
			res.Amount,
			res.NewFilename,
			res.Error,
			res.Timestamp,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	return f.SaveAs(path)
}
