package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rebelice/lazystay/internal/models"
	"github.com/xuri/excelize/v2"
)

// Table is a list flattened to display strings, one row per record
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
}

// FileName builds a timestamped export file name for a list
func FileName(domain models.Domain, ext string, now time.Time) string {
	return fmt.Sprintf("lazystay-%s-%s.%s", domain, now.Format("20060102-150405"), ext)
}

// ExportToCSV writes the table to a CSV file
func ExportToCSV(table Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	return writeCSV(file, table)
}

// writeCSV writes table to w and closes it, reporting a failed close
func writeCSV(w io.WriteCloser, table Table) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close CSV file: %w", cerr)
		}
	}()

	writer := csv.NewWriter(w)

	if err := writer.Write(table.Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}
	return nil
}

// ExportToJSON writes records as an indented JSON array
func ExportToJSON[T any](records []T, path string) error {
	if records == nil {
		records = []T{}
	}

	// Marshal to JSON with pretty printing
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records to JSON: %w", err)
	}

	// Write to file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	return nil
}

// ExportToXLSX writes the table to a single-sheet workbook
func ExportToXLSX(table Table, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := table.Title
	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &table.Header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write XLSX file: %w", err)
	}
	return nil
}

// PlainText renders the table as tab separated lines for the clipboard
func PlainText(table Table) string {
	var b strings.Builder
	b.WriteString(strings.Join(table.Header, "\t"))
	for _, row := range table.Rows {
		b.WriteByte('\n')
		b.WriteString(strings.Join(row, "\t"))
	}
	return b.String()
}
