package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"slcsp/internal/domain"
)

// readCSV reads every record of path and drops the header row.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

// requireColumns checks record i of path has at least n columns.
func requireColumns(path string, i int, rec []string, n int) error {
	if len(rec) < n {
		return fmt.Errorf("%s row %d: want %d columns, got %d: %w", path, i, n, len(rec), domain.ErrShortRow)
	}
	return nil
}

// header is the first line of every report.
var header = []string{"zipcode", "rate"}

// WriteReport writes the zipcode,rate table to w.
func WriteReport(w io.Writer, lines []domain.ReportLine) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, l := range lines {
		if err := cw.Write([]string{l.PostalCode.String(), l.Rate}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReportFile renders the report in memory and writes it to path.
func WriteReportFile(path string, lines []domain.ReportLine, mode os.FileMode) error {
	var buf bytes.Buffer
	if err := WriteReport(&buf, lines); err != nil {
		return err
	}
	return writeFile(path, buf.Bytes(), mode)
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

func cell(s string) string { return strings.TrimSpace(s) }
