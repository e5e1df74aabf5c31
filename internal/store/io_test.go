package store_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"slcsp/internal/domain"
	"slcsp/internal/store"
)

var lines = []domain.ReportLine{
	{PostalCode: "64148", Rate: "245.20"},
	{PostalCode: "43343"},
	{PostalCode: "64148", Rate: "245.20"},
}

const wantReport = "zipcode,rate\n64148,245.20\n43343,\n64148,245.20\n"

func TestWriteReport_Format(t *testing.T) {
	var buf bytes.Buffer
	if err := store.WriteReport(&buf, lines); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	if buf.String() != wantReport {
		t.Fatalf("got %q, want %q", buf.String(), wantReport)
	}
}

func TestWriteReport_EmptyHasHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := store.WriteReport(&buf, nil); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	if buf.String() != "zipcode,rate\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestFileSink_ReplacesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	if err := os.WriteFile(path, []byte("stale"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := (store.FileSink{Path: path}).WriteReport(lines); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != wantReport {
		t.Fatalf("got %q, want %q", got, wantReport)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %d entries", len(entries))
	}
}
