package store

import (
	"io"
	"os"

	"slcsp/internal/domain"
)

// WriterSink writes the report to an io.Writer such as stdout.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) WriteReport(lines []domain.ReportLine) error {
	return WriteReport(s.W, lines)
}

// FileSink replaces the file at Path with the report.
type FileSink struct {
	Path string
	Mode os.FileMode
}

func (s FileSink) WriteReport(lines []domain.ReportLine) error {
	mode := s.Mode
	if mode == 0 {
		mode = 0o644
	}
	return WriteReportFile(s.Path, lines, mode)
}

var (
	_ domain.ReportSink = WriterSink{}
	_ domain.ReportSink = FileSink{}
)
