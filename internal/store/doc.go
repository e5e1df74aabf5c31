// Package store provides file-based access to the rate datasets.
//
// It reads the three input tables (postal codes, plans, targets) from CSV
// files with their header row removed, and writes the finished report.
// Report files are replaced atomically so a failed run never leaves a
// partially written report behind.
//
// The package includes:
//   - CSVStore, a domain.DatasetStore over a directory of CSV files
//   - WriteReport and WriteReportFile for the zipcode,rate table
//   - WriterSink and FileSink, domain.ReportSink implementations
package store
