// Package report turns per-target rate results into output lines.
//
// Lines follow the target list exactly: same order, duplicates repeated.
// A rate is printed with two decimals; every other outcome prints blank.
package report
