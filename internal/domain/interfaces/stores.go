package interfaces

import domaintypes "slcsp/internal/domain/types"

// DatasetStore loads the three input tables with their header rows removed.
type DatasetStore interface {
	LoadPostal() ([]domaintypes.PostalRow, error)
	LoadPlans() ([]domaintypes.PlanRow, error)
	LoadTargets() ([]domaintypes.TargetRow, error)
}

// ReportSink accepts the final ordered report. It is called at most once per run.
type ReportSink interface {
	WriteReport(lines []domaintypes.ReportLine) error
}
