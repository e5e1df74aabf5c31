package interfaces

import domaintypes "slcsp/internal/domain/types"

// RateIndexBuilder builds the region to sorted Silver rate index.
type RateIndexBuilder interface {
	Build(plans []domaintypes.PlanRow, postal []domaintypes.PostalRow) (domaintypes.RateIndex, error)
}

// RegionResolver maps target postal codes to their pricing region.
type RegionResolver interface {
	Build(postal []domaintypes.PostalRow, targets []domaintypes.TargetRow) domaintypes.Resolutions
}

// RateSelector picks the second-lowest Silver rate for one postal code.
type RateSelector interface {
	Select(
		code domaintypes.PostalCode,
		res domaintypes.Resolutions,
		idx domaintypes.RateIndex,
	) domaintypes.RateResult
}

// ReportBuilder renders results in target order.
type ReportBuilder interface {
	Results(
		targets []domaintypes.TargetRow,
		res domaintypes.Resolutions,
		idx domaintypes.RateIndex,
	) []domaintypes.RateResult
	Render(
		targets []domaintypes.TargetRow,
		res domaintypes.Resolutions,
		idx domaintypes.RateIndex,
	) []domaintypes.ReportLine
}
