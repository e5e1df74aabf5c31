package domain

import (
	interfaces "slcsp/internal/domain/interfaces"
	types "slcsp/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	PostalCode  = types.PostalCode
	RegionKey   = types.RegionKey
	Fingerprint = types.Fingerprint
	PostalRow   = types.PostalRow
	PlanRow     = types.PlanRow
	TargetRow   = types.TargetRow
	RateIndex   = types.RateIndex
	Resolution  = types.Resolution
	Resolutions = types.Resolutions
	Outcome     = types.Outcome
	RateResult  = types.RateResult
	ReportLine  = types.ReportLine
)

// Outcome values re-exported for callers that only import domain.
const (
	OutcomeRate               = types.OutcomeRate
	OutcomeNoSecondLowestRate = types.OutcomeNoSecondLowestRate
	OutcomeNoRatePlan         = types.OutcomeNoRatePlan
	OutcomeAmbiguous          = types.OutcomeAmbiguous

	MetalSilver = types.MetalSilver
)

// NewRegionKey joins a state and rate area into a RegionKey.
func NewRegionKey(state, rateArea string) RegionKey {
	return types.NewRegionKey(state, rateArea)
}

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	DatasetStore     = interfaces.DatasetStore
	ReportSink       = interfaces.ReportSink
	RateIndexBuilder = interfaces.RateIndexBuilder
	RegionResolver   = interfaces.RegionResolver
	RateSelector     = interfaces.RateSelector
	ReportBuilder    = interfaces.ReportBuilder
)
