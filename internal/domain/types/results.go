package types

import "github.com/shopspring/decimal"

// RateIndex maps each pricing region to its distinct Silver rates, ascending.
type RateIndex map[RegionKey][]decimal.Decimal

// Lookup returns the sorted rates for key and whether the region is indexed.
func (idx RateIndex) Lookup(key RegionKey) ([]decimal.Decimal, bool) {
	rates, ok := idx[key]
	return rates, ok
}

// Resolution is the region a postal code resolves to. When Ambiguous is set
// Region holds the first region seen and must not be used for pricing.
type Resolution struct {
	Region    RegionKey
	Ambiguous bool
}

// Resolutions holds one Resolution per tracked postal code. A code with no
// postal rows has no entry.
type Resolutions map[PostalCode]Resolution

// Outcome classifies a RateResult.
type Outcome int

const (
	OutcomeRate Outcome = iota
	OutcomeNoSecondLowestRate
	OutcomeNoRatePlan
	OutcomeAmbiguous
)

var outcomeNames = [...]string{
	OutcomeRate:               "rate",
	OutcomeNoSecondLowestRate: "no second lowest rate",
	OutcomeNoRatePlan:         "no rate plan",
	OutcomeAmbiguous:          "ambiguous",
}

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// RateResult is the selection outcome for one target postal code. Rate is
// only meaningful when Outcome is OutcomeRate.
type RateResult struct {
	Outcome Outcome
	Rate    decimal.Decimal
	Region  RegionKey
}

// HasRate reports whether the result carries a printable rate.
func (r RateResult) HasRate() bool { return r.Outcome == OutcomeRate }

// ReportLine is one rendered output row. Rate is empty when no rate applies.
type ReportLine struct {
	PostalCode PostalCode
	Rate       string
}
