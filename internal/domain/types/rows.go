package types

// MetalSilver is the only metal level whose rates are indexed.
const MetalSilver = "Silver"

// PostalRow is one line of the postal-code table. A postal code that spans
// several counties appears once per county.
type PostalRow struct {
	PostalCode PostalCode
	State      string
	CountyCode string
	CountyName string
	RateArea   string
}

// Region returns the pricing region named by this row.
func (r PostalRow) Region() RegionKey { return NewRegionKey(r.State, r.RateArea) }

// PlanRow is one line of the plan table. Rate is kept verbatim until the
// rate index parses it.
type PlanRow struct {
	PlanID     string
	State      string
	MetalLevel string
	Rate       string
	RateArea   string
}

// TargetRow is one line of the target table. Only PostalCode is consumed.
type TargetRow struct {
	PostalCode PostalCode
	Rate       string
}
