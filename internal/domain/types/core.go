package types

// PostalCode is a five-digit ZIP code as it appears in the input tables.
type PostalCode string

// String returns the string form of the postal code.
func (c PostalCode) String() string { return string(c) }

// RegionKey identifies a pricing region as "<state>-<rate_area>", e.g. "WI-3".
type RegionKey string

// NewRegionKey joins a state and rate area into a RegionKey.
func NewRegionKey(state, rateArea string) RegionKey {
	return RegionKey(state + "-" + rateArea)
}

// String returns the string form of the region key.
func (k RegionKey) String() string { return string(k) }

// Fingerprint is a short identifier for an input dataset presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
