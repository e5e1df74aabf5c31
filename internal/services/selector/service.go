package selector

import "slcsp/internal/domain"

// Service selects rates from prebuilt resolutions and a rate index.
type Service struct{}

// New returns a rate selector.
func New() *Service { return &Service{} }

// Select returns the second-lowest distinct Silver rate of the region code
// resolves to. Ambiguous codes, unknown codes, unpriced regions and regions
// with a single rate each yield their own non-rate outcome.
func (s *Service) Select(code domain.PostalCode, res domain.Resolutions, idx domain.RateIndex) domain.RateResult {
	r, ok := res[code]
	if !ok {
		return domain.RateResult{Outcome: domain.OutcomeNoRatePlan}
	}
	if r.Ambiguous {
		return domain.RateResult{Outcome: domain.OutcomeAmbiguous}
	}

	rates, ok := idx.Lookup(r.Region)
	switch {
	case !ok:
		return domain.RateResult{Outcome: domain.OutcomeNoRatePlan, Region: r.Region}
	case len(rates) < 2:
		return domain.RateResult{Outcome: domain.OutcomeNoSecondLowestRate, Region: r.Region}
	}
	return domain.RateResult{Outcome: domain.OutcomeRate, Rate: rates[1], Region: r.Region}
}

// Compile-time assertion that Service implements domain.RateSelector.
var _ domain.RateSelector = (*Service)(nil)
