package regions

import "slcsp/internal/domain"

// Service builds postal code resolutions.
type Service struct{}

// New returns a region resolver.
func New() *Service { return &Service{} }

// Build walks postal rows in order and records a Resolution for every code
// that appears in targets. Codes outside targets are ignored.
func (s *Service) Build(postal []domain.PostalRow, targets []domain.TargetRow) domain.Resolutions {
	wanted := make(map[domain.PostalCode]struct{}, len(targets))
	for _, t := range targets {
		wanted[t.PostalCode] = struct{}{}
	}

	res := make(domain.Resolutions, len(wanted))
	for _, row := range postal {
		if _, ok := wanted[row.PostalCode]; !ok {
			continue
		}
		region := row.Region()
		cur, seen := res[row.PostalCode]
		switch {
		case !seen:
			res[row.PostalCode] = domain.Resolution{Region: region}
		case cur.Ambiguous:
			// stays ambiguous
		case cur.Region != region:
			cur.Ambiguous = true
			res[row.PostalCode] = cur
		}
	}
	return res
}

// Compile-time assertion that Service implements domain.RegionResolver.
var _ domain.RegionResolver = (*Service)(nil)
