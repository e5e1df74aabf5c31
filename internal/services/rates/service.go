package rates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"slcsp/internal/domain"
)

// Service builds rate indexes.
type Service struct{}

// New returns a rate index builder.
func New() *Service { return &Service{} }

// Build indexes every Silver plan rate under the region of the postal row at
// the same position. Duplicate rates within a region are kept once and each
// region's rates are sorted ascending.
func (s *Service) Build(plans []domain.PlanRow, postal []domain.PostalRow) (domain.RateIndex, error) {
	idx := make(domain.RateIndex)
	for i, p := range plans {
		if p.MetalLevel != domain.MetalSilver {
			continue
		}
		if i >= len(postal) {
			return nil, fmt.Errorf("plan row %d: %w", i, domain.ErrUnalignedRow)
		}
		rate, err := ParseRate(p.Rate)
		if err != nil {
			return nil, &domain.ParseError{Row: i, Value: p.Rate, Err: err}
		}
		key := postal[i].Region()
		if !contains(idx[key], rate) {
			idx[key] = append(idx[key], rate)
		}
	}

	for _, rs := range idx {
		sort.Slice(rs, func(a, b int) bool { return rs[a].LessThan(rs[b]) })
	}
	return idx, nil
}

// ParseRate parses a plan rate such as "369.40".
func ParseRate(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

func contains(rs []decimal.Decimal, v decimal.Decimal) bool {
	for _, r := range rs {
		if r.Equal(v) {
			return true
		}
	}
	return false
}

// Compile-time assertion that Service implements domain.RateIndexBuilder.
var _ domain.RateIndexBuilder = (*Service)(nil)
