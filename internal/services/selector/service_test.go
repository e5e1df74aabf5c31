package selector_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"slcsp/internal/domain"
	"slcsp/internal/services/selector"
)

func rates(ss ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(ss))
	for i, s := range ss {
		out[i] = decimal.RequireFromString(s)
	}
	return out
}

var (
	idx = domain.RateIndex{
		"WI-3": rates("365.48", "369.40", "400.00"),
		"KY-8": rates("290.05"),
	}
	res = domain.Resolutions{
		"54923": {Region: "WI-3"},
		"40813": {Region: "KY-8"},
		"42330": {Region: "KY-1"},
		"43343": {Region: "OH-1", Ambiguous: true},
	}
)

func TestSelect_SecondLowest(t *testing.T) {
	got := selector.New().Select("54923", res, idx)

	assert.Equal(t, domain.OutcomeRate, got.Outcome)
	assert.True(t, got.Rate.Equal(decimal.RequireFromString("369.40")), "got %s", got.Rate)
	assert.Equal(t, domain.RegionKey("WI-3"), got.Region)
}

func TestSelect_SingleRate(t *testing.T) {
	got := selector.New().Select("40813", res, idx)
	assert.Equal(t, domain.OutcomeNoSecondLowestRate, got.Outcome)
}

func TestSelect_RegionWithoutPlans(t *testing.T) {
	got := selector.New().Select("42330", res, idx)
	assert.Equal(t, domain.OutcomeNoRatePlan, got.Outcome)
	assert.Equal(t, domain.RegionKey("KY-1"), got.Region)
}

func TestSelect_Ambiguous(t *testing.T) {
	// OH-1 is not indexed; ambiguity wins regardless.
	got := selector.New().Select("43343", res, idx)
	assert.Equal(t, domain.OutcomeAmbiguous, got.Outcome)
}

func TestSelect_UnknownCode(t *testing.T) {
	got := selector.New().Select("99999", res, idx)
	assert.Equal(t, domain.OutcomeNoRatePlan, got.Outcome)
	assert.Empty(t, got.Region)
}

func TestSelect_Idempotent(t *testing.T) {
	sel := selector.New()
	for _, code := range []domain.PostalCode{"54923", "40813", "42330", "43343", "99999"} {
		first := sel.Select(code, res, idx)
		second := sel.Select(code, res, idx)
		assert.Equal(t, first.Outcome, second.Outcome, code)
		assert.True(t, first.Rate.Equal(second.Rate), code)
	}
}
