package regions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slcsp/internal/domain"
	"slcsp/internal/services/regions"
)

func row(code, state, area string) domain.PostalRow {
	return domain.PostalRow{PostalCode: domain.PostalCode(code), State: state, RateArea: area}
}

func targets(codes ...string) []domain.TargetRow {
	out := make([]domain.TargetRow, len(codes))
	for i, c := range codes {
		out[i] = domain.TargetRow{PostalCode: domain.PostalCode(c)}
	}
	return out
}

func TestBuild_SingleRowIsUnique(t *testing.T) {
	res := regions.New().Build([]domain.PostalRow{row("64148", "MO", "3")}, targets("64148"))

	require.Contains(t, res, domain.PostalCode("64148"))
	assert.Equal(t, domain.Resolution{Region: "MO-3"}, res["64148"])
}

func TestBuild_RepeatedSameRegionIsUnique(t *testing.T) {
	// Same rate area, several counties.
	postal := []domain.PostalRow{
		row("26716", "WV", "9"),
		row("26716", "WV", "9"),
		row("26716", "WV", "9"),
	}
	res := regions.New().Build(postal, targets("26716"))

	assert.False(t, res["26716"].Ambiguous)
	assert.Equal(t, domain.RegionKey("WV-9"), res["26716"].Region)
}

func TestBuild_DifferentRegionsAreAmbiguous(t *testing.T) {
	postal := []domain.PostalRow{
		row("43343", "OH", "A"),
		row("43343", "OH", "B"),
	}
	res := regions.New().Build(postal, targets("43343"))

	assert.True(t, res["43343"].Ambiguous)
}

func TestBuild_SameRateAreaDifferentStateIsAmbiguous(t *testing.T) {
	postal := []domain.PostalRow{
		row("52601", "IA", "3"),
		row("52601", "IL", "3"),
	}
	res := regions.New().Build(postal, targets("52601"))

	assert.True(t, res["52601"].Ambiguous)
}

func TestBuild_AmbiguityNeverReverts(t *testing.T) {
	postal := []domain.PostalRow{
		row("46706", "IN", "3"),
		row("46706", "IN", "4"),
		row("46706", "IN", "3"),
		row("46706", "IN", "3"),
	}
	res := regions.New().Build(postal, targets("46706"))

	assert.True(t, res["46706"].Ambiguous)
}

func TestBuild_IgnoresNonTargetCodes(t *testing.T) {
	postal := []domain.PostalRow{
		row("11111", "NY", "1"),
		row("22222", "NY", "2"),
	}
	res := regions.New().Build(postal, targets("22222", "33333"))

	assert.Len(t, res, 1)
	assert.NotContains(t, res, domain.PostalCode("11111"))
	assert.NotContains(t, res, domain.PostalCode("33333"))
}

func TestBuild_DuplicateTargetsTrackedOnce(t *testing.T) {
	postal := []domain.PostalRow{row("40813", "KY", "8")}
	res := regions.New().Build(postal, targets("40813", "40813"))

	assert.Len(t, res, 1)
	assert.Equal(t, domain.RegionKey("KY-8"), res["40813"].Region)
}
