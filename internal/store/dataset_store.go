package store

import (
	"path/filepath"

	"slcsp/internal/domain"
)

// Default file names inside a dataset directory.
const (
	DefaultPostalFile = "zips.csv"
	DefaultPlanFile   = "plans.csv"
	DefaultTargetFile = "slcsp.csv"
)

// Column layouts of the input tables.
const (
	postalCols = 5 // zipcode,state,county_code,name,rate_area
	planCols   = 5 // plan_id,state,metal_level,rate,rate_area
	targetCols = 1 // zipcode,rate (rate may be absent)
)

// CSVStore loads datasets from CSV files. Relative file names are resolved
// against Dir.
type CSVStore struct {
	Dir     string
	Postal  string
	Plans   string
	Targets string
}

// NewCSVStore returns a store reading the default file names from dir.
func NewCSVStore(dir string) *CSVStore {
	return &CSVStore{
		Dir:     dir,
		Postal:  DefaultPostalFile,
		Plans:   DefaultPlanFile,
		Targets: DefaultTargetFile,
	}
}

// Path resolves name against the store directory.
func (s *CSVStore) Path(name string) string {
	if filepath.IsAbs(name) || s.Dir == "" {
		return name
	}
	return filepath.Join(s.Dir, name)
}

// LoadPostal reads the postal-code table.
func (s *CSVStore) LoadPostal() ([]domain.PostalRow, error) {
	path := s.Path(s.Postal)
	recs, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PostalRow, 0, len(recs))
	for i, rec := range recs {
		if err := requireColumns(path, i, rec, postalCols); err != nil {
			return nil, err
		}
		out = append(out, domain.PostalRow{
			PostalCode: domain.PostalCode(cell(rec[0])),
			State:      cell(rec[1]),
			CountyCode: cell(rec[2]),
			CountyName: cell(rec[3]),
			RateArea:   cell(rec[4]),
		})
	}
	return out, nil
}

// LoadPlans reads the plan table. Rates are left unparsed.
func (s *CSVStore) LoadPlans() ([]domain.PlanRow, error) {
	path := s.Path(s.Plans)
	recs, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PlanRow, 0, len(recs))
	for i, rec := range recs {
		if err := requireColumns(path, i, rec, planCols); err != nil {
			return nil, err
		}
		out = append(out, domain.PlanRow{
			PlanID:     cell(rec[0]),
			State:      cell(rec[1]),
			MetalLevel: cell(rec[2]),
			Rate:       rec[3],
			RateArea:   cell(rec[4]),
		})
	}
	return out, nil
}

// LoadTargets reads the target table in file order, duplicates included.
func (s *CSVStore) LoadTargets() ([]domain.TargetRow, error) {
	path := s.Path(s.Targets)
	recs, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	out := make([]domain.TargetRow, 0, len(recs))
	for i, rec := range recs {
		if err := requireColumns(path, i, rec, targetCols); err != nil {
			return nil, err
		}
		row := domain.TargetRow{PostalCode: domain.PostalCode(cell(rec[0]))}
		if len(rec) > 1 {
			row.Rate = rec[1]
		}
		out = append(out, row)
	}
	return out, nil
}

// Input names one input table and where it is read from.
type Input struct {
	Name string
	Path string
}

// Inputs returns the resolved input paths in load order.
func (s *CSVStore) Inputs() []Input {
	return []Input{
		{Name: "zips", Path: s.Path(s.Postal)},
		{Name: "plans", Path: s.Path(s.Plans)},
		{Name: "targets", Path: s.Path(s.Targets)},
	}
}

// Compile-time assertion that CSVStore implements domain.DatasetStore.
var _ domain.DatasetStore = (*CSVStore)(nil)
