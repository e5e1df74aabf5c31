package app

import (
	"log/slog"

	"slcsp/internal/domain"
	"slcsp/internal/logger"
	"slcsp/internal/services/rates"
	"slcsp/internal/services/regions"
	"slcsp/internal/services/report"
	"slcsp/internal/services/selector"
	"slcsp/internal/store"
)

// Wire bundles the dataset store and rate services for the CLI.
type Wire struct {
	Store    *store.CSVStore
	Rates    domain.RateIndexBuilder
	Regions  domain.RegionResolver
	Selector domain.RateSelector
	Report   domain.ReportBuilder
	Log      *slog.Logger
}

// NewWire constructs the dependency graph from cfg. cfg should already be
// resolved.
func NewWire(cfg Config) *Wire {
	// File-based dataset store
	ds := store.NewCSVStore(cfg.Dir)
	ds.Postal = cfg.Zips
	ds.Plans = cfg.Plans
	ds.Targets = cfg.Targets

	// Rate services
	sel := selector.New()

	return &Wire{
		Store:    ds,
		Rates:    rates.New(),
		Regions:  regions.New(),
		Selector: sel,
		Report:   report.New(sel),
		Log:      logger.L(),
	}
}
