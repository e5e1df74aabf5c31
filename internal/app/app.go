package app

import (
	"fmt"
	"io"

	"slcsp/internal/crypto"
	"slcsp/internal/domain"
	"slcsp/internal/store"
)

// App runs the rate computation against a resolved Config.
type App struct {
	*Wire
	cfg Config
}

// New resolves cfg and builds the app.
func New(cfg Config) *App {
	cfg = cfg.Resolve()
	return &App{Wire: NewWire(cfg), cfg: cfg}
}

// Config returns the resolved configuration.
func (a *App) Config() Config { return a.cfg }

// Computation is everything built from one load of the datasets.
type Computation struct {
	Targets     []domain.TargetRow
	Index       domain.RateIndex
	Resolutions domain.Resolutions
}

// Compute loads the three tables and builds the rate index and the postal
// code resolutions. Nothing is written.
func (a *App) Compute() (Computation, error) {
	postal, err := a.Store.LoadPostal()
	if err != nil {
		return Computation{}, fmt.Errorf("load zips: %w", err)
	}
	plans, err := a.Store.LoadPlans()
	if err != nil {
		return Computation{}, fmt.Errorf("load plans: %w", err)
	}
	targets, err := a.Store.LoadTargets()
	if err != nil {
		return Computation{}, fmt.Errorf("load targets: %w", err)
	}
	a.Log.Debug("datasets loaded", "zips", len(postal), "plans", len(plans), "targets", len(targets))
	if len(plans) != len(postal) {
		a.Log.Warn("plan and zip tables differ in length; regions are taken by row position",
			"zips", len(postal), "plans", len(plans))
	}

	idx, err := a.Rates.Build(plans, postal)
	if err != nil {
		return Computation{}, fmt.Errorf("index rates: %w", err)
	}
	res := a.Regions.Build(postal, targets)
	a.Log.Debug("indexes built", "regions", len(idx), "resolved", len(res))

	c := Computation{Targets: targets, Index: idx, Resolutions: res}
	if a.cfg.Dump {
		Dump(a.cfg.DumpTo, c)
	}
	return c, nil
}

// Calc computes the report and hands it to sink. The report is fully built
// before sink is called, so a failure leaves no partial output.
func (a *App) Calc(sink domain.ReportSink) error {
	c, err := a.Compute()
	if err != nil {
		return err
	}
	a.logFingerprints()

	results := a.Report.Results(c.Targets, c.Resolutions, c.Index)
	lines := a.Report.Render(c.Targets, c.Resolutions, c.Index)
	if err := sink.WriteReport(lines); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	counts := CountOutcomes(results)
	a.Log.Info("report written",
		"targets", len(lines),
		"rated", counts[domain.OutcomeRate],
		"no_second_lowest", counts[domain.OutcomeNoSecondLowestRate],
		"no_rate_plan", counts[domain.OutcomeNoRatePlan],
		"ambiguous", counts[domain.OutcomeAmbiguous],
	)
	return nil
}

// Sink returns the report destination named by the config: the Out file
// when set, otherwise stdout.
func (a *App) Sink(stdout io.Writer) domain.ReportSink {
	if a.cfg.Out == "" {
		return store.WriterSink{W: stdout}
	}
	return store.FileSink{Path: a.cfg.Out, Mode: 0o644}
}

// InputFingerprint identifies one input table.
type InputFingerprint struct {
	Name        string
	Path        string
	Fingerprint domain.Fingerprint
}

// Fingerprints hashes each input file.
func (a *App) Fingerprints() ([]InputFingerprint, error) {
	inputs := a.Store.Inputs()
	out := make([]InputFingerprint, 0, len(inputs))
	for _, in := range inputs {
		fp, err := crypto.FingerprintFile(in.Path)
		if err != nil {
			return nil, fmt.Errorf("fingerprint %s: %w", in.Name, err)
		}
		out = append(out, InputFingerprint{Name: in.Name, Path: in.Path, Fingerprint: fp})
	}
	return out, nil
}

func (a *App) logFingerprints() {
	fps, err := a.Fingerprints()
	if err != nil {
		a.Log.Debug("fingerprint inputs", "err", err)
		return
	}
	for _, fp := range fps {
		a.Log.Debug("input", "table", fp.Name, "path", fp.Path, "fingerprint", fp.Fingerprint.String())
	}
}

// CountOutcomes tallies results by outcome.
func CountOutcomes(results []domain.RateResult) map[domain.Outcome]int {
	counts := make(map[domain.Outcome]int, 4)
	for _, r := range results {
		counts[r.Outcome]++
	}
	return counts
}
