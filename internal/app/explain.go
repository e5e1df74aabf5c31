package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"slcsp/internal/domain"
	"slcsp/internal/services/report"
)

// Explain output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ExplainRecord describes how one target's rate was decided.
type ExplainRecord struct {
	ZipCode string `yaml:"zipcode" json:"zipcode"`
	Outcome string `yaml:"outcome" json:"outcome"`
	Region  string `yaml:"region,omitempty" json:"region,omitempty"`
	Rate    string `yaml:"rate,omitempty" json:"rate,omitempty"`
}

// ExplainRecords pairs each target with its selection result.
func ExplainRecords(targets []domain.TargetRow, results []domain.RateResult) []ExplainRecord {
	out := make([]ExplainRecord, len(targets))
	for i, t := range targets {
		r := results[i]
		out[i] = ExplainRecord{
			ZipCode: t.PostalCode.String(),
			Outcome: r.Outcome.String(),
			Region:  r.Region.String(),
			Rate:    report.Line(t.PostalCode, r).Rate,
		}
	}
	return out
}

// Explain writes one record per target, in target order, as YAML or JSON.
func (a *App) Explain(w io.Writer, format string) error {
	format = strings.ToLower(format)
	if format != FormatYAML && format != FormatJSON {
		return fmt.Errorf("%q: %w", format, domain.ErrUnknownFormat)
	}

	c, err := a.Compute()
	if err != nil {
		return err
	}
	recs := ExplainRecords(c.Targets, a.Report.Results(c.Targets, c.Resolutions, c.Index))
	return EncodeRecords(w, format, recs)
}

// EncodeRecords writes recs to w in format.
func EncodeRecords(w io.Writer, format string, recs []ExplainRecord) error {
	switch strings.ToLower(format) {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}
	return fmt.Errorf("%q: %w", format, domain.ErrUnknownFormat)
}
