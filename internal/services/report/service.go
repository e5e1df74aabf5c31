package report

import "slcsp/internal/domain"

// Service renders reports using a RateSelector.
type Service struct {
	sel domain.RateSelector
}

// New returns a report builder that selects rates with sel.
func New(sel domain.RateSelector) *Service { return &Service{sel: sel} }

// Results selects a rate for every target, in target order.
func (s *Service) Results(targets []domain.TargetRow, res domain.Resolutions, idx domain.RateIndex) []domain.RateResult {
	out := make([]domain.RateResult, len(targets))
	for i, t := range targets {
		out[i] = s.sel.Select(t.PostalCode, res, idx)
	}
	return out
}

// Render selects and formats a line for every target, in target order.
func (s *Service) Render(targets []domain.TargetRow, res domain.Resolutions, idx domain.RateIndex) []domain.ReportLine {
	results := s.Results(targets, res, idx)
	lines := make([]domain.ReportLine, len(targets))
	for i, t := range targets {
		lines[i] = Line(t.PostalCode, results[i])
	}
	return lines
}

// Line formats a single result.
func Line(code domain.PostalCode, r domain.RateResult) domain.ReportLine {
	if !r.HasRate() {
		return domain.ReportLine{PostalCode: code}
	}
	return domain.ReportLine{PostalCode: code, Rate: r.Rate.StringFixed(2)}
}

// Compile-time assertion that Service implements domain.ReportBuilder.
var _ domain.ReportBuilder = (*Service)(nil)
