package profiling

import (
	"spacexdash/domain/launch"
)

// Profile is the statistics panel shown next to the charts.
type Profile struct {
	Selection   string                `json:"selection"`
	Payload     PayloadSummary        `json:"payload"`
	Outcomes    launch.OutcomeSummary `json:"-"`
	SuccessRate float64               `json:"success_rate"`
	Sites       []SiteRate            `json:"sites"`
	Correlation *float64              `json:"payload_outcome_correlation,omitempty"`
}

// Profiler computes profiles for filtered views.
type Profiler struct {
	analyzer   *DistributionAnalyzer
	confidence float64
}

// NewProfiler creates a profiler using the given interval confidence (e.g. 0.95).
func NewProfiler(confidence float64) *Profiler {
	return &Profiler{analyzer: NewDistributionAnalyzer(), confidence: confidence}
}

// ProfileView summarizes view. label identifies the selection in the output.
func (p *Profiler) ProfileView(label string, view launch.FilteredView) (Profile, error) {
	payloads := make([]float64, len(view))
	for i, r := range view {
		payloads[i] = r.PayloadMassKg
	}
	summary, err := p.analyzer.AnalyzeDistribution(payloads)
	if err != nil {
		return Profile{}, err
	}

	outcomes := launch.Summarize(view)
	profile := Profile{
		Selection: label,
		Payload:   summary,
		Outcomes:  outcomes,
		Sites:     SuccessRates(view, p.confidence),
	}
	if total := outcomes.Total(); total > 0 {
		profile.SuccessRate = float64(outcomes[launch.Success]) / float64(total)
	}
	if r, ok := PayloadOutcomeCorrelation(view); ok {
		profile.Correlation = &r
	}
	return profile, nil
}
