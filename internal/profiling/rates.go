package profiling

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"spacexdash/domain/launch"
)

// SiteRate is the success rate for one launch site with a Wilson score interval.
type SiteRate struct {
	Site      string  `json:"site"`
	Launches  int     `json:"launches"`
	Successes int     `json:"successes"`
	Rate      float64 `json:"rate"`
	Lower     float64 `json:"ci_lower"`
	Upper     float64 `json:"ci_upper"`
}

// SuccessRates groups view by site (first-appearance order) and computes each
// site's success rate with a two-sided Wilson interval at the given confidence.
func SuccessRates(view launch.FilteredView, confidence float64) []SiteRate {
	type tally struct{ n, k int }
	counts := make(map[string]*tally)
	var order []string
	for _, r := range view {
		t, ok := counts[r.Site]
		if !ok {
			t = &tally{}
			counts[r.Site] = t
			order = append(order, r.Site)
		}
		t.n++
		if r.Class == launch.Success {
			t.k++
		}
	}

	z := zScore(confidence)
	rates := make([]SiteRate, 0, len(order))
	for _, site := range order {
		t := counts[site]
		lo, hi := WilsonInterval(t.k, t.n, z)
		rates = append(rates, SiteRate{
			Site:      site,
			Launches:  t.n,
			Successes: t.k,
			Rate:      float64(t.k) / float64(t.n),
			Lower:     lo,
			Upper:     hi,
		})
	}
	return rates
}

// WilsonInterval returns the Wilson score interval for k successes out of n
// trials at critical value z. n == 0 yields [0, 1].
func WilsonInterval(k, n int, z float64) (lower, upper float64) {
	if n == 0 {
		return 0, 1
	}
	nf := float64(n)
	p := float64(k) / nf
	z2 := z * z
	denom := 1 + z2/nf
	centre := (p + z2/(2*nf)) / denom
	half := z * math.Sqrt(p*(1-p)/nf+z2/(4*nf*nf)) / denom
	return math.Max(0, centre-half), math.Min(1, centre+half)
}

func zScore(confidence float64) float64 {
	if confidence <= 0 || confidence >= 1 {
		confidence = 0.95
	}
	normal := distuv.Normal{Mu: 0, Sigma: 1}
	return normal.Quantile(1 - (1-confidence)/2)
}

// PayloadOutcomeCorrelation returns the point-biserial correlation between
// payload mass and outcome class. ok is false when fewer than two records are
// present or either variable is constant.
func PayloadOutcomeCorrelation(view launch.FilteredView) (r float64, ok bool) {
	if len(view) < 2 {
		return 0, false
	}
	xs := make([]float64, len(view))
	ys := make([]float64, len(view))
	for i, rec := range view {
		xs[i] = rec.PayloadMassKg
		ys[i] = float64(rec.Class)
	}
	if stat.Variance(xs, nil) == 0 || stat.Variance(ys, nil) == 0 {
		return 0, false
	}
	return stat.Correlation(xs, ys, nil), true
}
