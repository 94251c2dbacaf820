package launch

import "sort"

// Summarize counts records per outcome class. An empty view yields an empty summary.
func Summarize(view FilteredView) OutcomeSummary {
	summary := OutcomeSummary{}
	for _, r := range view {
		summary[r.Class]++
	}
	return summary
}

// Project maps each record to its scatter point, preserving view order.
func Project(view FilteredView) []ScatterPoint {
	points := make([]ScatterPoint, 0, len(view))
	for _, r := range view {
		points = append(points, ScatterPoint{
			PayloadMassKg:   r.PayloadMassKg,
			Class:           r.Class,
			BoosterCategory: r.BoosterCategory,
		})
	}
	return points
}

// OutcomeCount is one slice of an outcome summary.
type OutcomeCount struct {
	Class Outcome `json:"class"`
	Count int     `json:"count"`
}

// Slices orders a summary by descending count, ties broken by class, which
// matches how value counts are usually presented.
func (s OutcomeSummary) Slices() []OutcomeCount {
	out := make([]OutcomeCount, 0, len(s))
	for class, n := range s {
		out = append(out, OutcomeCount{Class: class, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Class < out[j].Class
	})
	return out
}

// GroupByBooster splits scatter points by booster category. Categories are
// returned in order of first appearance so chart traces are stable.
func GroupByBooster(points []ScatterPoint) ([]string, map[string][]ScatterPoint) {
	groups := make(map[string][]ScatterPoint)
	var order []string
	for _, p := range points {
		if _, ok := groups[p.BoosterCategory]; !ok {
			order = append(order, p.BoosterCategory)
		}
		groups[p.BoosterCategory] = append(groups[p.BoosterCategory], p)
	}
	return order, groups
}
