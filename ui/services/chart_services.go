package services

import (
	"fmt"

	"spacexdash/domain/launch"
)

// Axis and chart labels shared by the dashboard figures.
const (
	PayloadAxisTitle = "Payload Mass (kg)"
	OutcomeAxisTitle = "Launch Success (1=Success, 0=Failure)"
	BoosterLegend    = "Booster Version Category"
	emptyMessage     = "No launches match the current selection"
)

// Figure is a chart specification in the JSON shape understood by Plotly.js.
type Figure struct {
	Data   []Trace      `json:"data"`
	Layout FigureLayout `json:"layout"`
}

// Trace is one series of a figure.
type Trace struct {
	Type   string    `json:"type"`
	Name   string    `json:"name,omitempty"`
	Labels []string  `json:"labels,omitempty"`
	Values []int     `json:"values,omitempty"`
	X      []float64 `json:"x,omitempty"`
	Y      []int     `json:"y,omitempty"`
	Mode   string    `json:"mode,omitempty"`
	Marker *Marker   `json:"marker,omitempty"`
}

// Marker styles scatter points.
type Marker struct {
	Size  int    `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// FigureLayout is the subset of Plotly layout options the dashboard uses.
type FigureLayout struct {
	Title       Title        `json:"title"`
	XAxis       *Axis        `json:"xaxis,omitempty"`
	YAxis       *Axis        `json:"yaxis,omitempty"`
	Legend      *Legend      `json:"legend,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

type Title struct {
	Text string `json:"text"`
}

type Axis struct {
	Title    Title `json:"title"`
	TickVals []int `json:"tickvals,omitempty"`
}

type Legend struct {
	Title Title `json:"title"`
}

// Annotation is free text placed on the plot, used for the empty state.
type Annotation struct {
	Text      string  `json:"text"`
	ShowArrow bool    `json:"showarrow"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

// ChartService builds figures from aggregated launch data.
type ChartService struct{}

func NewChartService() *ChartService {
	return &ChartService{}
}

// PieTitle is the success pie heading for a site selection.
func PieTitle(site launch.SiteChoice) string {
	return fmt.Sprintf("Success Counts for %s Launch Site", site.Value())
}

// ScatterTitle is the payload scatter heading for a site selection.
func ScatterTitle(site launch.SiteChoice) string {
	return fmt.Sprintf("Payload vs Launch Success for %s", site.Value())
}

// OutcomePie renders an outcome summary as a pie chart with one slice per
// class, largest first. An empty summary yields a pie with no slices and an
// explanatory annotation.
func (s *ChartService) OutcomePie(site launch.SiteChoice, summary launch.OutcomeSummary) Figure {
	slices := summary.Slices()
	trace := Trace{
		Type:   "pie",
		Labels: make([]string, 0, len(slices)),
		Values: make([]int, 0, len(slices)),
	}
	for _, sl := range slices {
		trace.Labels = append(trace.Labels, sl.Class.String())
		trace.Values = append(trace.Values, sl.Count)
	}

	fig := Figure{
		Data:   []Trace{trace},
		Layout: FigureLayout{Title: Title{Text: PieTitle(site)}},
	}
	if len(slices) == 0 {
		fig.Layout.Annotations = []Annotation{emptyAnnotation()}
	}
	return fig
}

// PayloadScatter renders scatter points with one trace per booster category
// so each category gets its own colour and legend entry.
func (s *ChartService) PayloadScatter(site launch.SiteChoice, points []launch.ScatterPoint) Figure {
	order, groups := launch.GroupByBooster(points)
	traces := make([]Trace, 0, len(order))
	for _, category := range order {
		group := groups[category]
		trace := Trace{
			Type:   "scatter",
			Mode:   "markers",
			Name:   category,
			X:      make([]float64, len(group)),
			Y:      make([]int, len(group)),
			Marker: &Marker{Size: 10},
		}
		for i, p := range group {
			trace.X[i] = p.PayloadMassKg
			trace.Y[i] = int(p.Class)
		}
		traces = append(traces, trace)
	}

	fig := Figure{
		Data: traces,
		Layout: FigureLayout{
			Title:  Title{Text: ScatterTitle(site)},
			XAxis:  &Axis{Title: Title{Text: PayloadAxisTitle}},
			YAxis:  &Axis{Title: Title{Text: OutcomeAxisTitle}, TickVals: []int{0, 1}},
			Legend: &Legend{Title: Title{Text: BoosterLegend}},
		},
	}
	if len(traces) == 0 {
		fig.Layout.Annotations = []Annotation{emptyAnnotation()}
	}
	return fig
}

func emptyAnnotation() Annotation {
	return Annotation{
		Text: emptyMessage,
		XRef: "paper",
		YRef: "paper",
		X:    0.5,
		Y:    0.5,
	}
}
