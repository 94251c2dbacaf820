package services

import (
	"html/template"
	"io"
	"time"

	"spacexdash/adapters/excel"
	"spacexdash/domain/launch"
	"spacexdash/internal"
	"spacexdash/internal/config"
	"spacexdash/internal/errors"
	"spacexdash/internal/profiling"
)

// Dropdown describes the launch site selector.
type Dropdown struct {
	Options     []config.SiteOption `json:"options"`
	Value       string              `json:"value"`
	Placeholder string              `json:"placeholder"`
	Searchable  bool                `json:"searchable"`
}

// Controls is everything the page needs to draw its widgets.
type Controls struct {
	Title    string              `json:"title"`
	About    template.HTML       `json:"about"`
	Dropdown Dropdown            `json:"dropdown"`
	Slider   launch.SliderConfig `json:"slider"`
}

// DatasetInfo describes the loaded snapshot.
type DatasetInfo struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Fingerprint string    `json:"fingerprint"`
	Records     int       `json:"records"`
	Sites       []string  `json:"sites"`
	LoadedAt    time.Time `json:"loaded_at"`
}

// DataService answers the dashboard's widget callbacks. It holds the
// read-only dataset and no other state, so it is safe for concurrent use.
type DataService struct {
	snapshot *launch.Snapshot
	layout   config.Layout
	charts   *ChartService
	render   *RenderService
	profiler *profiling.Profiler
	slider   launch.SliderConfig
	log      *internal.Logger
}

func NewDataService(snap *launch.Snapshot, layout config.Layout, profiler *profiling.Profiler) *DataService {
	s := &DataService{
		snapshot: snap,
		layout:   layout,
		charts:   NewChartService(),
		render:   NewRenderService(),
		profiler: profiler,
		slider:   launch.NewSliderConfig(snap.Data, layout.SliderStep),
		log:      internal.DefaultLogger.Named("Dashboard"),
	}
	for _, site := range snap.Data.Sites() {
		if !layout.AllowsSite(site) {
			s.log.Warn("dataset site %q is not offered by the site selector", site)
		}
	}
	return s
}

// Dataset returns the loaded dataset.
func (s *DataService) Dataset() *launch.Dataset {
	return s.snapshot.Data
}

// Info describes the loaded snapshot.
func (s *DataService) Info() DatasetInfo {
	return DatasetInfo{
		ID:          s.snapshot.ID.String(),
		Source:      s.snapshot.Source,
		Fingerprint: s.snapshot.Fingerprint.String(),
		Records:     s.snapshot.Data.Len(),
		Sites:       s.snapshot.Data.Sites(),
		LoadedAt:    s.snapshot.LoadedAt,
	}
}

// Controls returns the initial widget state.
func (s *DataService) Controls() Controls {
	return Controls{
		Title: s.layout.Title,
		About: s.render.RenderMarkdown(s.layout.About),
		Dropdown: Dropdown{
			Options:     s.layout.SiteOptions(),
			Value:       launch.AllSitesValue,
			Placeholder: s.layout.Placeholder,
			Searchable:  true,
		},
		Slider: s.slider,
	}
}

// ParseSite validates a selector value against the dropdown options.
func (s *DataService) ParseSite(value string) (launch.SiteChoice, error) {
	if value == "" {
		return launch.AllSites(), nil
	}
	if !s.layout.AllowsSite(value) {
		return launch.SiteChoice{}, errors.InvalidInput("unknown launch site: " + value)
	}
	return launch.ParseSiteChoice(value), nil
}

// DefaultRange is the slider's initial payload range.
func (s *DataService) DefaultRange() launch.PayloadRange {
	return s.slider.Range()
}

// SuccessPie is the callback for the site selector: success/failure counts
// for the chosen site, ignoring the payload range.
func (s *DataService) SuccessPie(site launch.SiteChoice) Figure {
	view := launch.Filter(s.snapshot.Data, launch.SiteOnly(site))
	s.log.Debug("pie site=%s matched %d records", site, len(view))
	return s.charts.OutcomePie(site, launch.Summarize(view))
}

// PayloadScatter is the callback for the site selector and payload slider.
func (s *DataService) PayloadScatter(site launch.SiteChoice, rng launch.PayloadRange) Figure {
	view := launch.Filter(s.snapshot.Data, launch.SiteAndPayload(site, rng.Lower, rng.Upper))
	s.log.Debug("scatter site=%s payload=%s matched %d records", site, rng, len(view))
	return s.charts.PayloadScatter(site, launch.Project(view))
}

// Summary profiles the records matching sel.
func (s *DataService) Summary(sel launch.Selection) (profiling.Profile, error) {
	view := launch.Filter(s.snapshot.Data, sel)
	label := sel.Site.Value()
	if sel.Payload != nil {
		label += " " + sel.Payload.String()
	}
	profile, err := s.profiler.ProfileView(label, view)
	if err != nil {
		return profiling.Profile{}, errors.Wrap(err, "failed to profile selection")
	}
	return profile, nil
}

// Export writes the records matching sel to w as an xlsx workbook.
func (s *DataService) Export(w io.Writer, sel launch.Selection) error {
	view := launch.Filter(s.snapshot.Data, sel)
	if err := excel.WriteView(w, view); err != nil {
		return errors.Wrap(err, "failed to write export")
	}
	return nil
}
