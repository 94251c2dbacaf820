package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"spacexdash/domain/launch"
	"spacexdash/internal/errors"
)

// SiteOption is one entry of the launch site dropdown.
type SiteOption struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// Layout describes the dashboard controls and headings.
type Layout struct {
	Title         string   `yaml:"title"`
	AllSitesLabel string   `yaml:"all_sites_label"`
	Placeholder   string   `yaml:"placeholder"`
	Sites         []string `yaml:"sites"`
	SliderStep    int      `yaml:"slider_step"`
	About         string   `yaml:"about"`
}

// DefaultLayout reproduces the standard SpaceX launch records dashboard.
func DefaultLayout() Layout {
	return Layout{
		Title:         "SpaceX Launch Records Dashboard",
		AllSitesLabel: "All Sites",
		Placeholder:   "Select a Launch Site here",
		Sites: []string{
			"Cape Canaveral",
			"Kennedy Space Center",
			"Vandenberg",
			"Guiana Space Centre",
		},
		SliderStep: launch.DefaultSliderStep,
		About: "Historical SpaceX launch outcomes. Pick a **launch site** to see its " +
			"success/failure split, and drag the **payload range** to explore how " +
			"payload mass relates to launch success across booster versions.",
	}
}

// LoadLayout reads a YAML layout file. Omitted keys keep their defaults.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read layout file %s", path)
	}
	layout := DefaultLayout()
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, errors.WithCode(errors.CodeConfigInvalid, errors.Wrapf(err, "failed to parse layout file %s", path))
	}
	return &layout, nil
}

// Validate checks that the layout can drive the dashboard.
func (l Layout) Validate() error {
	if len(l.Sites) == 0 {
		return errors.ConfigInvalid("layout must list at least one launch site")
	}
	seen := make(map[string]bool, len(l.Sites))
	for _, s := range l.Sites {
		if s == "" || s == launch.AllSitesValue {
			return errors.ConfigInvalid("layout site names must be non-empty and not " + launch.AllSitesValue)
		}
		if seen[s] {
			return errors.ConfigInvalid("duplicate layout site " + s)
		}
		seen[s] = true
	}
	if l.SliderStep <= 0 {
		return errors.ConfigInvalid("slider_step must be positive")
	}
	return nil
}

// SiteOptions returns the dropdown options, the all-sites sentinel first.
func (l Layout) SiteOptions() []SiteOption {
	opts := make([]SiteOption, 0, len(l.Sites)+1)
	opts = append(opts, SiteOption{Label: l.AllSitesLabel, Value: launch.AllSitesValue})
	for _, s := range l.Sites {
		opts = append(opts, SiteOption{Label: s, Value: s})
	}
	return opts
}

// AllowsSite reports whether value is a dropdown option.
func (l Layout) AllowsSite(value string) bool {
	if value == launch.AllSitesValue {
		return true
	}
	for _, s := range l.Sites {
		if s == value {
			return true
		}
	}
	return false
}
