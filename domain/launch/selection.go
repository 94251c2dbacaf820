package launch

import "fmt"

// AllSitesValue is the selector value that stands for every launch site.
const AllSitesValue = "ALL"

// SiteChoice is either "all sites" or one specific site name.
// The zero value is AllSites. A specific site stays specific even when its
// name is empty; it then matches no records.
type SiteChoice struct {
	specific bool
	name     string
}

// AllSites selects every launch site.
func AllSites() SiteChoice { return SiteChoice{} }

// SpecificSite selects a single launch site by name.
func SpecificSite(name string) SiteChoice { return SiteChoice{specific: true, name: name} }

// ParseSiteChoice maps a selector value to a SiteChoice. Empty and "ALL" mean all sites.
func ParseSiteChoice(value string) SiteChoice {
	if value == "" || value == AllSitesValue {
		return AllSites()
	}
	return SpecificSite(value)
}

// IsAll reports whether the choice covers every site.
func (c SiteChoice) IsAll() bool { return !c.specific }

// Name returns the selected site name, or "" for all sites.
func (c SiteChoice) Name() string { return c.name }

// Value returns the selector value for the choice ("ALL" for all sites).
func (c SiteChoice) Value() string {
	if c.IsAll() {
		return AllSitesValue
	}
	return c.name
}

func (c SiteChoice) String() string { return c.Value() }

// Matches reports whether a record launched from site passes the site test.
func (c SiteChoice) Matches(site string) bool {
	return c.IsAll() || c.name == site
}

// PayloadRange is an inclusive payload mass interval in kilograms.
// A range with Lower > Upper matches nothing.
type PayloadRange struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Contains reports whether Lower <= kg <= Upper.
func (r PayloadRange) Contains(kg float64) bool {
	return r.Lower <= kg && kg <= r.Upper
}

// Empty reports whether the range can match no payload.
func (r PayloadRange) Empty() bool { return r.Lower > r.Upper }

func (r PayloadRange) String() string {
	return fmt.Sprintf("[%g, %g]", r.Lower, r.Upper)
}

// Selection is the dashboard's current filter state.
// A nil Payload means no payload constraint, which is how the pie chart is driven.
type Selection struct {
	Site    SiteChoice
	Payload *PayloadRange
}

// SiteOnly builds a selection with no payload constraint.
func SiteOnly(site SiteChoice) Selection {
	return Selection{Site: site}
}

// SiteAndPayload builds a selection constrained by both site and payload range.
func SiteAndPayload(site SiteChoice, lower, upper float64) Selection {
	return Selection{Site: site, Payload: &PayloadRange{Lower: lower, Upper: upper}}
}
