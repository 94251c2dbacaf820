package launch

import "strconv"

// Outcome is the binary launch result label.
type Outcome int

const (
	Failure Outcome = 0
	Success Outcome = 1
)

// String returns the class value as it appears in the source data ("0" or "1").
func (o Outcome) String() string {
	return strconv.Itoa(int(o))
}

// ParseOutcome parses a class cell. Only "0" and "1" are accepted.
func ParseOutcome(s string) (Outcome, bool) {
	switch s {
	case "0":
		return Failure, true
	case "1":
		return Success, true
	}
	// Spreadsheets sometimes store the class as a float.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	switch f {
	case 0:
		return Failure, true
	case 1:
		return Success, true
	}
	return 0, false
}

// Record is one row of historical launch data. Records are never mutated after load.
type Record struct {
	Site            string  `json:"launch_site" db:"launch_site"`
	PayloadMassKg   float64 `json:"payload_mass_kg" db:"payload_mass_kg"`
	Class           Outcome `json:"class" db:"class"`
	BoosterCategory string  `json:"booster_version_category" db:"booster_version_category"`
}

// Dataset is the ordered, read-only collection of launch records loaded at startup.
type Dataset struct {
	records []Record
}

// NewDataset copies records into a new dataset so later changes to the input
// slice cannot leak into it.
func NewDataset(records []Record) *Dataset {
	cp := make([]Record, len(records))
	copy(cp, records)
	return &Dataset{records: cp}
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Records returns a copy of all records in load order.
func (d *Dataset) Records() []Record {
	if d == nil {
		return nil
	}
	cp := make([]Record, len(d.records))
	copy(cp, d.records)
	return cp
}

// Sites returns the distinct launch sites in order of first appearance.
func (d *Dataset) Sites() []string {
	if d == nil {
		return nil
	}
	seen := make(map[string]bool)
	var sites []string
	for _, r := range d.records {
		if !seen[r.Site] {
			seen[r.Site] = true
			sites = append(sites, r.Site)
		}
	}
	return sites
}

// HasSite reports whether any record was launched from site.
func (d *Dataset) HasSite(site string) bool {
	if d == nil {
		return false
	}
	for _, r := range d.records {
		if r.Site == site {
			return true
		}
	}
	return false
}

// PayloadBounds returns the observed minimum and maximum payload mass.
// ok is false for an empty dataset.
func (d *Dataset) PayloadBounds() (lo, hi float64, ok bool) {
	if d.Len() == 0 {
		return 0, 0, false
	}
	lo, hi = d.records[0].PayloadMassKg, d.records[0].PayloadMassKg
	for _, r := range d.records[1:] {
		if r.PayloadMassKg < lo {
			lo = r.PayloadMassKg
		}
		if r.PayloadMassKg > hi {
			hi = r.PayloadMassKg
		}
	}
	return lo, hi, true
}

// FilteredView is the subsequence of a Dataset matching a Selection.
type FilteredView []Record

// OutcomeSummary maps an outcome class to the number of records with that class.
type OutcomeSummary map[Outcome]int

// Total returns the sum of all counts.
func (s OutcomeSummary) Total() int {
	n := 0
	for _, c := range s {
		n += c
	}
	return n
}

// ScatterPoint is the projection of one record used by the payload scatter chart.
type ScatterPoint struct {
	PayloadMassKg   float64 `json:"payload_mass_kg"`
	Class           Outcome `json:"class"`
	BoosterCategory string  `json:"booster_version_category"`
}
