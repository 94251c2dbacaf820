package launch

// Filter returns the records of ds matching sel, in dataset order.
// It never returns an error: an unknown site or an inverted payload range
// simply yields an empty view.
func Filter(ds *Dataset, sel Selection) FilteredView {
	view := FilteredView{}
	if ds == nil {
		return view
	}
	if sel.Payload != nil && sel.Payload.Empty() {
		return view
	}
	for _, r := range ds.records {
		if !sel.Site.Matches(r.Site) {
			continue
		}
		if sel.Payload != nil && !sel.Payload.Contains(r.PayloadMassKg) {
			continue
		}
		view = append(view, r)
	}
	return view
}
