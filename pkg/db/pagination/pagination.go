package pagination

// Page is an offset/limit window over a creation-time-ordered listing.
type Page struct {
	Skip  int
	Limit int
}

// Normalize clamps the window: skip is forced to zero or more, a missing
// limit falls back to def, and limit never exceeds max.
func (p Page) Normalize(def, max int) Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = def
	}
	if max > 0 && p.Limit > max {
		p.Limit = max
	}
	return p
}
