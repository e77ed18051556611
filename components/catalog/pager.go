package catalog

// Progressive-reveal window defaults.
const (
	DefaultVisible = 12
	VisibleStep    = 8
)

// Pager controls the visible prefix of a filtered result list.
type Pager struct {
	visible int
}

// NewPager starts at the default window size.
func NewPager() Pager {
	return Pager{visible: DefaultVisible}
}

// Visible returns the current window size.
func (p Pager) Visible() int {
	return p.visible
}

// SetVisible restores a window size carried across requests. Values below the
// default snap back to it so a stale or tampered value never shrinks the page.
func (p *Pager) SetVisible(n int) {
	if n < DefaultVisible {
		n = DefaultVisible
	}
	p.visible = n
}

// ShowMore grows the window by one step, clamped to the match count.
func (p *Pager) ShowMore(totalMatches int) {
	p.visible = min(p.visible+VisibleStep, max(totalMatches, 0))
}

// ShowLess returns exactly to the default window.
func (p *Pager) ShowLess() {
	p.visible = DefaultVisible
}

// Window slices the first Visible() items of matches.
func (p Pager) Window(matches []Product) []Product {
	if len(matches) <= p.visible {
		return matches
	}
	return matches[:p.visible]
}
