package catalog

// Global price bounds and the minimum distance kept between the two thumbs.
const (
	PriceMin = 500
	PriceMax = 500000
	PriceGap = 100
)

// PriceRange is the selected (min, max) pair. The invariant Min+PriceGap <=
// Max holds after every mutation; adjusting one bound pins it at the boundary
// rather than letting it cross the other.
type PriceRange struct {
	Min float64
	Max float64
}

// NewPriceRange returns the full default bounds.
func NewPriceRange() PriceRange {
	return PriceRange{Min: PriceMin, Max: PriceMax}
}

// SlideMin applies slider-thumb semantics to the lower bound: the value is
// capped at Max-PriceGap. The slider control already constrains the absolute
// range, so only the gap is enforced here.
func (r *PriceRange) SlideMin(v float64) {
	r.Min = min(v, r.Max-PriceGap)
}

// SlideMax applies slider-thumb semantics to the upper bound.
func (r *PriceRange) SlideMax(v float64) {
	r.Max = max(v, r.Min+PriceGap)
}

// SetMin applies numeric-input semantics to the lower bound: clamped to the
// absolute floor and to Max-PriceGap.
func (r *PriceRange) SetMin(v float64) {
	r.Min = max(PriceMin, min(v, r.Max-PriceGap))
}

// SetMax applies numeric-input semantics to the upper bound.
func (r *PriceRange) SetMax(v float64) {
	r.Max = min(PriceMax, max(v, r.Min+PriceGap))
}

// Reset restores the absolute global bounds.
func (r *PriceRange) Reset() {
	r.Min = PriceMin
	r.Max = PriceMax
}

// Contains reports whether v falls inside the range, bounds inclusive.
func (r PriceRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}
