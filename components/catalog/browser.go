package catalog

import (
	"context"
	"sync"

	"github.com/certifurb/go-storefront/components/view"
	"github.com/certifurb/go-storefront/pkg/telemetry"
)

// Browser drives the category page: one product snapshot per fetch, a facet
// selection, and a progressive-reveal window. Selection and pagination are
// the only locally mutated state; the snapshot is replaced wholesale by each
// refresh and never edited in place.
type Browser struct {
	source    ProductSource
	telemetry telemetry.Telemetry
	loader    *view.Loader

	mu       sync.Mutex
	products []Product
	sel      Selection
	pager    Pager
	state    view.State
	err      error
}

// NewBrowser binds a browser to its lifetime context. The first Refresh
// happens on demand; until then the browser reports a loading state.
func NewBrowser(ctx context.Context, source ProductSource, t telemetry.Telemetry) *Browser {
	return &Browser{
		source:    source,
		telemetry: telemetry.Normalize(t),
		loader:    view.NewLoader(ctx),
		sel:       NewSelection(),
		pager:     NewPager(),
		state:     view.StateLoading,
	}
}

// Refresh fetches a new product snapshot. A refresh that lost the race to a
// newer one leaves the browser untouched.
func (b *Browser) Refresh() error {
	ctx, commit := b.loader.Begin()

	b.mu.Lock()
	b.state = view.StateLoading
	b.err = nil
	b.mu.Unlock()

	products, err := b.source.FetchProducts(ctx)
	if !commit() {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.state = view.StateError
		b.err = err
		b.telemetry.Record(ctx, "catalog.browser.fetch_error", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	b.products = products
	if len(products) == 0 {
		b.state = view.StateEmpty
	} else {
		b.state = view.StateReady
	}
	b.telemetry.Record(ctx, "catalog.browser.fetch", map[string]any{
		"count": len(products),
	})
	return nil
}

// Close cancels any in-flight fetch.
func (b *Browser) Close() {
	b.loader.Close()
}

// SetCategory changes the category facet. Changing a facet resets the price
// range to its full bounds; the pagination window is left alone and only
// resets through an explicit ShowLess.
func (b *Browser) SetCategory(category string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sel.Category = category
	b.sel.Price.Reset()
}

// SetBrand changes the brand facet, resetting the price range like
// SetCategory does.
func (b *Browser) SetBrand(brand string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sel.Brand = brand
	b.sel.Price.Reset()
}

// SlidePriceMin moves the lower slider thumb.
func (b *Browser) SlidePriceMin(v float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sel.Price.SlideMin(v)
}

// SlidePriceMax moves the upper slider thumb.
func (b *Browser) SlidePriceMax(v float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sel.Price.SlideMax(v)
}

// SetPriceMin applies a typed lower bound.
func (b *Browser) SetPriceMin(v float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sel.Price.SetMin(v)
}

// SetPriceMax applies a typed upper bound.
func (b *Browser) SetPriceMax(v float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sel.Price.SetMax(v)
}

// ResetPrice restores the full price bounds.
func (b *Browser) ResetPrice() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sel.Price.Reset()
}

// ShowMore reveals the next page of matches.
func (b *Browser) ShowMore() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pager.ShowMore(len(Filter(b.products, b.sel)))
}

// ShowLess collapses the window back to the default size.
func (b *Browser) ShowLess() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pager.ShowLess()
}

// SetVisible restores a window size carried across requests.
func (b *Browser) SetVisible(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pager.SetVisible(n)
}

// Selection returns a copy of the current facet state.
func (b *Browser) Selection() Selection {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sel
}

// PageView is everything the category template renders.
type PageView struct {
	Products     []Product
	TotalMatches int
	Visible      int
	Selection    Selection
	State        view.State
	ErrorMessage string
	Empty        bool
	CanShowMore  bool
	CanShowLess  bool
}

// View derives the visible window from the current snapshot and selection.
// Matching preserves fetch order; the same inputs always produce the same
// view.
func (b *Browser) View() PageView {
	b.mu.Lock()
	defer b.mu.Unlock()

	pv := PageView{
		Selection: b.sel,
		State:     b.state,
		Visible:   b.pager.Visible(),
	}
	if b.err != nil {
		pv.ErrorMessage = b.err.Error()
	}
	if b.state != view.StateReady {
		pv.Empty = b.state == view.StateEmpty
		return pv
	}

	matches := Filter(b.products, b.sel)
	pv.TotalMatches = len(matches)
	pv.Products = b.pager.Window(matches)
	pv.Empty = len(matches) == 0
	pv.CanShowMore = b.pager.Visible() < len(matches)
	pv.CanShowLess = b.pager.Visible() >= len(matches) && len(matches) > DefaultVisible
	return pv
}
