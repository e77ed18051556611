package admin

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/certifurb/go-storefront/components/view"
	"github.com/certifurb/go-storefront/pkg/telemetry"
)

// FetchPage fetches one server-filtered page of records.
type FetchPage[T any] func(ctx context.Context, q ListQuery) ([]T, PageInfo, error)

// ListView drives a paginated, searchable admin table. Search input is
// debounced, in-flight fetches are cancelled when superseded, and row
// selection is cleared whenever a new page of data lands.
type ListView[T any] struct {
	fetch     FetchPage[T]
	rowID     func(T) string
	telemetry telemetry.Telemetry
	loader    *view.Loader
	debouncer *view.Debouncer

	mu       sync.Mutex
	rows     []T
	info     PageInfo
	page     int
	search   string
	state    view.State
	err      error
	selected map[string]struct{}
}

// NewListView builds an idle view on page 1. Call Refresh to load the first
// page.
func NewListView[T any](ctx context.Context, fetch FetchPage[T], rowID func(T) string, t telemetry.Telemetry) (*ListView[T], error) {
	if fetch == nil {
		return nil, fmt.Errorf("admin: list view requires a fetch function")
	}
	if rowID == nil {
		return nil, fmt.Errorf("admin: list view requires a row id function")
	}
	v := &ListView[T]{
		fetch:     fetch,
		rowID:     rowID,
		telemetry: telemetry.Normalize(t),
		loader:    view.NewLoader(ctx),
		page:      1,
		state:     view.StateLoading,
		selected:  make(map[string]struct{}),
	}
	v.debouncer = view.NewDebouncer(view.SearchDebounce, v.applySearch)
	return v, nil
}

// Close cancels any in-flight fetch and drops pending debounced searches.
func (v *ListView[T]) Close() {
	v.debouncer.Stop()
	v.loader.Close()
}

// Refresh fetches the current page. A refresh that is superseded before it
// finishes leaves the view untouched.
func (v *ListView[T]) Refresh() error {
	v.mu.Lock()
	q := ListQuery{Page: v.page, Limit: DefaultPageSize, Search: v.search}
	v.state = view.StateLoading
	v.mu.Unlock()

	ctx, commit := v.loader.Begin()
	rows, info, err := v.fetch(ctx, q)
	if !commit() {
		return nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.selected = make(map[string]struct{})
	if err != nil {
		v.rows = nil
		v.info = PageInfo{}
		v.err = err
		v.state = view.StateError
		v.telemetry.Record(ctx, "admin.list.error", map[string]any{
			"page":  q.Page,
			"error": err.Error(),
		})
		return err
	}
	v.rows = rows
	v.info = info
	v.err = nil
	if len(rows) == 0 {
		v.state = view.StateEmpty
	} else {
		v.state = view.StateReady
	}
	v.telemetry.Record(ctx, "admin.list.loaded", map[string]any{
		"page": q.Page,
		"rows": len(rows),
	})
	return nil
}

// SetPage moves to page n, clamped to the known page range, and refetches.
func (v *ListView[T]) SetPage(n int) error {
	v.mu.Lock()
	if n < 1 {
		n = 1
	}
	if v.info.TotalPages > 0 && n > v.info.TotalPages {
		n = v.info.TotalPages
	}
	v.page = n
	v.mu.Unlock()
	return v.Refresh()
}

// NextPage and PrevPage step through the page range.
func (v *ListView[T]) NextPage() error { return v.SetPage(v.Page() + 1) }
func (v *ListView[T]) PrevPage() error { return v.SetPage(v.Page() - 1) }

// Search schedules a debounced server-side search. Typing resets to page 1.
func (v *ListView[T]) Search(term string) {
	v.debouncer.Trigger(term)
}

// SearchNow applies a search term immediately, bypassing the debounce
// window.
func (v *ListView[T]) SearchNow(term string) error {
	return v.applySearchErr(term)
}

func (v *ListView[T]) applySearch(term string) {
	v.applySearchErr(term) //nolint:errcheck
}

func (v *ListView[T]) applySearchErr(term string) error {
	v.mu.Lock()
	v.search = term
	v.page = 1
	v.mu.Unlock()
	return v.Refresh()
}

// ToggleRow flips the selection of a single row.
func (v *ListView[T]) ToggleRow(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.selected[id]; ok {
		delete(v.selected, id)
	} else {
		v.selected[id] = struct{}{}
	}
}

// ToggleAllVisible selects every visible row, or clears the selection when
// the visible rows are already exactly the selected set.
func (v *ListView[T]) ToggleAllVisible() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.allVisibleSelectedLocked() {
		v.selected = make(map[string]struct{})
		return
	}
	v.selected = make(map[string]struct{}, len(v.rows))
	for _, row := range v.rows {
		v.selected[v.rowID(row)] = struct{}{}
	}
}

// AllVisibleSelected reports whether the selection equals the visible rows.
func (v *ListView[T]) AllVisibleSelected() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.allVisibleSelectedLocked()
}

func (v *ListView[T]) allVisibleSelectedLocked() bool {
	if len(v.rows) == 0 || len(v.selected) != len(v.rows) {
		return false
	}
	for _, row := range v.rows {
		if _, ok := v.selected[v.rowID(row)]; !ok {
			return false
		}
	}
	return true
}

// SelectedIDs returns the selected row ids in stable order.
func (v *ListView[T]) SelectedIDs() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	ids := make([]string, 0, len(v.selected))
	for id := range v.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Selected reports whether a single row is selected.
func (v *ListView[T]) Selected(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	_, ok := v.selected[id]
	return ok
}

// Rows returns the current page of records.
func (v *ListView[T]) Rows() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]T, len(v.rows))
	copy(out, v.rows)
	return out
}

func (v *ListView[T]) Page() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

func (v *ListView[T]) PageInfo() PageInfo {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.info
}

func (v *ListView[T]) State() view.State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *ListView[T]) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}
