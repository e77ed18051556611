package catalog

import (
	"context"
	"strings"

	"github.com/certifurb/go-storefront/components/view"
	"github.com/certifurb/go-storefront/pkg/telemetry"
)

// RailDefinition describes one horizontally scrollable product row. A rail
// selects a client-side slice of the shared product snapshot: an optional
// category filter followed by a prefix cut.
type RailDefinition struct {
	Code     string `json:"code" yaml:"code"`
	Title    string `json:"title" yaml:"title"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
	Limit    int    `json:"limit" yaml:"limit"`
	SeeAll   string `json:"see_all,omitempty" yaml:"see_all,omitempty"`
}

// Select applies the rail's category filter and limit, preserving fetch
// order. Rail category matching is case-insensitive, unlike the category
// browser's facet.
func (d RailDefinition) Select(products []Product) []Product {
	out := make([]Product, 0, d.Limit)
	for _, p := range products {
		if d.Category != "" && !strings.EqualFold(p.Category, d.Category) {
			continue
		}
		out = append(out, p)
		if d.Limit > 0 && len(out) == d.Limit {
			break
		}
	}
	return out
}

// Rail is a resolved rail ready for rendering.
type Rail struct {
	Definition RailDefinition
	Products   []Product
	State      view.State
}

// RailService resolves every registered rail against one shared snapshot, so
// a home page with several rails costs a single products fetch.
type RailService struct {
	source    ProductSource
	registry  *Registry
	telemetry telemetry.Telemetry
}

// NewRailService wires the rail registry to a product source.
func NewRailService(source ProductSource, registry *Registry, t telemetry.Telemetry) *RailService {
	if registry == nil {
		registry = NewRegistry()
	}
	return &RailService{
		source:    source,
		registry:  registry,
		telemetry: telemetry.Normalize(t),
	}
}

// Resolve fetches the snapshot once and materializes every rail in
// registration order. A fetch failure yields every rail in the error state
// rather than failing the page.
func (s *RailService) Resolve(ctx context.Context) []Rail {
	defs := s.registry.Definitions()
	products, err := s.source.FetchProducts(ctx)
	if err != nil {
		s.telemetry.Record(ctx, "catalog.rails.fetch_error", map[string]any{
			"error": err.Error(),
		})
		rails := make([]Rail, len(defs))
		for i, def := range defs {
			rails[i] = Rail{Definition: def, State: view.StateError}
		}
		return rails
	}
	rails := make([]Rail, len(defs))
	for i, def := range defs {
		selected := def.Select(products)
		state := view.StateReady
		if len(selected) == 0 {
			state = view.StateEmpty
		}
		rails[i] = Rail{Definition: def, Products: selected, State: state}
	}
	s.telemetry.Record(ctx, "catalog.rails.resolve", map[string]any{
		"rails":    len(rails),
		"products": len(products),
	})
	return rails
}
