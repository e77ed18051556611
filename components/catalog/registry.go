package catalog

import (
	"fmt"
	"sync"
)

// RailHook lets packages register rails during init().
type RailHook func(reg *Registry) error

var (
	globalHookMu sync.Mutex
	globalHooks  []RailHook
)

// RegisterRailHook registers a hook executed against new registries.
func RegisterRailHook(h RailHook) {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	globalHooks = append(globalHooks, h)
}

// Registry holds rail definitions in registration order.
type Registry struct {
	mu    sync.RWMutex
	defs  map[string]RailDefinition
	order []string
}

// NewRegistry builds a registry seeded with the default rails and applies
// global hooks.
func NewRegistry() *Registry {
	reg := &Registry{defs: map[string]RailDefinition{}}
	for _, def := range DefaultRailDefinitions() {
		_ = reg.Register(def)
	}
	_ = reg.ApplyHooks()
	return reg
}

// ApplyHooks executes registered rail hooks.
func (r *Registry) ApplyHooks() error {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	for _, hook := range globalHooks {
		if err := hook(r); err != nil {
			return err
		}
	}
	return nil
}

// Register stores a rail definition. Re-registering a code replaces the
// definition but keeps its original position.
func (r *Registry) Register(def RailDefinition) error {
	if err := ValidateRail(def); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.defs[def.Code]; !ok {
		r.order = append(r.order, def.Code)
	}
	r.defs[def.Code] = def
	return nil
}

// Definition fetches a rail definition by code.
func (r *Registry) Definition(code string) (RailDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[code]
	return def, ok
}

// Definitions returns all rails in registration order.
func (r *Registry) Definitions() []RailDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]RailDefinition, 0, len(r.order))
	for _, code := range r.order {
		defs = append(defs, r.defs[code])
	}
	return defs
}

// DefaultRailDefinitions returns the storefront's built-in rails.
func DefaultRailDefinitions() []RailDefinition {
	return []RailDefinition{
		{
			Code:   "storefront.rail.promotion",
			Title:  "Certifurb Promotion",
			Limit:  10,
			SeeAll: "/category",
		},
		{
			Code:     "storefront.rail.renewed_laptops",
			Title:    "Certifurb Renewed Laptops",
			Category: "Laptop",
			Limit:    3,
			SeeAll:   "/category?filter=Laptop",
		},
		{
			Code:     "storefront.rail.goat",
			Title:    "GOAT Products",
			Category: "GOAT Product",
			Limit:    6,
			SeeAll:   "/category?filter=GOAT%20Product",
		},
	}
}

func railCodeError(code string) error {
	return fmt.Errorf("catalog: rail code %q is invalid", code)
}
