package admin

import (
	"context"

	"github.com/certifurb/go-storefront/pkg/telemetry"
)

// CustomerView is the customers table: a paginated ListView fed by the
// customer directory endpoint.
type CustomerView struct {
	*ListView[Customer]
}

func NewCustomerView(ctx context.Context, dir CustomerDirectory, t telemetry.Telemetry) (*CustomerView, error) {
	lv, err := NewListView(ctx, dir.ListCustomers, func(c Customer) string { return c.ID }, t)
	if err != nil {
		return nil, err
	}
	return &CustomerView{ListView: lv}, nil
}
