package admin

import (
	"context"

	"github.com/certifurb/go-storefront/pkg/telemetry"
)

// OrderRow pairs an order with its rendered status badges.
type OrderRow struct {
	Order       Order
	Payment     Badge
	Fulfillment Badge
}

// OrderView is the orders table.
type OrderView struct {
	*ListView[Order]
}

func NewOrderView(ctx context.Context, book OrderBook, t telemetry.Telemetry) (*OrderView, error) {
	lv, err := NewListView(ctx, book.ListOrders, func(o Order) string { return o.ID }, t)
	if err != nil {
		return nil, err
	}
	return &OrderView{ListView: lv}, nil
}

// RowViews returns the current page with badges resolved, ready for the
// template.
func (v *OrderView) RowViews() []OrderRow {
	orders := v.Rows()
	rows := make([]OrderRow, len(orders))
	for i, o := range orders {
		rows[i] = OrderRow{
			Order:       o,
			Payment:     PaymentBadge(o.PaymentStatus),
			Fulfillment: FulfillmentBadge(o.FulfillmentStatus),
		}
	}
	return rows
}
