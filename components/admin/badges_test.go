package admin

import "testing"

func TestPaymentBadges(t *testing.T) {
	cases := []struct {
		status string
		label  string
		tone   string
		class  string
	}{
		{"PAID", "PAID", ToneGreen, "badge-paid"},
		{"PENDING", "PENDING", ToneOrange, "badge-pending"},
		{"CANCELLED", "CANCELLED", ToneGray, "badge-cancelled"},
		{"FAILED", "FAILED", ToneRed, "badge-failed"},
		{"paid", "PAID", ToneGreen, "badge-paid"},
		{" Pending ", "PENDING", ToneOrange, "badge-pending"},
		{"REFUNDED", "REFUNDED", ToneNeutral, "badge-refunded"},
		{"", "UNKNOWN", ToneNeutral, "badge-unknown"},
	}
	for _, tc := range cases {
		b := PaymentBadge(tc.status)
		if b.Label != tc.label || b.Tone != tc.tone || b.Class != tc.class {
			t.Fatalf("PaymentBadge(%q) = %+v, want %s/%s/%s", tc.status, b, tc.label, tc.tone, tc.class)
		}
	}
}

func TestFulfillmentBadges(t *testing.T) {
	cases := []struct {
		status string
		tone   string
		class  string
	}{
		{"ORDER FULFILLED", ToneGreen, "badge-order-fulfilled"},
		{"READY TO PICKUP", ToneBlue, "badge-ready-to-pickup"},
		{"PARTIAL FULFILLED", ToneOrange, "badge-partial-fulfilled"},
		{"ORDER CANCELLED", ToneGray, "badge-order-cancelled"},
		{"SHIPPED", ToneNeutral, "badge-shipped"},
	}
	for _, tc := range cases {
		b := FulfillmentBadge(tc.status)
		if b.Tone != tc.tone || b.Class != tc.class {
			t.Fatalf("FulfillmentBadge(%q) = %+v, want %s/%s", tc.status, b, tc.tone, tc.class)
		}
	}
}

func TestOrderViewRowViewsResolveBadges(t *testing.T) {
	o := Order{PaymentStatus: "PAID", FulfillmentStatus: "READY TO PICKUP"}
	row := OrderRow{Order: o, Payment: PaymentBadge(o.PaymentStatus), Fulfillment: FulfillmentBadge(o.FulfillmentStatus)}
	if row.Payment.Tone != ToneGreen {
		t.Fatalf("payment tone = %s, want green", row.Payment.Tone)
	}
	if row.Fulfillment.Tone != ToneBlue {
		t.Fatalf("fulfillment tone = %s, want blue", row.Fulfillment.Tone)
	}
}
