package admin

import (
	"strings"

	"github.com/ettle/strcase"
)

// Badge tones map onto the console stylesheet.
const (
	ToneGreen   = "green"
	ToneOrange  = "orange"
	ToneBlue    = "blue"
	ToneGray    = "gray"
	ToneRed     = "red"
	ToneNeutral = "neutral"
)

// Badge is a status pill rendered next to an order row.
type Badge struct {
	Label string
	Tone  string
	Class string
}

var paymentTones = map[string]string{
	"PAID":      ToneGreen,
	"PENDING":   ToneOrange,
	"CANCELLED": ToneGray,
	"FAILED":    ToneRed,
}

var fulfillmentTones = map[string]string{
	"ORDER FULFILLED":   ToneGreen,
	"READY TO PICKUP":   ToneBlue,
	"PARTIAL FULFILLED": ToneOrange,
	"ORDER CANCELLED":   ToneGray,
}

// PaymentBadge maps a payment status onto its badge. Unknown statuses render
// with a neutral tone rather than failing.
func PaymentBadge(status string) Badge {
	return badgeFrom(status, paymentTones)
}

// FulfillmentBadge maps a fulfillment status onto its badge.
func FulfillmentBadge(status string) Badge {
	return badgeFrom(status, fulfillmentTones)
}

func badgeFrom(status string, tones map[string]string) Badge {
	label := strings.ToUpper(strings.TrimSpace(status))
	if label == "" {
		label = "UNKNOWN"
	}
	tone, ok := tones[label]
	if !ok {
		tone = ToneNeutral
	}
	return Badge{
		Label: label,
		Tone:  tone,
		Class: "badge-" + strcase.ToKebab(label),
	}
}
