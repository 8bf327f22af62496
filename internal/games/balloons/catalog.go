package balloons

import "github.com/vovakirdan/credit-balloons/internal/config"

// CreditEvent is a labeled score change carried by a balloon.
type CreditEvent struct {
	Label string
	Delta int
}

// defaultCatalog is the built-in credit event deck.
var defaultCatalog = []CreditEvent{
	{Label: "On-time payments", Delta: 100},
	{Label: "30+ day late payment", Delta: -100},
	{Label: "60-90+ day late payment", Delta: -100},
	{Label: "Charge-off", Delta: -95},
	{Label: "Collection account", Delta: -90},
	{Label: "Bankruptcy", Delta: -100},
	{Label: "Foreclosure / repossession", Delta: -95},
	{Label: "<10% utilization", Delta: 95},
	{Label: "10-30% utilization", Delta: 70},
	{Label: ">30% utilization", Delta: -80},
	{Label: "Maxed-out card", Delta: -95},
	{Label: "Pay before statement closes (lower reported balance)", Delta: 75},
	{Label: "Pay statement balance in full", Delta: 70},
	{Label: "Carry high revolving balances", Delta: -70},
	{Label: "Credit limit increase (no extra spending)", Delta: 60},
	{Label: "Keep oldest accounts open", Delta: 55},
	{Label: "Close an old card (age/utilization hit)", Delta: -60},
	{Label: "Single hard inquiry", Delta: -30},
	{Label: "Many inquiries (short time)", Delta: -65},
	{Label: "Rate-shopping loans (within window)", Delta: -15},
	{Label: "Open many new accounts quickly", Delta: -60},
	{Label: "Good credit mix", Delta: 35},
}

// Catalog returns a copy of the built-in credit events.
func Catalog() []CreditEvent {
	return append([]CreditEvent(nil), defaultCatalog...)
}

// catalogFromConfig converts a custom deck, falling back to the built-in
// catalog when the config has none.
func catalogFromConfig(events []config.EventConfig) []CreditEvent {
	if len(events) == 0 {
		return Catalog()
	}
	out := make([]CreditEvent, len(events))
	for i, e := range events {
		out[i] = CreditEvent{Label: e.Label, Delta: e.Delta}
	}
	return out
}
