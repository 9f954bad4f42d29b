package payments

import "strings"

// Stripe-ish normalization used ONLY for logging subscription lifecycle events
func NormalizeSubscriptionStatus(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "none"
	}
	switch s {
	case "active":
		return "active"
	case "trialing":
		return "trialing"
	case "past_due", "unpaid":
		return "past_due"
	case "canceled", "incomplete_expired":
		return "canceled"
	default:
		return s
	}
}
