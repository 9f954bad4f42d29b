package stripewebhook

import (
	"log"

	"concierge-app/internal/infra/payments"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
)

// LogHandlers is the default EventHandlers implementation. Each method is a
// named extension point (welcome notification, account provisioning, plan
// reconciliation, teardown); for now they only log. The event id is logged
// so redeliveries are visible before real handlers exist.
type LogHandlers struct{}

var _ EventHandlers = LogHandlers{}

func NewLogHandlers() LogHandlers {
	return LogHandlers{}
}

func (LogHandlers) CheckoutCompleted(_ *gin.Context, eventID string, session *stripe.CheckoutSession) error {
	log.Printf("webhook: checkout completed event=%s session=%s email=%s", eventID, session.ID, checkoutEmail(session))
	return nil
}

func (LogHandlers) SubscriptionCreated(_ *gin.Context, eventID string, sub *stripe.Subscription) error {
	log.Printf("webhook: subscription created event=%s sub=%s status=%s", eventID, sub.ID, payments.NormalizeSubscriptionStatus(string(sub.Status)))
	return nil
}

func (LogHandlers) SubscriptionUpdated(_ *gin.Context, eventID string, sub *stripe.Subscription) error {
	log.Printf("webhook: subscription updated event=%s sub=%s status=%s", eventID, sub.ID, payments.NormalizeSubscriptionStatus(string(sub.Status)))
	return nil
}

func (LogHandlers) SubscriptionDeleted(_ *gin.Context, eventID string, sub *stripe.Subscription) error {
	log.Printf("webhook: subscription deleted event=%s sub=%s", eventID, sub.ID)
	return nil
}

func checkoutEmail(session *stripe.CheckoutSession) string {
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		return session.CustomerDetails.Email
	}
	return session.CustomerEmail
}
