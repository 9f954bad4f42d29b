package checkout

import (
	"log"
	"net/http"

	"concierge-app/internal/domain/pricing"
	"concierge-app/internal/infra/payments"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
)

type Handler struct {
	sessions payments.SessionCreator
	prices   *pricing.AllowList
	appURL   string
}

func NewHandler(sessions payments.SessionCreator, prices *pricing.AllowList, appURL string) *Handler {
	return &Handler{sessions: sessions, prices: prices, appURL: appURL}
}

// Create builds a subscription checkout session for a pricing-page lead and
// returns the hosted checkout URL the browser should redirect to.
func (h *Handler) Create(c *gin.Context) {
	var form LeadForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	// Reject before touching Stripe: the price id is the only
	// client-controlled value that selects what gets billed.
	if !h.prices.IsAllowed(form.PriceID) {
		log.Printf("checkout: rejected price id %q", form.PriceID)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid price ID provided"})
		return
	}

	origin := c.GetHeader("Origin")
	if origin == "" {
		origin = h.appURL
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(form.PriceID), Quantity: stripe.Int64(1)},
		},
		SuccessURL:               stripe.String(origin + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:                stripe.String(origin + "/pricing"),
		AutomaticTax:             &stripe.CheckoutSessionAutomaticTaxParams{Enabled: stripe.Bool(true)},
		AllowPromotionCodes:      stripe.Bool(true),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
	}
	if md := form.metadata(); len(md) > 0 {
		params.Metadata = md
	}
	if form.Email != "" {
		params.CustomerEmail = stripe.String(form.Email)
	}

	s, err := h.sessions.CreateCheckoutSession(params)
	if err != nil {
		log.Printf("checkout: session create failed for price %s: %v", form.PriceID, err)
		c.JSON(payments.ErrorStatus(err), gin.H{"message": payments.ErrorMessage(err)})
		return
	}
	if s.URL == "" {
		log.Printf("checkout: session %s returned without a redirect URL", s.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Payment provider returned no checkout URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}
