package subscribe

import (
	"log"
	"net/http"

	"concierge-app/internal/infra/payments"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
)

// The price on this path is fixed; the client never chooses one, so the
// allow-list that guards the lead checkout does not apply here.
const proPlanPriceID = "price_1OqXbGJv8LmT4QkWc2nRaUze"

const trialPeriodDays = 14

// SignupForm is the direct-signup form. Unlike the lead checkout, every
// field is mandatory.
type SignupForm struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	CompanyName string `json:"companyName" binding:"required"`
}

type Handler struct {
	sessions payments.SessionCreator
	appURL   string
}

func NewHandler(sessions payments.SessionCreator, appURL string) *Handler {
	return &Handler{sessions: sessions, appURL: appURL}
}

// Create builds a trialing subscription checkout session and returns its id
// for the browser's client-side redirect helper.
func (h *Handler) Create(c *gin.Context) {
	var form SignupForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	md := map[string]string{
		"firstName":   form.FirstName,
		"lastName":    form.LastName,
		"email":       form.Email,
		"companyName": form.CompanyName,
	}

	params := &stripe.CheckoutSessionParams{
		// Metadata goes on the session AND the subscription it creates, so
		// both objects arrive self-describing in webhook payloads.
		Params:             stripe.Params{Metadata: md},
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(proPlanPriceID), Quantity: stripe.Int64(1)},
		},
		CustomerEmail:            stripe.String(form.Email),
		AllowPromotionCodes:      stripe.Bool(true),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			TrialPeriodDays: stripe.Int64(trialPeriodDays),
			Metadata:        md,
		},
		SuccessURL: stripe.String(h.appURL + "/welcome"),
		CancelURL:  stripe.String(h.appURL + "/"),
	}

	s, err := h.sessions.CreateCheckoutSession(params)
	if err != nil {
		log.Printf("subscribe: session create failed for %s: %v", form.Email, err)
		c.JSON(payments.ErrorStatus(err), gin.H{"error": payments.ErrorMessage(err)})
		return
	}
	if s.ID == "" {
		log.Println("subscribe: session returned without an id")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment provider returned no session id"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": s.ID})
}
