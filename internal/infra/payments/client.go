package payments

import (
	"errors"
	"net/http"

	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/client"
)

// SessionCreator is the slice of the Stripe API the checkout handlers need.
// Tests substitute a fake; production code uses Client.
type SessionCreator interface {
	CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// Client wraps one configured Stripe API client for the process lifetime.
type Client struct {
	api *client.API
}

func NewClient(secretKey string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{api: api}
}

func (c *Client) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return c.api.CheckoutSessions.New(params)
}

// ErrorStatus maps a Stripe API error to the HTTP status it carried,
// defaulting to 500 for anything else.
func ErrorStatus(err error) int {
	var sErr *stripe.Error
	if errors.As(err, &sErr) && sErr.HTTPStatusCode != 0 {
		return sErr.HTTPStatusCode
	}
	return http.StatusInternalServerError
}

// ErrorMessage returns Stripe's own message when the error carries one.
// Anything else gets a generic string so internals never reach the caller.
func ErrorMessage(err error) string {
	var sErr *stripe.Error
	if errors.As(err, &sErr) && sErr.Msg != "" {
		return sErr.Msg
	}
	return "Payment provider request failed"
}
