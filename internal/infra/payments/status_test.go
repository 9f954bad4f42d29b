package payments

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v75"
)

func TestNormalizeSubscriptionStatus(t *testing.T) {
	assert.Equal(t, "none", NormalizeSubscriptionStatus(""))
	assert.Equal(t, "none", NormalizeSubscriptionStatus("  "))
	assert.Equal(t, "active", NormalizeSubscriptionStatus("active"))
	assert.Equal(t, "trialing", NormalizeSubscriptionStatus("trialing"))
	assert.Equal(t, "past_due", NormalizeSubscriptionStatus("unpaid"))
	assert.Equal(t, "canceled", NormalizeSubscriptionStatus("incomplete_expired"))
	assert.Equal(t, "paused", NormalizeSubscriptionStatus("paused"))
}

func TestErrorStatus(t *testing.T) {
	assert.Equal(t, http.StatusTooManyRequests, ErrorStatus(&stripe.Error{HTTPStatusCode: http.StatusTooManyRequests}))
	assert.Equal(t, http.StatusInternalServerError, ErrorStatus(&stripe.Error{}))
	assert.Equal(t, http.StatusInternalServerError, ErrorStatus(errors.New("dial tcp: timeout")))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "No such price", ErrorMessage(&stripe.Error{Msg: "No such price"}))
	assert.Equal(t, "Payment provider request failed", ErrorMessage(errors.New("dial tcp: timeout")),
		"non-Stripe errors must not leak internals to the caller")
}
