package stripewebhook

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/webhook"
)

const testSecret = "whsec_test_secret"

type spyHandlers struct {
	completed int
	created   int
	updated   int
	deleted   int
	err       error

	lastEventID string
}

func (s *spyHandlers) CheckoutCompleted(_ *gin.Context, eventID string, _ *stripe.CheckoutSession) error {
	s.completed++
	s.lastEventID = eventID
	return s.err
}

func (s *spyHandlers) SubscriptionCreated(_ *gin.Context, eventID string, _ *stripe.Subscription) error {
	s.created++
	s.lastEventID = eventID
	return s.err
}

func (s *spyHandlers) SubscriptionUpdated(_ *gin.Context, eventID string, _ *stripe.Subscription) error {
	s.updated++
	s.lastEventID = eventID
	return s.err
}

func (s *spyHandlers) SubscriptionDeleted(_ *gin.Context, eventID string, _ *stripe.Subscription) error {
	s.deleted++
	s.lastEventID = eventID
	return s.err
}

func (s *spyHandlers) total() int {
	return s.completed + s.created + s.updated + s.deleted
}

func newTestRouter(spy *spyHandlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhook", NewHandler(testSecret, spy).Handle)
	return r
}

func eventPayload(eventID, eventType string) []byte {
	return []byte(fmt.Sprintf(`{"id":%q,"type":%q,"data":{"object":{"id":"obj_1","status":"canceled"}}}`, eventID, eventType))
}

func signedPost(r *gin.Engine, payload []byte, secret string) *httptest.ResponseRecorder {
	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, secret)
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(sig)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandle_MissingSignatureHeader(t *testing.T) {
	spy := &spyHandlers{}
	r := newTestRouter(spy)

	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(eventPayload("evt_1", "checkout.session.completed")))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "No signature found", resp["error"])
	assert.Zero(t, spy.total(), "nothing may be dispatched without a signature")
}

func TestHandle_WrongSecret(t *testing.T) {
	spy := &spyHandlers{}
	r := newTestRouter(spy)

	w := signedPost(r, eventPayload("evt_1", "customer.subscription.deleted"), "whsec_wrong_secret")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, spy.total(), "nothing may be dispatched on a failed verification")
}

func TestHandle_TamperedPayload(t *testing.T) {
	spy := &spyHandlers{}
	r := newTestRouter(spy)

	payload := eventPayload("evt_1", "customer.subscription.deleted")
	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, testSecret)
	tampered := bytes.Replace(payload, []byte("evt_1"), []byte("evt_2"), 1)

	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(tampered))
	req.Header.Set("Stripe-Signature", fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(sig)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, spy.total())
}

func TestHandle_CheckoutCompleted(t *testing.T) {
	spy := &spyHandlers{}
	r := newTestRouter(spy)

	w := signedPost(r, eventPayload("evt_co_1", "checkout.session.completed"), testSecret)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["received"])
	assert.Equal(t, 1, spy.completed)
	assert.Equal(t, "evt_co_1", spy.lastEventID)
	assert.Equal(t, 1, spy.total())
}

func TestHandle_SubscriptionLifecycle(t *testing.T) {
	spy := &spyHandlers{}
	r := newTestRouter(spy)

	for _, eventType := range []string{
		"customer.subscription.created",
		"customer.subscription.updated",
		"customer.subscription.deleted",
	} {
		w := signedPost(r, eventPayload("evt_1", eventType), testSecret)
		assert.Equal(t, http.StatusOK, w.Code, eventType)
	}

	assert.Equal(t, 1, spy.created)
	assert.Equal(t, 1, spy.updated)
	assert.Equal(t, 1, spy.deleted)
}

func TestHandle_UnknownEventTypeIsAcknowledged(t *testing.T) {
	spy := &spyHandlers{}
	r := newTestRouter(spy)

	w := signedPost(r, eventPayload("evt_1", "some.unknown.event"), testSecret)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["received"])
	assert.Zero(t, spy.total())
}

func TestHandle_DispatchErrorIsServerError(t *testing.T) {
	spy := &spyHandlers{err: fmt.Errorf("handler bug")}
	r := newTestRouter(spy)

	w := signedPost(r, eventPayload("evt_1", "customer.subscription.deleted"), testSecret)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 1, spy.deleted, "the signature was valid, so dispatch did happen")
}

func TestHandle_LogHandlersAcceptRedelivery(t *testing.T) {
	// The stubs only log, so redelivering the same event id must succeed
	// both times with no visible difference.
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhook", NewHandler(testSecret, NewLogHandlers()).Handle)

	payload := eventPayload("evt_dup", "checkout.session.completed")
	for i := 0; i < 2; i++ {
		w := signedPost(r, payload, testSecret)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
