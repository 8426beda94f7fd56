package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketplace/config"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CountsByLabel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "food-market"
	r := New(cfg)

	r.WebhookProcessed("applied")
	r.WebhookProcessed("applied")
	r.WebhookProcessed("invalid_signature")
	r.GatewayCall("create_payment_link", "success")
	r.ModerationAction("unban_user", "failed")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.webhookEvents.WithLabelValues("applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.webhookEvents.WithLabelValues("invalid_signature")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.gatewayRequests.WithLabelValues("create_payment_link", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.moderationActions.WithLabelValues("unban_user", "failed")))
}

func TestRegistry_HandlerExposesNamespacedMetrics(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "food-market"
	r := New(cfg)
	r.GatewayCall("get_payment_info", "failure")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "food_market_payment_gateway_requests_total"))
}
