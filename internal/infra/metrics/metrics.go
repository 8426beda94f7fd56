// Package metrics exposes service counters to Prometheus.
package metrics

import (
	"net/http"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns the collectors of the service and serves them over HTTP.
type Registry struct {
	registry          *prometheus.Registry
	webhookEvents     *prometheus.CounterVec
	gatewayRequests   *prometheus.CounterVec
	moderationActions *prometheus.CounterVec
}

// New creates the registry with process and Go runtime collectors.
func New(cfg *config.Config) *Registry {
	namespace := "marketplace"
	if cfg != nil && cfg.Env.ServiceName != "" {
		namespace = sanitize(cfg.Env.ServiceName)
	}

	r := &Registry{
		registry: prometheus.NewRegistry(),
		webhookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_webhook_events_total",
			Help:      "Payment webhooks received, by outcome.",
		}, []string{"result"}),
		gatewayRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_gateway_requests_total",
			Help:      "Payment gateway requests, by operation and outcome.",
		}, []string{"operation", "result"}),
		moderationActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moderation_actions_total",
			Help:      "Moderation side effects, by kind and outcome.",
		}, []string{"kind", "result"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.webhookEvents,
		r.gatewayRequests,
		r.moderationActions,
	)

	return r
}

// Recorder returns the registry as the service layer's metrics port.
func Recorder(r *Registry) service.MetricsRecorder {
	return r
}

// WebhookProcessed implements service.MetricsRecorder.
func (r *Registry) WebhookProcessed(result string) {
	r.webhookEvents.WithLabelValues(result).Inc()
}

// GatewayCall implements service.MetricsRecorder.
func (r *Registry) GatewayCall(operation, result string) {
	r.gatewayRequests.WithLabelValues(operation, result).Inc()
}

// ModerationAction implements service.MetricsRecorder.
func (r *Registry) ModerationAction(kind, result string) {
	r.moderationActions.WithLabelValues(kind, result).Inc()
}

// Handler serves the collected metrics in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func sanitize(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		ch := name[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
			out = append(out, ch)
		default:
			out = append(out, '_')
		}
	}

	return string(out)
}

// Noop discards every measurement.
type Noop struct{}

func (Noop) WebhookProcessed(string)         {}
func (Noop) GatewayCall(string, string)      {}
func (Noop) ModerationAction(string, string) {}
