// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface the service layer records through.
type Recorder interface {
	RecordOTPIssued()
	RecordOTPVerified(success bool)
	RecordLogin(principalType string, success bool)
	RecordUpload(outcome string)
	RecordWebhookEvent(event string)
}

// Collector implements Recorder over Prometheus counters.
type Collector struct {
	registry      *prometheus.Registry
	otpIssued     prometheus.Counter
	otpVerified   *prometheus.CounterVec
	logins        *prometheus.CounterVec
	uploads       *prometheus.CounterVec
	webhookEvents *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics on the registry.
func NewCollector(reg *prometheus.Registry) *Collector {
	c := &Collector{
		registry: reg,
		otpIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "medvisa_otp_issued_total",
			Help: "Total number of OTP codes issued.",
		}),
		otpVerified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "medvisa_otp_verified_total",
			Help: "Total number of OTP verification attempts by result.",
		}, []string{"result"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "medvisa_logins_total",
			Help: "Total number of login attempts by principal type and result.",
		}, []string{"type", "result"}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "medvisa_slip_uploads_total",
			Help: "Total number of appointment slip uploads by outcome.",
		}, []string{"outcome"}),
		webhookEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "medvisa_webhook_events_total",
			Help: "Total number of payment webhook events by type.",
		}, []string{"event"}),
	}

	reg.MustRegister(
		c.otpIssued,
		c.otpVerified,
		c.logins,
		c.uploads,
		c.webhookEvents,
	)
	return c
}

// Handler exposes the registry for the /metrics route.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) RecordOTPIssued() {
	c.otpIssued.Inc()
}

func (c *Collector) RecordOTPVerified(success bool) {
	c.otpVerified.WithLabelValues(resultLabel(success)).Inc()
}

func (c *Collector) RecordLogin(principalType string, success bool) {
	c.logins.WithLabelValues(principalType, resultLabel(success)).Inc()
}

func (c *Collector) RecordUpload(outcome string) {
	c.uploads.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordWebhookEvent(event string) {
	c.webhookEvents.WithLabelValues(event).Inc()
}

func resultLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
