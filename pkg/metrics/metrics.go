package metrics

import (
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luhambo/maintenance/internal/common/cnst"
	"github.com/luhambo/maintenance/internal/common/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the HTTP and domain collectors. A nil *Metrics records nothing.
type Metrics struct {
	registry   *prometheus.Registry
	httpReqCnt *prometheus.CounterVec
	httpDur    *prometheus.HistogramVec
	httpInfl   *prometheus.GaugeVec
	logins     *prometheus.CounterVec
	signups    *prometheus.CounterVec
	reports    *prometheus.CounterVec
	updates    *prometheus.CounterVec
	messages   *prometheus.CounterVec
}

func New(cfg config.MetricsConfig) *Metrics {
	ns := cfg.Namespace
	buckets := cfg.Buckets
	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	}

	r := prometheus.NewRegistry()
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r.MustRegister(collectors.NewGoCollector())

	m := &Metrics{
		registry:   r,
		httpReqCnt: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "http_requests_total"}, []string{"method", "route", "status"}),
		httpDur:    prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: ns, Name: "http_request_duration_seconds", Buckets: buckets}, []string{"method", "route", "status"}),
		httpInfl:   prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: ns, Name: "http_requests_inflight"}, []string{"route"}),
		logins:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "logins_total"}, []string{"kind", "result"}),
		signups:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "registrations_total"}, []string{"result"}),
		reports:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "reports_submitted_total"}, []string{"category", "priority"}),
		updates:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "report_updates_total"}, []string{"status"}),
		messages:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: ns, Name: "chat_messages_total"}, []string{"sender_type"}),
	}
	r.MustRegister(m.httpReqCnt, m.httpDur, m.httpInfl)
	r.MustRegister(m.logins, m.signups, m.reports, m.updates, m.messages)
	return m
}

// Login counts a login attempt; kind is student or admin
func (m *Metrics) Login(kind string, ok bool) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(kind, result(ok)).Inc()
}

func (m *Metrics) Registration(ok bool) {
	if m == nil {
		return
	}
	m.signups.WithLabelValues(result(ok)).Inc()
}

func (m *Metrics) ReportSubmitted(category, priority string) {
	if m == nil {
		return
	}
	m.reports.WithLabelValues(bounded(category, cnst.Categories), bounded(priority, cnst.Priorities)).Inc()
}

func (m *Metrics) ReportUpdated(status string) {
	if m == nil {
		return
	}
	m.updates.WithLabelValues(bounded(status, cnst.Statuses)).Inc()
}

func (m *Metrics) MessageSent(senderType string) {
	if m == nil {
		return
	}
	m.messages.WithLabelValues(bounded(senderType, cnst.Senders)).Inc()
}

func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpInfl.WithLabelValues(route).Inc()
		start := time.Now()
		c.Next()
		status := strconv.Itoa(c.Writer.Status())
		m.httpReqCnt.WithLabelValues(c.Request.Method, route, status).Inc()
		m.httpDur.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
		m.httpInfl.WithLabelValues(route).Dec()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// OtherLabel stands in for any label value outside its enumeration
const OtherLabel = "other"

func bounded(v string, known []string) string {
	if slices.Contains(known, v) {
		return v
	}
	return OtherLabel
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
