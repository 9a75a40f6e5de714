package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/luhambo/maintenance/internal/common/cnst"
	"github.com/luhambo/maintenance/internal/common/config"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New(config.MetricsConfig{Namespace: "luhambo"})

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/reports", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/reports", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	m.Login("student", true)
	m.Login("admin", false)
	m.Registration(true)
	m.ReportSubmitted("Plumbing", "High")
	m.ReportUpdated("completed")
	m.MessageSent("admin")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()

	assert.Contains(t, body, `luhambo_http_requests_total{method="GET",route="/api/reports",status="200"} 1`)
	assert.Contains(t, body, `route="unmatched",status="404"`)
	assert.Contains(t, body, `luhambo_logins_total{kind="admin",result="failure"} 1`)
	assert.Contains(t, body, `luhambo_registrations_total{result="success"} 1`)
	assert.Contains(t, body, `luhambo_reports_submitted_total{category="Plumbing",priority="High"} 1`)
	assert.Contains(t, body, `luhambo_report_updates_total{status="completed"} 1`)
	assert.Contains(t, body, `luhambo_chat_messages_total{sender_type="admin"} 1`)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Login("student", true)
		m.Registration(false)
		m.ReportSubmitted("Other", "Low")
		m.ReportUpdated("pending")
		m.MessageSent("student")
	})
}

func TestDomainLabelsAreBounded(t *testing.T) {
	m := New(config.MetricsConfig{Namespace: "luhambo"})

	m.ReportUpdated("in progress")
	m.ReportUpdated("x-1")
	m.ReportUpdated(cnst.StatusCompleted)
	m.ReportSubmitted("Gardening", "urgent!!")
	m.MessageSent("janitor")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()

	assert.Contains(t, body, `luhambo_report_updates_total{status="other"} 2`)
	assert.Contains(t, body, `luhambo_report_updates_total{status="completed"} 1`)
	assert.Contains(t, body, `luhambo_reports_submitted_total{category="other",priority="other"} 1`)
	assert.Contains(t, body, `luhambo_chat_messages_total{sender_type="other"} 1`)
	assert.NotContains(t, body, "in progress")
	assert.NotContains(t, body, "janitor")
}
