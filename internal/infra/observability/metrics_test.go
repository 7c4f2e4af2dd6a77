//go:build unit

package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveDraftStarted("session")
		m.ObserveFieldUpdate("phone", false)
		m.ObserveSubmission(SubmitInvalid)
		m.ObserveHandoff("suite", 150000)
		m.ObserveStore("memory", "hit")
		m.ObserveHTTP("/api/drafts", http.MethodPost, http.StatusCreated, time.Millisecond)
	})
}

func TestMetrics_Observe(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveFieldUpdate("phone", true)
	m.ObserveFieldUpdate("phone", false)
	m.ObserveFieldUpdate("phone", false)
	m.ObserveSubmission(SubmitInvalid)
	m.ObserveHandoff("deluxe", 140000)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.fieldUpdates.WithLabelValues("phone", "applied")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.fieldUpdates.WithLabelValues("phone", "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissions.WithLabelValues(SubmitInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissions.WithLabelValues(SubmitHandedOff)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.quotedAmount))
}

func TestHandler(t *testing.T) {
	reg := NewRegistry()
	m := NewMetrics(reg)
	m.ObserveDraftStarted("session")

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `reservation_form_drafts_started_total{origin="session"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
