package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "reservation_form"

// Submission outcomes.
const (
	SubmitHandedOff    = "handed_off"
	SubmitInvalid      = "invalid"
	SubmitGatewayError = "gateway_error"
	SubmitReplayed     = "replayed"
)

// Metrics is safe to use as a nil pointer; every observation is then a no-op.
type Metrics struct {
	draftsStarted *prometheus.CounterVec
	fieldUpdates  *prometheus.CounterVec
	submissions   *prometheus.CounterVec
	quotedAmount  *prometheus.HistogramVec
	storeEvents   *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpLatency   *prometheus.HistogramVec
}

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		draftsStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "drafts_started_total", Help: "Drafts created."},
			[]string{"origin"}, // origin: session|oneshot
		),
		fieldUpdates: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "field_updates_total", Help: "Field updates by outcome."},
			[]string{"field", "result"}, // result: applied|rejected
		),
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "submissions_total", Help: "Submit attempts by outcome."},
			[]string{"result"},
		),
		quotedAmount: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "handoff_amount_cop",
				Help:    "Amount of payment requests handed to the checkout widget.",
				Buckets: []float64{50000, 90000, 120000, 150000, 200000, 300000, 500000},
			},
			[]string{"room_type"},
		),
		storeEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "draft_store_events_total", Help: "Draft store hits/misses/sets/dels."},
			[]string{"store", "event"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
			[]string{"route", "method", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "http_request_duration_seconds",
				Help:    "HTTP request duration seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
	}
	reg.MustRegister(
		m.draftsStarted,
		m.fieldUpdates,
		m.submissions,
		m.quotedAmount,
		m.storeEvents,
		m.httpRequests,
		m.httpLatency,
	)
	return m
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveDraftStarted(origin string) {
	if m == nil {
		return
	}
	m.draftsStarted.WithLabelValues(origin).Inc()
}

func (m *Metrics) ObserveFieldUpdate(field string, applied bool) {
	if m == nil {
		return
	}
	result := "applied"
	if !applied {
		result = "rejected"
	}
	m.fieldUpdates.WithLabelValues(field, result).Inc()
}

func (m *Metrics) ObserveSubmission(result string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveHandoff(roomType string, amount int64) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(SubmitHandedOff).Inc()
	m.quotedAmount.WithLabelValues(roomType).Observe(float64(amount))
}

func (m *Metrics) ObserveStore(store, event string) { // event: hit|miss|set|del
	if m == nil {
		return
	}
	m.storeEvents.WithLabelValues(store, event).Inc()
}

func (m *Metrics) ObserveHTTP(route, method string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}
