//go:build unit

package handler_test

import (
	"net/http"
	"testing"

	"hotel-reservation/internal/handler"
	"hotel-reservation/internal/handler/api"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/infra/observability"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/tests/common/httptest"
	commandsmock "hotel-reservation/tests/mock/commands"
	queriesmock "hotel-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T, mut func(*config.Config)) (*gin.Engine, *commandsmock.MockFormCommands) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	if mut != nil {
		mut(&cfg)
	}

	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockFormCommands(ctrl)
	q := queriesmock.NewMockFormQueries(ctrl)
	reg := observability.NewRegistry()

	engine := gin.New()
	err := handler.NewRouter(
		engine,
		cfg,
		api.NewDraftHandler(cmds, q, cfg),
		api.NewQuoteHandler(q),
		middleware.NewSubmitLimiter(cfg.RateLimit, clock.NewRealClock()),
		observability.NewMetrics(reg),
		reg,
	)
	require.NoError(t, err)
	return engine, cmds
}

func TestRouter_Health(t *testing.T) {
	r, _ := newRouter(t, nil)

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/health", nil)

	var body map[string]string
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestRouter_Metrics(t *testing.T) {
	t.Run("disabled by default in tests", func(t *testing.T) {
		r, _ := newRouter(t, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/metrics", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("enabled exposes route counters", func(t *testing.T) {
		r, _ := newRouter(t, func(c *config.Config) { c.Metrics.Enabled = true })
		httptest.PerformRequest(t, r, http.MethodGet, "/health", nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/metrics", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `reservation_form_http_requests_total{method="GET",route="/health",status="200"} 1`)
	})
}

func TestRouter_SubmitIsThrottled(t *testing.T) {
	r, cmds := newRouter(t, func(c *config.Config) {
		c.RateLimit.SubmitPerMinute = 1
		c.RateLimit.Burst = 1
	})
	id := uuid.New()
	url := "/api/drafts/" + id.String() + "/submit"
	cmds.EXPECT().Submit(gomock.Any(), id, uuid.Nil).Return(nil, assert.AnError).Times(1)

	first := httptest.PerformRequest(t, r, http.MethodPost, url, nil)
	second := httptest.PerformRequest(t, r, http.MethodPost, url, nil)

	assert.Equal(t, http.StatusInternalServerError, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRouter_ForwardedForCannotDodgeThrottle(t *testing.T) {
	r, cmds := newRouter(t, func(c *config.Config) {
		c.RateLimit.SubmitPerMinute = 1
		c.RateLimit.Burst = 1
	})
	id := uuid.New()
	url := "/api/drafts/" + id.String() + "/submit"
	cmds.EXPECT().Submit(gomock.Any(), id, uuid.Nil).Return(nil, assert.AnError).Times(1)

	first := httptest.PerformRequestWithHeaders(t, r, http.MethodPost, url, nil,
		map[string]string{"X-Forwarded-For": "203.0.113.1"})
	second := httptest.PerformRequestWithHeaders(t, r, http.MethodPost, url, nil,
		map[string]string{"X-Forwarded-For": "203.0.113.2"})

	assert.Equal(t, http.StatusInternalServerError, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRouter_TrustedProxyForwardsClientIP(t *testing.T) {
	r, cmds := newRouter(t, func(c *config.Config) {
		c.Server.TrustedProxies = []string{"192.0.2.0/24"}
		c.RateLimit.SubmitPerMinute = 1
		c.RateLimit.Burst = 1
	})
	id := uuid.New()
	url := "/api/drafts/" + id.String() + "/submit"
	cmds.EXPECT().Submit(gomock.Any(), id, uuid.Nil).Return(nil, assert.AnError).Times(2)

	first := httptest.PerformRequestWithHeaders(t, r, http.MethodPost, url, nil,
		map[string]string{"X-Forwarded-For": "203.0.113.1"})
	second := httptest.PerformRequestWithHeaders(t, r, http.MethodPost, url, nil,
		map[string]string{"X-Forwarded-For": "203.0.113.2"})

	assert.Equal(t, http.StatusInternalServerError, first.Code)
	assert.Equal(t, http.StatusInternalServerError, second.Code)
}

func TestRouter_InvalidTrustedProxies(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.Server.TrustedProxies = []string{"not-an-ip"}
	reg := observability.NewRegistry()
	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockFormQueries(ctrl)

	err := handler.NewRouter(
		gin.New(),
		cfg,
		api.NewDraftHandler(commandsmock.NewMockFormCommands(ctrl), q, cfg),
		api.NewQuoteHandler(q),
		middleware.NewSubmitLimiter(cfg.RateLimit, clock.NewRealClock()),
		observability.NewMetrics(reg),
		reg,
	)

	assert.Error(t, err)
}

func TestRouter_UnknownRoute(t *testing.T) {
	r, _ := newRouter(t, nil)

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/api/rooms", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
