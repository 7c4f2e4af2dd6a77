package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-reservation/internal/handler/api"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/infra/observability"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/errs"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type handlers struct {
	draft *api.DraftHandler
	quote *api.QuoteHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	draftHandler *api.DraftHandler,
	quoteHandler *api.QuoteHandler,
	limiter *middleware.SubmitLimiter,
	metrics *observability.Metrics,
	registry *prometheus.Registry,
) error {
	// ClientIP keys the submit limiter; only configured proxies may override it
	if err := engine.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return errs.Wrap(err, "invalid TRUSTED_PROXIES")
	}
	setupMiddleware(engine, cfg, metrics)
	setupRoutes(engine, cfg, handlers{draft: draftHandler, quote: quoteHandler}, limiter, registry)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, metrics *observability.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware(metrics))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h handlers, limiter *middleware.SubmitLimiter, registry *prometheus.Registry) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled && registry != nil {
		engine.GET("/metrics", gin.WrapH(observability.Handler(registry)))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	throttled := []gin.HandlerFunc{limiter.Handler()}

	apiGroup := engine.Group("/api")
	{
		drafts := apiGroup.Group("/drafts")
		{
			addRoutes(drafts, []route{
				{Method: http.MethodPost, Path: "", Handler: h.draft.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.draft.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.draft.UpdateField},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: h.draft.Submit, Mw: throttled},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/session/draft", Handler: h.draft.Current},
			{Method: http.MethodPost, Path: "/checkout", Handler: h.draft.Checkout, Mw: throttled},
			{Method: http.MethodGet, Path: "/quotes", Handler: h.quote.Get},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
