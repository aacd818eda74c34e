package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"appointment-agent/internal/handler/api"
	"appointment-agent/internal/handler/middleware"
	"appointment-agent/internal/infra/ratelimit"
	"appointment-agent/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	appointmentHandler *api.AppointmentHandler,
	customerHandler *api.CustomerHandler,
	apiKeyMiddleware *middleware.APIKeyMiddleware,
) {
	setupMiddleware(engine, cfg.CORS, logger)
	setupRoutes(engine, appointmentHandler, customerHandler, apiKeyMiddleware)
}

func NewTokenRouter(
	engine *gin.Engine,
	cfg config.TokenServerConfig,
	logger *middleware.Logger,
	tokenHandler *api.TokenHandler,
	limiter ratelimit.Limiter,
) {
	setupMiddleware(engine, cfg.CORS, logger)
	setupTokenRoutes(engine, tokenHandler, limiter)
}

func setupMiddleware(engine *gin.Engine, corsCfg config.CORSConfig, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(corsCfg))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	appointmentHandler *api.AppointmentHandler,
	customerHandler *api.CustomerHandler,
	apiKeyMiddleware *middleware.APIKeyMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	appointments := engine.Group("/appointments")
	{
		addRoutes(appointments, []route{
			{Method: http.MethodGet, Path: "", Handler: appointmentHandler.GetAll},
			{Method: http.MethodGet, Path: "/:id", Handler: appointmentHandler.Get},
			{Method: http.MethodPost, Path: "", Handler: appointmentHandler.Create, Mw: []gin.HandlerFunc{apiKeyMiddleware.RequireAgentKey()}},
			{Method: http.MethodPut, Path: "/:id", Handler: appointmentHandler.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: appointmentHandler.Delete},
		})
	}

	customers := engine.Group("/customers")
	{
		addRoutes(customers, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: customerHandler.Get},
		})
	}
}

func setupTokenRoutes(engine *gin.Engine, tokenHandler *api.TokenHandler, limiter ratelimit.Limiter) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/getToken", Handler: tokenHandler.GetToken, Mw: []gin.HandlerFunc{middleware.RateLimit(limiter)}},
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
