package middleware

import (
	"log/slog"
	"strings"

	"appointment-agent/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always exposes Location so browser clients can follow a
// created appointment. An empty origin list disables CORS handling.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	if len(cfg.AllowOrigins) == 0 {
		slog.Warn("CORS disabled: no allowed origins configured")
		return func(c *gin.Context) { c.Next() }
	}

	expose := cfg.ExposeHeaders
	if !containsFold(expose, "Location") {
		expose = append(append([]string(nil), expose...), "Location")
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"expose_headers", expose)
	return cors.New(corsCfg)
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
