package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"appointment-agent/internal/handler/httperr"
	"appointment-agent/internal/pkg/config"
	"appointment-agent/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const AgentAPIKeyHeader = "x-agent-api-key"

type APIKeyMiddleware struct {
	apiKey []byte
}

func NewAPIKeyMiddleware(cfg config.AgentConfig) *APIKeyMiddleware {
	if cfg.APIKey == "" {
		slog.Warn("agent api key not configured; appointment creation is unauthenticated")
	}
	return &APIKeyMiddleware{apiKey: []byte(cfg.APIKey)}
}

// RequireAgentKey passes every request through when no key is configured.
func (m *APIKeyMiddleware) RequireAgentKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(m.apiKey) == 0 {
			c.Next()
			return
		}

		provided := []byte(c.GetHeader(AgentAPIKeyHeader))
		if subtle.ConstantTimeCompare(provided, m.apiKey) != 1 {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(errs.New("agent api key mismatch"), errs.ErrUnauthorized), httperr.MsgUnauthorized, nil)
			return
		}
		c.Next()
	}
}
