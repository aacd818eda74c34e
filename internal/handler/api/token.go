package api

import (
	"net/http"

	"appointment-agent/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type TokenIssuer interface {
	Issue() (string, error)
}

type TokenHandler struct {
	issuer TokenIssuer
}

func NewTokenHandler(issuer TokenIssuer) *TokenHandler {
	return &TokenHandler{issuer: issuer}
}

// @Summary Get room token
// @Description Issue a signed access token for the voice agent room
// @Tags token
// @Produce plain
// @Success 200 {string} string "Signed token"
// @Failure 429 {object} httperr.Response
// @Failure 500 {string} string "Error generating token."
// @Router /api/getToken [get]
func (h *TokenHandler) GetToken(c *gin.Context) {
	token, err := h.issuer.Issue()
	if err != nil {
		_ = c.Error(errs.Mark(err, errs.ErrTokenGenerationFailed))
		c.String(http.StatusInternalServerError, "Error generating token.")
		c.Abort()
		return
	}
	c.String(http.StatusOK, token)
}
