package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Messages shared by handlers and middleware.
const (
	MsgInternal       = "Internal server error"
	MsgInvalidRequest = "Invalid request"
	MsgUnauthorized   = "Unauthorized"
	MsgRateLimited    = "Rate limit exceeded"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError keeps err on the context for the request logger; the
// client only sees msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func AbortInternal(c *gin.Context, err error) {
	AbortWithError(c, http.StatusInternalServerError, err, MsgInternal, nil)
}

// AbortInvalidRequest attaches the failed binding rules when err comes from
// the validator.
func AbortInvalidRequest(c *gin.Context, err error) {
	var detail any
	if fields := ValidationDetail(err); len(fields) > 0 {
		detail = fields
	}
	AbortWithError(c, http.StatusBadRequest, err, MsgInvalidRequest, detail)
}

func ValidationDetail(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, len(verrs))
	for i, fe := range verrs {
		out[i] = FieldError{Field: fe.Namespace(), Rule: fe.Tag()}
	}
	return out
}
