package httperr

import (
	"errors"
	"net/http"

	"eventora/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps usecase sentinels onto HTTP statuses. Quota
// exhaustion carries the limit so clients can render "x of y used".
func AbortWithDomainError(c *gin.Context, err error, msg string) {
	if qe, ok := errs.AsQuotaExceeded(err); ok {
		AbortWithError(c, http.StatusConflict, err, msg, gin.H{
			"resource": qe.Resource,
			"limit":    qe.Limit,
		})
		return
	}

	switch {
	case errors.Is(err, errs.ErrValidation):
		AbortWithError(c, http.StatusBadRequest, err, msg, nil)
	case errors.Is(err, errs.ErrPermissionDenied):
		AbortWithError(c, http.StatusForbidden, err, msg, nil)
	case errors.Is(err, errs.ErrNotFound):
		AbortWithError(c, http.StatusNotFound, err, msg, nil)
	case errors.Is(err, errs.ErrInvalidState):
		AbortWithError(c, http.StatusConflict, err, msg, nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
