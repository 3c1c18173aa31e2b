package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"lab-scheduler/internal/pkg/errs"

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
		panic("AbortWithError: err cannot be nil")
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

// Abort maps a use case error onto its HTTP status.
func Abort(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidTransition):
		AbortWithError(c, http.StatusConflict, err, "Invalid status transition", nil)
	case errors.Is(err, errs.ErrValidation):
		var detail any
		if v, ok := errs.AsValidation(err); ok {
			detail = v.Fields
		}
		AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", detail)
	case errors.Is(err, errs.ErrNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, errs.ErrSlotConflict):
		AbortWithError(c, http.StatusConflict, err, "Time slot conflicts with a confirmed reservation", nil)
	case errors.Is(err, errs.ErrHasFutureReservations):
		AbortWithError(c, http.StatusConflict, err, "Equipment has future confirmed reservations", nil)
	case errors.Is(err, errs.ErrForbidden):
		AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
	default:
		slog.Error("unhandled error",
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
