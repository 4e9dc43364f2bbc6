package http_common

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorStatus binds a usecase sentinel to the HTTP status it maps to.
type ErrorStatus struct {
	Err    error
	Status int
}

// Fail answers with the first matching sentinel's status and message.
// Unknown errors become 500 without leaking details.
func Fail(ctx *gin.Context, logger *slog.Logger, op string, err error, table []ErrorStatus) {
	for _, e := range table {
		if !errors.Is(err, e.Err) {
			continue
		}
		if e.Status >= http.StatusInternalServerError {
			logger.Error(op, slog.String("error", err.Error()))
		} else {
			logger.Warn(op, slog.String("error", err.Error()))
		}
		ctx.JSON(e.Status, ErrorResponse{Message: e.Err.Error()})
		return
	}

	logger.Error(op, slog.String("error", err.Error()))
	ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
}

func BadRequest(ctx *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("invalid request format", slog.String("error", err.Error()))
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request format"})
}
