package http_auth_middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/kinomatch/internal/delivery/http/common"
	session_auth "github.com/humanbelnik/kinomatch/internal/service/auth/session"
)

//go:generate mockery --name=TokenValidator --output=./mocks/auth/validator --filename=validator.go
type TokenValidator interface {
	Validate(token string) (uuid.UUID, error)
}

type Middleware struct {
	validator TokenValidator
	logger    *slog.Logger
}

func New(
	validator TokenValidator,
) *Middleware {
	return &Middleware{
		validator: validator,
		logger:    slog.Default(),
	}
}

// AuthRequired accepts "Authorization: Bearer <jwt>" only.
func (m *Middleware) AuthRequired() gin.HandlerFunc {
	return m.authenticate(false)
}

// AuthRequiredWS also accepts the token query parameter. Browsers cannot
// set headers on websocket handshakes, so mount it on the upgrade route only.
func (m *Middleware) AuthRequiredWS() gin.HandlerFunc {
	return m.authenticate(true)
}

func (m *Middleware) authenticate(allowQuery bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		t := http_common.BearerToken(ctx)
		if t == "" && allowQuery {
			t = ctx.Query("token")
		}
		if t == "" {
			m.logger.Warn("no bearer token", slog.String("path", ctx.FullPath()))
			http_common.Abort(ctx, http.StatusUnauthorized, "token required")
			return
		}

		userID, err := m.validator.Validate(t)
		if err != nil {
			if errors.Is(err, session_auth.ErrInvalidToken) || errors.Is(err, session_auth.ErrRevoked) {
				m.logger.Warn("rejected token", slog.String("error", err.Error()))
				http_common.Abort(ctx, http.StatusUnauthorized, "invalid token")
				return
			}
			m.logger.Error("internal error", slog.String("error", err.Error()))
			http_common.Abort(ctx, http.StatusInternalServerError, "internal error")
			return
		}

		http_common.SetUserID(ctx, userID)
		ctx.Next()
	}
}
