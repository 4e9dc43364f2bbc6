package http_common

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userIDKey = "user_id"

type ErrorResponse struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// SetUserID stores the authenticated caller on the request context.
func SetUserID(ctx *gin.Context, id uuid.UUID) {
	ctx.Set(userIDKey, id)
}

// UserID returns the caller set by the auth middleware or uuid.Nil.
func UserID(ctx *gin.Context) uuid.UUID {
	v, ok := ctx.Get(userIDKey)
	if !ok {
		return uuid.Nil
	}
	id, _ := v.(uuid.UUID)
	return id
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
func BearerToken(ctx *gin.Context) string {
	h := ctx.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func Abort(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}

// UUIDParam parses a path parameter, answering 400 when it is malformed.
func UUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		Abort(ctx, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func IntParam(ctx *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		Abort(ctx, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return v, true
}

// QueryInt returns def for a missing or malformed query parameter.
func QueryInt(ctx *gin.Context, name string, def int) int {
	raw := ctx.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
