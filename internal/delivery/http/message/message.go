package http_message

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/kinomatch/internal/delivery/http/common"
	usecase_message "github.com/humanbelnik/kinomatch/internal/usecase/message"
)

var errorStatuses = []http_common.ErrorStatus{
	{Err: usecase_message.ErrEmptyMessage, Status: http.StatusBadRequest},
	{Err: usecase_message.ErrTargetRequired, Status: http.StatusBadRequest},
	{Err: usecase_message.ErrFriendshipNotAccepted, Status: http.StatusBadRequest},
	{Err: usecase_message.ErrMatchNotFound, Status: http.StatusNotFound},
	{Err: usecase_message.ErrFriendshipNotFound, Status: http.StatusNotFound},
	{Err: usecase_message.ErrForbidden, Status: http.StatusForbidden},
}

type Controller struct {
	uc   *usecase_message.Usecase
	auth gin.HandlerFunc

	logger *slog.Logger
}

func New(
	uc *usecase_message.Usecase,
	auth gin.HandlerFunc,
) *Controller {
	return &Controller{
		uc:     uc,
		auth:   auth,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	messages := router.Group("/messages", c.auth)
	{
		messages.POST("", c.send)
		messages.GET("/:match_id", c.listByMatch)
		messages.GET("/friend/:friendship_id", c.listByFriendship)
	}
}

type SendRequestDTO struct {
	MatchID  *uuid.UUID `json:"matchId" example:"5b0e3c3a-6f39-4d5e-9a43-0d2f1c7b8e11"`
	FriendID *uuid.UUID `json:"friendId"`
	Content  string     `json:"content" example:"¿Esta noche?"`
}

// @Summary Send a message
// @Description Messages expire 24 hours after they are sent. matchId wins over friendId when both are given.
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body SendRequestDTO true "Message"
// @Success 201 {object} http_common.MessageDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 403 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /messages [post]
func (c *Controller) send(ctx *gin.Context) {
	var req SendRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, c.logger, err)
		return
	}

	conv := usecase_message.Conversation{MatchID: req.MatchID, FriendshipID: req.FriendID}
	msg, err := c.uc.Send(ctx.Request.Context(), http_common.UserID(ctx), conv, req.Content)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to send message", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusCreated, http_common.NewMessageDTO(msg))
}

// @Summary Messages of a match
// @Tags Messages
// @Produce json
// @Param match_id path string true "Match ID"
// @Success 200 {array} http_common.MessageDTO
// @Failure 403 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /messages/{match_id} [get]
func (c *Controller) listByMatch(ctx *gin.Context) {
	matchID, ok := http_common.UUIDParam(ctx, "match_id")
	if !ok {
		return
	}
	c.list(ctx, usecase_message.Conversation{MatchID: &matchID})
}

// @Summary Messages with a friend
// @Tags Messages
// @Produce json
// @Param friendship_id path string true "Friendship ID"
// @Success 200 {array} http_common.MessageDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 403 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /messages/friend/{friendship_id} [get]
func (c *Controller) listByFriendship(ctx *gin.Context) {
	friendshipID, ok := http_common.UUIDParam(ctx, "friendship_id")
	if !ok {
		return
	}
	c.list(ctx, usecase_message.Conversation{FriendshipID: &friendshipID})
}

func (c *Controller) list(ctx *gin.Context, conv usecase_message.Conversation) {
	messages, err := c.uc.List(ctx.Request.Context(), http_common.UserID(ctx), conv)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to list messages", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.NewMessageDTOs(messages))
}
