package http_friend

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/kinomatch/internal/delivery/http/common"
	usecase_friendship "github.com/humanbelnik/kinomatch/internal/usecase/friendship"
)

var errorStatuses = []http_common.ErrorStatus{
	{Err: usecase_friendship.ErrUserNotFound, Status: http.StatusNotFound},
	{Err: usecase_friendship.ErrRequestNotFound, Status: http.StatusNotFound},
	{Err: usecase_friendship.ErrSelfFriend, Status: http.StatusBadRequest},
	{Err: usecase_friendship.ErrAlreadyAccepted, Status: http.StatusBadRequest},
	{Err: usecase_friendship.ErrAlreadyFriends, Status: http.StatusConflict},
	{Err: usecase_friendship.ErrRequestExists, Status: http.StatusConflict},
	{Err: usecase_friendship.ErrNotAddressee, Status: http.StatusForbidden},
	{Err: usecase_friendship.ErrNotParticipant, Status: http.StatusForbidden},
}

type Controller struct {
	uc   *usecase_friendship.Usecase
	auth gin.HandlerFunc

	logger *slog.Logger
}

func New(
	uc *usecase_friendship.Usecase,
	auth gin.HandlerFunc,
) *Controller {
	return &Controller{
		uc:     uc,
		auth:   auth,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	friends := router.Group("/friends", c.auth)
	{
		friends.GET("", c.friends)
		friends.GET("/requests", c.requests)
		friends.POST("", c.request)
		friends.PUT("/:friendship_id/accept", c.accept)
		friends.PUT("/:friendship_id/reject", c.reject)
		friends.DELETE("/:friendship_id", c.remove)
	}
}

// @Summary Accepted friends
// @Tags Friends
// @Produce json
// @Success 200 {array} http_common.FriendshipDTO
// @Security BearerAuth
// @Router /friends [get]
func (c *Controller) friends(ctx *gin.Context) {
	friendships, err := c.uc.Friends(ctx.Request.Context(), http_common.UserID(ctx))
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to list friends", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.NewFriendshipDTOs(friendships))
}

// @Summary Pending friend requests addressed to the caller
// @Tags Friends
// @Produce json
// @Success 200 {array} http_common.FriendshipDTO
// @Security BearerAuth
// @Router /friends/requests [get]
func (c *Controller) requests(ctx *gin.Context) {
	friendships, err := c.uc.Requests(ctx.Request.Context(), http_common.UserID(ctx))
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to list friend requests", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.NewFriendshipDTOs(friendships))
}

type RequestDTO struct {
	TargetUsername string `json:"targetUsername" binding:"required" example:"bob"`
}

// @Summary Send a friend request
// @Tags Friends
// @Accept json
// @Produce json
// @Param request body RequestDTO true "Target"
// @Success 201 {object} http_common.FriendshipDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Failure 409 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /friends [post]
func (c *Controller) request(ctx *gin.Context) {
	var req RequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, c.logger, err)
		return
	}

	friendship, err := c.uc.Request(ctx.Request.Context(), http_common.UserID(ctx), req.TargetUsername)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to send friend request", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusCreated, http_common.NewFriendshipDTO(friendship))
}

// @Summary Accept a friend request
// @Tags Friends
// @Produce json
// @Param friendship_id path string true "Friendship ID"
// @Success 200 {object} http_common.FriendshipDTO
// @Failure 403 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /friends/{friendship_id}/accept [put]
func (c *Controller) accept(ctx *gin.Context) {
	id, ok := http_common.UUIDParam(ctx, "friendship_id")
	if !ok {
		return
	}

	friendship, err := c.uc.Accept(ctx.Request.Context(), http_common.UserID(ctx), id)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to accept friend request", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.NewFriendshipDTO(friendship))
}

// @Summary Reject a friend request
// @Tags Friends
// @Produce json
// @Param friendship_id path string true "Friendship ID"
// @Success 200 {object} http_common.MessageResponse
// @Failure 403 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /friends/{friendship_id}/reject [put]
func (c *Controller) reject(ctx *gin.Context) {
	id, ok := http_common.UUIDParam(ctx, "friendship_id")
	if !ok {
		return
	}

	if err := c.uc.Reject(ctx.Request.Context(), http_common.UserID(ctx), id); err != nil {
		http_common.Fail(ctx, c.logger, "failed to reject friend request", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.MessageResponse{Message: "friend request rejected"})
}

// @Summary Remove a friend
// @Tags Friends
// @Param friendship_id path string true "Friendship ID"
// @Success 204
// @Failure 403 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /friends/{friendship_id} [delete]
func (c *Controller) remove(ctx *gin.Context) {
	id, ok := http_common.UUIDParam(ctx, "friendship_id")
	if !ok {
		return
	}

	if err := c.uc.Remove(ctx.Request.Context(), http_common.UserID(ctx), id); err != nil {
		http_common.Fail(ctx, c.logger, "failed to remove friend", err, errorStatuses)
		return
	}
	ctx.Status(http.StatusNoContent)
}
