package http_notification

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/kinomatch/internal/delivery/http/common"
	usecase_notification "github.com/humanbelnik/kinomatch/internal/usecase/notification"
)

var errorStatuses = []http_common.ErrorStatus{
	{Err: usecase_notification.ErrNotificationNotFound, Status: http.StatusNotFound},
}

type Controller struct {
	uc   *usecase_notification.Usecase
	auth gin.HandlerFunc

	logger *slog.Logger
}

func New(
	uc *usecase_notification.Usecase,
	auth gin.HandlerFunc,
) *Controller {
	return &Controller{
		uc:     uc,
		auth:   auth,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications", c.auth)
	{
		notifications.GET("", c.list)
		notifications.PUT("/read-all", c.markAllRead)
		notifications.PUT("/:notification_id/read", c.markRead)
		notifications.DELETE("/:notification_id", c.delete)
	}
}

// @Summary Latest notifications
// @Tags Notifications
// @Produce json
// @Success 200 {array} http_common.NotificationDTO
// @Security BearerAuth
// @Router /notifications [get]
func (c *Controller) list(ctx *gin.Context) {
	notifications, err := c.uc.List(ctx.Request.Context(), http_common.UserID(ctx))
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to list notifications", err, errorStatuses)
		return
	}

	res := make([]http_common.NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		res = append(res, http_common.NewNotificationDTO(n))
	}
	ctx.JSON(http.StatusOK, res)
}

// @Summary Mark a notification as read
// @Tags Notifications
// @Produce json
// @Param notification_id path string true "Notification ID"
// @Success 200 {object} http_common.MessageResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /notifications/{notification_id}/read [put]
func (c *Controller) markRead(ctx *gin.Context) {
	id, ok := http_common.UUIDParam(ctx, "notification_id")
	if !ok {
		return
	}

	if err := c.uc.MarkRead(ctx.Request.Context(), id, http_common.UserID(ctx)); err != nil {
		http_common.Fail(ctx, c.logger, "failed to mark notification", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.MessageResponse{Message: "notification marked as read"})
}

type MarkAllResponseDTO struct {
	Message string `json:"message"`
	Updated int64  `json:"updated"`
}

// @Summary Mark every notification as read
// @Tags Notifications
// @Produce json
// @Success 200 {object} MarkAllResponseDTO
// @Security BearerAuth
// @Router /notifications/read-all [put]
func (c *Controller) markAllRead(ctx *gin.Context) {
	n, err := c.uc.MarkAllRead(ctx.Request.Context(), http_common.UserID(ctx))
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to mark notifications", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, MarkAllResponseDTO{Message: "all notifications marked as read", Updated: n})
}

// @Summary Delete a notification
// @Tags Notifications
// @Param notification_id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /notifications/{notification_id} [delete]
func (c *Controller) delete(ctx *gin.Context) {
	id, ok := http_common.UUIDParam(ctx, "notification_id")
	if !ok {
		return
	}

	if err := c.uc.Delete(ctx.Request.Context(), id, http_common.UserID(ctx)); err != nil {
		http_common.Fail(ctx, c.logger, "failed to delete notification", err, errorStatuses)
		return
	}
	ctx.Status(http.StatusNoContent)
}
