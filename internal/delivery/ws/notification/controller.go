package ws_notification

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	http_common "github.com/humanbelnik/kinomatch/internal/delivery/http/common"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Controller struct {
	hub  *Hub
	auth gin.HandlerFunc

	logger *slog.Logger
}

func NewController(hub *Hub, auth gin.HandlerFunc) *Controller {
	return &Controller{
		hub:    hub,
		auth:   auth,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ws", c.auth, c.connect)
}

// @Summary Realtime events
// @Description Upgrades to a websocket that receives notification and message events. Browsers pass the token as ?token=.
// @Tags Realtime
// @Param token query string false "Session token"
// @Success 101
// @Failure 401 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /ws [get]
func (c *Controller) connect(ctx *gin.Context) {
	userID := http_common.UserID(ctx)

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Warn("websocket upgrade failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	client := NewClient(c.hub, conn, userID)
	if !client.Start() {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"), time.Now().Add(writeWait))
		_ = conn.Close()
	}
}
