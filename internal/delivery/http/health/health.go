package http_health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Controller struct {
	now func() time.Time
}

func New() *Controller {
	return &Controller{now: time.Now}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", c.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

type StatusDTO struct {
	Status    string    `json:"status" example:"OK"`
	Timestamp time.Time `json:"timestamp"`
}

// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} StatusDTO
// @Router /health [get]
func (c *Controller) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, StatusDTO{Status: "OK", Timestamp: c.now().UTC()})
}
