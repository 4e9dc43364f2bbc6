package http_watched

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/kinomatch/internal/delivery/http/common"
	usecase_watched "github.com/humanbelnik/kinomatch/internal/usecase/watched"
)

var errorStatuses = []http_common.ErrorStatus{
	{Err: usecase_watched.ErrMatchNotFound, Status: http.StatusNotFound},
	{Err: usecase_watched.ErrMovieNotFound, Status: http.StatusNotFound},
	{Err: usecase_watched.ErrWatchedNotFound, Status: http.StatusNotFound},
	{Err: usecase_watched.ErrAlreadyWatched, Status: http.StatusConflict},
	{Err: usecase_watched.ErrNotParticipant, Status: http.StatusForbidden},
	{Err: usecase_watched.ErrInvalidRating, Status: http.StatusBadRequest},
}

type Controller struct {
	uc   *usecase_watched.Usecase
	auth gin.HandlerFunc

	logger *slog.Logger
}

func New(
	uc *usecase_watched.Usecase,
	auth gin.HandlerFunc,
) *Controller {
	return &Controller{
		uc:     uc,
		auth:   auth,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	watched := router.Group("/watched", c.auth)
	{
		watched.GET("", c.list)
		watched.POST("", c.add)
		watched.PUT("/:watched_id", c.updateRating)
		watched.DELETE("/:watched_id", c.delete)
		watched.GET("/match/:match_id/stats", c.stats)
	}
}

// @Summary Watched movies of a match
// @Tags Watched
// @Produce json
// @Param matchId query string true "Match ID"
// @Success 200 {array} http_common.WatchedDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 403 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /watched [get]
func (c *Controller) list(ctx *gin.Context) {
	matchID, err := uuid.Parse(ctx.Query("matchId"))
	if err != nil {
		http_common.BadRequest(ctx, c.logger, err)
		return
	}

	watched, err := c.uc.List(ctx.Request.Context(), http_common.UserID(ctx), matchID)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to list watched movies", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.NewWatchedDTOs(watched))
}

type AddRequestDTO struct {
	MatchID uuid.UUID `json:"matchId" binding:"required" example:"5b0e3c3a-6f39-4d5e-9a43-0d2f1c7b8e11"`
	MovieID int       `json:"movieId" binding:"required,gt=0" example:"603"`
	Rating  *int      `json:"rating" example:"4"`
}

// @Summary Mark as watched
// @Description Excludes the movie from future daily picks of the match and notifies the partner
// @Tags Watched
// @Accept json
// @Produce json
// @Param request body AddRequestDTO true "Watched movie"
// @Success 201 {object} http_common.WatchedDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 403 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Failure 409 {object} http_common.ErrorResponse "Already watched in this match"
// @Security BearerAuth
// @Router /watched [post]
func (c *Controller) add(ctx *gin.Context) {
	var req AddRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, c.logger, err)
		return
	}

	watched, err := c.uc.Add(ctx.Request.Context(), http_common.UserID(ctx), req.MatchID, req.MovieID, req.Rating)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to mark movie as watched", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusCreated, http_common.NewWatchedDTO(watched))
}

type RatingRequestDTO struct {
	Rating int `json:"rating" binding:"required" example:"5"`
}

// @Summary Rate a watched movie
// @Tags Watched
// @Accept json
// @Produce json
// @Param watched_id path string true "Watched entry ID"
// @Param request body RatingRequestDTO true "Rating from 1 to 5"
// @Success 200 {object} http_common.WatchedDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 403 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /watched/{watched_id} [put]
func (c *Controller) updateRating(ctx *gin.Context) {
	id, ok := http_common.UUIDParam(ctx, "watched_id")
	if !ok {
		return
	}
	var req RatingRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, c.logger, err)
		return
	}

	watched, err := c.uc.UpdateRating(ctx.Request.Context(), http_common.UserID(ctx), id, req.Rating)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to rate watched movie", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.NewWatchedDTO(watched))
}

// @Summary Unmark a watched movie
// @Tags Watched
// @Param watched_id path string true "Watched entry ID"
// @Success 204
// @Failure 403 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /watched/{watched_id} [delete]
func (c *Controller) delete(ctx *gin.Context) {
	id, ok := http_common.UUIDParam(ctx, "watched_id")
	if !ok {
		return
	}

	if err := c.uc.Delete(ctx.Request.Context(), http_common.UserID(ctx), id); err != nil {
		http_common.Fail(ctx, c.logger, "failed to delete watched movie", err, errorStatuses)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// @Summary Watch statistics of a match
// @Tags Watched
// @Produce json
// @Param match_id path string true "Match ID"
// @Success 200 {object} http_common.MatchStatsDTO
// @Failure 403 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /watched/match/{match_id}/stats [get]
func (c *Controller) stats(ctx *gin.Context) {
	matchID, ok := http_common.UUIDParam(ctx, "match_id")
	if !ok {
		return
	}

	stats, err := c.uc.Stats(ctx.Request.Context(), http_common.UserID(ctx), matchID)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to compute watch stats", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.NewMatchStatsDTO(stats))
}
