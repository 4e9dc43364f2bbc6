package http_match

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/kinomatch/internal/delivery/http/common"
	"github.com/humanbelnik/kinomatch/internal/model"
	usecase_match "github.com/humanbelnik/kinomatch/internal/usecase/match"
)

var errorStatuses = []http_common.ErrorStatus{
	{Err: usecase_match.ErrMatchNotFound, Status: http.StatusNotFound},
	{Err: usecase_match.ErrUserNotFound, Status: http.StatusNotFound},
	{Err: usecase_match.ErrMovieNotFound, Status: http.StatusNotFound},
	{Err: usecase_match.ErrNoUnwatchedMovies, Status: http.StatusNotFound},
	{Err: usecase_match.ErrNotParticipant, Status: http.StatusForbidden},
	{Err: usecase_match.ErrNotAddressee, Status: http.StatusForbidden},
	{Err: usecase_match.ErrMatchNotAccepted, Status: http.StatusBadRequest},
	{Err: usecase_match.ErrSelfMatch, Status: http.StatusBadRequest},
	{Err: usecase_match.ErrMatchExists, Status: http.StatusConflict},
}

type Controller struct {
	uc   *usecase_match.Usecase
	auth gin.HandlerFunc

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_match.Usecase,
	auth gin.HandlerFunc,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		auth:   auth,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	matches := router.Group("/matches", c.auth)
	{
		matches.GET("", c.list)
		matches.POST("", c.create)
		matches.PUT("/:match_id/accept", c.accept)
		matches.PUT("/:match_id/reject", c.reject)
		matches.GET("/:match_id/common", c.common)
		matches.GET("/:match_id/random", c.random)
		matches.GET("/:match_id/stats", c.stats)
		matches.PUT("/:match_id/background", c.background)
	}
}

// @Summary List matches
// @Description Returns every match of the caller with the partner embedded
// @Tags Matches
// @Produce json
// @Success 200 {array} http_common.MatchDTO
// @Failure 401 {object} http_common.ErrorResponse
// @Failure 500 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /matches [get]
func (c *Controller) list(ctx *gin.Context) {
	callerID := http_common.UserID(ctx)

	matches, err := c.uc.List(ctx.Request.Context(), callerID)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to list matches", err, errorStatuses)
		return
	}

	res := make([]http_common.MatchDTO, 0, len(matches))
	for _, m := range matches {
		res = append(res, http_common.NewMatchDTO(m, callerID))
	}
	ctx.JSON(http.StatusOK, res)
}

type CreateRequestDTO struct {
	TargetUsername string `json:"targetUsername" binding:"required" example:"lucia"`
}

// @Summary Request a match
// @Description Sends a match request. A previously rejected match is reopened with the caller as requester
// @Tags Matches
// @Accept json
// @Produce json
// @Param request body CreateRequestDTO true "Target user"
// @Success 201 {object} http_common.MatchDTO "Match created"
// @Success 200 {object} http_common.MatchDTO "Rejected match reopened"
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Failure 409 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /matches [post]
func (c *Controller) create(ctx *gin.Context) {
	var req CreateRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, c.logger, err)
		return
	}
	callerID := http_common.UserID(ctx)

	match, created, err := c.uc.Create(ctx.Request.Context(), callerID, req.TargetUsername)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to create match", err, errorStatuses)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, http_common.NewMatchDTO(match, callerID))
}

// @Summary Accept a match
// @Tags Matches
// @Produce json
// @Param match_id path string true "Match ID"
// @Success 200 {object} http_common.MatchDTO
// @Failure 403 {object} http_common.ErrorResponse "Only the addressee can accept"
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /matches/{match_id}/accept [put]
func (c *Controller) accept(ctx *gin.Context) {
	matchID, ok := http_common.UUIDParam(ctx, "match_id")
	if !ok {
		return
	}
	callerID := http_common.UserID(ctx)

	match, err := c.uc.Accept(ctx.Request.Context(), matchID, callerID)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to accept match", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.NewMatchDTO(match, callerID))
}

// @Summary Reject a match
// @Tags Matches
// @Produce json
// @Param match_id path string true "Match ID"
// @Success 200 {object} http_common.MessageResponse
// @Failure 403 {object} http_common.ErrorResponse "Only the addressee can reject"
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /matches/{match_id}/reject [put]
func (c *Controller) reject(ctx *gin.Context) {
	matchID, ok := http_common.UUIDParam(ctx, "match_id")
	if !ok {
		return
	}

	if err := c.uc.Reject(ctx.Request.Context(), matchID, http_common.UserID(ctx)); err != nil {
		http_common.Fail(ctx, c.logger, "failed to reject match", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.MessageResponse{Message: "match rejected"})
}

// @Summary Common movies
// @Description Union of both partners' favorites minus the movies already watched in the match
// @Tags Matches
// @Produce json
// @Param match_id path string true "Match ID"
// @Param genre query string false "Exact genre name"
// @Param minRating query number false "Inclusive minimum rating"
// @Param sortBy query string false "title (default), rating or releaseDate"
// @Success 200 {array} http_common.MovieDTO
// @Failure 400 {object} http_common.ErrorResponse "Match is not accepted"
// @Failure 403 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /matches/{match_id}/common [get]
func (c *Controller) common(ctx *gin.Context) {
	matchID, ok := http_common.UUIDParam(ctx, "match_id")
	if !ok {
		return
	}

	filter := model.CommonMoviesFilter{
		Genre:  ctx.Query("genre"),
		SortBy: ctx.Query("sortBy"),
	}
	if raw := ctx.Query("minRating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http_common.BadRequest(ctx, c.logger, err)
			return
		}
		filter.MinRating = &minRating
	}

	movies, err := c.uc.CommonMovies(ctx.Request.Context(), matchID, http_common.UserID(ctx), filter)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to list common movies", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.NewMovieDTOs(movies))
}

// @Summary Movie of the day
// @Description Picks one unwatched movie for the match. Both partners get the same movie for the whole UTC day
// @Tags Matches
// @Produce json
// @Param match_id path string true "Match ID"
// @Success 200 {object} http_common.MovieDTO
// @Failure 400 {object} http_common.ErrorResponse "Match is not accepted"
// @Failure 403 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse "Match not found or no unwatched movies"
// @Security BearerAuth
// @Router /matches/{match_id}/random [get]
func (c *Controller) random(ctx *gin.Context) {
	matchID, ok := http_common.UUIDParam(ctx, "match_id")
	if !ok {
		return
	}

	movie, err := c.uc.PickDailyMovie(ctx.Request.Context(), matchID, http_common.UserID(ctx))
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to pick movie", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.NewMovieDTO(movie))
}

// @Summary Match statistics
// @Tags Matches
// @Produce json
// @Param match_id path string true "Match ID"
// @Success 200 {object} http_common.MatchStatsDTO
// @Failure 403 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /matches/{match_id}/stats [get]
func (c *Controller) stats(ctx *gin.Context) {
	matchID, ok := http_common.UUIDParam(ctx, "match_id")
	if !ok {
		return
	}

	stats, err := c.uc.Stats(ctx.Request.Context(), matchID, http_common.UserID(ctx))
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to compute match stats", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.NewMatchStatsDTO(stats))
}

type BackgroundResponseDTO struct {
	BackgroundImage string `json:"backgroundImage"`
}

// @Summary Upload match background
// @Tags Matches
// @Accept multipart/form-data
// @Produce json
// @Param match_id path string true "Match ID"
// @Param backgroundImage formData file true "Image up to 5MB"
// @Success 200 {object} BackgroundResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 403 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /matches/{match_id}/background [put]
func (c *Controller) background(ctx *gin.Context) {
	matchID, ok := http_common.UUIDParam(ctx, "match_id")
	if !ok {
		return
	}

	img, err := http_common.FormImage(ctx, "backgroundImage")
	if err != nil {
		c.logger.Warn("bad background upload", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: http_common.ErrBadImage.Error()})
		return
	}
	if img == nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "no image uploaded"})
		return
	}

	url, err := c.uc.SetBackground(ctx.Request.Context(), matchID, http_common.UserID(ctx), *img)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to set match background", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, BackgroundResponseDTO{BackgroundImage: url})
}
