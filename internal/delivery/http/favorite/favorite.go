package http_favorite

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/kinomatch/internal/delivery/http/common"
	usecase_favorite "github.com/humanbelnik/kinomatch/internal/usecase/favorite"
)

var errorStatuses = []http_common.ErrorStatus{
	{Err: usecase_favorite.ErrMovieNotFound, Status: http.StatusNotFound},
	{Err: usecase_favorite.ErrAlreadyAdded, Status: http.StatusConflict},
}

type Controller struct {
	uc   *usecase_favorite.Usecase
	auth gin.HandlerFunc

	logger *slog.Logger
}

func New(
	uc *usecase_favorite.Usecase,
	auth gin.HandlerFunc,
) *Controller {
	return &Controller{
		uc:     uc,
		auth:   auth,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	favorites := router.Group("/favorites", c.auth)
	{
		favorites.GET("", c.list)
		favorites.POST("", c.add)
		favorites.DELETE("/:movie_id", c.remove)
		favorites.GET("/check/:movie_id", c.check)
	}
}

// @Summary List favorites
// @Tags Favorites
// @Produce json
// @Success 200 {array} http_common.FavoriteDTO
// @Failure 401 {object} http_common.ErrorResponse
// @Security BearerAuth
// @Router /favorites [get]
func (c *Controller) list(ctx *gin.Context) {
	favorites, err := c.uc.List(ctx.Request.Context(), http_common.UserID(ctx))
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to list favorites", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.NewFavoriteDTOs(favorites))
}

type AddRequestDTO struct {
	MovieID int `json:"movieId" binding:"required,gt=0" example:"603"`
}

// @Summary Add a favorite
// @Description Caches the movie locally when it is not stored yet
// @Tags Favorites
// @Accept json
// @Produce json
// @Param request body AddRequestDTO true "Movie"
// @Success 201 {object} http_common.FavoriteDTO
// @Failure 404 {object} http_common.ErrorResponse "Unknown movie"
// @Failure 409 {object} http_common.ErrorResponse "Already a favorite"
// @Security BearerAuth
// @Router /favorites [post]
func (c *Controller) add(ctx *gin.Context) {
	var req AddRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, c.logger, err)
		return
	}

	favorite, err := c.uc.Add(ctx.Request.Context(), http_common.UserID(ctx), req.MovieID)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to add favorite", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusCreated, http_common.NewFavoriteDTO(favorite))
}

// @Summary Remove a favorite
// @Tags Favorites
// @Param movie_id path int true "Movie id"
// @Success 204
// @Security BearerAuth
// @Router /favorites/{movie_id} [delete]
func (c *Controller) remove(ctx *gin.Context) {
	movieID, ok := http_common.IntParam(ctx, "movie_id")
	if !ok {
		return
	}

	if err := c.uc.Remove(ctx.Request.Context(), http_common.UserID(ctx), movieID); err != nil {
		http_common.Fail(ctx, c.logger, "failed to remove favorite", err, errorStatuses)
		return
	}
	ctx.Status(http.StatusNoContent)
}

type CheckResponseDTO struct {
	IsFavorite bool `json:"isFavorite"`
}

// @Summary Is a favorite
// @Tags Favorites
// @Produce json
// @Param movie_id path int true "Movie id"
// @Success 200 {object} CheckResponseDTO
// @Security BearerAuth
// @Router /favorites/check/{movie_id} [get]
func (c *Controller) check(ctx *gin.Context) {
	movieID, ok := http_common.IntParam(ctx, "movie_id")
	if !ok {
		return
	}

	isFavorite, err := c.uc.IsFavorite(ctx.Request.Context(), http_common.UserID(ctx), movieID)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to check favorite", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, CheckResponseDTO{IsFavorite: isFavorite})
}
