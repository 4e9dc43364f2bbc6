package http_movie

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/kinomatch/internal/delivery/http/common"
	"github.com/humanbelnik/kinomatch/internal/model"
	usecase_movie "github.com/humanbelnik/kinomatch/internal/usecase/movie"
)

var errorStatuses = []http_common.ErrorStatus{
	{Err: usecase_movie.ErrQueryRequired, Status: http.StatusBadRequest},
	{Err: usecase_movie.ErrGenreRequired, Status: http.StatusBadRequest},
	{Err: usecase_movie.ErrMovieNotFound, Status: http.StatusNotFound},
	{Err: usecase_movie.ErrCatalogUnavailable, Status: http.StatusBadGateway},
}

type Controller struct {
	uc *usecase_movie.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_movie.Usecase,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	movies.GET("/search", c.search)
	movies.GET("/popular", c.popular)
	movies.GET("/upcoming", c.upcoming)
	movies.GET("/trending", c.trending)
	movies.GET("/genres", c.genres)
	movies.GET("/by-genre", c.byGenre)
	movies.GET("/:movie_id", c.details)
}

func (c *Controller) page(ctx *gin.Context, op string, page model.CatalogPage, err error) {
	if err != nil {
		http_common.Fail(ctx, c.logger, op, err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.NewCatalogPageDTO(page))
}

// @Summary Search movies
// @Tags Movies
// @Produce json
// @Param q query string true "Title query"
// @Param page query int false "Page, starting at 1"
// @Success 200 {object} http_common.CatalogPageDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 502 {object} http_common.ErrorResponse "Catalog unavailable"
// @Router /movies/search [get]
func (c *Controller) search(ctx *gin.Context) {
	page, err := c.uc.Search(ctx.Request.Context(), ctx.Query("q"), http_common.QueryInt(ctx, "page", 1))
	c.page(ctx, "failed to search movies", page, err)
}

// @Summary Popular movies
// @Tags Movies
// @Produce json
// @Param page query int false "Page, starting at 1"
// @Success 200 {object} http_common.CatalogPageDTO
// @Failure 502 {object} http_common.ErrorResponse "Catalog unavailable"
// @Router /movies/popular [get]
func (c *Controller) popular(ctx *gin.Context) {
	page, err := c.uc.Popular(ctx.Request.Context(), http_common.QueryInt(ctx, "page", 1))
	c.page(ctx, "failed to load popular movies", page, err)
}

// @Summary Upcoming movies
// @Tags Movies
// @Produce json
// @Param page query int false "Page, starting at 1"
// @Success 200 {object} http_common.CatalogPageDTO
// @Failure 502 {object} http_common.ErrorResponse "Catalog unavailable"
// @Router /movies/upcoming [get]
func (c *Controller) upcoming(ctx *gin.Context) {
	page, err := c.uc.Upcoming(ctx.Request.Context(), http_common.QueryInt(ctx, "page", 1))
	c.page(ctx, "failed to load upcoming movies", page, err)
}

// @Summary Trending movies
// @Tags Movies
// @Produce json
// @Param window query string false "day or week (default)"
// @Success 200 {object} http_common.CatalogPageDTO
// @Failure 502 {object} http_common.ErrorResponse "Catalog unavailable"
// @Router /movies/trending [get]
func (c *Controller) trending(ctx *gin.Context) {
	page, err := c.uc.Trending(ctx.Request.Context(), ctx.Query("window"))
	c.page(ctx, "failed to load trending movies", page, err)
}

// @Summary Movies by genre
// @Tags Movies
// @Produce json
// @Param genreId query int true "Catalog genre id"
// @Param page query int false "Page, starting at 1"
// @Success 200 {object} http_common.CatalogPageDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 502 {object} http_common.ErrorResponse "Catalog unavailable"
// @Router /movies/by-genre [get]
func (c *Controller) byGenre(ctx *gin.Context) {
	page, err := c.uc.ByGenre(ctx.Request.Context(),
		http_common.QueryInt(ctx, "genreId", 0), http_common.QueryInt(ctx, "page", 1))
	c.page(ctx, "failed to load movies by genre", page, err)
}

// @Summary Genres
// @Tags Movies
// @Produce json
// @Success 200 {array} http_common.GenreDTO
// @Failure 502 {object} http_common.ErrorResponse "Catalog unavailable"
// @Router /movies/genres [get]
func (c *Controller) genres(ctx *gin.Context) {
	genres, err := c.uc.Genres(ctx.Request.Context())
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to load genres", err, errorStatuses)
		return
	}

	res := make([]http_common.GenreDTO, 0, len(genres))
	for _, g := range genres {
		res = append(res, http_common.GenreDTO{ID: g.ID, Name: g.Name})
	}
	ctx.JSON(http.StatusOK, res)
}

// @Summary Movie details
// @Description Served from the local store, fetched from the catalog and stored on first access
// @Tags Movies
// @Produce json
// @Param movie_id path int true "Catalog movie id"
// @Success 200 {object} http_common.MovieDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Failure 502 {object} http_common.ErrorResponse "Catalog unavailable"
// @Router /movies/{movie_id} [get]
func (c *Controller) details(ctx *gin.Context) {
	id, ok := http_common.IntParam(ctx, "movie_id")
	if !ok {
		return
	}

	movie, err := c.uc.Details(ctx.Request.Context(), id)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to load movie", err, errorStatuses)
		return
	}
	ctx.JSON(http.StatusOK, http_common.NewMovieDTO(movie))
}
