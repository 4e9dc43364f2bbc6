package usecase_movie

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/humanbelnik/kinomatch/internal/model"
)

var (
	ErrInternal           = errors.New("internal error")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrQueryRequired      = errors.New("search query required")
	ErrGenreRequired      = errors.New("genre id required")
	ErrCatalogUnavailable = errors.New("movie catalog unavailable")
)

const (
	TrendingDay  = "day"
	TrendingWeek = "week"
)

//go:generate mockery --name=Catalog --output=./mocks/movie/catalog --filename=catalog.go
type Catalog interface {
	Search(ctx context.Context, query string, page int) (model.CatalogPage, error)
	Popular(ctx context.Context, page int) (model.CatalogPage, error)
	ByGenre(ctx context.Context, genreID int, page int) (model.CatalogPage, error)
	Upcoming(ctx context.Context, page int) (model.CatalogPage, error)
	Trending(ctx context.Context, window string) (model.CatalogPage, error)
	Genres(ctx context.Context) ([]model.Genre, error)
	Details(ctx context.Context, id int) (model.Movie, error)
}

//go:generate mockery --name=MovieRepository --output=./mocks/movie/repository --filename=repository.go
type MovieRepository interface {
	ByID(ctx context.Context, id int) (model.Movie, error)
	Store(ctx context.Context, mv model.Movie) error
}

type Usecase struct {
	catalog Catalog
	repo    MovieRepository
	logger  *slog.Logger
}

func New(catalog Catalog, repo MovieRepository) *Usecase {
	return &Usecase{
		catalog: catalog,
		repo:    repo,
		logger:  slog.Default(),
	}
}

func (u *Usecase) Search(ctx context.Context, query string, page int) (model.CatalogPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return model.CatalogPage{}, ErrQueryRequired
	}
	res, err := u.catalog.Search(ctx, query, firstPage(page))
	return res, catalogErr(err)
}

func (u *Usecase) Popular(ctx context.Context, page int) (model.CatalogPage, error) {
	res, err := u.catalog.Popular(ctx, firstPage(page))
	return res, catalogErr(err)
}

func (u *Usecase) ByGenre(ctx context.Context, genreID, page int) (model.CatalogPage, error) {
	if genreID <= 0 {
		return model.CatalogPage{}, ErrGenreRequired
	}
	res, err := u.catalog.ByGenre(ctx, genreID, firstPage(page))
	return res, catalogErr(err)
}

func (u *Usecase) Upcoming(ctx context.Context, page int) (model.CatalogPage, error) {
	res, err := u.catalog.Upcoming(ctx, firstPage(page))
	return res, catalogErr(err)
}

// Trending accepts "day" or "week"; anything else means a week.
func (u *Usecase) Trending(ctx context.Context, window string) (model.CatalogPage, error) {
	if window != TrendingDay {
		window = TrendingWeek
	}
	res, err := u.catalog.Trending(ctx, window)
	return res, catalogErr(err)
}

func (u *Usecase) Genres(ctx context.Context) ([]model.Genre, error) {
	res, err := u.catalog.Genres(ctx)
	return res, catalogErr(err)
}

// Details serves a movie from the local store and falls back to the catalog.
// Movies fetched from the catalog are stored so that favorites, watched
// entries and the daily pick can reference them.
func (u *Usecase) Details(ctx context.Context, id int) (model.Movie, error) {
	movie, err := u.repo.ByID(ctx, id)
	if err == nil {
		return movie, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Movie{}, errors.Join(ErrInternal, err)
	}

	movie, err = u.catalog.Details(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Movie{}, fmt.Errorf("%w: %w", ErrMovieNotFound, err)
		}
		return model.Movie{}, catalogErr(err)
	}

	if err := u.repo.Store(ctx, movie); err != nil {
		u.logger.Warn("failed to cache movie",
			slog.Int("movie_id", id),
			slog.String("error", err.Error()))
	}
	return movie, nil
}

func firstPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func catalogErr(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(ErrCatalogUnavailable, err)
}
