package usecase_favorite

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/internal/model"
)

var (
	ErrInternal      = errors.New("internal error")
	ErrMovieNotFound = errors.New("movie not found")
	ErrAlreadyAdded  = errors.New("movie is already a favorite")
)

//go:generate mockery --name=FavoriteRepository --output=./mocks/favorite/repository --filename=repository.go
type FavoriteRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Favorite, error)
	Add(ctx context.Context, f model.Favorite) error
	Remove(ctx context.Context, userID uuid.UUID, movieID int) error
	Exists(ctx context.Context, userID uuid.UUID, movieID int) (bool, error)
}

//go:generate mockery --name=MovieResolver --output=./mocks/favorite/movies --filename=movies.go
type MovieResolver interface {
	Details(ctx context.Context, id int) (model.Movie, error)
}

type Usecase struct {
	repo   FavoriteRepository
	movies MovieResolver
	now    func() time.Time
}

func New(repo FavoriteRepository, movies MovieResolver) *Usecase {
	return &Usecase{
		repo:   repo,
		movies: movies,
		now:    time.Now,
	}
}

func (u *Usecase) List(ctx context.Context, userID uuid.UUID) ([]model.Favorite, error) {
	favorites, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return favorites, nil
}

// Add stores movieID as a favorite of userID, caching the movie locally first.
func (u *Usecase) Add(ctx context.Context, userID uuid.UUID, movieID int) (model.Favorite, error) {
	movie, err := u.movies.Details(ctx, movieID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Favorite{}, ErrMovieNotFound
		}
		return model.Favorite{}, errors.Join(ErrInternal, err)
	}

	favorite := model.Favorite{
		ID:      uuid.New(),
		UserID:  userID,
		MovieID: movie.ID,
		AddedAt: u.now().UTC(),
		Movie:   &movie,
	}
	if err := u.repo.Add(ctx, favorite); err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			return model.Favorite{}, ErrAlreadyAdded
		}
		return model.Favorite{}, errors.Join(ErrInternal, err)
	}
	return favorite, nil
}

// Remove is idempotent.
func (u *Usecase) Remove(ctx context.Context, userID uuid.UUID, movieID int) error {
	if err := u.repo.Remove(ctx, userID, movieID); err != nil && !errors.Is(err, model.ErrNotFound) {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

func (u *Usecase) IsFavorite(ctx context.Context, userID uuid.UUID, movieID int) (bool, error) {
	ok, err := u.repo.Exists(ctx, userID, movieID)
	if err != nil {
		return false, errors.Join(ErrInternal, err)
	}
	return ok, nil
}
