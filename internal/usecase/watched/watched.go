package usecase_watched

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/internal/model"
	"github.com/humanbelnik/kinomatch/internal/service/match_stats"
)

var (
	ErrInternal        = errors.New("internal error")
	ErrMatchNotFound   = errors.New("match not found")
	ErrMovieNotFound   = errors.New("movie not found")
	ErrWatchedNotFound = errors.New("watched movie not found")
	ErrAlreadyWatched  = errors.New("movie already marked as watched in this match")
	ErrNotParticipant  = errors.New("not a participant of this match")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

//go:generate mockery --name=WatchedRepository --output=./mocks/watched/repository --filename=repository.go
type WatchedRepository interface {
	ListByMatch(ctx context.Context, matchID uuid.UUID) ([]model.WatchedMovie, error)
	ByID(ctx context.Context, id uuid.UUID) (model.WatchedMovie, error)
	Add(ctx context.Context, w model.WatchedMovie) error
	UpdateRating(ctx context.Context, id uuid.UUID, rating *int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

//go:generate mockery --name=MatchLookup --output=./mocks/watched/matches --filename=matches.go
type MatchLookup interface {
	ByID(ctx context.Context, id uuid.UUID) (model.Match, error)
}

//go:generate mockery --name=MovieResolver --output=./mocks/watched/movies --filename=movies.go
type MovieResolver interface {
	Details(ctx context.Context, id int) (model.Movie, error)
}

//go:generate mockery --name=Notifier --output=./mocks/watched/notifier --filename=notifier.go
type Notifier interface {
	Notify(ctx context.Context, n model.Notification) error
}

type Usecase struct {
	repo     WatchedRepository
	matches  MatchLookup
	movies   MovieResolver
	notifier Notifier

	now    func() time.Time
	logger *slog.Logger
}

func New(repo WatchedRepository, matches MatchLookup, movies MovieResolver, notifier Notifier) *Usecase {
	return &Usecase{
		repo:     repo,
		matches:  matches,
		movies:   movies,
		notifier: notifier,
		now:      time.Now,
		logger:   slog.Default(),
	}
}

func (u *Usecase) List(ctx context.Context, callerID, matchID uuid.UUID) ([]model.WatchedMovie, error) {
	if _, err := u.authorize(ctx, matchID, callerID); err != nil {
		return nil, err
	}
	watched, err := u.repo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return watched, nil
}

// Add marks a movie as watched by the match and lets the partner know.
func (u *Usecase) Add(ctx context.Context, callerID, matchID uuid.UUID, movieID int, rating *int) (model.WatchedMovie, error) {
	if err := validRating(rating); err != nil {
		return model.WatchedMovie{}, err
	}
	match, err := u.authorize(ctx, matchID, callerID)
	if err != nil {
		return model.WatchedMovie{}, err
	}

	movie, err := u.movies.Details(ctx, movieID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.WatchedMovie{}, ErrMovieNotFound
		}
		return model.WatchedMovie{}, errors.Join(ErrInternal, err)
	}

	watched := model.WatchedMovie{
		ID:        uuid.New(),
		MatchID:   match.ID,
		MovieID:   movie.ID,
		Rating:    rating,
		WatchedAt: u.now().UTC(),
		Movie:     &movie,
	}
	if err := u.repo.Add(ctx, watched); err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			return model.WatchedMovie{}, ErrAlreadyWatched
		}
		return model.WatchedMovie{}, errors.Join(ErrInternal, err)
	}

	if err := u.notifier.Notify(ctx, model.Notification{
		UserID:  match.PartnerOf(callerID),
		Type:    model.NotificationMovieWatched,
		Title:   "Película marcada como vista",
		Message: fmt.Sprintf("Tu pareja marcó \"%s\" como vista", movie.Title),
		Data:    map[string]any{"matchId": match.ID.String(), "movieTitle": movie.Title},
	}); err != nil {
		u.logger.Warn("failed to notify partner",
			slog.String("match_id", match.ID.String()),
			slog.String("error", err.Error()))
	}
	return watched, nil
}

func (u *Usecase) UpdateRating(ctx context.Context, callerID, id uuid.UUID, rating int) (model.WatchedMovie, error) {
	if err := validRating(&rating); err != nil {
		return model.WatchedMovie{}, err
	}
	watched, err := u.owned(ctx, id, callerID)
	if err != nil {
		return model.WatchedMovie{}, err
	}
	if err := u.repo.UpdateRating(ctx, id, &rating); err != nil {
		return model.WatchedMovie{}, u.mapErr(err)
	}
	watched.Rating = &rating
	return watched, nil
}

func (u *Usecase) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	if _, err := u.owned(ctx, id, callerID); err != nil {
		return err
	}
	return u.mapErr(u.repo.Delete(ctx, id))
}

func (u *Usecase) Stats(ctx context.Context, callerID, matchID uuid.UUID) (model.MatchStats, error) {
	watched, err := u.List(ctx, callerID, matchID)
	if err != nil {
		return model.MatchStats{}, err
	}
	return match_stats.Compute(watched), nil
}

// owned loads a watched entry and checks the caller belongs to its match.
func (u *Usecase) owned(ctx context.Context, id, callerID uuid.UUID) (model.WatchedMovie, error) {
	watched, err := u.repo.ByID(ctx, id)
	if err != nil {
		return model.WatchedMovie{}, u.mapErr(err)
	}
	if _, err := u.authorize(ctx, watched.MatchID, callerID); err != nil {
		return model.WatchedMovie{}, err
	}
	return watched, nil
}

func (u *Usecase) authorize(ctx context.Context, matchID, callerID uuid.UUID) (model.Match, error) {
	match, err := u.matches.ByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Match{}, ErrMatchNotFound
		}
		return model.Match{}, errors.Join(ErrInternal, err)
	}
	if !match.HasParticipant(callerID) {
		return model.Match{}, ErrNotParticipant
	}
	return match, nil
}

func (u *Usecase) mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, model.ErrNotFound):
		return ErrWatchedNotFound
	default:
		return errors.Join(ErrInternal, err)
	}
}

func validRating(rating *int) error {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return ErrInvalidRating
	}
	return nil
}
