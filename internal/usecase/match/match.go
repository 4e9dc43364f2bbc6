package usecase_match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/internal/metrics"
	"github.com/humanbelnik/kinomatch/internal/model"
	"github.com/humanbelnik/kinomatch/internal/service/match_stats"
	"github.com/humanbelnik/kinomatch/internal/service/movie_picker"
)

var (
	ErrInternal          = errors.New("internal error")
	ErrMatchNotFound     = errors.New("match not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrMovieNotFound     = errors.New("movie not found")
	ErrNotParticipant    = errors.New("not a participant of this match")
	ErrNotAddressee      = errors.New("only the invited user can answer this match")
	ErrMatchNotAccepted  = errors.New("match is not accepted")
	ErrNoUnwatchedMovies = errors.New("no unwatched movies")
	ErrSelfMatch         = errors.New("cannot match with yourself")
	ErrMatchExists       = errors.New("match already exists")
)

//go:generate mockery --name=MatchRepository --output=./mocks/match/repository --filename=repository.go
type MatchRepository interface {
	Create(ctx context.Context, m model.Match) error
	ByID(ctx context.Context, id uuid.UUID) (model.Match, error)
	Between(ctx context.Context, a uuid.UUID, b uuid.UUID) (model.Match, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Match, error)
	Reopen(ctx context.Context, id uuid.UUID, requester uuid.UUID, addressee uuid.UUID, at time.Time) error
	SetStatus(ctx context.Context, id uuid.UUID, status model.MatchStatus, acceptedAt *time.Time) error
	SetBackground(ctx context.Context, id uuid.UUID, image string) error
}

//go:generate mockery --name=UserRepository --output=./mocks/match/users --filename=users.go
type UserRepository interface {
	ByID(ctx context.Context, id uuid.UUID) (model.User, error)
	ByUsername(ctx context.Context, username string) (model.User, error)
}

//go:generate mockery --name=FavoriteLookup --output=./mocks/match/favorites --filename=favorites.go
type FavoriteLookup interface {
	FavoriteMovieIDs(ctx context.Context, userID uuid.UUID) ([]int, error)
}

//go:generate mockery --name=WatchedLookup --output=./mocks/match/watched --filename=watched.go
type WatchedLookup interface {
	WatchedMovieIDs(ctx context.Context, matchID uuid.UUID) ([]int, error)
	ListByMatch(ctx context.Context, matchID uuid.UUID) ([]model.WatchedMovie, error)
}

//go:generate mockery --name=MovieLookup --output=./mocks/match/movies --filename=movies.go
type MovieLookup interface {
	ByID(ctx context.Context, id int) (model.Movie, error)
	ByIDs(ctx context.Context, ids []int) ([]model.Movie, error)
}

//go:generate mockery --name=Notifier --output=./mocks/match/notifier --filename=notifier.go
type Notifier interface {
	Notify(ctx context.Context, n model.Notification) error
}

//go:generate mockery --name=ImageStorage --output=./mocks/match/storage --filename=storage.go
type ImageStorage interface {
	Save(ctx context.Context, obj model.FileObject) (string, error)
	Delete(ctx context.Context, url string) error
}

type Usecase struct {
	matches   MatchRepository
	users     UserRepository
	favorites FavoriteLookup
	watched   WatchedLookup
	movies    MovieLookup
	notifier  Notifier
	images    ImageStorage

	now    func() time.Time
	logger *slog.Logger
}

type Option func(*Usecase)

// WithClock replaces the wall clock used for the daily pick and timestamps.
func WithClock(now func() time.Time) Option {
	return func(u *Usecase) {
		u.now = now
	}
}

func New(
	matches MatchRepository,
	users UserRepository,
	favorites FavoriteLookup,
	watched WatchedLookup,
	movies MovieLookup,
	notifier Notifier,
	images ImageStorage,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		matches:   matches,
		users:     users,
		favorites: favorites,
		watched:   watched,
		movies:    movies,
		notifier:  notifier,
		images:    images,
		now:       time.Now,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Usecase) List(ctx context.Context, callerID uuid.UUID) ([]model.Match, error) {
	matches, err := u.matches.ListByUser(ctx, callerID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return matches, nil
}

// Create sends a match request to targetUsername. A previously rejected match
// is reopened with the caller as requester, in which case created is false.
func (u *Usecase) Create(ctx context.Context, callerID uuid.UUID, targetUsername string) (match model.Match, created bool, err error) {
	target, err := u.users.ByUsername(ctx, targetUsername)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Match{}, false, ErrUserNotFound
		}
		return model.Match{}, false, errors.Join(ErrInternal, err)
	}
	if target.ID == callerID {
		return model.Match{}, false, ErrSelfMatch
	}

	now := u.now().UTC()
	existing, err := u.matches.Between(ctx, callerID, target.ID)
	switch {
	case err == nil && existing.Status == model.MatchRejected:
		if err := u.matches.Reopen(ctx, existing.ID, callerID, target.ID, now); err != nil {
			return model.Match{}, false, errors.Join(ErrInternal, err)
		}
		match, err = u.matches.ByID(ctx, existing.ID)
		if err != nil {
			return model.Match{}, false, errors.Join(ErrInternal, err)
		}
	case err == nil:
		return model.Match{}, false, ErrMatchExists
	case errors.Is(err, model.ErrNotFound):
		id := uuid.New()
		if err := u.matches.Create(ctx, model.Match{
			ID:        id,
			User1ID:   callerID,
			User2ID:   target.ID,
			Status:    model.MatchPending,
			CreatedAt: now,
		}); err != nil {
			if errors.Is(err, model.ErrAlreadyExists) {
				return model.Match{}, false, ErrMatchExists
			}
			return model.Match{}, false, errors.Join(ErrInternal, err)
		}
		match, err = u.matches.ByID(ctx, id)
		if err != nil {
			return model.Match{}, false, errors.Join(ErrInternal, err)
		}
		created = true
	default:
		return model.Match{}, false, errors.Join(ErrInternal, err)
	}

	requester := u.usernameOf(ctx, match.User1, callerID)
	u.notify(ctx, model.Notification{
		UserID:  target.ID,
		Type:    model.NotificationMatchRequest,
		Title:   "Nueva solicitud de match",
		Message: fmt.Sprintf("%s quiere hacer match contigo", requester),
		Data:    map[string]any{"requesterId": callerID.String(), "matchId": match.ID.String()},
	})
	return match, created, nil
}

func (u *Usecase) Accept(ctx context.Context, matchID, callerID uuid.UUID) (model.Match, error) {
	match, err := u.addressed(ctx, matchID, callerID)
	if err != nil {
		return model.Match{}, err
	}

	now := u.now().UTC()
	if err := u.matches.SetStatus(ctx, match.ID, model.MatchAccepted, &now); err != nil {
		return model.Match{}, u.mapRepoErr(err)
	}
	match, err = u.matches.ByID(ctx, match.ID)
	if err != nil {
		return model.Match{}, u.mapRepoErr(err)
	}

	accepter := u.usernameOf(ctx, match.User2, callerID)
	u.notify(ctx, model.Notification{
		UserID:  match.User1ID,
		Type:    model.NotificationMatchAccepted,
		Title:   "Match aceptado",
		Message: fmt.Sprintf("%s aceptó tu solicitud de match", accepter),
		Data:    map[string]any{"accepterId": callerID.String(), "matchId": match.ID.String()},
	})
	return match, nil
}

func (u *Usecase) Reject(ctx context.Context, matchID, callerID uuid.UUID) error {
	match, err := u.addressed(ctx, matchID, callerID)
	if err != nil {
		return err
	}
	if err := u.matches.SetStatus(ctx, match.ID, model.MatchRejected, nil); err != nil {
		return u.mapRepoErr(err)
	}
	return nil
}

// PickDailyMovie returns the movie of the day for an accepted match. The pick
// is a pure function of the candidate set, the match id and the UTC date.
func (u *Usecase) PickDailyMovie(ctx context.Context, matchID, callerID uuid.UUID) (model.Movie, error) {
	movie, err := u.pickDailyMovie(ctx, matchID, callerID)
	metrics.DailyPicks.WithLabelValues(pickOutcome(err)).Inc()
	return movie, err
}

func (u *Usecase) pickDailyMovie(ctx context.Context, matchID, callerID uuid.UUID) (model.Movie, error) {
	match, err := u.accepted(ctx, matchID, callerID)
	if err != nil {
		return model.Movie{}, err
	}

	candidates, err := u.candidates(ctx, match)
	if err != nil {
		return model.Movie{}, err
	}
	if len(candidates) == 0 {
		return model.Movie{}, ErrNoUnwatchedMovies
	}

	id := movie_picker.Pick(candidates, match.ID.String(), u.now())
	movie, err := u.movies.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Movie{}, ErrMovieNotFound
		}
		return model.Movie{}, errors.Join(ErrInternal, err)
	}

	u.logger.Debug("daily movie picked",
		slog.String("match_id", match.ID.String()),
		slog.Int("movie_id", id),
		slog.Int("candidates", len(candidates)))
	return movie, nil
}

// CommonMovies lists the unwatched favorites of both partners.
func (u *Usecase) CommonMovies(ctx context.Context, matchID, callerID uuid.UUID, filter model.CommonMoviesFilter) ([]model.Movie, error) {
	match, err := u.accepted(ctx, matchID, callerID)
	if err != nil {
		return nil, err
	}

	candidates, err := u.candidates(ctx, match)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []model.Movie{}, nil
	}

	movies, err := u.movies.ByIDs(ctx, candidates)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return movie_picker.FilterAndSort(movies, filter), nil
}

func (u *Usecase) Stats(ctx context.Context, matchID, callerID uuid.UUID) (model.MatchStats, error) {
	match, err := u.authorize(ctx, matchID, callerID)
	if err != nil {
		return model.MatchStats{}, err
	}
	watched, err := u.watched.ListByMatch(ctx, match.ID)
	if err != nil {
		return model.MatchStats{}, errors.Join(ErrInternal, err)
	}
	return match_stats.Compute(watched), nil
}

// SetBackground stores img and attaches it to the match. The previous image is
// removed on a best effort basis.
func (u *Usecase) SetBackground(ctx context.Context, matchID, callerID uuid.UUID, img model.Image) (string, error) {
	match, err := u.authorize(ctx, matchID, callerID)
	if err != nil {
		return "", err
	}

	img.Kind = model.ImageMatchBackground
	img.Owner = match.ID.String()
	url, err := u.images.Save(ctx, img)
	if err != nil {
		return "", errors.Join(ErrInternal, err)
	}
	if err := u.matches.SetBackground(ctx, match.ID, url); err != nil {
		return "", u.mapRepoErr(err)
	}

	if match.BackgroundImage != "" {
		if err := u.images.Delete(ctx, match.BackgroundImage); err != nil {
			u.logger.Warn("failed to delete previous match background",
				slog.String("match_id", match.ID.String()),
				slog.String("error", err.Error()))
		}
	}
	return url, nil
}

// Authorize loads the match and checks that callerID takes part in it.
func (u *Usecase) Authorize(ctx context.Context, matchID, callerID uuid.UUID) (model.Match, error) {
	return u.authorize(ctx, matchID, callerID)
}

func (u *Usecase) authorize(ctx context.Context, matchID, callerID uuid.UUID) (model.Match, error) {
	match, err := u.matches.ByID(ctx, matchID)
	if err != nil {
		return model.Match{}, u.mapRepoErr(err)
	}
	if !match.HasParticipant(callerID) {
		return model.Match{}, ErrNotParticipant
	}
	return match, nil
}

func (u *Usecase) accepted(ctx context.Context, matchID, callerID uuid.UUID) (model.Match, error) {
	match, err := u.authorize(ctx, matchID, callerID)
	if err != nil {
		return model.Match{}, err
	}
	if match.Status != model.MatchAccepted {
		return model.Match{}, ErrMatchNotAccepted
	}
	return match, nil
}

// addressed allows only the invited side (User2) to answer the request.
func (u *Usecase) addressed(ctx context.Context, matchID, callerID uuid.UUID) (model.Match, error) {
	match, err := u.matches.ByID(ctx, matchID)
	if err != nil {
		return model.Match{}, u.mapRepoErr(err)
	}
	if match.User2ID != callerID {
		return model.Match{}, ErrNotAddressee
	}
	return match, nil
}

func (u *Usecase) candidates(ctx context.Context, match model.Match) ([]int, error) {
	favA, err := u.favorites.FavoriteMovieIDs(ctx, match.User1ID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	favB, err := u.favorites.FavoriteMovieIDs(ctx, match.User2ID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	watched, err := u.watched.WatchedMovieIDs(ctx, match.ID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return movie_picker.Eligible(favA, favB, watched), nil
}

func (u *Usecase) usernameOf(ctx context.Context, summary *model.UserSummary, id uuid.UUID) string {
	if summary != nil && summary.ID == id {
		return summary.Username
	}
	user, err := u.users.ByID(ctx, id)
	if err != nil {
		return "Alguien"
	}
	return user.Username
}

// notify never fails the calling operation.
func (u *Usecase) notify(ctx context.Context, n model.Notification) {
	if err := u.notifier.Notify(ctx, n); err != nil {
		u.logger.Warn("failed to notify",
			slog.String("type", string(n.Type)),
			slog.String("user_id", n.UserID.String()),
			slog.String("error", err.Error()))
	}
}

func (u *Usecase) mapRepoErr(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return ErrMatchNotFound
	}
	return errors.Join(ErrInternal, err)
}

func pickOutcome(err error) string {
	switch {
	case err == nil:
		return "picked"
	case errors.Is(err, ErrNoUnwatchedMovies):
		return "empty"
	case errors.Is(err, ErrNotParticipant), errors.Is(err, ErrMatchNotAccepted), errors.Is(err, ErrMatchNotFound):
		return "denied"
	default:
		return "error"
	}
}
