package usecase_watched

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/internal/model"
	match_mocks "github.com/humanbelnik/kinomatch/internal/usecase/watched/mocks/watched/matches"
	movie_mocks "github.com/humanbelnik/kinomatch/internal/usecase/watched/mocks/watched/movies"
	notifier_mocks "github.com/humanbelnik/kinomatch/internal/usecase/watched/mocks/watched/notifier"
	repo_mocks "github.com/humanbelnik/kinomatch/internal/usecase/watched/mocks/watched/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseWatchedUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase  *Usecase
	repo     *repo_mocks.WatchedRepository
	matches  *match_mocks.MatchLookup
	movies   *movie_mocks.MovieResolver
	notifier *notifier_mocks.Notifier
	ctx      context.Context
}

func initResources(t provider.T) *resources {
	r := &resources{
		repo:     repo_mocks.NewWatchedRepository(t),
		matches:  match_mocks.NewMatchLookup(t),
		movies:   movie_mocks.NewMovieResolver(t),
		notifier: notifier_mocks.NewNotifier(t),
		ctx:      context.Background(),
	}
	r.usecase = New(r.repo, r.matches, r.movies, r.notifier)
	return r
}

var (
	alice   = uuid.New()
	bob     = uuid.New()
	matchID = uuid.New()
	match   = model.Match{ID: matchID, User1ID: alice, User2ID: bob, Status: model.MatchAccepted}
	amelie  = model.Movie{ID: 194, Title: "Amélie", Genres: []string{"Comedia", "Romance"}}
)

func rating(v int) *int {
	return &v
}

func (s *UsecaseWatchedUnitSuite) TestAdd(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		rating        *int
		setupMocks    func(r *resources)
		expectedError error
	}{
		{
			name:   "Should store and notify the partner",
			rating: rating(5),
			setupMocks: func(r *resources) {
				r.matches.On("ByID", r.ctx, matchID).Return(match, nil).Once()
				r.movies.On("Details", r.ctx, 194).Return(amelie, nil).Once()
				r.repo.On("Add", r.ctx, mock.MatchedBy(func(w model.WatchedMovie) bool {
					return w.MatchID == matchID && w.MovieID == 194 && *w.Rating == 5
				})).Return(nil).Once()
				r.notifier.On("Notify", r.ctx, mock.MatchedBy(func(n model.Notification) bool {
					return n.UserID == bob && n.Type == model.NotificationMovieWatched &&
						n.Message == `Tu pareja marcó "Amélie" como vista`
				})).Return(nil).Once()
			},
		},
		{
			name: "Should keep the entry when the notification fails",
			setupMocks: func(r *resources) {
				r.matches.On("ByID", r.ctx, matchID).Return(match, nil).Once()
				r.movies.On("Details", r.ctx, 194).Return(amelie, nil).Once()
				r.repo.On("Add", r.ctx, mock.AnythingOfType("model.WatchedMovie")).Return(nil).Once()
				r.notifier.On("Notify", r.ctx, mock.AnythingOfType("model.Notification")).Return(errors.New("db")).Once()
			},
		},
		{
			name: "Should refuse duplicates",
			setupMocks: func(r *resources) {
				r.matches.On("ByID", r.ctx, matchID).Return(match, nil).Once()
				r.movies.On("Details", r.ctx, 194).Return(amelie, nil).Once()
				r.repo.On("Add", r.ctx, mock.AnythingOfType("model.WatchedMovie")).Return(model.ErrAlreadyExists).Once()
			},
			expectedError: ErrAlreadyWatched,
		},
		{
			name: "Should report unknown movies",
			setupMocks: func(r *resources) {
				r.matches.On("ByID", r.ctx, matchID).Return(match, nil).Once()
				r.movies.On("Details", r.ctx, 194).Return(model.Movie{}, model.ErrNotFound).Once()
			},
			expectedError: ErrMovieNotFound,
		},
		{
			name:          "Should refuse ratings out of range",
			rating:        rating(6),
			setupMocks:    func(r *resources) {},
			expectedError: ErrInvalidRating,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			watched, err := r.usecase.Add(r.ctx, alice, matchID, 194, tc.rating)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 194, watched.MovieID)
		})
	}
}

func (s *UsecaseWatchedUnitSuite) TestUpdateAndDeleteCheckTheMatch(t provider.T) {
	t.Parallel()

	id := uuid.New()
	entry := model.WatchedMovie{ID: id, MatchID: matchID, MovieID: 194}

	t.Run("Should update the rating", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repo.On("ByID", r.ctx, id).Return(entry, nil).Once()
		r.matches.On("ByID", r.ctx, matchID).Return(match, nil).Once()
		r.repo.On("UpdateRating", r.ctx, id, rating(3)).Return(nil).Once()

		updated, err := r.usecase.UpdateRating(r.ctx, bob, id, 3)

		assert.NoError(t, err)
		assert.Equal(t, 3, *updated.Rating)
	})

	t.Run("Should not let outsiders delete", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repo.On("ByID", r.ctx, id).Return(entry, nil).Once()
		r.matches.On("ByID", r.ctx, matchID).Return(match, nil).Once()

		assert.ErrorIs(t, r.usecase.Delete(r.ctx, uuid.New(), id), ErrNotParticipant)
	})

	t.Run("Should report unknown entries", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repo.On("ByID", r.ctx, id).Return(model.WatchedMovie{}, model.ErrNotFound).Once()

		assert.ErrorIs(t, r.usecase.Delete(r.ctx, alice, id), ErrWatchedNotFound)
	})
}

func (s *UsecaseWatchedUnitSuite) TestStats(t provider.T) {
	r := initResources(t)
	now := time.Date(2024, time.May, 20, 21, 0, 0, 0, time.UTC)
	r.matches.On("ByID", r.ctx, matchID).Return(match, nil).Once()
	r.repo.On("ListByMatch", r.ctx, matchID).Return([]model.WatchedMovie{
		{MovieID: 194, Rating: rating(5), WatchedAt: now, Movie: &amelie},
		{MovieID: 949, Rating: rating(4), WatchedAt: now.AddDate(0, 0, -3), Movie: &model.Movie{Genres: []string{"Crimen"}}},
		{MovieID: 603, WatchedAt: now.AddDate(0, 0, -30), Movie: &model.Movie{Genres: []string{"Comedia"}}},
	}, nil).Once()

	stats, err := r.usecase.Stats(r.ctx, alice, matchID)

	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalWatched)
	assert.Equal(t, "3.0", stats.AverageRating)
	assert.Equal(t, 2, stats.CurrentStreak)
	assert.Equal(t, model.GenreCount{Name: "Comedia", Count: 2}, stats.TopGenres[0])
}

func TestUsecaseWatchedSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseWatchedUnitSuite))
}
