package usecase_match

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/internal/model"
	favorite_mocks "github.com/humanbelnik/kinomatch/internal/usecase/match/mocks/match/favorites"
	movie_mocks "github.com/humanbelnik/kinomatch/internal/usecase/match/mocks/match/movies"
	notifier_mocks "github.com/humanbelnik/kinomatch/internal/usecase/match/mocks/match/notifier"
	repo_mocks "github.com/humanbelnik/kinomatch/internal/usecase/match/mocks/match/repository"
	storage_mocks "github.com/humanbelnik/kinomatch/internal/usecase/match/mocks/match/storage"
	user_mocks "github.com/humanbelnik/kinomatch/internal/usecase/match/mocks/match/users"
	watched_mocks "github.com/humanbelnik/kinomatch/internal/usecase/match/mocks/match/watched"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseMatchUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase   *Usecase
	matches   *repo_mocks.MatchRepository
	users     *user_mocks.UserRepository
	favorites *favorite_mocks.FavoriteLookup
	watched   *watched_mocks.WatchedLookup
	movies    *movie_mocks.MovieLookup
	notifier  *notifier_mocks.Notifier
	images    *storage_mocks.ImageStorage
	ctx       context.Context
	now       time.Time
}

func initResources(t provider.T) *resources {
	r := &resources{
		matches:   repo_mocks.NewMatchRepository(t),
		users:     user_mocks.NewUserRepository(t),
		favorites: favorite_mocks.NewFavoriteLookup(t),
		watched:   watched_mocks.NewWatchedLookup(t),
		movies:    movie_mocks.NewMovieLookup(t),
		notifier:  notifier_mocks.NewNotifier(t),
		images:    storage_mocks.NewImageStorage(t),
		ctx:       context.Background(),
		now:       time.Date(2024, time.March, 15, 18, 30, 0, 0, time.UTC),
	}
	r.usecase = New(r.matches, r.users, r.favorites, r.watched, r.movies, r.notifier, r.images,
		WithClock(func() time.Time { return r.now }))
	return r
}

var (
	alice   = uuid.MustParse("0b7f8a3e-2c1d-4f6a-9e5b-1a2b3c4d5e6f")
	bob     = uuid.MustParse("7d6c5b4a-3f2e-4d1c-8b0a-9f8e7d6c5b4a")
	mallory = uuid.MustParse("e1e2e3e4-e5e6-4e7e-8e9e-aeb1c2d3e4f5")
	matchID = uuid.MustParse("5b0e3c3a-6f39-4d5e-9a43-0d2f1c7b8e11")
)

func acceptedMatch() model.Match {
	return model.Match{
		ID:      matchID,
		User1ID: alice,
		User2ID: bob,
		Status:  model.MatchAccepted,
		User1:   &model.UserSummary{ID: alice, Username: "alice"},
		User2:   &model.UserSummary{ID: bob, Username: "bob"},
	}
}

func withStatus(status model.MatchStatus) model.Match {
	m := acceptedMatch()
	m.Status = status
	return m
}

func (r *resources) expectCandidates(favA, favB, watched []int) {
	r.favorites.On("FavoriteMovieIDs", r.ctx, alice).Return(favA, nil).Once()
	r.favorites.On("FavoriteMovieIDs", r.ctx, bob).Return(favB, nil).Once()
	r.watched.On("WatchedMovieIDs", r.ctx, matchID).Return(watched, nil).Once()
}

func (s *UsecaseMatchUnitSuite) TestPickDailyMovie(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		caller        uuid.UUID
		setupMocks    func(r *resources)
		expectedID    int
		expectedError error
	}{
		{
			name:   "Should pick from the union of favorites minus watched",
			caller: alice,
			setupMocks: func(r *resources) {
				r.matches.On("ByID", r.ctx, matchID).Return(acceptedMatch(), nil).Once()
				r.expectCandidates([]int{78, 101, 3}, []int{10, 55, 101}, []int{3})
				r.movies.On("ByID", r.ctx, 10).Return(model.Movie{ID: 10, Title: "Memento"}, nil).Once()
			},
			expectedID: 10,
		},
		{
			name:   "Should give the same answer to the partner",
			caller: bob,
			setupMocks: func(r *resources) {
				r.matches.On("ByID", r.ctx, matchID).Return(acceptedMatch(), nil).Once()
				r.expectCandidates([]int{55, 10}, []int{101, 78}, nil)
				r.movies.On("ByID", r.ctx, 10).Return(model.Movie{ID: 10, Title: "Memento"}, nil).Once()
			},
			expectedID: 10,
		},
		{
			name:   "Should fail with empty candidate set when everything was watched",
			caller: alice,
			setupMocks: func(r *resources) {
				r.matches.On("ByID", r.ctx, matchID).Return(acceptedMatch(), nil).Once()
				r.expectCandidates([]int{1, 2}, []int{2}, []int{1, 2})
			},
			expectedError: ErrNoUnwatchedMovies,
		},
		{
			name:   "Should fail with empty candidate set when nobody has favorites",
			caller: alice,
			setupMocks: func(r *resources) {
				r.matches.On("ByID", r.ctx, matchID).Return(acceptedMatch(), nil).Once()
				r.expectCandidates(nil, nil, nil)
			},
			expectedError: ErrNoUnwatchedMovies,
		},
		{
			name:   "Should reject callers outside the match",
			caller: mallory,
			setupMocks: func(r *resources) {
				r.matches.On("ByID", r.ctx, matchID).Return(acceptedMatch(), nil).Once()
			},
			expectedError: ErrNotParticipant,
		},
		{
			name:   "Should report unknown match",
			caller: alice,
			setupMocks: func(r *resources) {
				r.matches.On("ByID", r.ctx, matchID).Return(model.Match{}, model.ErrNotFound).Once()
			},
			expectedError: ErrMatchNotFound,
		},
		{
			name:   "Should refuse pending matches",
			caller: alice,
			setupMocks: func(r *resources) {
				r.matches.On("ByID", r.ctx, matchID).Return(withStatus(model.MatchPending), nil).Once()
			},
			expectedError: ErrMatchNotAccepted,
		},
		{
			name:   "Should report a picked movie missing from the store",
			caller: alice,
			setupMocks: func(r *resources) {
				r.matches.On("ByID", r.ctx, matchID).Return(acceptedMatch(), nil).Once()
				r.expectCandidates([]int{10, 55, 78, 101}, nil, nil)
				r.movies.On("ByID", r.ctx, 10).Return(model.Movie{}, model.ErrNotFound).Once()
			},
			expectedError: ErrMovieNotFound,
		},
		{
			name:   "Should wrap favorites failure as internal",
			caller: alice,
			setupMocks: func(r *resources) {
				r.matches.On("ByID", r.ctx, matchID).Return(acceptedMatch(), nil).Once()
				r.favorites.On("FavoriteMovieIDs", r.ctx, alice).Return(nil, errors.New("connection reset")).Once()
			},
			expectedError: ErrInternal,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			movie, err := r.usecase.PickDailyMovie(r.ctx, matchID, tc.caller)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Zero(t, movie.ID)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedID, movie.ID)
		})
	}
}

func (s *UsecaseMatchUnitSuite) TestPickDailyMovieIsStableWithinDay(t provider.T) {
	r := initResources(t)
	r.matches.On("ByID", r.ctx, matchID).Return(acceptedMatch(), nil).Times(3)
	r.favorites.On("FavoriteMovieIDs", r.ctx, alice).Return([]int{78, 101}, nil).Times(3)
	r.favorites.On("FavoriteMovieIDs", r.ctx, bob).Return([]int{10, 55}, nil).Times(3)
	r.watched.On("WatchedMovieIDs", r.ctx, matchID).Return([]int{}, nil).Times(3)
	r.movies.On("ByID", r.ctx, mock.AnythingOfType("int")).
		Return(func(_ context.Context, id int) (model.Movie, error) {
			return model.Movie{ID: id}, nil
		}).Times(3)

	var picked []int
	for _, at := range []time.Time{
		time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 15, 23, 59, 59, 0, time.UTC),
	} {
		r.now = at
		movie, err := r.usecase.PickDailyMovie(r.ctx, matchID, alice)
		assert.NoError(t, err)
		picked = append(picked, movie.ID)
	}

	assert.Equal(t, []int{10, 10, 10}, picked)
}

func (s *UsecaseMatchUnitSuite) TestPickDailyMovieFollowsTheDate(t provider.T) {
	t.Parallel()

	testCases := []struct {
		at       time.Time
		expected int
	}{
		{at: time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC), expected: 10},
		{at: time.Date(2024, time.March, 16, 9, 0, 0, 0, time.UTC), expected: 55},
		{at: time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC), expected: 78},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.at.Format(time.DateOnly), func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			r.now = tc.at
			r.matches.On("ByID", r.ctx, matchID).Return(acceptedMatch(), nil).Once()
			r.expectCandidates([]int{101, 10}, []int{78, 55}, nil)
			r.movies.On("ByID", r.ctx, tc.expected).Return(model.Movie{ID: tc.expected}, nil).Once()

			movie, err := r.usecase.PickDailyMovie(r.ctx, matchID, alice)

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, movie.ID)
		})
	}
}

func (s *UsecaseMatchUnitSuite) TestCommonMovies(t provider.T) {
	t.Parallel()

	rating := func(v float64) *float64 { return &v }

	t.Run("Should load unwatched favorites and sort them", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.matches.On("ByID", r.ctx, matchID).Return(acceptedMatch(), nil).Once()
		r.expectCandidates([]int{3, 1}, []int{2, 3}, []int{2})
		r.movies.On("ByIDs", r.ctx, []int{1, 3}).Return([]model.Movie{
			{ID: 1, Title: "Up", Rating: rating(8.3)},
			{ID: 3, Title: "Alien", Rating: rating(8.5)},
		}, nil).Once()

		movies, err := r.usecase.CommonMovies(r.ctx, matchID, bob, model.CommonMoviesFilter{SortBy: model.SortByRating})

		assert.NoError(t, err)
		assert.Equal(t, []int{3, 1}, []int{movies[0].ID, movies[1].ID})
	})

	t.Run("Should return an empty list without touching movies", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.matches.On("ByID", r.ctx, matchID).Return(acceptedMatch(), nil).Once()
		r.expectCandidates([]int{7}, nil, []int{7})

		movies, err := r.usecase.CommonMovies(r.ctx, matchID, alice, model.CommonMoviesFilter{})

		assert.NoError(t, err)
		assert.NotNil(t, movies)
		assert.Empty(t, movies)
	})

	t.Run("Should apply the rating filter", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.matches.On("ByID", r.ctx, matchID).Return(acceptedMatch(), nil).Once()
		r.expectCandidates([]int{1, 2}, nil, nil)
		r.movies.On("ByIDs", r.ctx, []int{1, 2}).Return([]model.Movie{
			{ID: 1, Title: "Up", Rating: rating(6.1)},
			{ID: 2, Title: "Heat", Rating: rating(8.3)},
		}, nil).Once()

		movies, err := r.usecase.CommonMovies(r.ctx, matchID, alice, model.CommonMoviesFilter{MinRating: rating(7)})

		assert.NoError(t, err)
		assert.Len(t, movies, 1)
		assert.Equal(t, 2, movies[0].ID)
	})

	t.Run("Should reject outsiders", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.matches.On("ByID", r.ctx, matchID).Return(acceptedMatch(), nil).Once()

		_, err := r.usecase.CommonMovies(r.ctx, matchID, mallory, model.CommonMoviesFilter{})

		assert.ErrorIs(t, err, ErrNotParticipant)
	})
}

func (s *UsecaseMatchUnitSuite) TestCreate(t provider.T) {
	t.Parallel()

	t.Run("Should create a pending match and notify the target", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.users.On("ByUsername", r.ctx, "bob").Return(model.User{ID: bob, Username: "bob"}, nil).Once()
		r.matches.On("Between", r.ctx, alice, bob).Return(model.Match{}, model.ErrNotFound).Once()
		r.matches.On("Create", r.ctx, mock.MatchedBy(func(m model.Match) bool {
			return m.User1ID == alice && m.User2ID == bob && m.Status == model.MatchPending && m.CreatedAt.Equal(r.now)
		})).Return(nil).Once()
		r.matches.On("ByID", r.ctx, mock.AnythingOfType("uuid.UUID")).Return(withStatus(model.MatchPending), nil).Once()
		r.notifier.On("Notify", r.ctx, mock.MatchedBy(func(n model.Notification) bool {
			return n.UserID == bob && n.Type == model.NotificationMatchRequest && n.Message == "alice quiere hacer match contigo"
		})).Return(nil).Once()

		match, created, err := r.usecase.Create(r.ctx, alice, "bob")

		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, model.MatchPending, match.Status)
	})

	t.Run("Should reopen a rejected match with the caller as requester", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		reopened := withStatus(model.MatchPending)
		reopened.User1ID, reopened.User2ID = bob, alice
		reopened.User1, reopened.User2 = reopened.User2, reopened.User1

		r.users.On("ByUsername", r.ctx, "alice").Return(model.User{ID: alice, Username: "alice"}, nil).Once()
		r.matches.On("Between", r.ctx, bob, alice).Return(withStatus(model.MatchRejected), nil).Once()
		r.matches.On("Reopen", r.ctx, matchID, bob, alice, r.now).Return(nil).Once()
		r.matches.On("ByID", r.ctx, matchID).Return(reopened, nil).Once()
		r.notifier.On("Notify", r.ctx, mock.AnythingOfType("model.Notification")).Return(nil).Once()

		match, created, err := r.usecase.Create(r.ctx, bob, "alice")

		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, bob, match.User1ID)
	})

	t.Run("Should not fail when the notification cannot be stored", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.users.On("ByUsername", r.ctx, "bob").Return(model.User{ID: bob}, nil).Once()
		r.matches.On("Between", r.ctx, alice, bob).Return(model.Match{}, model.ErrNotFound).Once()
		r.matches.On("Create", r.ctx, mock.AnythingOfType("model.Match")).Return(nil).Once()
		r.matches.On("ByID", r.ctx, mock.AnythingOfType("uuid.UUID")).Return(withStatus(model.MatchPending), nil).Once()
		r.notifier.On("Notify", r.ctx, mock.AnythingOfType("model.Notification")).Return(errors.New("boom")).Once()

		_, created, err := r.usecase.Create(r.ctx, alice, "bob")

		assert.NoError(t, err)
		assert.True(t, created)
	})

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectedError error
	}{
		{
			name: "Should report unknown target",
			setupMocks: func(r *resources) {
				r.users.On("ByUsername", r.ctx, "bob").Return(model.User{}, model.ErrNotFound).Once()
			},
			expectedError: ErrUserNotFound,
		},
		{
			name: "Should refuse matching with yourself",
			setupMocks: func(r *resources) {
				r.users.On("ByUsername", r.ctx, "bob").Return(model.User{ID: alice}, nil).Once()
			},
			expectedError: ErrSelfMatch,
		},
		{
			name: "Should refuse duplicates",
			setupMocks: func(r *resources) {
				r.users.On("ByUsername", r.ctx, "bob").Return(model.User{ID: bob}, nil).Once()
				r.matches.On("Between", r.ctx, alice, bob).Return(acceptedMatch(), nil).Once()
			},
			expectedError: ErrMatchExists,
		},
		{
			name: "Should map a lost insert race to conflict",
			setupMocks: func(r *resources) {
				r.users.On("ByUsername", r.ctx, "bob").Return(model.User{ID: bob}, nil).Once()
				r.matches.On("Between", r.ctx, alice, bob).Return(model.Match{}, model.ErrNotFound).Once()
				r.matches.On("Create", r.ctx, mock.AnythingOfType("model.Match")).Return(model.ErrAlreadyExists).Once()
			},
			expectedError: ErrMatchExists,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			_, _, err := r.usecase.Create(r.ctx, alice, "bob")

			assert.ErrorIs(t, err, tc.expectedError)
		})
	}
}

func (s *UsecaseMatchUnitSuite) TestAcceptAndReject(t provider.T) {
	t.Parallel()

	t.Run("Should accept and notify the requester", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.matches.On("ByID", r.ctx, matchID).Return(withStatus(model.MatchPending), nil).Once()
		r.matches.On("SetStatus", r.ctx, matchID, model.MatchAccepted, mock.MatchedBy(func(at *time.Time) bool {
			return at != nil && at.Equal(r.now)
		})).Return(nil).Once()
		r.matches.On("ByID", r.ctx, matchID).Return(acceptedMatch(), nil).Once()
		r.notifier.On("Notify", r.ctx, mock.MatchedBy(func(n model.Notification) bool {
			return n.UserID == alice && n.Type == model.NotificationMatchAccepted && n.Message == "bob aceptó tu solicitud de match"
		})).Return(nil).Once()

		match, err := r.usecase.Accept(r.ctx, matchID, bob)

		assert.NoError(t, err)
		assert.Equal(t, model.MatchAccepted, match.Status)
	})

	t.Run("Should not let the requester accept", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.matches.On("ByID", r.ctx, matchID).Return(withStatus(model.MatchPending), nil).Once()

		_, err := r.usecase.Accept(r.ctx, matchID, alice)

		assert.ErrorIs(t, err, ErrNotAddressee)
	})

	t.Run("Should reject", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.matches.On("ByID", r.ctx, matchID).Return(withStatus(model.MatchPending), nil).Once()
		r.matches.On("SetStatus", r.ctx, matchID, model.MatchRejected, (*time.Time)(nil)).Return(nil).Once()

		assert.NoError(t, r.usecase.Reject(r.ctx, matchID, bob))
	})

	t.Run("Should not let outsiders reject", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.matches.On("ByID", r.ctx, matchID).Return(withStatus(model.MatchPending), nil).Once()

		assert.ErrorIs(t, r.usecase.Reject(r.ctx, matchID, mallory), ErrNotAddressee)
	})

	t.Run("Should report unknown match", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.matches.On("ByID", r.ctx, matchID).Return(model.Match{}, model.ErrNotFound).Once()

		assert.ErrorIs(t, r.usecase.Reject(r.ctx, matchID, bob), ErrMatchNotFound)
	})
}

func (s *UsecaseMatchUnitSuite) TestStats(t provider.T) {
	r := initResources(t)
	rating := 4
	r.matches.On("ByID", r.ctx, matchID).Return(acceptedMatch(), nil).Once()
	r.watched.On("ListByMatch", r.ctx, matchID).Return([]model.WatchedMovie{
		{MovieID: 1, Rating: &rating, WatchedAt: r.now, Movie: &model.Movie{Genres: []string{"Drama"}}},
	}, nil).Once()

	stats, err := r.usecase.Stats(r.ctx, matchID, alice)

	assert.NoError(t, err)
	assert.Equal(t, 1, stats.TotalWatched)
	assert.Equal(t, "4.0", stats.AverageRating)
	assert.Equal(t, []model.GenreCount{{Name: "Drama", Count: 1}}, stats.TopGenres)
}

func (s *UsecaseMatchUnitSuite) TestSetBackground(t provider.T) {
	t.Parallel()

	t.Run("Should store the image and drop the previous one", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		match := acceptedMatch()
		match.BackgroundImage = "mock://matches/old.png"
		r.matches.On("ByID", r.ctx, matchID).Return(match, nil).Once()
		r.images.On("Save", r.ctx, mock.MatchedBy(func(obj model.FileObject) bool {
			return obj.GetParent() == "matches/"+matchID.String()
		})).Return("mock://matches/new.png", nil).Once()
		r.matches.On("SetBackground", r.ctx, matchID, "mock://matches/new.png").Return(nil).Once()
		r.images.On("Delete", r.ctx, "mock://matches/old.png").Return(nil).Once()

		url, err := r.usecase.SetBackground(r.ctx, matchID, alice, model.Image{Filename: "new.png", Content: []byte{1}})

		assert.NoError(t, err)
		assert.Equal(t, "mock://matches/new.png", url)
	})

	t.Run("Should reject outsiders before uploading", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.matches.On("ByID", r.ctx, matchID).Return(acceptedMatch(), nil).Once()

		_, err := r.usecase.SetBackground(r.ctx, matchID, mallory, model.Image{})

		assert.ErrorIs(t, err, ErrNotParticipant)
	})
}

func TestUsecaseMatchSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseMatchUnitSuite))
}
