package usecase_favorite

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/internal/model"
	movie_mocks "github.com/humanbelnik/kinomatch/internal/usecase/favorite/mocks/favorite/movies"
	repo_mocks "github.com/humanbelnik/kinomatch/internal/usecase/favorite/mocks/favorite/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseFavoriteUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase *Usecase
	repo    *repo_mocks.FavoriteRepository
	movies  *movie_mocks.MovieResolver
	ctx     context.Context
}

func initResources(t provider.T) *resources {
	repo := repo_mocks.NewFavoriteRepository(t)
	movies := movie_mocks.NewMovieResolver(t)
	return &resources{
		usecase: New(repo, movies),
		repo:    repo,
		movies:  movies,
		ctx:     context.Background(),
	}
}

func (s *UsecaseFavoriteUnitSuite) TestAdd(t provider.T) {
	t.Parallel()

	userID := uuid.New()
	heat := model.Movie{ID: 949, Title: "Heat"}

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectedError error
	}{
		{
			name: "Should add a resolved movie",
			setupMocks: func(r *resources) {
				r.movies.On("Details", r.ctx, 949).Return(heat, nil).Once()
				r.repo.On("Add", r.ctx, mock.MatchedBy(func(f model.Favorite) bool {
					return f.UserID == userID && f.MovieID == 949 && f.ID != uuid.Nil
				})).Return(nil).Once()
			},
		},
		{
			name: "Should refuse duplicates",
			setupMocks: func(r *resources) {
				r.movies.On("Details", r.ctx, 949).Return(heat, nil).Once()
				r.repo.On("Add", r.ctx, mock.AnythingOfType("model.Favorite")).Return(model.ErrAlreadyExists).Once()
			},
			expectedError: ErrAlreadyAdded,
		},
		{
			name: "Should report movies the catalog does not know",
			setupMocks: func(r *resources) {
				r.movies.On("Details", r.ctx, 949).Return(model.Movie{}, fmt.Errorf("movie not found: %w", model.ErrNotFound)).Once()
			},
			expectedError: ErrMovieNotFound,
		},
		{
			name: "Should wrap catalog outages",
			setupMocks: func(r *resources) {
				r.movies.On("Details", r.ctx, 949).Return(model.Movie{}, errors.New("unavailable")).Once()
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

			favorite, err := r.usecase.Add(r.ctx, userID, 949)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "Heat", favorite.Movie.Title)
		})
	}
}

func (s *UsecaseFavoriteUnitSuite) TestRemoveIsIdempotent(t provider.T) {
	r := initResources(t)
	userID := uuid.New()
	r.repo.On("Remove", r.ctx, userID, 949).Return(model.ErrNotFound).Once()

	assert.NoError(t, r.usecase.Remove(r.ctx, userID, 949))
}

func (s *UsecaseFavoriteUnitSuite) TestIsFavorite(t provider.T) {
	r := initResources(t)
	userID := uuid.New()
	r.repo.On("Exists", r.ctx, userID, 949).Return(true, nil).Once()

	ok, err := r.usecase.IsFavorite(r.ctx, userID, 949)

	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestUsecaseFavoriteSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseFavoriteUnitSuite))
}
