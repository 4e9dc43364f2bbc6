package http_favorite

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/kinomatch/internal/delivery/http/common"
	"github.com/humanbelnik/kinomatch/internal/model"
	usecase_favorite "github.com/humanbelnik/kinomatch/internal/usecase/favorite"
	movie_mocks "github.com/humanbelnik/kinomatch/internal/usecase/favorite/mocks/favorite/movies"
	repo_mocks "github.com/humanbelnik/kinomatch/internal/usecase/favorite/mocks/favorite/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type HTTPFavoriteSuite struct {
	suite.Suite
}

var caller = uuid.MustParse("0b7f8a3e-2c1d-4f6a-9e5b-1a2b3c4d5e6f")

type resources struct {
	router *gin.Engine
	repo   *repo_mocks.FavoriteRepository
	movies *movie_mocks.MovieResolver
}

func initResources(t provider.T) *resources {
	r := &resources{
		repo:   repo_mocks.NewFavoriteRepository(t),
		movies: movie_mocks.NewMovieResolver(t),
	}
	auth := func(ctx *gin.Context) {
		http_common.SetUserID(ctx, caller)
	}

	gin.SetMode(gin.TestMode)
	r.router = gin.New()
	New(usecase_favorite.New(r.repo, r.movies), auth).RegisterRoutes(r.router.Group("/api/v1"))
	return r
}

func (r *resources) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.router.ServeHTTP(w, req)
	return w
}

func (s *HTTPFavoriteSuite) TestAdd(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		body         string
		setupMocks   func(r *resources)
		expectedCode int
		expectedBody string
	}{
		{
			name: "Should add a known movie",
			body: `{"movieId":603}`,
			setupMocks: func(r *resources) {
				r.movies.On("Details", mock.Anything, 603).Return(model.Movie{ID: 603, Title: "Matrix"}, nil).Once()
				r.repo.On("Add", mock.Anything, mock.MatchedBy(func(f model.Favorite) bool {
					return f.UserID == caller && f.MovieID == 603
				})).Return(nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"movieId":603`,
		},
		{
			name: "Should answer 409 for duplicates",
			body: `{"movieId":603}`,
			setupMocks: func(r *resources) {
				r.movies.On("Details", mock.Anything, 603).Return(model.Movie{ID: 603}, nil).Once()
				r.repo.On("Add", mock.Anything, mock.Anything).Return(model.ErrAlreadyExists).Once()
			},
			expectedCode: http.StatusConflict,
			expectedBody: usecase_favorite.ErrAlreadyAdded.Error(),
		},
		{
			name: "Should answer 404 for movies unknown to the catalog",
			body: `{"movieId":999999}`,
			setupMocks: func(r *resources) {
				r.movies.On("Details", mock.Anything, 999999).Return(model.Movie{}, model.ErrNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Should reject a missing movie id",
			body:         `{}`,
			setupMocks:   func(r *resources) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "invalid request format",
		},
		{
			name: "Should hide internal failures",
			body: `{"movieId":603}`,
			setupMocks: func(r *resources) {
				r.movies.On("Details", mock.Anything, 603).Return(model.Movie{}, errors.New("circuit open")).Once()
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "internal error",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			w := r.do(http.MethodPost, "/api/v1/favorites", tc.body)

			assert.Equal(t, tc.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func (s *HTTPFavoriteSuite) TestRemoveAndCheck(t provider.T) {
	t.Parallel()

	t.Run("Should treat removing a missing favorite as done", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repo.On("Remove", mock.Anything, caller, 603).Return(model.ErrNotFound).Once()

		w := r.do(http.MethodDelete, "/api/v1/favorites/603", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Should report membership", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.repo.On("Exists", mock.Anything, caller, 603).Return(true, nil).Once()

		w := r.do(http.MethodGet, "/api/v1/favorites/check/603", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"isFavorite":true}`, w.Body.String())
	})

	t.Run("Should reject non numeric ids", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		w := r.do(http.MethodGet, "/api/v1/favorites/check/matrix", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPFavoriteSuite(t *testing.T) {
	suite.RunSuite(t, new(HTTPFavoriteSuite))
}
