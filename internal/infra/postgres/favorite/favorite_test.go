package infra_postgres_favorite

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type FavoriteInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	mock   sqlmock.Sqlmock
	driver *Driver
	ctx    context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return &resources{
		mock:   mock,
		driver: New(sqlx.NewDb(db, "sqlmock")),
		ctx:    context.Background(),
	}
}

func (s *FavoriteInfraUnitSuite) TestAdd(t provider.T) {
	t.Parallel()

	fav := model.Favorite{ID: uuid.New(), UserID: uuid.New(), MovieID: 603, AddedAt: time.Now().UTC()}

	testCases := []struct {
		name        string
		dbErr       error
		expectedErr error
	}{
		{name: "Should add favorite"},
		{name: "Should report duplicate", dbErr: &pq.Error{Code: "23505"}, expectedErr: model.ErrAlreadyExists},
		{name: "Should report unknown movie", dbErr: &pq.Error{Code: "23503"}, expectedErr: model.ErrNotFound},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			exp := r.mock.ExpectExec("INSERT INTO user_favorites").
				WithArgs(fav.ID, fav.UserID, fav.MovieID, fav.AddedAt)
			if tc.dbErr != nil {
				exp.WillReturnError(tc.dbErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := r.driver.Add(r.ctx, fav)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (s *FavoriteInfraUnitSuite) TestFavoriteMovieIDs(t provider.T) {
	r := initResources(t)
	userID := uuid.New()
	r.mock.ExpectQuery("SELECT movie_id FROM user_favorites").WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"movie_id"}).AddRow(3).AddRow(1))

	ids, err := r.driver.FavoriteMovieIDs(r.ctx, userID)

	assert.NoError(t, err)
	assert.Equal(t, []int{3, 1}, ids)
}

func (s *FavoriteInfraUnitSuite) TestRemoveMissing(t provider.T) {
	r := initResources(t)
	r.mock.ExpectExec("DELETE FROM user_favorites").WillReturnResult(sqlmock.NewResult(0, 0))

	err := r.driver.Remove(r.ctx, uuid.New(), 603)

	assert.ErrorIs(t, err, model.ErrNotFound)
}

func (s *FavoriteInfraUnitSuite) TestListByUser(t provider.T) {
	r := initResources(t)
	userID, favID := uuid.New(), uuid.New()
	added := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"fav_id", "user_id", "movie_id", "added_at",
		"id", "title", "description", "poster_path", "backdrop_path", "release_date", "rating", "genres", "runtime",
	}).AddRow(favID.String(), userID.String(), 603, added, 603, "Matrix", "", "", "", nil, 8.7, []byte(`["Acción"]`), 136)
	r.mock.ExpectQuery("FROM user_favorites f").WithArgs(userID).WillReturnRows(rows)

	favorites, err := r.driver.ListByUser(r.ctx, userID)

	assert.NoError(t, err)
	if assert.Len(t, favorites, 1) {
		assert.Equal(t, favID, favorites[0].ID)
		assert.Equal(t, "Matrix", favorites[0].Movie.Title)
		assert.Equal(t, []string{"Acción"}, favorites[0].Movie.Genres)
	}
}

func TestFavoriteInfraSuite(t *testing.T) {
	suite.RunSuite(t, new(FavoriteInfraUnitSuite))
}
