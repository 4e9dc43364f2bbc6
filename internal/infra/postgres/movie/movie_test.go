package infra_postgres_movie

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/humanbelnik/kinomatch/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type MovieInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	db         *sqlx.DB
	mock       sqlmock.Sqlmock
	repository *Repository
	ctx        context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	return &resources{
		db:         sqlxDB,
		mock:       mock,
		repository: New(sqlxDB),
		ctx:        context.Background(),
	}
}

var movieColumns = []string{"id", "title", "description", "poster_path", "backdrop_path", "release_date", "rating", "genres", "runtime"}

type MovieBuilder struct {
	mv model.Movie
}

func NewMovieBuilder() *MovieBuilder {
	released := time.Date(1999, time.March, 31, 0, 0, 0, 0, time.UTC)
	rating := 8.7
	return &MovieBuilder{
		mv: model.Movie{
			ID:          603,
			Title:       "Matrix",
			Description: "Un hacker descubre la verdad",
			PosterPath:  "/matrix.jpg",
			ReleaseDate: &released,
			Rating:      &rating,
			Genres:      []string{"Acción", "Ciencia ficción"},
			Runtime:     136,
		},
	}
}

func (b *MovieBuilder) WithID(id int) *MovieBuilder {
	b.mv.ID = id
	return b
}

func (b *MovieBuilder) Build() model.Movie {
	return b.mv
}

func (s *MovieInfraUnitSuite) TestParseGenres(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "Should read list of objects", raw: `[{"id":18,"name":"Drama"},{"id":80,"name":"Crimen"}]`, want: []string{"Drama", "Crimen"}},
		{name: "Should read list of names", raw: `["Drama","Crimen"]`, want: []string{"Drama", "Crimen"}},
		{name: "Should read json encoded string", raw: `"[{\"id\":18,\"name\":\"Drama\"}]"`, want: []string{"Drama"}},
		{name: "Should read null as empty", raw: `null`, want: nil},
		{name: "Should skip objects without name", raw: `[{"id":18}]`, want: []string{}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			got, err := ParseGenres([]byte(tc.raw))
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func (s *MovieInfraUnitSuite) TestParseGenresRejectsGarbage(t provider.T) {
	_, err := ParseGenres([]byte(`{"name":"Drama"}`))
	assert.Error(t, err)
}

func (s *MovieInfraUnitSuite) TestStore(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(r *resources, mv model.Movie)
		expectError   bool
		errorContains string
	}{
		{
			name: "Should upsert movie",
			setupMocks: func(r *resources, mv model.Movie) {
				r.mock.ExpectExec("INSERT INTO movies").
					WithArgs(mv.ID, mv.Title, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
						sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), mv.Runtime).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name: "Should wrap insert failure",
			setupMocks: func(r *resources, mv model.Movie) {
				r.mock.ExpectExec("INSERT INTO movies").
					WillReturnError(errors.New("insert error"))
			},
			expectError:   true,
			errorContains: "failed to store movie",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			mv := NewMovieBuilder().Build()
			tc.setupMocks(r, mv)

			err := r.repository.Store(r.ctx, mv)

			if tc.expectError {
				assert.ErrorContains(t, err, tc.errorContains)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (s *MovieInfraUnitSuite) TestByID(t provider.T) {
	t.Parallel()

	released := time.Date(1999, time.March, 31, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		setupMocks  func(r *resources)
		expected    model.Movie
		expectedErr error
	}{
		{
			name: "Should load movie and normalise genres",
			setupMocks: func(r *resources) {
				rows := sqlmock.NewRows(movieColumns).
					AddRow(603, "Matrix", "", "/m.jpg", "", released, 8.7, []byte(`[{"id":28,"name":"Acción"}]`), 136)
				r.mock.ExpectQuery("SELECT (.+) FROM movies WHERE id").WithArgs(603).WillReturnRows(rows)
			},
			expected: func() model.Movie {
				rating := 8.7
				return model.Movie{ID: 603, Title: "Matrix", PosterPath: "/m.jpg", ReleaseDate: &released, Rating: &rating, Genres: []string{"Acción"}, Runtime: 136}
			}(),
		},
		{
			name: "Should keep missing rating and date absent",
			setupMocks: func(r *resources) {
				rows := sqlmock.NewRows(movieColumns).
					AddRow(603, "Matrix", "", "", "", nil, nil, nil, 0)
				r.mock.ExpectQuery("SELECT (.+) FROM movies WHERE id").WithArgs(603).WillReturnRows(rows)
			},
			expected: model.Movie{ID: 603, Title: "Matrix"},
		},
		{
			name: "Should report not found",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("SELECT (.+) FROM movies WHERE id").WithArgs(603).
					WillReturnRows(sqlmock.NewRows(movieColumns))
			},
			expectedErr: model.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			mv, err := r.repository.ByID(r.ctx, 603)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, mv)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (s *MovieInfraUnitSuite) TestByIDs(t provider.T) {
	t.Run("Should skip query for empty ids", func(t provider.T) {
		r := initResources(t)

		movies, err := r.repository.ByIDs(r.ctx, nil)

		assert.NoError(t, err)
		assert.Empty(t, movies)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should load movies in id order", func(t provider.T) {
		r := initResources(t)
		rows := sqlmock.NewRows(movieColumns).
			AddRow(10, "A", "", "", "", nil, nil, []byte(`["Drama"]`), 0).
			AddRow(55, "B", "", "", "", nil, nil, nil, 0)
		r.mock.ExpectQuery("SELECT (.+) FROM movies WHERE id IN").WithArgs(55, 10).WillReturnRows(rows)

		movies, err := r.repository.ByIDs(r.ctx, []int{55, 10})

		assert.NoError(t, err)
		assert.Len(t, movies, 2)
		assert.Equal(t, 10, movies[0].ID)
		assert.Equal(t, []string{"Drama"}, movies[0].Genres)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func TestMovieInfraSuite(t *testing.T) {
	suite.RunSuite(t, new(MovieInfraUnitSuite))
}
