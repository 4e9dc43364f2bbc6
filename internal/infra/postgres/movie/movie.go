package infra_postgres_movie

import (
	"context"
	"fmt"

	infra_pg_errors "github.com/humanbelnik/kinomatch/internal/infra/postgres/pgerr"
	"github.com/humanbelnik/kinomatch/internal/model"
	"github.com/jmoiron/sqlx"
)

const columns = `id, title, description, poster_path, backdrop_path, release_date, rating, genres, runtime`

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Store inserts the movie or refreshes the cached catalog fields.
func (r *Repository) Store(ctx context.Context, mv model.Movie) error {
	movieDB := FromDomain(mv)

	query := `
		INSERT INTO movies (id, title, description, poster_path, backdrop_path, release_date, rating, genres, runtime)
		VALUES (:id, :title, :description, :poster_path, :backdrop_path, :release_date, :rating, :genres, :runtime)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			poster_path = EXCLUDED.poster_path,
			backdrop_path = EXCLUDED.backdrop_path,
			release_date = EXCLUDED.release_date,
			rating = EXCLUDED.rating,
			genres = EXCLUDED.genres,
			runtime = EXCLUDED.runtime
	`

	_, err := r.db.NamedExecContext(ctx, query, movieDB)
	if err != nil {
		return fmt.Errorf("failed to store movie: %w", err)
	}

	return nil
}

func (r *Repository) ByID(ctx context.Context, id int) (model.Movie, error) {
	query := `SELECT ` + columns + ` FROM movies WHERE id = $1`

	var movieDB MovieDB
	if err := r.db.GetContext(ctx, &movieDB, query, id); err != nil {
		return model.Movie{}, infra_pg_errors.Map(err)
	}

	return movieDB.ToDomain(), nil
}

// ByIDs returns the known movies among ids ordered by id. Unknown ids are
// skipped.
func (r *Repository) ByIDs(ctx context.Context, ids []int) ([]model.Movie, error) {
	if len(ids) == 0 {
		return []model.Movie{}, nil
	}

	query, args, err := sqlx.In(`SELECT `+columns+` FROM movies WHERE id IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	query = r.db.Rebind(query)
	var moviesDB []MovieDB
	if err := r.db.SelectContext(ctx, &moviesDB, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query movies by ids: %w", err)
	}

	movies := make([]model.Movie, len(moviesDB))
	for i := range moviesDB {
		movies[i] = moviesDB[i].ToDomain()
	}
	return movies, nil
}
