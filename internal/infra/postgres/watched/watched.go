package infra_postgres_watched

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	infra_postgres_movie "github.com/humanbelnik/kinomatch/internal/infra/postgres/movie"
	infra_pg_errors "github.com/humanbelnik/kinomatch/internal/infra/postgres/pgerr"
	"github.com/humanbelnik/kinomatch/internal/model"
	"github.com/jmoiron/sqlx"
)

const selectWithMovie = `
	SELECT w.id AS watched_id, w.match_id, w.movie_id, w.rating AS watched_rating, w.watched_at,
		m.id, m.title, m.description, m.poster_path, m.backdrop_path, m.release_date, m.rating, m.genres, m.runtime
	FROM watched_movies w
	JOIN movies m ON m.id = w.movie_id
`

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type watchedDTO struct {
	ID        uuid.UUID     `db:"watched_id"`
	MatchID   uuid.UUID     `db:"match_id"`
	MovieID   int           `db:"movie_id"`
	Rating    sql.NullInt64 `db:"watched_rating"`
	WatchedAt time.Time     `db:"watched_at"`

	infra_postgres_movie.MovieDB
}

func (w watchedDTO) toDomain() model.WatchedMovie {
	mv := w.MovieDB.ToDomain()
	wm := model.WatchedMovie{
		ID:        w.ID,
		MatchID:   w.MatchID,
		MovieID:   w.MovieID,
		WatchedAt: w.WatchedAt,
		Movie:     &mv,
	}
	if w.Rating.Valid {
		r := int(w.Rating.Int64)
		wm.Rating = &r
	}
	return wm
}

// ListByMatch returns the watch history newest first.
func (d *Driver) ListByMatch(ctx context.Context, matchID uuid.UUID) ([]model.WatchedMovie, error) {
	var dtos []watchedDTO
	query := selectWithMovie + ` WHERE w.match_id = $1 ORDER BY w.watched_at DESC`
	if err := d.db.SelectContext(ctx, &dtos, query, matchID); err != nil {
		return nil, fmt.Errorf("failed to list watched movies: %w", err)
	}

	watched := make([]model.WatchedMovie, len(dtos))
	for i, dto := range dtos {
		watched[i] = dto.toDomain()
	}
	return watched, nil
}

func (d *Driver) ByID(ctx context.Context, id uuid.UUID) (model.WatchedMovie, error) {
	var dto watchedDTO
	if err := d.db.GetContext(ctx, &dto, selectWithMovie+` WHERE w.id = $1`, id); err != nil {
		return model.WatchedMovie{}, infra_pg_errors.Map(err)
	}
	return dto.toDomain(), nil
}

// Add fails with model.ErrAlreadyExists when the match already watched the movie.
func (d *Driver) Add(ctx context.Context, w model.WatchedMovie) error {
	query := `INSERT INTO watched_movies (id, match_id, movie_id, rating, watched_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := d.db.ExecContext(ctx, query, w.ID, w.MatchID, w.MovieID, w.Rating, w.WatchedAt); err != nil {
		return infra_pg_errors.Map(err)
	}
	return nil
}

func (d *Driver) UpdateRating(ctx context.Context, id uuid.UUID, rating *int) error {
	res, err := d.db.ExecContext(ctx, `UPDATE watched_movies SET rating = $2 WHERE id = $1`, id, rating)
	if err != nil {
		return fmt.Errorf("failed to update rating: %w", err)
	}
	return expectAffected(res.RowsAffected())
}

func (d *Driver) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM watched_movies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete watched movie: %w", err)
	}
	return expectAffected(res.RowsAffected())
}

func (d *Driver) WatchedMovieIDs(ctx context.Context, matchID uuid.UUID) ([]int, error) {
	ids := make([]int, 0)
	if err := d.db.SelectContext(ctx, &ids, `SELECT movie_id FROM watched_movies WHERE match_id = $1`, matchID); err != nil {
		return nil, fmt.Errorf("failed to load watched ids: %w", err)
	}
	return ids, nil
}

func expectAffected(n int64, err error) error {
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}
