package infra_postgres_favorite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	infra_postgres_movie "github.com/humanbelnik/kinomatch/internal/infra/postgres/movie"
	infra_pg_errors "github.com/humanbelnik/kinomatch/internal/infra/postgres/pgerr"
	"github.com/humanbelnik/kinomatch/internal/model"
	"github.com/jmoiron/sqlx"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type favoriteDTO struct {
	ID      uuid.UUID `db:"fav_id"`
	UserID  uuid.UUID `db:"user_id"`
	MovieID int       `db:"movie_id"`
	AddedAt time.Time `db:"added_at"`

	infra_postgres_movie.MovieDB
}

func (f favoriteDTO) toDomain() model.Favorite {
	mv := f.MovieDB.ToDomain()
	return model.Favorite{
		ID:      f.ID,
		UserID:  f.UserID,
		MovieID: f.MovieID,
		AddedAt: f.AddedAt,
		Movie:   &mv,
	}
}

func (d *Driver) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Favorite, error) {
	query := `
		SELECT f.id AS fav_id, f.user_id, f.movie_id, f.added_at,
			m.id, m.title, m.description, m.poster_path, m.backdrop_path, m.release_date, m.rating, m.genres, m.runtime
		FROM user_favorites f
		JOIN movies m ON m.id = f.movie_id
		WHERE f.user_id = $1
		ORDER BY f.added_at DESC
	`
	var dtos []favoriteDTO
	if err := d.db.SelectContext(ctx, &dtos, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	favorites := make([]model.Favorite, len(dtos))
	for i, dto := range dtos {
		favorites[i] = dto.toDomain()
	}
	return favorites, nil
}

// Add fails with model.ErrAlreadyExists on a duplicate and model.ErrNotFound
// when the movie is not cached.
func (d *Driver) Add(ctx context.Context, f model.Favorite) error {
	query := `INSERT INTO user_favorites (id, user_id, movie_id, added_at) VALUES ($1, $2, $3, $4)`
	if _, err := d.db.ExecContext(ctx, query, f.ID, f.UserID, f.MovieID, f.AddedAt); err != nil {
		return infra_pg_errors.Map(err)
	}
	return nil
}

func (d *Driver) Remove(ctx context.Context, userID uuid.UUID, movieID int) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM user_favorites WHERE user_id = $1 AND movie_id = $2`, userID, movieID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (d *Driver) Exists(ctx context.Context, userID uuid.UUID, movieID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM user_favorites WHERE user_id = $1 AND movie_id = $2)`
	if err := d.db.GetContext(ctx, &exists, query, userID, movieID); err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return exists, nil
}

func (d *Driver) FavoriteMovieIDs(ctx context.Context, userID uuid.UUID) ([]int, error) {
	ids := make([]int, 0)
	if err := d.db.SelectContext(ctx, &ids, `SELECT movie_id FROM user_favorites WHERE user_id = $1`, userID); err != nil {
		return nil, fmt.Errorf("failed to load favorite ids: %w", err)
	}
	return ids, nil
}
