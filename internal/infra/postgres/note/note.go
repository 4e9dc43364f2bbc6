package infra_postgres_note

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
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

type noteDTO struct {
	ID        uuid.UUID `db:"id"`
	MatchID   uuid.UUID `db:"match_id"`
	MovieID   int       `db:"movie_id"`
	Note      string    `db:"note"`
	CreatedAt time.Time `db:"created_at"`
}

// List returns the notes of a match, optionally for one movie, newest first.
func (d *Driver) List(ctx context.Context, matchID uuid.UUID, movieID *int) ([]model.Note, error) {
	query := `
		SELECT id, match_id, movie_id, note, created_at
		FROM movie_notes
		WHERE match_id = $1 AND ($2::INTEGER IS NULL OR movie_id = $2)
		ORDER BY created_at DESC
	`
	var dtos []noteDTO
	if err := d.db.SelectContext(ctx, &dtos, query, matchID, movieID); err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	notes := make([]model.Note, len(dtos))
	for i, dto := range dtos {
		notes[i] = model.Note(dto)
	}
	return notes, nil
}

func (d *Driver) ByID(ctx context.Context, id uuid.UUID) (model.Note, error) {
	var dto noteDTO
	query := `SELECT id, match_id, movie_id, note, created_at FROM movie_notes WHERE id = $1`
	if err := d.db.GetContext(ctx, &dto, query, id); err != nil {
		return model.Note{}, infra_pg_errors.Map(err)
	}
	return model.Note(dto), nil
}

func (d *Driver) Create(ctx context.Context, n model.Note) error {
	query := `
		INSERT INTO movie_notes (id, match_id, movie_id, note, created_at)
		VALUES (:id, :match_id, :movie_id, :note, :created_at)
	`
	if _, err := d.db.NamedExecContext(ctx, query, noteDTO(n)); err != nil {
		return infra_pg_errors.Map(err)
	}
	return nil
}

func (d *Driver) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM movie_notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
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
