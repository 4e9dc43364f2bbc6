package infra_postgres_match

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	infra_pg_errors "github.com/humanbelnik/kinomatch/internal/infra/postgres/pgerr"
	"github.com/humanbelnik/kinomatch/internal/model"
	"github.com/jmoiron/sqlx"
)

const selectWithUsers = `
	SELECT m.id, m.user1_id, m.user2_id, m.status, m.background_image, m.created_at, m.accepted_at,
		u1.username AS u1_username, u1.first_name AS u1_first_name, u1.last_name AS u1_last_name, u1.profile_image AS u1_profile_image,
		u2.username AS u2_username, u2.first_name AS u2_first_name, u2.last_name AS u2_last_name, u2.profile_image AS u2_profile_image
	FROM matches m
	JOIN users u1 ON u1.id = m.user1_id
	JOIN users u2 ON u2.id = m.user2_id
`

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type matchDTO struct {
	ID              uuid.UUID    `db:"id"`
	User1ID         uuid.UUID    `db:"user1_id"`
	User2ID         uuid.UUID    `db:"user2_id"`
	Status          string       `db:"status"`
	BackgroundImage string       `db:"background_image"`
	CreatedAt       time.Time    `db:"created_at"`
	AcceptedAt      sql.NullTime `db:"accepted_at"`

	U1Username     string `db:"u1_username"`
	U1FirstName    string `db:"u1_first_name"`
	U1LastName     string `db:"u1_last_name"`
	U1ProfileImage string `db:"u1_profile_image"`
	U2Username     string `db:"u2_username"`
	U2FirstName    string `db:"u2_first_name"`
	U2LastName     string `db:"u2_last_name"`
	U2ProfileImage string `db:"u2_profile_image"`
}

func (m matchDTO) toDomain() model.Match {
	match := model.Match{
		ID:              m.ID,
		User1ID:         m.User1ID,
		User2ID:         m.User2ID,
		Status:          model.MatchStatus(m.Status),
		BackgroundImage: m.BackgroundImage,
		CreatedAt:       m.CreatedAt,
		User1: &model.UserSummary{
			ID:           m.User1ID,
			Username:     m.U1Username,
			FirstName:    m.U1FirstName,
			LastName:     m.U1LastName,
			ProfileImage: m.U1ProfileImage,
		},
		User2: &model.UserSummary{
			ID:           m.User2ID,
			Username:     m.U2Username,
			FirstName:    m.U2FirstName,
			LastName:     m.U2LastName,
			ProfileImage: m.U2ProfileImage,
		},
	}
	if m.AcceptedAt.Valid {
		t := m.AcceptedAt.Time
		match.AcceptedAt = &t
	}
	return match
}

// Create fails with model.ErrAlreadyExists when the pair already has a match
// in either direction.
func (d *Driver) Create(ctx context.Context, m model.Match) error {
	query := `
		INSERT INTO matches (id, user1_id, user2_id, status, created_at, accepted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := d.db.ExecContext(ctx, query,
		m.ID, m.User1ID, m.User2ID, string(m.Status), m.CreatedAt, m.AcceptedAt,
	); err != nil {
		return infra_pg_errors.Map(err)
	}
	return nil
}

func (d *Driver) ByID(ctx context.Context, id uuid.UUID) (model.Match, error) {
	var dto matchDTO
	if err := d.db.GetContext(ctx, &dto, selectWithUsers+` WHERE m.id = $1`, id); err != nil {
		return model.Match{}, infra_pg_errors.Map(err)
	}
	return dto.toDomain(), nil
}

// Between finds the match of two users regardless of who requested it.
func (d *Driver) Between(ctx context.Context, a, b uuid.UUID) (model.Match, error) {
	query := selectWithUsers + `
		WHERE (m.user1_id = $1 AND m.user2_id = $2) OR (m.user1_id = $2 AND m.user2_id = $1)
	`
	var dto matchDTO
	if err := d.db.GetContext(ctx, &dto, query, a, b); err != nil {
		return model.Match{}, infra_pg_errors.Map(err)
	}
	return dto.toDomain(), nil
}

func (d *Driver) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Match, error) {
	query := selectWithUsers + `
		WHERE m.user1_id = $1 OR m.user2_id = $1
		ORDER BY m.created_at DESC
	`
	var dtos []matchDTO
	if err := d.db.SelectContext(ctx, &dtos, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	matches := make([]model.Match, len(dtos))
	for i, dto := range dtos {
		matches[i] = dto.toDomain()
	}
	return matches, nil
}

// Reopen turns a rejected match into a fresh pending request from requester.
func (d *Driver) Reopen(ctx context.Context, id, requester, addressee uuid.UUID, at time.Time) error {
	query := `
		UPDATE matches
		SET status = $2, user1_id = $3, user2_id = $4, created_at = $5, accepted_at = NULL
		WHERE id = $1
	`
	res, err := d.db.ExecContext(ctx, query, id, string(model.MatchPending), requester, addressee, at)
	if err != nil {
		return fmt.Errorf("failed to reopen match: %w", err)
	}
	return expectAffected(res.RowsAffected())
}

// SetStatus stores the status. acceptedAt is written only when non-nil.
func (d *Driver) SetStatus(ctx context.Context, id uuid.UUID, status model.MatchStatus, acceptedAt *time.Time) error {
	query := `
		UPDATE matches
		SET status = $2, accepted_at = COALESCE($3, accepted_at)
		WHERE id = $1
	`
	res, err := d.db.ExecContext(ctx, query, id, string(status), acceptedAt)
	if err != nil {
		return fmt.Errorf("failed to set match status: %w", err)
	}
	return expectAffected(res.RowsAffected())
}

func (d *Driver) SetBackground(ctx context.Context, id uuid.UUID, image string) error {
	res, err := d.db.ExecContext(ctx, `UPDATE matches SET background_image = $2 WHERE id = $1`, id, image)
	if err != nil {
		return fmt.Errorf("failed to set match background: %w", err)
	}
	return expectAffected(res.RowsAffected())
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
