package infra_postgres_friendship

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
	SELECT f.id, f.requester_id, f.addressee_id, f.status, f.created_at, f.accepted_at,
		r.username AS r_username, r.first_name AS r_first_name, r.last_name AS r_last_name, r.profile_image AS r_profile_image,
		a.username AS a_username, a.first_name AS a_first_name, a.last_name AS a_last_name, a.profile_image AS a_profile_image
	FROM friendships f
	JOIN users r ON r.id = f.requester_id
	JOIN users a ON a.id = f.addressee_id
`

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type friendshipDTO struct {
	ID          uuid.UUID    `db:"id"`
	RequesterID uuid.UUID    `db:"requester_id"`
	AddresseeID uuid.UUID    `db:"addressee_id"`
	Status      string       `db:"status"`
	CreatedAt   time.Time    `db:"created_at"`
	AcceptedAt  sql.NullTime `db:"accepted_at"`

	RUsername     string `db:"r_username"`
	RFirstName    string `db:"r_first_name"`
	RLastName     string `db:"r_last_name"`
	RProfileImage string `db:"r_profile_image"`
	AUsername     string `db:"a_username"`
	AFirstName    string `db:"a_first_name"`
	ALastName     string `db:"a_last_name"`
	AProfileImage string `db:"a_profile_image"`
}

func (f friendshipDTO) toDomain() model.Friendship {
	fr := model.Friendship{
		ID:          f.ID,
		RequesterID: f.RequesterID,
		AddresseeID: f.AddresseeID,
		Status:      model.FriendshipStatus(f.Status),
		CreatedAt:   f.CreatedAt,
		Requester: &model.UserSummary{
			ID:           f.RequesterID,
			Username:     f.RUsername,
			FirstName:    f.RFirstName,
			LastName:     f.RLastName,
			ProfileImage: f.RProfileImage,
		},
		Addressee: &model.UserSummary{
			ID:           f.AddresseeID,
			Username:     f.AUsername,
			FirstName:    f.AFirstName,
			LastName:     f.ALastName,
			ProfileImage: f.AProfileImage,
		},
	}
	if f.AcceptedAt.Valid {
		t := f.AcceptedAt.Time
		fr.AcceptedAt = &t
	}
	return fr
}

func (d *Driver) Create(ctx context.Context, f model.Friendship) error {
	query := `
		INSERT INTO friendships (id, requester_id, addressee_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := d.db.ExecContext(ctx, query, f.ID, f.RequesterID, f.AddresseeID, string(f.Status), f.CreatedAt); err != nil {
		return infra_pg_errors.Map(err)
	}
	return nil
}

func (d *Driver) ByID(ctx context.Context, id uuid.UUID) (model.Friendship, error) {
	var dto friendshipDTO
	if err := d.db.GetContext(ctx, &dto, selectWithUsers+` WHERE f.id = $1`, id); err != nil {
		return model.Friendship{}, infra_pg_errors.Map(err)
	}
	return dto.toDomain(), nil
}

// Between finds the friendship of two users in either direction.
func (d *Driver) Between(ctx context.Context, a, b uuid.UUID) (model.Friendship, error) {
	query := selectWithUsers + `
		WHERE (f.requester_id = $1 AND f.addressee_id = $2) OR (f.requester_id = $2 AND f.addressee_id = $1)
	`
	var dto friendshipDTO
	if err := d.db.GetContext(ctx, &dto, query, a, b); err != nil {
		return model.Friendship{}, infra_pg_errors.Map(err)
	}
	return dto.toDomain(), nil
}

func (d *Driver) ListAccepted(ctx context.Context, userID uuid.UUID) ([]model.Friendship, error) {
	return d.list(ctx, `(f.requester_id = $1 OR f.addressee_id = $1) AND f.status = 'ACCEPTED'`, userID)
}

// ListIncoming returns pending requests addressed to userID.
func (d *Driver) ListIncoming(ctx context.Context, userID uuid.UUID) ([]model.Friendship, error) {
	return d.list(ctx, `f.addressee_id = $1 AND f.status = 'PENDING'`, userID)
}

func (d *Driver) list(ctx context.Context, where string, userID uuid.UUID) ([]model.Friendship, error) {
	var dtos []friendshipDTO
	query := selectWithUsers + ` WHERE ` + where + ` ORDER BY f.created_at DESC`
	if err := d.db.SelectContext(ctx, &dtos, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list friendships: %w", err)
	}

	friendships := make([]model.Friendship, len(dtos))
	for i, dto := range dtos {
		friendships[i] = dto.toDomain()
	}
	return friendships, nil
}

func (d *Driver) Accept(ctx context.Context, id uuid.UUID, at time.Time) error {
	res, err := d.db.ExecContext(ctx,
		`UPDATE friendships SET status = 'ACCEPTED', accepted_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("failed to accept friendship: %w", err)
	}
	return expectAffected(res.RowsAffected())
}

func (d *Driver) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM friendships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete friendship: %w", err)
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
