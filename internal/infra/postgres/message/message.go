package infra_postgres_message

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	infra_pg_errors "github.com/humanbelnik/kinomatch/internal/infra/postgres/pgerr"
	"github.com/humanbelnik/kinomatch/internal/model"
	"github.com/jmoiron/sqlx"
)

const selectWithSender = `
	SELECT ms.id, ms.match_id, ms.friendship_id, ms.sender_id, ms.content, ms.created_at, ms.expires_at,
		u.username, u.first_name, u.last_name, u.profile_image
	FROM messages ms
	JOIN users u ON u.id = ms.sender_id
`

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type messageDTO struct {
	ID           uuid.UUID  `db:"id"`
	MatchID      *uuid.UUID `db:"match_id"`
	FriendshipID *uuid.UUID `db:"friendship_id"`
	SenderID     uuid.UUID  `db:"sender_id"`
	Content      string     `db:"content"`
	CreatedAt    time.Time  `db:"created_at"`
	ExpiresAt    time.Time  `db:"expires_at"`

	Username     string `db:"username"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	ProfileImage string `db:"profile_image"`
}

func (m messageDTO) toDomain() model.Message {
	return model.Message{
		ID:           m.ID,
		MatchID:      m.MatchID,
		FriendshipID: m.FriendshipID,
		SenderID:     m.SenderID,
		Content:      m.Content,
		CreatedAt:    m.CreatedAt,
		ExpiresAt:    m.ExpiresAt,
		Sender: &model.UserSummary{
			ID:           m.SenderID,
			Username:     m.Username,
			FirstName:    m.FirstName,
			LastName:     m.LastName,
			ProfileImage: m.ProfileImage,
		},
	}
}

func (d *Driver) Create(ctx context.Context, m model.Message) error {
	query := `
		INSERT INTO messages (id, match_id, friendship_id, sender_id, content, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := d.db.ExecContext(ctx, query,
		m.ID, m.MatchID, m.FriendshipID, m.SenderID, m.Content, m.CreatedAt, m.ExpiresAt,
	); err != nil {
		return infra_pg_errors.Map(err)
	}
	return nil
}

// ListByMatch returns the messages still alive at now, oldest first.
func (d *Driver) ListByMatch(ctx context.Context, matchID uuid.UUID, now time.Time) ([]model.Message, error) {
	return d.list(ctx, `ms.match_id`, matchID, now)
}

func (d *Driver) ListByFriendship(ctx context.Context, friendshipID uuid.UUID, now time.Time) ([]model.Message, error) {
	return d.list(ctx, `ms.friendship_id`, friendshipID, now)
}

func (d *Driver) list(ctx context.Context, column string, id uuid.UUID, now time.Time) ([]model.Message, error) {
	query := selectWithSender + ` WHERE ` + column + ` = $1 AND ms.expires_at > $2 ORDER BY ms.created_at ASC`

	var dtos []messageDTO
	if err := d.db.SelectContext(ctx, &dtos, query, id, now); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]model.Message, len(dtos))
	for i, dto := range dtos {
		messages[i] = dto.toDomain()
	}
	return messages, nil
}

// DeleteExpired removes every message whose expiry is not after now.
func (d *Driver) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := d.db.ExecContext(ctx, `DELETE FROM messages WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired messages: %w", err)
	}
	return res.RowsAffected()
}
