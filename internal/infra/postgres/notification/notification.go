package infra_postgres_notification

import (
	"context"
	"encoding/json"
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

type notificationDTO struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Type      string    `db:"type"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	Data      []byte    `db:"data"`
	Read      bool      `db:"read"`
	CreatedAt time.Time `db:"created_at"`
}

func (n notificationDTO) toDomain() (model.Notification, error) {
	notification := model.Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      model.NotificationType(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
	if len(n.Data) > 0 {
		if err := json.Unmarshal(n.Data, &notification.Data); err != nil {
			return model.Notification{}, fmt.Errorf("failed to decode notification data: %w", err)
		}
	}
	return notification, nil
}

func (d *Driver) Create(ctx context.Context, n model.Notification) error {
	var data []byte
	if n.Data != nil {
		var err error
		if data, err = json.Marshal(n.Data); err != nil {
			return fmt.Errorf("failed to encode notification data: %w", err)
		}
	}

	query := `
		INSERT INTO notifications (id, user_id, type, title, message, data, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := d.db.ExecContext(ctx, query,
		n.ID, n.UserID, string(n.Type), n.Title, n.Message, data, n.Read, n.CreatedAt,
	); err != nil {
		return infra_pg_errors.Map(err)
	}
	return nil
}

func (d *Driver) ListLatest(ctx context.Context, userID uuid.UUID, limit int) ([]model.Notification, error) {
	query := `
		SELECT id, user_id, type, title, message, data, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	var dtos []notificationDTO
	if err := d.db.SelectContext(ctx, &dtos, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]model.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

// MarkRead affects only notifications owned by userID.
func (d *Driver) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	res, err := d.db.ExecContext(ctx, `UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return expectAffected(res.RowsAffected())
}

func (d *Driver) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	res, err := d.db.ExecContext(ctx, `UPDATE notifications SET read = true WHERE user_id = $1 AND NOT read`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return res.RowsAffected()
}

func (d *Driver) Delete(ctx context.Context, id, userID uuid.UUID) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
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
