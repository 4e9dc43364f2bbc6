package usecase_notification

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/internal/model"
)

var (
	ErrInternal             = errors.New("internal error")
	ErrNotificationNotFound = errors.New("notification not found")
)

const latestLimit = 50

//go:generate mockery --name=NotificationRepository --output=./mocks/notification/repository --filename=repository.go
type NotificationRepository interface {
	Create(ctx context.Context, n model.Notification) error
	ListLatest(ctx context.Context, userID uuid.UUID, limit int) ([]model.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

//go:generate mockery --name=Pusher --output=./mocks/notification/pusher --filename=pusher.go
type Pusher interface {
	Push(userID uuid.UUID, event model.Event)
}

type Usecase struct {
	repo   NotificationRepository
	pusher Pusher

	now    func() time.Time
	logger *slog.Logger
}

func New(repo NotificationRepository, pusher Pusher) *Usecase {
	return &Usecase{
		repo:   repo,
		pusher: pusher,
		now:    time.Now,
		logger: slog.Default(),
	}
}

// Notify stores n for its recipient and pushes it to the recipient's open
// websocket connections.
func (u *Usecase) Notify(ctx context.Context, n model.Notification) error {
	n.ID = uuid.New()
	n.Read = false
	n.CreatedAt = u.now().UTC()

	if err := u.repo.Create(ctx, n); err != nil {
		return errors.Join(ErrInternal, err)
	}

	u.pusher.Push(n.UserID, model.Event{Type: model.EventNotification, Payload: n})
	u.logger.Debug("notification sent",
		slog.String("type", string(n.Type)),
		slog.String("user_id", n.UserID.String()))
	return nil
}

func (u *Usecase) List(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	notifications, err := u.repo.ListLatest(ctx, userID, latestLimit)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return notifications, nil
}

func (u *Usecase) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	return u.mapErr(u.repo.MarkRead(ctx, id, userID))
}

func (u *Usecase) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := u.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, errors.Join(ErrInternal, err)
	}
	return n, nil
}

func (u *Usecase) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return u.mapErr(u.repo.Delete(ctx, id, userID))
}

func (u *Usecase) mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, model.ErrNotFound):
		return ErrNotificationNotFound
	default:
		return errors.Join(ErrInternal, err)
	}
}
