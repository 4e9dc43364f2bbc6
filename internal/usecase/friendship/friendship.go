package usecase_friendship

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/internal/model"
)

var (
	ErrInternal        = errors.New("internal error")
	ErrUserNotFound    = errors.New("user not found")
	ErrRequestNotFound = errors.New("friend request not found")
	ErrSelfFriend      = errors.New("cannot befriend yourself")
	ErrAlreadyFriends  = errors.New("already friends")
	ErrRequestExists   = errors.New("friend request already exists")
	ErrAlreadyAccepted = errors.New("friend request already accepted")
	ErrNotAddressee    = errors.New("only the invited user can answer this request")
	ErrNotParticipant  = errors.New("not part of this friendship")
)

//go:generate mockery --name=FriendshipRepository --output=./mocks/friendship/repository --filename=repository.go
type FriendshipRepository interface {
	Create(ctx context.Context, f model.Friendship) error
	ByID(ctx context.Context, id uuid.UUID) (model.Friendship, error)
	Between(ctx context.Context, a uuid.UUID, b uuid.UUID) (model.Friendship, error)
	ListAccepted(ctx context.Context, userID uuid.UUID) ([]model.Friendship, error)
	ListIncoming(ctx context.Context, userID uuid.UUID) ([]model.Friendship, error)
	Accept(ctx context.Context, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

//go:generate mockery --name=UserLookup --output=./mocks/friendship/users --filename=users.go
type UserLookup interface {
	ByID(ctx context.Context, id uuid.UUID) (model.User, error)
	ByUsername(ctx context.Context, username string) (model.User, error)
}

//go:generate mockery --name=Notifier --output=./mocks/friendship/notifier --filename=notifier.go
type Notifier interface {
	Notify(ctx context.Context, n model.Notification) error
}

type Usecase struct {
	repo     FriendshipRepository
	users    UserLookup
	notifier Notifier

	now    func() time.Time
	logger *slog.Logger
}

func New(repo FriendshipRepository, users UserLookup, notifier Notifier) *Usecase {
	return &Usecase{
		repo:     repo,
		users:    users,
		notifier: notifier,
		now:      time.Now,
		logger:   slog.Default(),
	}
}

func (u *Usecase) Friends(ctx context.Context, userID uuid.UUID) ([]model.Friendship, error) {
	friends, err := u.repo.ListAccepted(ctx, userID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return friends, nil
}

// Requests lists pending requests addressed to userID.
func (u *Usecase) Requests(ctx context.Context, userID uuid.UUID) ([]model.Friendship, error) {
	requests, err := u.repo.ListIncoming(ctx, userID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return requests, nil
}

func (u *Usecase) Request(ctx context.Context, callerID uuid.UUID, targetUsername string) (model.Friendship, error) {
	target, err := u.users.ByUsername(ctx, targetUsername)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Friendship{}, ErrUserNotFound
		}
		return model.Friendship{}, errors.Join(ErrInternal, err)
	}
	if target.ID == callerID {
		return model.Friendship{}, ErrSelfFriend
	}

	existing, err := u.repo.Between(ctx, callerID, target.ID)
	switch {
	case err == nil && existing.Status == model.FriendshipAccepted:
		return model.Friendship{}, ErrAlreadyFriends
	case err == nil:
		return model.Friendship{}, ErrRequestExists
	case !errors.Is(err, model.ErrNotFound):
		return model.Friendship{}, errors.Join(ErrInternal, err)
	}

	friendship := model.Friendship{
		ID:          uuid.New(),
		RequesterID: callerID,
		AddresseeID: target.ID,
		Status:      model.FriendshipPending,
		CreatedAt:   u.now().UTC(),
	}
	if err := u.repo.Create(ctx, friendship); err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			return model.Friendship{}, ErrRequestExists
		}
		return model.Friendship{}, errors.Join(ErrInternal, err)
	}

	u.notify(ctx, model.Notification{
		UserID:  target.ID,
		Type:    model.NotificationFriendRequest,
		Title:   "Nueva solicitud de amistad",
		Message: fmt.Sprintf("%s quiere ser tu amigo", u.username(ctx, callerID)),
		Data:    map[string]any{"requesterId": callerID.String(), "friendshipId": friendship.ID.String()},
	})
	return friendship, nil
}

func (u *Usecase) Accept(ctx context.Context, callerID, id uuid.UUID) (model.Friendship, error) {
	friendship, err := u.byID(ctx, id)
	if err != nil {
		return model.Friendship{}, err
	}
	if friendship.AddresseeID != callerID {
		return model.Friendship{}, ErrNotAddressee
	}
	if friendship.Status == model.FriendshipAccepted {
		return model.Friendship{}, ErrAlreadyAccepted
	}

	now := u.now().UTC()
	if err := u.repo.Accept(ctx, id, now); err != nil {
		return model.Friendship{}, u.mapErr(err)
	}
	friendship.Status = model.FriendshipAccepted
	friendship.AcceptedAt = &now

	u.notify(ctx, model.Notification{
		UserID:  friendship.RequesterID,
		Type:    model.NotificationFriendAccepted,
		Title:   "Solicitud de amistad aceptada",
		Message: fmt.Sprintf("%s aceptó tu solicitud de amistad", u.username(ctx, callerID)),
		Data:    map[string]any{"accepterId": callerID.String(), "friendshipId": friendship.ID.String()},
	})
	return friendship, nil
}

// Reject drops a pending request. Only its addressee may do so.
func (u *Usecase) Reject(ctx context.Context, callerID, id uuid.UUID) error {
	friendship, err := u.byID(ctx, id)
	if err != nil {
		return err
	}
	if friendship.AddresseeID != callerID {
		return ErrNotAddressee
	}
	return u.mapErr(u.repo.Delete(ctx, id))
}

func (u *Usecase) Remove(ctx context.Context, callerID, id uuid.UUID) error {
	friendship, err := u.byID(ctx, id)
	if err != nil {
		return err
	}
	if !friendship.HasParticipant(callerID) {
		return ErrNotParticipant
	}
	return u.mapErr(u.repo.Delete(ctx, id))
}

func (u *Usecase) byID(ctx context.Context, id uuid.UUID) (model.Friendship, error) {
	friendship, err := u.repo.ByID(ctx, id)
	if err != nil {
		return model.Friendship{}, u.mapErr(err)
	}
	return friendship, nil
}

func (u *Usecase) username(ctx context.Context, id uuid.UUID) string {
	user, err := u.users.ByID(ctx, id)
	if err != nil {
		return "Alguien"
	}
	return user.Username
}

func (u *Usecase) notify(ctx context.Context, n model.Notification) {
	if err := u.notifier.Notify(ctx, n); err != nil {
		u.logger.Warn("failed to notify",
			slog.String("type", string(n.Type)),
			slog.String("error", err.Error()))
	}
}

func (u *Usecase) mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, model.ErrNotFound):
		return ErrRequestNotFound
	default:
		return errors.Join(ErrInternal, err)
	}
}
