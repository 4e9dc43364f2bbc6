package usecase_message

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/internal/model"
)

var (
	ErrInternal              = errors.New("internal error")
	ErrEmptyMessage          = errors.New("message content is required")
	ErrTargetRequired        = errors.New("matchId or friendId is required")
	ErrMatchNotFound         = errors.New("match not found")
	ErrFriendshipNotFound    = errors.New("friendship not found")
	ErrFriendshipNotAccepted = errors.New("friendship is not accepted")
	ErrForbidden             = errors.New("not a participant of this conversation")
)

// Messages disappear a day after they were sent.
const messageTTL = 24 * time.Hour

//go:generate mockery --name=MessageRepository --output=./mocks/message/repository --filename=repository.go
type MessageRepository interface {
	Create(ctx context.Context, m model.Message) error
	ListByMatch(ctx context.Context, matchID uuid.UUID, now time.Time) ([]model.Message, error)
	ListByFriendship(ctx context.Context, friendshipID uuid.UUID, now time.Time) ([]model.Message, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

//go:generate mockery --name=MatchLookup --output=./mocks/message/matches --filename=matches.go
type MatchLookup interface {
	ByID(ctx context.Context, id uuid.UUID) (model.Match, error)
}

//go:generate mockery --name=FriendshipLookup --output=./mocks/message/friendships --filename=friendships.go
type FriendshipLookup interface {
	ByID(ctx context.Context, id uuid.UUID) (model.Friendship, error)
}

//go:generate mockery --name=UserLookup --output=./mocks/message/users --filename=users.go
type UserLookup interface {
	ByID(ctx context.Context, id uuid.UUID) (model.User, error)
}

//go:generate mockery --name=Pusher --output=./mocks/message/pusher --filename=pusher.go
type Pusher interface {
	Push(userID uuid.UUID, event model.Event)
}

// Conversation addresses either a match or a friendship. MatchID wins when
// both are set.
type Conversation struct {
	MatchID      *uuid.UUID
	FriendshipID *uuid.UUID
}

type Usecase struct {
	messages    MessageRepository
	matches     MatchLookup
	friendships FriendshipLookup
	users       UserLookup
	pusher      Pusher

	now    func() time.Time
	logger *slog.Logger
}

func New(
	messages MessageRepository,
	matches MatchLookup,
	friendships FriendshipLookup,
	users UserLookup,
	pusher Pusher,
) *Usecase {
	return &Usecase{
		messages:    messages,
		matches:     matches,
		friendships: friendships,
		users:       users,
		pusher:      pusher,
		now:         time.Now,
		logger:      slog.Default(),
	}
}

// Send stores an ephemeral message and pushes it to the other participant.
func (u *Usecase) Send(ctx context.Context, senderID uuid.UUID, conv Conversation, content string) (model.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return model.Message{}, ErrEmptyMessage
	}

	conv, recipient, err := u.authorize(ctx, conv, senderID)
	if err != nil {
		return model.Message{}, err
	}

	now := u.now().UTC()
	msg := model.Message{
		ID:           uuid.New(),
		MatchID:      conv.MatchID,
		FriendshipID: conv.FriendshipID,
		SenderID:     senderID,
		Content:      content,
		CreatedAt:    now,
		ExpiresAt:    now.Add(messageTTL),
	}
	if err := u.messages.Create(ctx, msg); err != nil {
		return model.Message{}, errors.Join(ErrInternal, err)
	}

	if sender, err := u.users.ByID(ctx, senderID); err == nil {
		summary := sender.Summary()
		msg.Sender = &summary
	}

	u.pusher.Push(recipient, model.Event{Type: model.EventMessage, Payload: msg})
	return msg, nil
}

// List returns the live messages of a conversation, oldest first. Expired
// messages are purged on the way.
func (u *Usecase) List(ctx context.Context, callerID uuid.UUID, conv Conversation) ([]model.Message, error) {
	conv, _, err := u.authorize(ctx, conv, callerID)
	if err != nil {
		return nil, err
	}

	now := u.now().UTC()
	if _, err := u.messages.DeleteExpired(ctx, now); err != nil {
		u.logger.Warn("failed to purge expired messages", slog.String("error", err.Error()))
	}

	var messages []model.Message
	if conv.MatchID != nil {
		messages, err = u.messages.ListByMatch(ctx, *conv.MatchID, now)
	} else {
		messages, err = u.messages.ListByFriendship(ctx, *conv.FriendshipID, now)
	}
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return messages, nil
}

// Cleanup purges every expired message.
func (u *Usecase) Cleanup(ctx context.Context) (int64, error) {
	n, err := u.messages.DeleteExpired(ctx, u.now().UTC())
	if err != nil {
		return 0, errors.Join(ErrInternal, err)
	}
	return n, nil
}

// authorize checks the caller against the conversation and returns it
// narrowed to a single target together with the other participant.
func (u *Usecase) authorize(ctx context.Context, conv Conversation, callerID uuid.UUID) (Conversation, uuid.UUID, error) {
	switch {
	case conv.MatchID != nil:
		match, err := u.matches.ByID(ctx, *conv.MatchID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return Conversation{}, uuid.Nil, ErrMatchNotFound
			}
			return Conversation{}, uuid.Nil, errors.Join(ErrInternal, err)
		}
		if !match.HasParticipant(callerID) {
			return Conversation{}, uuid.Nil, ErrForbidden
		}
		return Conversation{MatchID: conv.MatchID}, match.PartnerOf(callerID), nil

	case conv.FriendshipID != nil:
		friendship, err := u.friendships.ByID(ctx, *conv.FriendshipID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return Conversation{}, uuid.Nil, ErrFriendshipNotFound
			}
			return Conversation{}, uuid.Nil, errors.Join(ErrInternal, err)
		}
		if friendship.Status != model.FriendshipAccepted {
			return Conversation{}, uuid.Nil, ErrFriendshipNotAccepted
		}
		if !friendship.HasParticipant(callerID) {
			return Conversation{}, uuid.Nil, ErrForbidden
		}
		return Conversation{FriendshipID: conv.FriendshipID}, friendship.PartnerOf(callerID), nil

	default:
		return Conversation{}, uuid.Nil, ErrTargetRequired
	}
}
