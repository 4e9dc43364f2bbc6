package model

import (
	"time"

	"github.com/google/uuid"
)

type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "PENDING"
	FriendshipAccepted FriendshipStatus = "ACCEPTED"
)

type Friendship struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	AddresseeID uuid.UUID
	Status      FriendshipStatus
	CreatedAt   time.Time
	AcceptedAt  *time.Time

	Requester *UserSummary
	Addressee *UserSummary
}

func (f Friendship) HasParticipant(userID uuid.UUID) bool {
	return f.RequesterID == userID || f.AddresseeID == userID
}

func (f Friendship) PartnerOf(userID uuid.UUID) uuid.UUID {
	if f.RequesterID == userID {
		return f.AddresseeID
	}
	return f.RequesterID
}

// Message belongs either to a match or to a friendship.
type Message struct {
	ID           uuid.UUID
	MatchID      *uuid.UUID
	FriendshipID *uuid.UUID
	SenderID     uuid.UUID
	Content      string
	CreatedAt    time.Time
	ExpiresAt    time.Time

	Sender *UserSummary
}

type NotificationType string

const (
	NotificationMatchRequest   NotificationType = "MATCH_REQUEST"
	NotificationMatchAccepted  NotificationType = "MATCH_ACCEPTED"
	NotificationFriendRequest  NotificationType = "FRIEND_REQUEST"
	NotificationFriendAccepted NotificationType = "FRIEND_ACCEPTED"
	NotificationMovieWatched   NotificationType = "MOVIE_WATCHED"
)

type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      NotificationType
	Title     string
	Message   string
	Data      map[string]any
	Read      bool
	CreatedAt time.Time
}

const (
	EventNotification = "notification"
	EventMessage      = "message"
)

// Event is delivered to the websocket clients of a single user.
type Event struct {
	Type    string
	Payload any
}
