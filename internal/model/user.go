package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID
	Username        string
	Email           string
	FirstName       string
	LastName        string
	Bio             string
	ProfileImage    string
	BackgroundImage string
	InvitationCode  string
	Password        []byte
	CreatedAt       time.Time
}

func (u User) Summary() UserSummary {
	return UserSummary{
		ID:           u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		ProfileImage: u.ProfileImage,
	}
}

// UserSummary is the public part of a user embedded into other resources.
type UserSummary struct {
	ID           uuid.UUID
	Username     string
	FirstName    string
	LastName     string
	ProfileImage string
}

type UserStats struct {
	UserID              uuid.UUID
	Username            string
	TotalFavorites      int
	TotalMatches        int
	TotalMatchRequests  int
	TotalMatchResponses int
}

// ProfileUpdate carries only the fields the caller wants to change.
// A nil pointer keeps the stored value, a pointer to "" clears images.
type ProfileUpdate struct {
	Username        *string
	Email           *string
	FirstName       *string
	LastName        *string
	Bio             *string
	ProfileImage    *string
	BackgroundImage *string
}
