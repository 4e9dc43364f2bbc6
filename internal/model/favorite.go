package model

import (
	"time"

	"github.com/google/uuid"
)

type Favorite struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	MovieID int
	AddedAt time.Time

	Movie *Movie
}

type WatchedMovie struct {
	ID        uuid.UUID
	MatchID   uuid.UUID
	MovieID   int
	Rating    *int
	WatchedAt time.Time

	Movie *Movie
}

type Note struct {
	ID        uuid.UUID
	MatchID   uuid.UUID
	MovieID   int
	Note      string
	CreatedAt time.Time
}
