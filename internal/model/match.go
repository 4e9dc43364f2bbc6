package model

import (
	"time"

	"github.com/google/uuid"
)

type MatchStatus string

const (
	MatchPending  MatchStatus = "PENDING"
	MatchAccepted MatchStatus = "ACCEPTED"
	MatchRejected MatchStatus = "REJECTED"
)

// Match links two users. User1 is the requester, User2 the addressee.
type Match struct {
	ID              uuid.UUID
	User1ID         uuid.UUID
	User2ID         uuid.UUID
	Status          MatchStatus
	BackgroundImage string
	CreatedAt       time.Time
	AcceptedAt      *time.Time

	User1 *UserSummary
	User2 *UserSummary
}

func (m Match) HasParticipant(userID uuid.UUID) bool {
	return m.User1ID == userID || m.User2ID == userID
}

func (m Match) PartnerOf(userID uuid.UUID) uuid.UUID {
	if m.User1ID == userID {
		return m.User2ID
	}
	return m.User1ID
}

func (m Match) Partner(userID uuid.UUID) *UserSummary {
	if m.User1ID == userID {
		return m.User2
	}
	return m.User1
}

// Sort orders accepted by the common movies listing.
const (
	SortByTitle       = "title"
	SortByRating      = "rating"
	SortByReleaseDate = "releaseDate"
)

type CommonMoviesFilter struct {
	Genre     string
	MinRating *float64
	SortBy    string
}

type GenreCount struct {
	Name  string
	Count int
}

type MatchStats struct {
	TotalWatched  int
	AverageRating string
	TopGenres     []GenreCount
	CurrentStreak int
	RecentMovies  []WatchedMovie
}
