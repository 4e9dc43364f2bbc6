package http_common

import (
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/internal/model"
)

const dateLayout = "2006-01-02"

type UserSummaryDTO struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	ProfileImage string    `json:"profileImage,omitempty"`
}

func NewUserSummaryDTO(u *model.UserSummary) *UserSummaryDTO {
	if u == nil {
		return nil
	}
	return &UserSummaryDTO{
		ID:           u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		ProfileImage: u.ProfileImage,
	}
}

func NewUserSummaryDTOs(users []model.UserSummary) []UserSummaryDTO {
	res := make([]UserSummaryDTO, 0, len(users))
	for i := range users {
		res = append(res, *NewUserSummaryDTO(&users[i]))
	}
	return res
}

type UserDTO struct {
	ID              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email,omitempty"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Bio             string    `json:"bio,omitempty"`
	ProfileImage    string    `json:"profileImage,omitempty"`
	BackgroundImage string    `json:"backgroundImage,omitempty"`
	InvitationCode  string    `json:"invitationCode,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewUserDTO never carries the password hash.
func NewUserDTO(u model.User) UserDTO {
	return UserDTO{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Bio:             u.Bio,
		ProfileImage:    u.ProfileImage,
		BackgroundImage: u.BackgroundImage,
		InvitationCode:  u.InvitationCode,
		CreatedAt:       u.CreatedAt,
	}
}

// NewPublicUserDTO hides the contact and invitation data of other users.
func NewPublicUserDTO(u model.User) UserDTO {
	dto := NewUserDTO(u)
	dto.Email = ""
	dto.InvitationCode = ""
	return dto
}

type MovieDTO struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	PosterPath   string   `json:"posterPath,omitempty"`
	BackdropPath string   `json:"backdropPath,omitempty"`
	ReleaseDate  *string  `json:"releaseDate"`
	Rating       *float64 `json:"rating"`
	Genres       []string `json:"genres"`
	Runtime      int      `json:"runtime,omitempty"`
}

func NewMovieDTO(m model.Movie) MovieDTO {
	dto := MovieDTO{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		PosterPath:   m.PosterPath,
		BackdropPath: m.BackdropPath,
		Rating:       m.Rating,
		Genres:       m.Genres,
		Runtime:      m.Runtime,
	}
	if dto.Genres == nil {
		dto.Genres = []string{}
	}
	if m.ReleaseDate != nil {
		date := m.ReleaseDate.Format(dateLayout)
		dto.ReleaseDate = &date
	}
	return dto
}

func NewMovieDTOs(movies []model.Movie) []MovieDTO {
	res := make([]MovieDTO, 0, len(movies))
	for _, m := range movies {
		res = append(res, NewMovieDTO(m))
	}
	return res
}

func newMovieRef(m *model.Movie) *MovieDTO {
	if m == nil {
		return nil
	}
	dto := NewMovieDTO(*m)
	return &dto
}

type CatalogMovieDTO struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"posterPath,omitempty"`
	BackdropPath string  `json:"backdropPath,omitempty"`
	ReleaseDate  string  `json:"releaseDate,omitempty"`
	VoteAverage  float64 `json:"voteAverage"`
	GenreIDs     []int   `json:"genreIds"`
}

type CatalogPageDTO struct {
	Page         int               `json:"page"`
	TotalPages   int               `json:"totalPages"`
	TotalResults int               `json:"totalResults"`
	Results      []CatalogMovieDTO `json:"results"`
}

func NewCatalogPageDTO(p model.CatalogPage) CatalogPageDTO {
	dto := CatalogPageDTO{
		Page:         p.Page,
		TotalPages:   p.TotalPages,
		TotalResults: p.TotalResults,
		Results:      make([]CatalogMovieDTO, 0, len(p.Results)),
	}
	for _, m := range p.Results {
		genres := m.GenreIDs
		if genres == nil {
			genres = []int{}
		}
		dto.Results = append(dto.Results, CatalogMovieDTO{
			ID:           m.ID,
			Title:        m.Title,
			Overview:     m.Overview,
			PosterPath:   m.PosterPath,
			BackdropPath: m.BackdropPath,
			ReleaseDate:  m.ReleaseDate,
			VoteAverage:  m.VoteAverage,
			GenreIDs:     genres,
		})
	}
	return dto
}

type GenreDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type MatchDTO struct {
	ID              uuid.UUID       `json:"id"`
	User1ID         uuid.UUID       `json:"user1Id"`
	User2ID         uuid.UUID       `json:"user2Id"`
	Status          string          `json:"status"`
	BackgroundImage string          `json:"backgroundImage,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	AcceptedAt      *time.Time      `json:"acceptedAt"`
	User1           *UserSummaryDTO `json:"user1,omitempty"`
	User2           *UserSummaryDTO `json:"user2,omitempty"`
	Partner         *UserSummaryDTO `json:"partner,omitempty"`
}

// NewMatchDTO fills Partner from the point of view of caller.
func NewMatchDTO(m model.Match, caller uuid.UUID) MatchDTO {
	return MatchDTO{
		ID:              m.ID,
		User1ID:         m.User1ID,
		User2ID:         m.User2ID,
		Status:          string(m.Status),
		BackgroundImage: m.BackgroundImage,
		CreatedAt:       m.CreatedAt,
		AcceptedAt:      m.AcceptedAt,
		User1:           NewUserSummaryDTO(m.User1),
		User2:           NewUserSummaryDTO(m.User2),
		Partner:         NewUserSummaryDTO(m.Partner(caller)),
	}
}

type FavoriteDTO struct {
	ID      uuid.UUID `json:"id"`
	MovieID int       `json:"movieId"`
	AddedAt time.Time `json:"addedAt"`
	Movie   *MovieDTO `json:"movie,omitempty"`
}

func NewFavoriteDTO(f model.Favorite) FavoriteDTO {
	return FavoriteDTO{
		ID:      f.ID,
		MovieID: f.MovieID,
		AddedAt: f.AddedAt,
		Movie:   newMovieRef(f.Movie),
	}
}

func NewFavoriteDTOs(favorites []model.Favorite) []FavoriteDTO {
	res := make([]FavoriteDTO, 0, len(favorites))
	for _, f := range favorites {
		res = append(res, NewFavoriteDTO(f))
	}
	return res
}

type WatchedDTO struct {
	ID        uuid.UUID `json:"id"`
	MatchID   uuid.UUID `json:"matchId"`
	MovieID   int       `json:"movieId"`
	Rating    *int      `json:"rating"`
	WatchedAt time.Time `json:"watchedAt"`
	Movie     *MovieDTO `json:"movie,omitempty"`
}

func NewWatchedDTO(w model.WatchedMovie) WatchedDTO {
	return WatchedDTO{
		ID:        w.ID,
		MatchID:   w.MatchID,
		MovieID:   w.MovieID,
		Rating:    w.Rating,
		WatchedAt: w.WatchedAt,
		Movie:     newMovieRef(w.Movie),
	}
}

func NewWatchedDTOs(watched []model.WatchedMovie) []WatchedDTO {
	res := make([]WatchedDTO, 0, len(watched))
	for _, w := range watched {
		res = append(res, NewWatchedDTO(w))
	}
	return res
}

type GenreCountDTO struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type MatchStatsDTO struct {
	TotalWatched  int             `json:"totalWatched"`
	AverageRating string          `json:"averageRating"`
	TopGenres     []GenreCountDTO `json:"topGenres"`
	CurrentStreak int             `json:"currentStreak"`
	RecentMovies  []WatchedDTO    `json:"recentMovies"`
}

func NewMatchStatsDTO(s model.MatchStats) MatchStatsDTO {
	dto := MatchStatsDTO{
		TotalWatched:  s.TotalWatched,
		AverageRating: s.AverageRating,
		TopGenres:     make([]GenreCountDTO, 0, len(s.TopGenres)),
		CurrentStreak: s.CurrentStreak,
		RecentMovies:  NewWatchedDTOs(s.RecentMovies),
	}
	for _, g := range s.TopGenres {
		dto.TopGenres = append(dto.TopGenres, GenreCountDTO{Name: g.Name, Count: g.Count})
	}
	return dto
}

type NoteDTO struct {
	ID        uuid.UUID `json:"id"`
	MatchID   uuid.UUID `json:"matchId"`
	MovieID   int       `json:"movieId"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewNoteDTO(n model.Note) NoteDTO {
	return NoteDTO{
		ID:        n.ID,
		MatchID:   n.MatchID,
		MovieID:   n.MovieID,
		Note:      n.Note,
		CreatedAt: n.CreatedAt,
	}
}

type MessageDTO struct {
	ID           uuid.UUID       `json:"id"`
	MatchID      *uuid.UUID      `json:"matchId"`
	FriendshipID *uuid.UUID      `json:"friendshipId"`
	SenderID     uuid.UUID       `json:"senderId"`
	Content      string          `json:"content"`
	CreatedAt    time.Time       `json:"createdAt"`
	ExpiresAt    time.Time       `json:"expiresAt"`
	Sender       *UserSummaryDTO `json:"sender,omitempty"`
}

func NewMessageDTO(m model.Message) MessageDTO {
	return MessageDTO{
		ID:           m.ID,
		MatchID:      m.MatchID,
		FriendshipID: m.FriendshipID,
		SenderID:     m.SenderID,
		Content:      m.Content,
		CreatedAt:    m.CreatedAt,
		ExpiresAt:    m.ExpiresAt,
		Sender:       NewUserSummaryDTO(m.Sender),
	}
}

func NewMessageDTOs(messages []model.Message) []MessageDTO {
	res := make([]MessageDTO, 0, len(messages))
	for _, m := range messages {
		res = append(res, NewMessageDTO(m))
	}
	return res
}

type NotificationDTO struct {
	ID        uuid.UUID      `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	Read      bool           `json:"read"`
	CreatedAt time.Time      `json:"createdAt"`
}

func NewNotificationDTO(n model.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Data:      n.Data,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

type FriendshipDTO struct {
	ID          uuid.UUID       `json:"id"`
	RequesterID uuid.UUID       `json:"requesterId"`
	AddresseeID uuid.UUID       `json:"addresseeId"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	AcceptedAt  *time.Time      `json:"acceptedAt"`
	Requester   *UserSummaryDTO `json:"requester,omitempty"`
	Addressee   *UserSummaryDTO `json:"addressee,omitempty"`
}

func NewFriendshipDTO(f model.Friendship) FriendshipDTO {
	return FriendshipDTO{
		ID:          f.ID,
		RequesterID: f.RequesterID,
		AddresseeID: f.AddresseeID,
		Status:      string(f.Status),
		CreatedAt:   f.CreatedAt,
		AcceptedAt:  f.AcceptedAt,
		Requester:   NewUserSummaryDTO(f.Requester),
		Addressee:   NewUserSummaryDTO(f.Addressee),
	}
}

func NewFriendshipDTOs(friendships []model.Friendship) []FriendshipDTO {
	res := make([]FriendshipDTO, 0, len(friendships))
	for _, f := range friendships {
		res = append(res, NewFriendshipDTO(f))
	}
	return res
}
