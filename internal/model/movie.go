package model

import "time"

// Movie ids are the upstream catalog ids.
type Movie struct {
	ID           int
	Title        string
	Description  string
	PosterPath   string
	BackdropPath string
	ReleaseDate  *time.Time
	Rating       *float64
	Genres       []string
	Runtime      int
}

func (m Movie) RatingOrZero() float64 {
	if m.Rating == nil {
		return 0
	}
	return *m.Rating
}

func (m Movie) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

type Genre struct {
	ID   int
	Name string
}

// CatalogPage is one page of catalog search/listing results.
type CatalogPage struct {
	Page         int
	TotalPages   int
	TotalResults int
	Results      []CatalogMovie
}

type CatalogMovie struct {
	ID           int
	Title        string
	Overview     string
	PosterPath   string
	BackdropPath string
	ReleaseDate  string
	VoteAverage  float64
	GenreIDs     []int
}
