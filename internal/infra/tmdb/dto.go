package infra_tmdb

import (
	"time"

	"github.com/humanbelnik/kinomatch/internal/model"
)

type pageDTO struct {
	Page         int        `json:"page"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
	Results      []movieDTO `json:"results"`
}

type movieDTO struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int   `json:"genre_ids"`
}

type genreDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type genresDTO struct {
	Genres []genreDTO `json:"genres"`
}

type detailsDTO struct {
	movieDTO
	Runtime int        `json:"runtime"`
	Genres  []genreDTO `json:"genres"`
}

func (p pageDTO) toDomain() model.CatalogPage {
	page := model.CatalogPage{
		Page:         p.Page,
		TotalPages:   p.TotalPages,
		TotalResults: p.TotalResults,
		Results:      make([]model.CatalogMovie, len(p.Results)),
	}
	for i, m := range p.Results {
		page.Results[i] = model.CatalogMovie{
			ID:           m.ID,
			Title:        m.Title,
			Overview:     m.Overview,
			PosterPath:   m.PosterPath,
			BackdropPath: m.BackdropPath,
			ReleaseDate:  m.ReleaseDate,
			VoteAverage:  m.VoteAverage,
			GenreIDs:     m.GenreIDs,
		}
	}
	return page
}

func (d detailsDTO) toDomain() model.Movie {
	mv := model.Movie{
		ID:           d.ID,
		Title:        d.Title,
		Description:  d.Overview,
		PosterPath:   d.PosterPath,
		BackdropPath: d.BackdropPath,
		Runtime:      d.Runtime,
		Genres:       make([]string, 0, len(d.Genres)),
	}
	for _, g := range d.Genres {
		mv.Genres = append(mv.Genres, g.Name)
	}
	if released, err := time.Parse(time.DateOnly, d.ReleaseDate); err == nil {
		mv.ReleaseDate = &released
	}
	rating := d.VoteAverage
	mv.Rating = &rating
	return mv
}
