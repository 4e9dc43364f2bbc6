package infra_postgres_movie

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/humanbelnik/kinomatch/internal/model"
)

// Genres is the jsonb genres column. Rows written by older clients hold a
// list of {"id","name"} objects, a list of names or a json string wrapping
// either of those; all of them scan into plain names.
type Genres []string

func (g *Genres) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*g = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported genres type %T", src)
	}

	names, err := ParseGenres(raw)
	if err != nil {
		return err
	}
	*g = names
	return nil
}

func (g Genres) Value() (driver.Value, error) {
	if g == nil {
		return nil, nil
	}
	return json.Marshal([]string(g))
}

// ParseGenres normalises any stored genres shape into names.
func ParseGenres(raw []byte) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		return ParseGenres([]byte(encoded))
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to parse genres: %w", err)
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			names = append(names, name)
			continue
		}
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(item, &obj); err != nil {
			return nil, fmt.Errorf("failed to parse genre %s: %w", item, err)
		}
		if obj.Name != "" {
			names = append(names, obj.Name)
		}
	}
	return names, nil
}

type MovieDB struct {
	ID           int             `db:"id"`
	Title        string          `db:"title"`
	Description  string          `db:"description"`
	PosterPath   string          `db:"poster_path"`
	BackdropPath string          `db:"backdrop_path"`
	ReleaseDate  sql.NullTime    `db:"release_date"`
	Rating       sql.NullFloat64 `db:"rating"`
	Genres       Genres          `db:"genres"`
	Runtime      int             `db:"runtime"`
}

func (m *MovieDB) ToDomain() model.Movie {
	mv := model.Movie{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		PosterPath:   m.PosterPath,
		BackdropPath: m.BackdropPath,
		Genres:       []string(m.Genres),
		Runtime:      m.Runtime,
	}
	if m.ReleaseDate.Valid {
		d := m.ReleaseDate.Time
		mv.ReleaseDate = &d
	}
	if m.Rating.Valid {
		r := m.Rating.Float64
		mv.Rating = &r
	}
	return mv
}

func FromDomain(mv model.Movie) MovieDB {
	m := MovieDB{
		ID:           mv.ID,
		Title:        mv.Title,
		Description:  mv.Description,
		PosterPath:   mv.PosterPath,
		BackdropPath: mv.BackdropPath,
		Genres:       Genres(mv.Genres),
		Runtime:      mv.Runtime,
	}
	if mv.ReleaseDate != nil {
		m.ReleaseDate = sql.NullTime{Time: mv.ReleaseDate.In(time.UTC), Valid: true}
	}
	if mv.Rating != nil {
		m.Rating = sql.NullFloat64{Float64: *mv.Rating, Valid: true}
	}
	return m
}
