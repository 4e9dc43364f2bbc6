package movie_picker

import (
	"slices"
	"strings"

	"github.com/humanbelnik/kinomatch/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var titleLocale = language.Spanish

// FilterAndSort applies the common movies filters and ordering. movies is
// expected in ascending id order; the sort is stable so equal keys keep it.
func FilterAndSort(movies []model.Movie, f model.CommonMoviesFilter) []model.Movie {
	out := make([]model.Movie, 0, len(movies))
	for _, m := range movies {
		if f.MinRating != nil && (m.Rating == nil || *m.Rating < *f.MinRating) {
			continue
		}
		if f.Genre != "" && !m.HasGenre(f.Genre) {
			continue
		}
		out = append(out, m)
	}

	switch f.SortBy {
	case model.SortByRating:
		slices.SortStableFunc(out, func(a, b model.Movie) int {
			return compareFloatDesc(a.RatingOrZero(), b.RatingOrZero())
		})
	case model.SortByReleaseDate:
		slices.SortStableFunc(out, compareReleaseDesc)
	default:
		// collate.Collator keeps internal buffers, one per call.
		c := collate.New(titleLocale)
		slices.SortStableFunc(out, func(a, b model.Movie) int {
			return c.CompareString(a.Title, b.Title)
		})
	}

	return out
}

func compareFloatDesc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}

// Movies without a release date go last.
func compareReleaseDesc(a, b model.Movie) int {
	switch {
	case a.ReleaseDate == nil && b.ReleaseDate == nil:
		return 0
	case a.ReleaseDate == nil:
		return 1
	case b.ReleaseDate == nil:
		return -1
	}
	return b.ReleaseDate.Compare(*a.ReleaseDate)
}

// NormalizeSortBy maps user input onto a supported ordering.
func NormalizeSortBy(raw string) string {
	switch strings.TrimSpace(raw) {
	case model.SortByRating:
		return model.SortByRating
	case model.SortByReleaseDate:
		return model.SortByReleaseDate
	}
	return model.SortByTitle
}
