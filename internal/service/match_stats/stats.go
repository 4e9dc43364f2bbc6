package match_stats

import (
	"fmt"
	"slices"
	"time"

	"github.com/humanbelnik/kinomatch/internal/model"
)

const (
	topGenresLimit = 5
	recentLimit    = 5
	streakGap      = 7 * 24 * time.Hour
)

// Compute summarises what a match has watched. Unrated entries count as 0 in
// the average.
func Compute(watched []model.WatchedMovie) model.MatchStats {
	sorted := slices.Clone(watched)
	slices.SortStableFunc(sorted, func(a, b model.WatchedMovie) int {
		return b.WatchedAt.Compare(a.WatchedAt)
	})

	stats := model.MatchStats{
		TotalWatched:  len(sorted),
		AverageRating: fmt.Sprintf("%.1f", averageRating(sorted)),
		TopGenres:     topGenres(sorted),
		CurrentStreak: streak(sorted),
		RecentMovies:  sorted[:min(recentLimit, len(sorted))],
	}
	return stats
}

func averageRating(watched []model.WatchedMovie) float64 {
	if len(watched) == 0 {
		return 0
	}
	var sum int
	for _, w := range watched {
		if w.Rating != nil {
			sum += *w.Rating
		}
	}
	return float64(sum) / float64(len(watched))
}

// Genres with equal counts keep the order they were first seen in.
func topGenres(watched []model.WatchedMovie) []model.GenreCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, w := range watched {
		if w.Movie == nil {
			continue
		}
		for _, g := range w.Movie.Genres {
			if _, ok := counts[g]; !ok {
				order = append(order, g)
			}
			counts[g]++
		}
	}

	genres := make([]model.GenreCount, 0, len(order))
	for _, name := range order {
		genres = append(genres, model.GenreCount{Name: name, Count: counts[name]})
	}
	slices.SortStableFunc(genres, func(a, b model.GenreCount) int {
		return b.Count - a.Count
	})

	return genres[:min(topGenresLimit, len(genres))]
}

// streak counts consecutive watches, newest first, while each one is at most
// a week older than the previous.
func streak(newestFirst []model.WatchedMovie) int {
	if len(newestFirst) == 0 {
		return 0
	}

	count := 1
	last := newestFirst[0].WatchedAt
	for _, w := range newestFirst[1:] {
		if last.Sub(w.WatchedAt) > streakGap {
			break
		}
		count++
		last = w.WatchedAt
	}
	return count
}
