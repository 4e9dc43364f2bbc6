package match_stats

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type MatchStatsUnitSuite struct {
	suite.Suite
}

var base = time.Date(2024, time.May, 20, 21, 0, 0, 0, time.UTC)

func watched(movieID int, daysAgo int, rating *int, genres ...string) model.WatchedMovie {
	return model.WatchedMovie{
		ID:        uuid.New(),
		MovieID:   movieID,
		Rating:    rating,
		WatchedAt: base.AddDate(0, 0, -daysAgo),
		Movie:     &model.Movie{ID: movieID, Genres: genres},
	}
}

func rating(v int) *int {
	return &v
}

func (s *MatchStatsUnitSuite) TestEmpty(t provider.T) {
	stats := Compute(nil)

	assert.Equal(t, 0, stats.TotalWatched)
	assert.Equal(t, "0.0", stats.AverageRating)
	assert.Empty(t, stats.TopGenres)
	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Empty(t, stats.RecentMovies)
}

func (s *MatchStatsUnitSuite) TestAverageCountsUnratedAsZero(t provider.T) {
	stats := Compute([]model.WatchedMovie{
		watched(1, 0, rating(5)),
		watched(2, 1, rating(4)),
		watched(3, 2, nil),
	})

	assert.Equal(t, 3, stats.TotalWatched)
	assert.Equal(t, "3.0", stats.AverageRating)
}

func (s *MatchStatsUnitSuite) TestTopGenres(t provider.T) {
	stats := Compute([]model.WatchedMovie{
		watched(1, 0, nil, "Drama", "Crimen"),
		watched(2, 1, nil, "Comedia"),
		watched(3, 2, nil, "Drama"),
		watched(4, 3, nil, "Terror", "Animación", "Western"),
	})

	assert.Equal(t, []model.GenreCount{
		{Name: "Drama", Count: 2},
		{Name: "Crimen", Count: 1},
		{Name: "Comedia", Count: 1},
		{Name: "Terror", Count: 1},
		{Name: "Animación", Count: 1},
	}, stats.TopGenres)
}

func (s *MatchStatsUnitSuite) TestStreakStopsAtFirstGapOverAWeek(t provider.T) {
	stats := Compute([]model.WatchedMovie{
		watched(4, 30, nil),
		watched(1, 0, nil),
		watched(2, 7, nil),
		watched(3, 14, nil),
	})

	assert.Equal(t, 3, stats.CurrentStreak)

	exact := watched(5, 0, nil)
	exact.WatchedAt = base.Add(-7 * 24 * time.Hour)
	stats = Compute([]model.WatchedMovie{watched(6, 0, nil), exact})
	assert.Equal(t, 2, stats.CurrentStreak)

	late := watched(7, 0, nil)
	late.WatchedAt = base.Add(-(7*24 + 21) * time.Hour)
	stats = Compute([]model.WatchedMovie{watched(8, 0, nil), late})
	assert.Equal(t, 1, stats.CurrentStreak)
}

func (s *MatchStatsUnitSuite) TestRecentMoviesNewestFirst(t provider.T) {
	input := make([]model.WatchedMovie, 0, 7)
	for i := 6; i >= 0; i-- {
		input = append(input, watched(100+i, i, nil))
	}

	stats := Compute(input)

	assert.Len(t, stats.RecentMovies, 5)
	for i, w := range stats.RecentMovies {
		assert.Equal(t, 100+i, w.MovieID)
	}
}

func TestMatchStatsSuite(t *testing.T) {
	suite.RunSuite(t, new(MatchStatsUnitSuite))
}
