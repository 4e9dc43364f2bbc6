package movie_picker

import (
	"fmt"
	"slices"
	"time"
	"unicode/utf16"
)

// Seed keys the daily pick by match and UTC calendar day. The month is
// zero-based (January = 0) so picks match the ones already served to clients.
func Seed(matchID string, at time.Time) string {
	utc := at.UTC()
	return fmt.Sprintf("%s-%d-%d-%d", matchID, utc.Year(), int(utc.Month())-1, utc.Day())
}

// Hash is the 31-multiplier rolling hash over UTF-16 code units with int32
// wraparound. The overflow is part of the contract.
func Hash(seed string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(seed)) {
		h = (h << 5) - h + int32(c)
	}
	return h
}

// Index maps a hash onto [0, n). The absolute value is taken in 64 bits so
// math.MinInt32 becomes 2147483648 instead of staying negative.
func Index(hash int32, n int) int {
	abs := int64(hash)
	if abs < 0 {
		abs = -abs
	}
	return int(abs % int64(n))
}

// Pick returns the candidate of the day for a match. candidates must not be
// empty; order does not matter.
func Pick(candidates []int, matchID string, at time.Time) int {
	sorted := slices.Clone(candidates)
	slices.Sort(sorted)
	return sorted[Index(Hash(Seed(matchID, at)), len(sorted))]
}
