// Package movie_picker chooses which movie a match watches today and builds
// the listing of movies the partners have in common.
//
// Everything here is pure: callers load favorites, watched movies and movie
// records and pass them in.
package movie_picker

import "slices"

// Eligible returns (favoritesA ∪ favoritesB) \ watched, sorted ascending.
// Either partner's favorite is a candidate, not only the mutual ones.
func Eligible(favoritesA, favoritesB, watched []int) []int {
	seen := make(map[int]struct{}, len(watched)+len(favoritesA)+len(favoritesB))
	for _, id := range watched {
		seen[id] = struct{}{}
	}

	eligible := make([]int, 0, len(favoritesA)+len(favoritesB))
	for _, list := range [][]int{favoritesA, favoritesB} {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			eligible = append(eligible, id)
		}
	}

	slices.Sort(eligible)
	return eligible
}
