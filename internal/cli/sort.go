package cli

import (
	"sort"
	"strings"

	"github.com/pfrederiksen/worldcup-dashboard/internal/finals"
)

// SortOrder represents the available orderings of win counts
type SortOrder string

const (
	SortByWins    SortOrder = "wins"
	SortByCountry SortOrder = "country"
)

// sortWins sorts win counts in place
func sortWins(wins []finals.WinCount, order SortOrder) {
	switch order {
	case SortByWins:
		sort.SliceStable(wins, func(i, j int) bool {
			if wins[i].Wins != wins[j].Wins {
				return wins[i].Wins > wins[j].Wins
			}
			return compareByCountry(wins[i], wins[j])
		})
	case SortByCountry:
		sort.SliceStable(wins, func(i, j int) bool {
			return compareByCountry(wins[i], wins[j])
		})
	}
}

// compareByCountry orders case-insensitively, falling back to byte order so
// that the result is deterministic
func compareByCountry(i, j finals.WinCount) bool {
	li, lj := strings.ToLower(i.Country), strings.ToLower(j.Country)
	if li != lj {
		return li < lj
	}
	return i.Country < j.Country
}
