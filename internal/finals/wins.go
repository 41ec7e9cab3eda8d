package finals

import (
	"sort"
	"strings"
)

// WinCounts maps a country to the number of finals it has won
type WinCounts map[string]int

// WinCount is one entry of WinCounts
type WinCount struct {
	Country string `json:"country"`
	Wins    int    `json:"wins"`
}

// CountWins counts titles per winning country
func CountWins(records []Record) WinCounts {
	counts := make(WinCounts)
	for _, r := range records {
		counts[r.Winner]++
	}
	return counts
}

// Total returns the number of finals counted
func (wc WinCounts) Total() int {
	total := 0
	for _, w := range wc {
		total += w
	}
	return total
}

// Max returns the highest win count, or 0 when empty
func (wc WinCounts) Max() int {
	most := 0
	for _, w := range wc {
		if w > most {
			most = w
		}
	}
	return most
}

// Countries returns the winning countries ordered by name
func Countries(wc WinCounts) []string {
	countries := make([]string, 0, len(wc))
	for c := range wc {
		countries = append(countries, c)
	}
	sort.Strings(countries)
	return countries
}

// Ranked returns the win counts ordered by wins, most first, then by name
func Ranked(wc WinCounts) []WinCount {
	ranked := make([]WinCount, 0, len(wc))
	for c, w := range wc {
		ranked = append(ranked, WinCount{Country: c, Wins: w})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Wins != ranked[j].Wins {
			return ranked[i].Wins > ranked[j].Wins
		}
		return strings.ToLower(ranked[i].Country) < strings.ToLower(ranked[j].Country)
	})
	return ranked
}

// Years returns the years of the finals in ascending order
func Years(records []Record) []int {
	years := make([]int, 0, len(records))
	for _, r := range records {
		years = append(years, r.Year)
	}
	sort.Ints(years)
	return years
}
