package dashboard

import (
	"context"
	"fmt"

	"github.com/pfrederiksen/worldcup-dashboard/internal/finals"
	"github.com/pfrederiksen/worldcup-dashboard/internal/scraper"
)

// Initial selector values
const (
	DefaultCountry = "Brazil"
	DefaultYear    = 2018
)

// TableSource provides the raw finals table
type TableSource interface {
	FetchFinals(ctx context.Context) (scraper.Table, error)
}

// Context is the immutable application state the update handlers read:
// the finals records and the win counts derived from them. It is built once
// at startup and is safe for concurrent use.
type Context struct {
	records   []finals.Record
	byYear    map[int]finals.Record
	wins      finals.WinCounts
	ranked    []finals.WinCount
	countries []string
	years     []int
	theme     Theme
}

// Load fetches the finals table from src, normalizes it and aggregates the
// win counts.
func Load(ctx context.Context, src TableSource, theme Theme) (*Context, error) {
	table, err := src.FetchFinals(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading finals: %w", err)
	}

	records, err := finals.Normalize(table)
	if err != nil {
		return nil, fmt.Errorf("normalizing finals: %w", err)
	}

	return NewContext(records, theme), nil
}

// NewContext builds the handler context from already-loaded records.
// Historical names are canonicalized before counting.
func NewContext(records []finals.Record, theme Theme) *Context {
	records = finals.Canonicalize(records)

	byYear := make(map[int]finals.Record, len(records))
	for _, r := range records {
		if _, exists := byYear[r.Year]; !exists {
			byYear[r.Year] = r
		}
	}

	wins := finals.CountWins(records)

	return &Context{
		records:   records,
		byYear:    byYear,
		wins:      wins,
		ranked:    finals.Ranked(wins),
		countries: finals.Countries(wins),
		years:     finals.Years(records),
		theme:     theme,
	}
}

// Theme returns the page theme
func (c *Context) Theme() Theme {
	return c.theme
}

// Records returns a copy of the finals records, ordered as loaded
func (c *Context) Records() []finals.Record {
	out := make([]finals.Record, len(c.records))
	copy(out, c.records)
	return out
}

// WinCounts returns a copy of the win counts
func (c *Context) WinCounts() finals.WinCounts {
	out := make(finals.WinCounts, len(c.wins))
	for k, v := range c.wins {
		out[k] = v
	}
	return out
}

// Ranked returns the win counts ordered by wins, most first
func (c *Context) Ranked() []finals.WinCount {
	out := make([]finals.WinCount, len(c.ranked))
	copy(out, c.ranked)
	return out
}

// Countries returns the country selector options, ordered by name
func (c *Context) Countries() []string {
	out := make([]string, len(c.countries))
	copy(out, c.countries)
	return out
}

// Years returns the year selector options, ascending
func (c *Context) Years() []int {
	out := make([]int, len(c.years))
	copy(out, c.years)
	return out
}

// Wins returns the titles won by country, 0 when it has none
func (c *Context) Wins(country string) int {
	return c.wins[country]
}

// HasYear reports whether a final was played in year
func (c *Context) HasYear(year int) bool {
	_, ok := c.byYear[year]
	return ok
}
