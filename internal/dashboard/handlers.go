package dashboard

import (
	"fmt"
	"strconv"
	"strings"
)

// YearNotFound is returned by Year for years without a final
const YearNotFound = "Year not found."

// Map builds the choropleth of wins per country. The selected country does
// not affect the figure: the map always shows every winner.
func (c *Context) Map(selectedCountry string) Figure {
	trace := Trace{
		Type:          "choropleth",
		Locations:     make([]string, 0, len(c.ranked)),
		LocationMode:  "country names",
		Z:             make([]int, 0, len(c.ranked)),
		Text:          make([]string, 0, len(c.ranked)),
		HoverTemplate: "<b>%{text}</b><br>Wins: %{z}<extra></extra>",
		ColorScale:    c.theme.ColorScale,
		ZMin:          0,
		ZMax:          c.wins.Max(),
		ColorBar:      ColorBar{Title: Title{Text: "Wins"}},
	}
	for _, wc := range c.ranked {
		trace.Locations = append(trace.Locations, wc.Country)
		trace.Z = append(trace.Z, wc.Wins)
		trace.Text = append(trace.Text, wc.Country)
	}

	return Figure{
		Data: []Trace{trace},
		Layout: Layout{
			Title:  Title{Text: c.theme.MapTitle},
			Margin: Margin{R: 0, T: 50, L: 0, B: 0},
			Geo:    Geo{ShowFrame: false, ShowCoastlines: true},
		},
	}
}

// Country describes how many times country has won. The lookup is an exact
// match on the canonical name.
func (c *Context) Country(country string) string {
	if wins := c.wins[country]; wins > 0 {
		return fmt.Sprintf("%s has won the World Cup %d time(s).", country, wins)
	}
	return fmt.Sprintf("%s has never won the World Cup.", country)
}

// Year describes the final played in year
func (c *Context) Year(year int) string {
	r, ok := c.byYear[year]
	if !ok {
		return YearNotFound
	}
	return fmt.Sprintf("In %d, the Winner was %s and the Runner-up was %s.", r.Year, r.Winner, r.RunnerUp)
}

// YearString is Year for a selector value received as text. Values that are
// not a whole number are not found.
func (c *Context) YearString(value string) string {
	year, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return YearNotFound
	}
	return c.Year(year)
}
