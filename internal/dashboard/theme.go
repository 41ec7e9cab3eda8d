package dashboard

import "strings"

// Theme holds the cosmetic settings of the page: labels, colors and element ids
type Theme struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	MapTitle     string `json:"map_title"`
	ColorScale   string `json:"color_scale"`
	CountryLabel string `json:"country_label"`
	YearLabel    string `json:"year_label"`

	MapID           string `json:"map_id"`
	CountrySelectID string `json:"country_select_id"`
	CountryOutputID string `json:"country_output_id"`
	YearSelectID    string `json:"year_select_id"`
	YearOutputID    string `json:"year_output_id"`
}

var (
	ThemeClassic = Theme{
		Name:            "classic",
		Title:           "FIFA World Cup Dashboard",
		MapTitle:        "World Cup Wins by Country",
		ColorScale:      "Viridis",
		CountryLabel:    "Select a Country:",
		YearLabel:       "Select a Year:",
		MapID:           "choropleth",
		CountrySelectID: "country-dropdown",
		CountryOutputID: "country-output",
		YearSelectID:    "year-dropdown",
		YearOutputID:    "year-output",
	}

	ThemeGreens = Theme{
		Name:            "greens",
		Title:           "FIFA World Cup",
		MapTitle:        "World Cup Wins by Country (choropleth-map)",
		ColorScale:      "Greens",
		CountryLabel:    "Select a Country:",
		YearLabel:       "Select A Year:",
		MapID:           "choropleth-map",
		CountrySelectID: "country-selector",
		CountryOutputID: "country-result",
		YearSelectID:    "year-selector",
		YearOutputID:    "year-result",
	}
)

// ThemeByName returns the named theme, falling back to ThemeClassic
func ThemeByName(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ThemeGreens.Name:
		return ThemeGreens
	default:
		return ThemeClassic
	}
}
