package finals

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pfrederiksen/worldcup-dashboard/internal/scraper"
)

// Canonical column names
const (
	ColumnYear     = "Year"
	ColumnWinner   = "Winner"
	ColumnRunnerUp = "RunnerUp"
)

// HistoricalNames maps a historical country label to its present-day name
var HistoricalNames = map[string]string{
	"West Germany": "Germany",
}

var yearPattern = regexp.MustCompile(`\b(1[89]\d\d|2\d\d\d)\b`)

// Record is one championship final
type Record struct {
	Year     int    `json:"year"`
	Winner   string `json:"winner"`
	RunnerUp string `json:"runner_up"`
}

// SchemaError reports a column the finals table must have but does not
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("finals table has no %s column", e.Column)
}

// Normalize reads the Year, Winner and RunnerUp columns out of the finals
// table and canonicalizes country names. Rows without a year or without a
// winner (finals not yet played) are skipped, as are repeated years. The
// result is ordered by year.
func Normalize(t scraper.Table) ([]Record, error) {
	yearCol := t.Column(scraper.YearColumns...)
	if yearCol < 0 {
		return nil, &SchemaError{Column: ColumnYear}
	}
	winnerCol := t.Column(scraper.WinnerColumns...)
	if winnerCol < 0 {
		return nil, &SchemaError{Column: ColumnWinner}
	}
	runnerCol := t.Column(scraper.RunnerUpColumns...)
	if runnerCol < 0 {
		return nil, &SchemaError{Column: ColumnRunnerUp}
	}

	records := make([]Record, 0, len(t.Rows))
	seen := make(map[int]bool)
	for _, row := range t.Rows {
		year, ok := parseYear(cell(row, yearCol))
		if !ok || seen[year] {
			continue
		}
		winner := strings.TrimSpace(cell(row, winnerCol))
		if winner == "" {
			continue
		}
		seen[year] = true
		records = append(records, Record{
			Year:     year,
			Winner:   winner,
			RunnerUp: strings.TrimSpace(cell(row, runnerCol)),
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Year < records[j].Year
	})

	return Canonicalize(records), nil
}

// Canonicalize returns a copy of records with every historical country name
// replaced by its present-day name. Applying it twice changes nothing.
func Canonicalize(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		r.Winner = CanonicalName(r.Winner)
		r.RunnerUp = CanonicalName(r.RunnerUp)
		out[i] = r
	}
	return out
}

// CanonicalName returns the present-day name for a country label
func CanonicalName(name string) string {
	if canonical, ok := HistoricalNames[name]; ok {
		return canonical
	}
	return name
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// parseYear extracts the first plausible four-digit year from a cell such as
// "1930" or "1930 details".
func parseYear(s string) (int, bool) {
	match := yearPattern.FindString(s)
	if match == "" {
		return 0, false
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return year, true
}
