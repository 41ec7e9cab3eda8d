package finals

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/pfrederiksen/worldcup-dashboard/internal/scraper"
)

func sourceTable(rows ...[]string) scraper.Table {
	return scraper.Table{
		Columns: []string{"Year", "Winners", "Score", "Runners-up", "Venue"},
		Rows:    rows,
	}
}

func TestNormalize(t *testing.T) {
	table := sourceTable(
		[]string{"2014", "Germany", "1–0", "Argentina", "Maracanã"},
		[]string{"1990", "West Germany", "1–0", "Argentina", "Stadio Olimpico"},
		[]string{"2018", "France", "4–2", "Croatia", "Luzhniki Stadium"},
	)

	got, err := Normalize(table)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	want := []Record{
		{Year: 1990, Winner: "Germany", RunnerUp: "Argentina"},
		{Year: 2014, Winner: "Germany", RunnerUp: "Argentina"},
		{Year: 2018, Winner: "France", RunnerUp: "Croatia"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
}

func TestNormalize_EdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		rows      [][]string
		wantYears []int
	}{
		{
			name:      "future final without winner is skipped",
			rows:      [][]string{{"2022", "Argentina", "", "France", ""}, {"2026", "", "", "", "MetLife Stadium"}},
			wantYears: []int{2022},
		},
		{
			name:      "row without a year is skipped",
			rows:      [][]string{{"Total", "Brazil", "", "", ""}, {"2002", "Brazil", "", "Germany", ""}},
			wantYears: []int{2002},
		},
		{
			name:      "year with trailing text",
			rows:      [][]string{{"1930 details", "Uruguay", "", "Argentina", ""}},
			wantYears: []int{1930},
		},
		{
			name:      "repeated year keeps the first row",
			rows:      [][]string{{"1950", "Uruguay", "", "Brazil", ""}, {"1950", "Brazil", "", "Uruguay", ""}},
			wantYears: []int{1950},
		},
		{
			name:      "short row",
			rows:      [][]string{{"1938", "Italy"}},
			wantYears: []int{1938},
		},
		{
			name:      "empty table",
			rows:      nil,
			wantYears: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Normalize(sourceTable(tt.rows...))
			if err != nil {
				t.Fatalf("Normalize() error: %v", err)
			}
			if got := Years(records); !reflect.DeepEqual(got, tt.wantYears) {
				t.Errorf("years = %v, want %v", got, tt.wantYears)
			}
			if len(records) > 0 && records[0].Year == 1950 && records[0].Winner != "Uruguay" {
				t.Errorf("Winner = %q, want first row's Uruguay", records[0].Winner)
			}
		})
	}
}

func TestNormalize_MissingColumns(t *testing.T) {
	tests := []struct {
		columns []string
		want    string
	}{
		{[]string{"Winners", "Runners-up"}, ColumnYear},
		{[]string{"Year", "Runners-up"}, ColumnWinner},
		{[]string{"Year", "Winners"}, ColumnRunnerUp},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			_, err := Normalize(scraper.Table{Columns: tt.columns})
			var schemaErr *SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("Normalize() error = %v, want *SchemaError", err)
			}
			if schemaErr.Column != tt.want {
				t.Errorf("SchemaError.Column = %q, want %q", schemaErr.Column, tt.want)
			}
		})
	}
}

func TestNormalize_NoHistoricalNamesRemain(t *testing.T) {
	table := sourceTable(
		[]string{"1954", "West Germany", "", "Hungary", ""},
		[]string{"1966", "England", "", "West Germany", ""},
		[]string{"1974", "West Germany", "", "Netherlands", ""},
	)

	records, err := Normalize(table)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	for _, r := range records {
		if r.Winner == "West Germany" || r.RunnerUp == "West Germany" {
			t.Errorf("record %+v still names West Germany", r)
		}
	}
	if wins := CountWins(records)["Germany"]; wins != 2 {
		t.Errorf("Germany wins = %d, want 2", wins)
	}
	if records[1].RunnerUp != "Germany" {
		t.Errorf("1966 RunnerUp = %q, want Germany", records[1].RunnerUp)
	}
}

func TestNormalize_Fixture(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/world_cup_finals.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	tables, err := scraper.ParseTables(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("ParseTables() error: %v", err)
	}
	table, err := scraper.SelectFinals(tables, scraper.DefaultTableIndex)
	if err != nil {
		t.Fatalf("SelectFinals() error: %v", err)
	}

	records, err := Normalize(table)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}

	if len(records) != 9 {
		t.Fatalf("Normalize() returned %d records, want 9", len(records))
	}

	wins := CountWins(records)
	want := WinCounts{
		"Uruguay":   1,
		"Italy":     1,
		"Germany":   4,
		"England":   1,
		"France":    1,
		"Argentina": 1,
	}
	if !reflect.DeepEqual(wins, want) {
		t.Errorf("CountWins() = %v, want %v", wins, want)
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	records := []Record{
		{Year: 1990, Winner: "West Germany", RunnerUp: "Argentina"},
		{Year: 1966, Winner: "England", RunnerUp: "West Germany"},
	}

	once := Canonicalize(records)
	twice := Canonicalize(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Canonicalize not idempotent: %+v vs %+v", once, twice)
	}
	if !reflect.DeepEqual(CountWins(once), CountWins(twice)) {
		t.Error("win counts changed on second pass")
	}
	if records[0].Winner != "West Germany" {
		t.Error("Canonicalize modified its input")
	}
}

func TestCountWins_SumEqualsFinals(t *testing.T) {
	records := []Record{
		{Year: 1958, Winner: "Brazil", RunnerUp: "Sweden"},
		{Year: 1962, Winner: "Brazil", RunnerUp: "Czechoslovakia"},
		{Year: 1970, Winner: "Brazil", RunnerUp: "Italy"},
		{Year: 1982, Winner: "Italy", RunnerUp: "Germany"},
		{Year: 2010, Winner: "Spain", RunnerUp: "Netherlands"},
	}

	wins := CountWins(records)
	if wins.Total() != len(records) {
		t.Errorf("Total() = %d, want %d", wins.Total(), len(records))
	}
	if wins.Max() != 3 {
		t.Errorf("Max() = %d, want 3", wins.Max())
	}
	for c, w := range wins {
		if w < 1 {
			t.Errorf("%s has %d wins, want >= 1", c, w)
		}
	}

	if got := CountWins(nil); len(got) != 0 || got.Max() != 0 {
		t.Errorf("CountWins(nil) = %v, want empty", got)
	}
}

func TestCountries(t *testing.T) {
	wins := WinCounts{"Uruguay": 2, "Brazil": 5, "Argentina": 3}
	want := []string{"Argentina", "Brazil", "Uruguay"}
	if got := Countries(wins); !reflect.DeepEqual(got, want) {
		t.Errorf("Countries() = %v, want %v", got, want)
	}
}

func TestRanked(t *testing.T) {
	wins := WinCounts{"Uruguay": 2, "Brazil": 5, "Argentina": 3, "France": 2}
	want := []WinCount{
		{Country: "Brazil", Wins: 5},
		{Country: "Argentina", Wins: 3},
		{Country: "France", Wins: 2},
		{Country: "Uruguay", Wins: 2},
	}
	if got := Ranked(wins); !reflect.DeepEqual(got, want) {
		t.Errorf("Ranked() = %v, want %v", got, want)
	}
}

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"West Germany", "Germany"},
		{"Germany", "Germany"},
		{"Brazil", "Brazil"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CanonicalName(tt.in); got != tt.want {
			t.Errorf("CanonicalName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
