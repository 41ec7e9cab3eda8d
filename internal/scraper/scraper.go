package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	FinalsURL         = "https://en.wikipedia.org/wiki/List_of_FIFA_World_Cup_finals"
	UserAgent         = "worldcup-dashboard/1.0 (github.com/pfrederiksen/worldcup-dashboard)"
	Timeout           = 30 * time.Second
	DefaultTableIndex = 3
)

// Options configures a Scraper. Zero fields take the package defaults.
type Options struct {
	URL        string
	Timeout    time.Duration
	TableIndex int
}

// Scraper handles fetching the finals page and extracting its tables
type Scraper struct {
	client     *http.Client
	url        string
	tableIndex int
}

// New creates a Scraper for the default finals page
func New() *Scraper {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a Scraper, filling unset options with defaults.
// A negative TableIndex disables positional selection.
func NewWithOptions(opts Options) *Scraper {
	if opts.URL == "" {
		opts.URL = FinalsURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = Timeout
	}
	if opts.TableIndex == 0 {
		opts.TableIndex = DefaultTableIndex
	}
	return &Scraper{
		client: &http.Client{
			Timeout: opts.Timeout,
		},
		url:        opts.URL,
		tableIndex: opts.TableIndex,
	}
}

// URL returns the page the scraper fetches
func (s *Scraper) URL() string {
	return s.url
}

// FetchTables fetches the page and parses every table on it
func (s *Scraper) FetchTables(ctx context.Context) ([]Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, &FetchError{URL: s.url, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: s.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{URL: s.url, StatusCode: resp.StatusCode}
	}

	return ParseTables(resp.Body)
}

// FetchFinals fetches the page and returns the finals table
func (s *Scraper) FetchFinals(ctx context.Context) (Table, error) {
	tables, err := s.FetchTables(ctx)
	if err != nil {
		return Table{}, err
	}
	return SelectFinals(tables, s.tableIndex)
}

// SelectFinals picks the finals table. The table at index wins when it has
// the Year, Winners and Runners-up columns; otherwise the first table that
// has them is used.
func SelectFinals(tables []Table, index int) (Table, error) {
	if index >= 0 && index < len(tables) && isFinals(tables[index]) {
		return tables[index], nil
	}

	for _, t := range tables {
		if isFinals(t) {
			return t, nil
		}
	}

	return Table{}, &ParseError{
		Reason: fmt.Sprintf("no finals table among %d tables (want columns Year, Winners, Runners-up)", len(tables)),
	}
}

func isFinals(t Table) bool {
	return t.HasColumns(YearColumns, WinnerColumns, RunnerUpColumns)
}
