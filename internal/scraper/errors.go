package scraper

import "fmt"

// FetchError reports a failure reaching the source page: a transport error or
// a non-200 response.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status code: %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError reports that the page could not be parsed or that the finals
// table was not found on it.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing page: %s: %v", e.Reason, e.Err)
	}
	return "parsing page: " + e.Reason
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
