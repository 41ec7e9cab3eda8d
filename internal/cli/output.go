package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/pfrederiksen/worldcup-dashboard/internal/finals"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Source      string            `json:"source"`
	Wins        []finals.WinCount `json:"wins"`
	Finals      []finals.Record   `json:"finals"`
	FinalsCount int               `json:"finals_count"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeText(w io.Writer, result *OutputResult) error {
	if result.FinalsCount == 0 {
		fmt.Fprintln(w, "No finals found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "Country\tWins")
	for _, wc := range result.Wins {
		fmt.Fprintf(tw, "%s\t%d\n", wc.Country, wc.Wins)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(tw, "Year\tWinner\tRunner-up")
	for _, r := range result.Finals {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", r.Year, r.Winner, r.RunnerUp)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nTotal: %d finals won by %d countries\n", result.FinalsCount, len(result.Wins))
	return nil
}
