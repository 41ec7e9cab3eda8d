// Package cli implements the command-line interface for worldcup-dashboard.
//
// The root command loads the finals table once and serves the dashboard until
// interrupted. The summary subcommand loads the same data and prints the win
// counts and finals as text or JSON. Both coordinate the config, scraper,
// dashboard and server packages.
package cli
