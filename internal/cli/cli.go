package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/worldcup-dashboard/internal/config"
	"github.com/pfrederiksen/worldcup-dashboard/internal/dashboard"
	"github.com/pfrederiksen/worldcup-dashboard/internal/logger"
	"github.com/pfrederiksen/worldcup-dashboard/internal/metrics"
	"github.com/pfrederiksen/worldcup-dashboard/internal/scraper"
	"github.com/pfrederiksen/worldcup-dashboard/internal/server"
)

// ExitError is the process exit code when a command fails
const ExitError = 1

var (
	flagFormat string
	flagSort   string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worldcup-dashboard",
		Short: "Serve an interactive dashboard of FIFA World Cup finals",
		Long: `Scrapes the list of FIFA World Cup finals, counts titles per country
and serves a dashboard with a map of wins and lookups by country and year.

The listening port is taken from the PORT environment variable (default 8050).`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	cmd.AddCommand(newSummaryCmd())

	return cmd
}

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print win counts and finals without starting the server",
		RunE:  runSummary,
	}

	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagSort, "sort", "wins", "Win count order: wins or country")

	return cmd
}

// runServe loads the data and serves the dashboard until SIGINT or SIGTERM
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(logger.ParseLevel(cfg.LogLevel), os.Stdout)
	logger.SetDefault(log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec := metrics.NewRecorder()
	dash, err := loadDashboard(ctx, cfg, rec)
	if err != nil {
		log.Error("startup failed", logger.Fields{"source": cfg.SourceURL}, err)
		return err
	}

	srv, err := server.New(dash, log, rec)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return srv.Run(ctx, cfg.Addr())
}

// runSummary loads the data and prints it
func runSummary(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	order := SortOrder(strings.ToLower(flagSort))
	if order != SortByWins && order != SortByCountry {
		return fmt.Errorf("invalid sort: %s (must be 'wins' or 'country')", flagSort)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Logs go to stderr so stdout stays parseable
	log := logger.New(logger.ParseLevel(cfg.LogLevel), os.Stderr)
	logger.SetDefault(log)

	dash, err := loadDashboard(cmd.Context(), cfg, nil)
	if err != nil {
		return err
	}

	wins := dash.Ranked()
	sortWins(wins, order)

	result := &OutputResult{
		GeneratedAt: time.Now().UTC(),
		Source:      cfg.SourceURL,
		Wins:        wins,
		Finals:      dash.Records(),
		FinalsCount: len(dash.Records()),
	}

	if err := WriteOutput(cmd.OutOrStdout(), result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// loadDashboard runs the one-time fetch, normalize and aggregate pipeline
func loadDashboard(ctx context.Context, cfg config.Config, rec *metrics.Recorder) (*dashboard.Context, error) {
	sc := scraper.NewWithOptions(scraper.Options{
		URL:        cfg.SourceURL,
		Timeout:    cfg.FetchTimeout,
		TableIndex: cfg.TableIndex,
	})

	logger.Info("fetching finals", logger.Fields{"url": sc.URL(), "table_index": cfg.TableIndex})

	start := time.Now()
	dash, err := dashboard.Load(ctx, sc, dashboard.ThemeByName(cfg.Theme))
	if err != nil {
		return nil, err
	}
	took := time.Since(start)

	countries := len(dash.Countries())
	records := len(dash.Records())
	if rec != nil {
		rec.ObserveLoad(records, countries, took)
	}

	logger.Info("finals loaded", logger.Fields{
		"records":     records,
		"countries":   countries,
		"duration_ms": took.Milliseconds(),
		"theme":       dash.Theme().Name,
	})
	if records == 0 {
		logger.Warn("finals table has no played finals", logger.Fields{"url": sc.URL()})
	}

	return dash, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
