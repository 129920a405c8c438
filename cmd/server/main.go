package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/magtag-gateway/internal/config"
	"github.com/preston-bernstein/magtag-gateway/internal/logging"
	"github.com/preston-bernstein/magtag-gateway/internal/server"
	"github.com/preston-bernstein/magtag-gateway/internal/timeutil"
)

const (
	appName    = "magtag-gateway"
	appVersion = "dev"
)

// serve runs the gateway until ctx is cancelled; tests swap it out.
var serve = func(ctx context.Context, stop context.CancelFunc, cfg config.Config, logger *slog.Logger) {
	server.New(cfg, logger).Run(ctx, stop)
}

type flags struct {
	team       int
	port       int
	todayFile  string
	nextFile   string
	eventsFile string
	verbose    bool
}

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:          appName,
		Short:        "Serve next-up game payloads for an e-ink display",
		Version:      appVersion,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := applyFlags(config.Load(), f)
			logger := logging.NewLogger(logging.Config{
				Level:   cfg.Logging.Level,
				Format:  cfg.Logging.Format,
				File:    cfg.Logging.File,
				Service: appName,
				Version: appVersion,
			})

			logClocks(logger, time.Now(), timeutil.LoadLocation(cfg.VenueTimezone))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			serve(ctx, stop, cfg, logger)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&f.team, "team", 0, "default team id (overrides TEAM_ID)")
	fs.IntVar(&f.port, "port", 0, "listen port (overrides PORT)")
	fs.StringVar(&f.todayFile, "today-file", "", "serve today's schedule from a saved stats API document")
	fs.StringVar(&f.nextFile, "next-file", "", "serve the next game from a saved stats API document")
	fs.StringVar(&f.eventsFile, "events-file", "", "YAML list of dated events to consider alongside games")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log at debug level")
	return cmd
}

// applyFlags layers command line flags over the environment config.
func applyFlags(cfg config.Config, f flags) config.Config {
	if f.team > 0 {
		cfg.TeamID = f.team
	}
	if f.port > 0 {
		cfg.Port = strconv.Itoa(f.port)
	}
	if f.todayFile != "" || f.nextFile != "" {
		cfg.UseFixtureFiles(f.todayFile, f.nextFile)
	}
	if f.eventsFile != "" {
		cfg.Events.File = f.eventsFile
	}
	if f.verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg
}

func logClocks(logger *slog.Logger, now time.Time, venue *time.Location) {
	if logger == nil {
		return
	}
	logger.Info("clocks at startup",
		slog.String("utc", now.UTC().Format(time.RFC3339)),
		slog.String("local", now.Local().Format(time.RFC3339)),
		slog.String("venue", now.In(venue).Format(time.RFC3339)),
		slog.String("venue_zone", venue.String()),
	)
}
