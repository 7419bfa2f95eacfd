// Package cmd implements the CLI application to analyze a portfolio of trades.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/etnz/prysm"
	"github.com/etnz/prysm/config"
	"github.com/etnz/prysm/store"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&importCmd{}, "portfolio")
	c.Register(&clearCmd{}, "portfolio")
	c.Register(&exportCmd{}, "portfolio")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&tradesCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&sectorsCmd{}, "reports")

	c.Register(&pricesCmd{}, "market")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "prysm.toml", "Path to the TOML configuration file")
var envFile = flag.String("env", ".env", "Path to the .env file")
var logLevel = flag.String("log-level", "", "Log level (debug, info, warn, error), overrides the configuration")

// app gathers what the subcommands need, built from the configuration.
type app struct {
	config *config.Config
	log    zerolog.Logger
	store  store.Store
	repo   *prysm.Repository
	lookup prysm.StaticLookup
}

// openApp loads the configuration and opens the portfolio repository.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(*configFile, *envFile)
	if err != nil {
		return nil, err
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	logger, err := newLogger(os.Stderr, cfg.Logging)
	if err != nil {
		return nil, err
	}

	lookup, err := openLookup(cfg.Market.PricesFile)
	if err != nil {
		return nil, err
	}

	s, err := store.Open(ctx, cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("driver", cfg.Storage.Driver).Str("path", cfg.Storage.Path).Msg("store opened")

	return &app{
		config: cfg,
		log:    logger,
		store:  s,
		repo:   prysm.NewRepository(s, logger),
		lookup: lookup,
	}, nil
}

// Close releases the store.
func (a *app) Close() error { return a.store.Close() }

// uploadLimits returns the configured limits for trade files.
func (a *app) uploadLimits() prysm.UploadLimits {
	return prysm.UploadLimits{MaxSize: a.config.Upload.MaxSize, Formats: a.config.Upload.Formats}
}

// newLogger creates the structured logger writing to w.
func newLogger(w io.Writer, c config.LoggingConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	switch c.Format {
	case "json":
	case "console", "":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q, want console or json", c.Format)
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// openLookup reads the price table from path, or returns the demo table if path is empty.
func openLookup(path string) (prysm.StaticLookup, error) {
	if path == "" {
		return prysm.DemoLookup(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open prices file: %w", err)
	}
	defer f.Close()
	lookup, err := prysm.DecodeLookup(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read prices file %q: %w", path, err)
	}
	return lookup, nil
}

// errNoData is returned by loadData when nothing has been imported yet.
var errNoData = errors.New("no portfolio data, import a trades file first with 'prysm import'")

// loadData opens the application and loads the saved snapshot.
// It warns on stderr about stale snapshots.
func loadData(ctx context.Context) (*app, *prysm.PortfolioData, error) {
	a, err := openApp(ctx)
	if err != nil {
		return nil, nil, err
	}
	loaded, err := a.repo.Load(ctx)
	if err != nil {
		a.Close()
		return nil, nil, err
	}
	if loaded.Data == nil {
		a.Close()
		return nil, nil, errNoData
	}
	if loaded.Stale {
		fmt.Fprintf(os.Stderr, "Warning: portfolio data was imported on %s and may be outdated\n", loaded.SavedAt.Format(time.DateOnly))
	}
	return a, loaded.Data, nil
}

// load is loadData for subcommands: errors are printed, and the status is
// ExitSuccess only if the data is usable.
func load(ctx context.Context) (*app, *prysm.PortfolioData, subcommands.ExitStatus) {
	a, data, err := loadData(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return nil, nil, subcommands.ExitFailure
	}
	return a, data, subcommands.ExitSuccess
}
