package cmd

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"scrapefeed/adapter/httpfetch"
	"scrapefeed/adapter/memory"
	"scrapefeed/adapter/postgres"
	"scrapefeed/app"
	"scrapefeed/domain"
	"scrapefeed/internal/cache"
	"scrapefeed/internal/config"
	"scrapefeed/internal/db"
	"scrapefeed/internal/logger"
)

// sourceFlags registers the flags shared by every subcommand.
func sourceFlags(fset *flag.FlagSet, cfg *domain.Source) {
	fset.StringVar(&cfg.URL, "url", "", "page URL (required)")
	fset.StringVar(&cfg.ListSelector, "list", "", "list selector (XPath or CSS)")
	fset.StringVar(&cfg.TitleSelector, "title", "", "item title selector")
	fset.StringVar(&cfg.LinkSelector, "link", "", "item link selector")
	fset.StringVar(&cfg.ImageSelector, "image", "", "item image selector")
	fset.StringVar(&cfg.SearchWord, "word", "", "search word")
}

// buildSource wires store, fetcher, cache and source from the environment
// configuration. The returned cleanup releases the source and the backing
// connections.
func buildSource(cfg domain.Source) (*app.Source, func(), error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, nil, fmt.Errorf("--url is required")
	}
	env := config.Load()
	log, err := logger.New(env.LogLevel, env.LogFile)
	if err != nil {
		return nil, nil, err
	}

	var store domain.CacheStore
	var dbConn *sql.DB
	switch env.StoreDriver {
	case "postgres":
		dbConn, err = db.OpenDB(env)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		store = postgres.New(dbConn)
	case "memory", "":
		store = memory.New()
	default:
		return nil, nil, fmt.Errorf("unknown store driver: %s", env.StoreDriver)
	}
	if err := store.Ensure(context.Background()); err != nil {
		if dbConn != nil {
			dbConn.Close()
		}
		return nil, nil, err
	}

	fetcher := httpfetch.New(env.FetchTimeout)
	src, err := app.NewSource(cfg, cache.New(store, fetcher, env.CacheTTL, log), log)
	if err != nil {
		if dbConn != nil {
			dbConn.Close()
		}
		return nil, nil, err
	}

	cleanup := func() {
		if err := src.Close(); err != nil {
			log.Warn("source close", zap.Error(err))
		}
		if dbConn != nil {
			dbConn.Close()
		}
		_ = log.Sync()
	}
	return src, cleanup, nil
}
