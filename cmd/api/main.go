package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	carrierStore "github.com/MrJamesThe3rd/commissions/internal/carrier/store"
	"github.com/MrJamesThe3rd/commissions/internal/category"
	categoryStore "github.com/MrJamesThe3rd/commissions/internal/category/store"
	"github.com/MrJamesThe3rd/commissions/internal/config"
	"github.com/MrJamesThe3rd/commissions/internal/database"
	"github.com/MrJamesThe3rd/commissions/internal/filestore"
	commissionsHttp "github.com/MrJamesThe3rd/commissions/internal/http"
	"github.com/MrJamesThe3rd/commissions/internal/http/carriers"
	"github.com/MrJamesThe3rd/commissions/internal/http/categories"
	"github.com/MrJamesThe3rd/commissions/internal/http/imports"
	"github.com/MrJamesThe3rd/commissions/internal/http/leaderboard"
	"github.com/MrJamesThe3rd/commissions/internal/http/overrides"
	txHandler "github.com/MrJamesThe3rd/commissions/internal/http/transaction"
	"github.com/MrJamesThe3rd/commissions/internal/ingest"
	ingestStore "github.com/MrJamesThe3rd/commissions/internal/ingest/store"
	"github.com/MrJamesThe3rd/commissions/internal/mapping"
	mappingStore "github.com/MrJamesThe3rd/commissions/internal/mapping/store"
	"github.com/MrJamesThe3rd/commissions/internal/override"
	overrideStore "github.com/MrJamesThe3rd/commissions/internal/override/store"
	"github.com/MrJamesThe3rd/commissions/internal/producer"
	producerStore "github.com/MrJamesThe3rd/commissions/internal/producer/store"
	"github.com/MrJamesThe3rd/commissions/internal/report"
	reportStore "github.com/MrJamesThe3rd/commissions/internal/report/store"
	"github.com/MrJamesThe3rd/commissions/internal/statement"
	"github.com/MrJamesThe3rd/commissions/internal/transaction"
	txStore "github.com/MrJamesThe3rd/commissions/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cfg.App.LogLevel)}))
	slog.SetDefault(logger)

	if cfg.Auth.JWTSecret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.ConnectionString(), database.Options{
		MaxOpenConns: cfg.DB.MaxOpenConns,
		MaxIdleConns: cfg.DB.MaxIdleConns,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Migrate.OnStart {
		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	files, err := filestore.Open(ctx, cfg.Upload.Backend, cfg.Upload.Dir, cfg.Upload.Bucket)
	if err != nil {
		slog.Error("failed to open file store", "error", err)
		os.Exit(1)
	}
	defer files.Close()

	ingestService, err := newIngestService(db, cfg, files, logger)
	if err != nil {
		slog.Error("failed to build ingest service", "error", err)
		os.Exit(1)
	}

	var (
		categoryService    = category.NewService(categoryStore.New(db))
		transactionService = transaction.NewService(txStore.New(db), categoryService)
		overrideService    = override.NewService(overrideStore.New(db), logger)
		mappingService     = mapping.NewService(mappingStore.New(db))
		reportService      = report.NewService(reportStore.New(db))
	)

	router := commissionsHttp.New(commissionsHttp.Handlers{
		Imports:      imports.NewHandler(ingestService, cfg.Upload.MaxBytes),
		Overrides:    overrides.NewHandler(overrideService),
		Transactions: txHandler.NewHandler(transactionService, overrideService),
		Categories:   categories.NewHandler(categoryService),
		Carriers:     carriers.NewHandler(carrierStore.New(db), mappingService),
		Leaderboard:  leaderboard.NewHandler(reportService),
	}, commissionsHttp.Options{
		JWTSecret:      []byte(cfg.Auth.JWTSecret),
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "name", cfg.App.Name, "port", srv.Addr)

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func newIngestService(db *sql.DB, cfg *config.Config, files ingest.FileStore, logger *slog.Logger) (*ingest.Service, error) {
	var aliases map[statement.Field][]string

	if cfg.Import.AliasFile != "" {
		var err error

		aliases, err = statement.LoadAliases(cfg.Import.AliasFile)
		if err != nil {
			return nil, err
		}
	}

	return ingest.NewService(
		ingestStore.New(db),
		producer.NewService(producerStore.New(db)),
		mapping.NewService(mappingStore.New(db)),
		files,
		ingest.NewLogNotifier(logger),
		statement.NewResolver(aliases),
		logger,
	), nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	return slog.LevelInfo
}
