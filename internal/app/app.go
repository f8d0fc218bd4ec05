package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/footballhub/matchday/external/espn"
	"github.com/footballhub/matchday/internal/config"
	"github.com/footballhub/matchday/internal/domain/match"
	"github.com/footballhub/matchday/internal/domain/stats"
	"github.com/footballhub/matchday/internal/infrastructure/repository/memory"
	"github.com/footballhub/matchday/internal/infrastructure/repository/postgres"
	"github.com/footballhub/matchday/internal/interfaces/httpapi"
	"github.com/footballhub/matchday/internal/platform/cache"
	"github.com/footballhub/matchday/internal/platform/logging"
	"github.com/footballhub/matchday/internal/platform/resilience"
	"github.com/footballhub/matchday/internal/usecase"
)

// App bundles the HTTP server with the background ingestion scheduler so
// cmd/api can start and stop both together.
type App struct {
	Server    *http.Server
	Scheduler *usecase.Scheduler

	db     *sqlx.DB
	logger *logging.Logger
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	matchRepo, statsRepo, db, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	scoreboardClient := espn.NewClient(espn.ClientConfig{
		BaseURL:    cfg.ScoreboardBaseURL,
		Timeout:    cfg.ScoreboardTimeout,
		MaxRetries: cfg.ScoreboardMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ScoreboardCircuitEnabled,
			FailureThreshold: cfg.ScoreboardCircuitFailureCount,
			OpenTimeout:      cfg.ScoreboardCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ScoreboardCircuitHalfOpenMaxReq,
		},
	})

	ingestService := usecase.NewIngestService(scoreboardClient, matchRepo, store, usecase.IngestConfig{
		Competitions:       cfg.CompetitionNameByCode,
		TrailingWindowDays: cfg.TrailingWindowDays,
		LeadingWindowDays:  cfg.LeadingWindowDays,
		LiveWindow:         cfg.LiveWindow,
		Workers:            cfg.IngestWorkers,
		SeasonLabel:        cfg.SeasonLabel,
	}, logger)

	matchService := usecase.NewMatchService(matchRepo, store, logger)
	predictionService := usecase.NewPredictionService(nil)
	statsService := usecase.NewStatsService(statsRepo, logger)

	handler := httpapi.NewHandler(matchService, predictionService, statsService, ingestService, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	scheduler := usecase.NewScheduler("scoreboard-ingest", cfg.ScrapeInterval, func(ctx context.Context) error {
		_, err := ingestService.Run(ctx)
		return err
	}, logger)

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		Scheduler: scheduler,
		db:        db,
		logger:    logger,
	}, nil
}

// Close releases the database pool. Safe to call after server shutdown.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (match.Repository, stats.Repository, *sqlx.DB, error) {
	if useMemoryStore(cfg.DBURL) {
		logger.Warn("running with in-memory repositories, data will not survive restarts")
		return memory.NewMatchRepository(), memory.NewStatsRepository(), nil, nil
	}

	db, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
	)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, nil, nil, fmt.Errorf("ping database %q: %w", dbNameFromURL(cfg.DBURL), err)
	}

	return postgres.NewMatchRepository(db), postgres.NewStatsRepository(db), db, nil
}

func useMemoryStore(dbURL string) bool {
	trimmed := strings.TrimSpace(dbURL)
	return trimmed == "" || strings.EqualFold(trimmed, "memory") || strings.HasPrefix(trimmed, "memory://")
}
