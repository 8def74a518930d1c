package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	logger_adapter "github.com/aravasio/open-remax/internal/adapters/logger"
	postgres_adapter "github.com/aravasio/open-remax/internal/adapters/postgres"
	"github.com/aravasio/open-remax/internal/adapters/remaxfetcher"
	"github.com/aravasio/open-remax/internal/configs"
	"github.com/aravasio/open-remax/internal/constants"
	"github.com/aravasio/open-remax/internal/contextkeys"
	"github.com/aravasio/open-remax/internal/core/domain"
	"github.com/aravasio/open-remax/internal/core/port"
	usecases_port "github.com/aravasio/open-remax/internal/core/port/usecases"
	"github.com/aravasio/open-remax/internal/core/usecase"
	fluentlogger "github.com/aravasio/open-remax/pkg/fluent_logger"
	"github.com/aravasio/open-remax/pkg/postgres"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App wires the adapters and use cases together.
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	storageRepo port.ListingStoragePort
	acquireUC   usecases_port.AcquireListingsPort
}

// NewApp is the composition root: every dependency is created and
// connected here, nowhere else.
func NewApp(ctx context.Context) (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	dbPool, err := postgres.NewClient(ctx, postgres.Config{DatabaseURL: appConfig.Postgres.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool", nil)

	storageAdapter, err := postgres_adapter.NewListingStorageAdapter(dbPool)
	if err != nil {
		appLogger.Error("Failed to create listing storage adapter", err, nil)
		dbPool.Close()
		return nil, err
	}
	if err := storageAdapter.EnsureSchema(ctx); err != nil {
		appLogger.Error("Failed to ensure listing schema", err, nil)
		dbPool.Close()
		return nil, err
	}
	appLogger.Info("Listing storage initialized", nil)

	filters := domain.SearchFilters{
		OperationID:   constants.OperationBuy,
		TypeIDs:       constants.AllPropertyTypes,
		CurrencyID:    constants.CurrencyUSD,
		MinPrice:      constants.DefaultMinPrice,
		MaxPrice:      constants.DefaultMaxPrice,
		Neighborhoods: appConfig.Remax.Neighborhoods,
		SortBy:        constants.SortByPriceDesc,
		PageSize:      appConfig.Remax.PageSize,
	}
	remaxAdapter, err := remaxfetcher.NewRemaxFetcherAdapter(
		appConfig.Remax.BaseURL,
		filters,
		appConfig.Remax.ChunkSize,
	)
	if err != nil {
		appLogger.Error("Failed to create Remax Fetcher Adapter", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to initialize remax fetcher: %w", err)
	}
	appLogger.Info("Remax Fetcher Adapter initialized", port.Fields{
		"base_url": appConfig.Remax.BaseURL, "page_size": filters.PageSize,
	})

	discoverUC := usecase.NewDiscoverSlugsUseCase(remaxAdapter)
	detailsUC := usecase.NewFetchDetailsUseCase(remaxAdapter, appConfig.Remax.ChunkSize)
	acquireUC := usecase.NewAcquireListingsUseCase(discoverUC, detailsUC, storageAdapter)
	appLogger.Info("All use cases initialized", nil)

	return &App{
		config:       appConfig,
		dbPool:       dbPool,
		fluentClient: fluentClient,
		logger:       appLogger,
		storageRepo:  storageAdapter,
		acquireUC:    acquireUC,
	}, nil
}

// Run executes one acquisition run end to end, honoring SIGINT/SIGTERM.
func (a *App) Run(ctx context.Context) error {
	runCtx, cancelRun := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancelRun()

	runCtx = contextkeys.ContextWithLogger(runCtx, a.logger)
	runID := uuid.New()

	a.logger.Info("Acquisition run starting", port.Fields{"run_id": runID.String()})

	report, err := a.acquireUC.Execute(runCtx, runID)
	if err != nil {
		a.logger.Error("Acquisition run failed", err, port.Fields{"run_id": runID.String()})
		return err
	}

	for _, skipped := range report.Skipped {
		a.logger.Warn("Listing skipped", port.Fields{
			"slug": string(skipped.Slug), "reason": skipped.Reason,
		})
	}
	a.logger.Info("Acquisition run complete", port.Fields{
		"run_id":           report.RunID.String(),
		"slugs_discovered": report.SlugsDiscovered,
		"details_fetched":  report.DetailsFetched,
		"new_listings":     report.NewListings,
		"skipped":          len(report.Skipped),
	})
	return nil
}

// ClearListings wipes the listing table. Maintenance entry point,
// behind an explicit CLI flag.
func (a *App) ClearListings(ctx context.Context) error {
	a.logger.Warn("Clearing all stored listings", nil)
	if err := a.storageRepo.Clear(ctx); err != nil {
		a.logger.Error("Failed to clear listings", err, nil)
		return err
	}
	a.logger.Info("Listing table cleared", nil)
	return nil
}

// Close releases the shared resources. Safe to call once, after Run.
func (a *App) Close() {
	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("PostgreSQL pool closed", nil)
	}
	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			log.Printf("App: error closing fluent client: %v\n", err)
		}
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
