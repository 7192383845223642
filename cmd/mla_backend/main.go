package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/finadmin/manual_ledger_app/cmd/docs"
	portsrepo "github.com/finadmin/manual_ledger_app/internal/core/ports/repositories"
	"github.com/finadmin/manual_ledger_app/internal/core/services"
	"github.com/finadmin/manual_ledger_app/internal/handlers"
	"github.com/finadmin/manual_ledger_app/internal/middleware"
	"github.com/finadmin/manual_ledger_app/internal/repositories/kvstore/file"
	"github.com/finadmin/manual_ledger_app/internal/repositories/kvstore/pgsql"
	"github.com/finadmin/manual_ledger_app/pkg/config"
	"github.com/finadmin/manual_ledger_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Manual Ledger Backend API
// @version 1.0
// @description Records manual deposit/withdrawal adjustments against user accounts and maintains the append-only transaction ledger.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// Select the collection store backend: PostgreSQL when a database URL is
	// configured, the JSON file store otherwise.
	var store portsrepo.CollectionStore
	if cfg.DatabaseURL != "" {
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")

		if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
			os.Exit(1)
		}

		store = pgsql.NewStore(dbPool)
	} else {
		fileStore, err := file.NewStore(cfg.DataDir)
		if err != nil {
			logger.Error("Failed to initialize file store", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("File store initialized", slog.String("dir", cfg.DataDir))
		store = fileStore
	}

	// Core services: registry and ledger restore their state from the store
	// at startup; read failures fall back to defaults and never abort here.
	registryService := services.NewRegistryService(ctx, store)
	ledgerService := services.NewLedgerService(ctx, store, registryService)
	reportingService := services.NewReportingService(ledgerService)
	exportService := services.NewExportService(ledgerService)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS for the browser admin panel)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.GET("/health", handlers.GetHealth)

	setupAPIV1Routes(r, cfg, registryService, ledgerService, reportingService, exportService, logger)
	setupSwaggerRoutes(r, cfg)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	// Open a temporary standard sql.DB connection for migrations, using the
	// pgx stdlib driver to stay compatible with the main pool.
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

func setupAPIV1Routes(r *gin.Engine, cfg *config.Config,
	registryService *services.RegistryService,
	ledgerService *services.LedgerService,
	reportingService *services.ReportingService,
	exportService *services.ExportService,
	logger *slog.Logger,
) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Warn("Invalid RATE_LIMIT, falling back to 60-M", slog.String("value", cfg.RateLimit))
		rate, _ = limiter.NewRateFromFormatted("60-M")
	}
	limiterInstance := limiter.New(limitermem.NewStore(), rate)

	v1 := r.Group("/api/v1", middleware.RateLimit(limiterInstance))

	addLedgerAPI(v1, ledgerService, exportService)
	addAccountAPI(v1, registryService)
	addReportingAPI(v1, reportingService)
}

func addLedgerAPI(v1 *gin.RouterGroup, ledgerService *services.LedgerService, exportService *services.ExportService) {
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)
	exportHandler := handlers.NewExportHandler(exportService)

	transactions := v1.Group("/transactions")
	{
		transactions.POST("", ledgerHandler.SubmitTransaction)
		transactions.GET("", ledgerHandler.ListTransactions)
		transactions.GET("/export", exportHandler.ExportTransactions)
	}
}

func addAccountAPI(v1 *gin.RouterGroup, registryService *services.RegistryService) {
	accountHandler := handlers.NewAccountHandler(registryService)

	accounts := v1.Group("/accounts")
	accounts.GET("", accountHandler.SearchAccounts)
}

func addReportingAPI(v1 *gin.RouterGroup, reportingService *services.ReportingService) {
	reportingHandler := handlers.NewReportingHandler(reportingService)

	v1.GET("/statistics", reportingHandler.GetStatistics)
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
