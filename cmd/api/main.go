package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"library-circulation/config"
	_ "library-circulation/docs" // Swagger docs
	catalogJSON "library-circulation/internal/catalog/jsonfile"
	"library-circulation/internal/httpserver"
	identityJSON "library-circulation/internal/identity/jsonfile"
	loanRepo "library-circulation/internal/loan/repository"
	memoryRepo "library-circulation/internal/loan/repository/memory"
	sqliteRepo "library-circulation/internal/loan/repository/sqlite"
	"library-circulation/internal/loan/usecase"
	"library-circulation/pkg/log"
)

// @title       Library Circulation API
// @description Book checkout, return and renewal service with loan history and catalog status.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Library Circulation...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Catalog source: %s", cfg.Catalog.BooksPath)
	logger.Infof(ctx, "Ledger driver: %s", cfg.Ledger.Driver)

	// 3. Read-side providers
	catalog := catalogJSON.New(cfg.Catalog.BooksPath, logger)
	identity := identityJSON.New(cfg.Identity.UsersPath, logger)

	// 4. Loan ledger
	var repo loanRepo.Repository
	switch cfg.Ledger.Driver {
	case config.LedgerDriverSQLite:
		ledger, err := sqliteRepo.Open(ctx, cfg.Ledger.SQLitePath, logger)
		if err != nil {
			logger.Error(ctx, "Failed to open sqlite ledger: ", err)
			return
		}
		defer ledger.Close()
		repo = ledger
	default:
		repo = memoryRepo.New(logger)
	}

	// 5. UseCase
	loanUC := usecase.New(logger, repo, catalog, identity)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		LoanUseCase: loanUC,
		RateLimit:   cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
