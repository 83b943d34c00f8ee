package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/smartretail/backend/internal/application/catalog"
	financeapp "github.com/smartretail/backend/internal/application/finance"
	reportapp "github.com/smartretail/backend/internal/application/report"
	salesapp "github.com/smartretail/backend/internal/application/sales"
	"github.com/smartretail/backend/internal/infrastructure/config"
	"github.com/smartretail/backend/internal/infrastructure/event"
	"github.com/smartretail/backend/internal/infrastructure/logger"
	"github.com/smartretail/backend/internal/infrastructure/persistence"
	"github.com/smartretail/backend/internal/interfaces/http/handler"
	"github.com/smartretail/backend/internal/interfaces/http/middleware"
	"github.com/smartretail/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer func() { _ = log.Sync() }()

	log.Info("starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("driver", cfg.Database.Driver),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	if err := db.Migrate(); err != nil {
		log.Fatal("failed to migrate schema", zap.Error(err))
	}

	// Repositories
	itemRepo := persistence.NewGormItemRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseBudgetRepository(db.DB)

	// Mutation journal
	journal := event.NewJournal(db.DB, log)

	// Application services
	itemService := catalogapp.NewItemService(itemRepo, journal)
	salesService := salesapp.NewSalesService(saleRepo, itemRepo, journal)
	expenseService := financeapp.NewExpenseService(expenseRepo, journal)
	metricsService := reportapp.NewMetricsService(itemRepo, expenseRepo)
	analysisService := reportapp.NewAnalysisService(metricsService)

	ctx := context.Background()
	if err := expenseService.SeedDefaults(ctx); err != nil {
		log.Fatal("failed to seed default expense budget", zap.Error(err))
	}

	// HTTP engine and middleware
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORS(cfg.HTTP.CORSAllowOrigins),
		middleware.SecurityHeaders(),
		middleware.BodySizeLimit(cfg.HTTP.MaxBodySize),
	)

	router.NewRouter(engine).
		Register(handler.NewInventoryHandler(itemService)).
		Register(handler.NewSalesHandler(salesService)).
		Register(handler.NewExpenseHandler(expenseService)).
		Register(handler.NewDashboardHandler(metricsService)).
		Register(handler.NewAnalysisHandler(analysisService)).
		Register(handler.NewJournalHandler(journal)).
		Register(handler.NewSystemHandler(db, cfg.App.Name)).
		Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
