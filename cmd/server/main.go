package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/compras/backend/internal/application/catalog"
	identityapp "github.com/compras/backend/internal/application/identity"
	ledgerapp "github.com/compras/backend/internal/application/ledger"
	partnerapp "github.com/compras/backend/internal/application/partner"
	purchasingapp "github.com/compras/backend/internal/application/purchasing"
	"github.com/compras/backend/internal/domain/identity"
	"github.com/compras/backend/internal/domain/ledger"
	"github.com/compras/backend/internal/domain/pricing"
	"github.com/compras/backend/internal/infrastructure/auth"
	"github.com/compras/backend/internal/infrastructure/config"
	"github.com/compras/backend/internal/infrastructure/logger"
	"github.com/compras/backend/internal/infrastructure/persistence"
	"github.com/compras/backend/internal/interfaces/http/handler"
	"github.com/compras/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting purchase ledger backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	accountRepo := persistence.NewGormBankAccountRepository(db.DB)
	categoryRepo := persistence.NewGormPriceCategoryRepository(db.DB)
	adjustmentRepo := persistence.NewGormPriceAdjustmentRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	purchaseRepo := persistence.NewGormPurchaseRepository(db.DB)
	entryRepo := persistence.NewGormLedgerEntryRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Domain services
	categoryResolver := pricing.NewCategoryResolver(categoryRepo)
	priceResolver := pricing.NewPriceResolver(adjustmentRepo)
	balanceCalc := ledger.NewBalanceCalculator(entryRepo)
	jwtService := auth.NewJWTService(cfg.JWT)

	// Application services
	supplierService := partnerapp.NewSupplierService(supplierRepo, purchaseRepo, balanceCalc)
	accountService := partnerapp.NewBankAccountService(accountRepo, supplierRepo)
	categoryService := partnerapp.NewCategoryService(categoryRepo, adjustmentRepo, productRepo, supplierRepo)
	productService := catalogapp.NewProductService(productRepo)
	purchaseService := purchasingapp.NewPurchaseService(
		purchaseRepo, entryRepo, supplierRepo, productRepo, accountRepo,
		categoryResolver, priceResolver, balanceCalc, txScope,
	)
	ledgerService := ledgerapp.NewLedgerService(entryRepo, supplierRepo, balanceCalc)
	authService := identityapp.NewAuthService(userRepo, jwtService)

	// The shared fallback category must exist before any purchase can
	// resolve prices.
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if _, err := categoryService.EnsureSystemDefault(seedCtx); err != nil {
		cancelSeed()
		log.Fatal("Failed to ensure system default category", zap.Error(err))
	}
	cancelSeed()

	// HTTP layer
	r := router.New(cfg, db, jwtService, log)

	authHandler := handler.NewAuthHandler(authService)
	r.Register(
		handler.NewSupplierHandler(supplierService, accountService, categoryService),
		handler.NewBankAccountHandler(accountService),
		handler.NewCategoryHandler(categoryService),
		handler.NewProductHandler(productService),
		handler.NewPurchaseHandler(purchaseService),
		handler.NewLedgerHandler(ledgerService),
		authHandler,
	)
	authHandler.RegisterUserRoutes(r.AdminGroup(string(identity.RoleAdmin)))

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        r.Engine(),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
