package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/meridian-erp/meridian-erp/internal/app"
	"github.com/meridian-erp/meridian-erp/internal/invoicing"
	"github.com/meridian-erp/meridian-erp/internal/ledgers"
	"github.com/meridian-erp/meridian-erp/internal/platform/cache"
	"github.com/meridian-erp/meridian-erp/internal/platform/db"
	"github.com/meridian-erp/meridian-erp/internal/products"
	"github.com/meridian-erp/meridian-erp/internal/reports"
	reportshttp "github.com/meridian-erp/meridian-erp/internal/reports/http"
	"github.com/meridian-erp/meridian-erp/internal/shared"
	"github.com/meridian-erp/meridian-erp/internal/vouchers"
	"github.com/meridian-erp/meridian-erp/jobs"
)

// ledgerDirectory adapts the ledger service to the name lookup the voucher
// journal denormalizes from.
type ledgerDirectory struct {
	service *ledgers.Service
}

func (d ledgerDirectory) LedgerName(ctx context.Context, id uuid.UUID) (string, bool) {
	ledger, err := d.service.Get(ctx, id)
	if err != nil {
		return "", false
	}
	return ledger.Name, true
}

func main() {
	_ = godotenv.Load()

	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN, cfg.PGMaxConns)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	var redisClient *redis.Client
	if client, err := cache.New(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		logger.Warn("redis unavailable, report caching disabled", slog.Any("error", err))
	} else {
		redisClient = client
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
	}

	auditLogger := shared.NewAuditLogger(pool)
	reportCache := reports.NewCache(redisClient, cfg.ReportCacheTTL)

	voucherRepo := vouchers.NewRepository(pool)
	ledgerRepo := ledgers.NewRepository(pool)
	ledgerService := ledgers.NewService(ledgerRepo, voucherRepo, auditLogger)
	voucherService := vouchers.NewService(voucherRepo, ledgerDirectory{service: ledgerService}, auditLogger, reportCache)

	// The seeder is a no-op once the registry holds any ledger.
	if created, err := ledgerService.SeedDefaultChartOfAccounts(ctx, cfg.BusinessName); err != nil {
		logger.Warn("seed chart of accounts", slog.Any("error", err))
	} else if created > 0 {
		logger.Info("seeded default chart of accounts", slog.Int("ledgers", created))
	}

	productRepo := products.NewRepository(pool)
	productService := products.NewService(productRepo, auditLogger)

	invoiceRepo := invoicing.NewRepository(pool)
	invoiceService := invoicing.NewService(invoiceRepo, productService, ledgerService, voucherService, auditLogger)

	reportService := reports.NewService(ledgerService, voucherService, invoicing.NewTaxFeed(invoiceRepo), reportCache)

	ledgersHandler := ledgers.NewHandler(logger, ledgerService)
	vouchersHandler := vouchers.NewHandler(logger, voucherService)
	productsHandler := products.NewHandler(logger, productService)
	invoicingHandler := invoicing.NewHandler(logger, invoiceService)
	reportsHandler := reportshttp.NewHandler(logger, reportService)

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()
	jobsHandler := jobs.NewHandler(inspector, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		Pool:             pool,
		LedgersHandler:   ledgersHandler,
		VouchersHandler:  vouchersHandler,
		ProductsHandler:  productsHandler,
		InvoicingHandler: invoicingHandler,
		ReportsHandler:   reportsHandler,
		JobsHandler:      jobsHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
