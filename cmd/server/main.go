package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"group-ledger/internal/config"
	"group-ledger/internal/database"
	"group-ledger/internal/handlers"
	"group-ledger/internal/middleware"
	"group-ledger/internal/repositories"
	"group-ledger/internal/services"
)

func main() {
	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	fundRepo := repositories.NewFundRepository(db)
	depositRepo := repositories.NewDepositRepository(db)
	withdrawalRepo := repositories.NewWithdrawalRepository(db)
	transactionRepo := repositories.NewFundTransactionRepository(db)
	settingRepo := repositories.NewDepositSettingRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)

	// Services
	tokenService := services.NewTokenService(&cfg.JWT)
	metrics := services.NewPrometheusMetrics()
	notifier := services.NewLoggingNotificationSink(logger)
	ledgerService := services.NewLedgerService(
		fundRepo,
		depositRepo,
		withdrawalRepo,
		transactionRepo,
		auditRepo,
		notifier,
		metrics,
		logger,
	)
	settingsService := services.NewSettingsService(settingRepo, depositRepo, &cfg.Ledger, logger)

	// Handlers
	fundHandler := handlers.NewFundHandler(ledgerService)
	depositHandler := handlers.NewDepositHandler(ledgerService)
	withdrawalHandler := handlers.NewWithdrawalHandler(ledgerService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	auditHandler := handlers.NewAuditHandler(auditRepo)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"trace_id", middleware.GetTraceID(c),
			)
			return nil
		},
	}))
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	authed := api.Group("", middleware.RequireAuth(tokenService))
	managerOnly := middleware.RequireManager()

	// Funds
	authed.POST("/funds", fundHandler.CreateFund, managerOnly)
	authed.GET("/funds", fundHandler.ListFunds)
	authed.GET("/funds/:fundId", fundHandler.GetFund)
	authed.PUT("/funds/:fundId", fundHandler.RenameFund, managerOnly)
	authed.DELETE("/funds/:fundId", fundHandler.DeleteFund, managerOnly)
	authed.POST("/funds/transfer", fundHandler.TransferFunds, managerOnly)
	authed.GET("/funds/transactions", fundHandler.ListFundTransactions, managerOnly)

	// Deposits
	authed.POST("/deposits", depositHandler.SubmitDeposit)
	authed.GET("/deposits/mine", depositHandler.ListMyDeposits)
	authed.POST("/deposits/:depositId/review", depositHandler.ReviewDeposit, managerOnly)

	// Withdrawals
	authed.POST("/withdrawals", withdrawalHandler.RequestWithdrawal)
	authed.GET("/withdrawals/mine", withdrawalHandler.ListMyWithdrawals)
	authed.POST("/withdrawals/:withdrawalId/review", withdrawalHandler.ReviewWithdrawal, managerOnly)

	// Deposit settings
	authed.POST("/settings", settingsHandler.CreateSetting, managerOnly)
	authed.GET("/settings", settingsHandler.ListSettings)
	authed.GET("/settings/deposit-amount", settingsHandler.GetDepositAmount)
	authed.GET("/members/:memberId/month-statuses", settingsHandler.GetMonthStatuses)

	// Audit trail
	authed.GET("/audit-logs", auditHandler.ListAuditLogs, managerOnly)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(fundRepo, depositRepo, withdrawalRepo, tokenService)
		api.POST("/dev/token", devHandler.IssueToken)
		authed.POST("/dev/generate-sample-data", devHandler.GenerateSampleData)
		logger.Warn("development endpoints enabled")
	}

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr, "environment", cfg.Server.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("server stopped")
}
