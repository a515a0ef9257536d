package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sak2803shi/RentalHub/internal/payment/config"
	"github.com/Sak2803shi/RentalHub/internal/payment/handler"
	"github.com/Sak2803shi/RentalHub/internal/payment/repository"
	"github.com/Sak2803shi/RentalHub/internal/payment/router"
	"github.com/Sak2803shi/RentalHub/internal/payment/usecase"
	"github.com/Sak2803shi/RentalHub/pkg/client"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("database unreachable", zap.Error(err))
	}

	rental := client.New(cfg.RentalBaseURL, cfg.ClientTimeout, logger)
	payments := repository.NewPaymentRepository(pool)
	paymentUC := usecase.NewPaymentUsecase(payments, rental, logger)
	paymentHandler := handler.NewPaymentHandler(paymentUC, logger)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router.New(paymentHandler, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("payment service listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		os.Exit(1)
	}
}
