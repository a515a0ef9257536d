package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sak2803shi/RentalHub/internal/rental/config"
	"github.com/Sak2803shi/RentalHub/internal/rental/handler"
	"github.com/Sak2803shi/RentalHub/internal/rental/repository"
	"github.com/Sak2803shi/RentalHub/internal/rental/router"
	"github.com/Sak2803shi/RentalHub/internal/rental/service"
	"github.com/Sak2803shi/RentalHub/pkg/jwtutil"
	"github.com/Sak2803shi/RentalHub/pkg/middleware"
	"github.com/Sak2803shi/RentalHub/pkg/session"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
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

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
	})
	var sessions *session.Store
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, session revocation disabled", zap.Error(err))
	} else {
		sessions = session.NewStore(rdb)
	}

	jwtMgr := jwtutil.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	users := repository.NewUserRepository(pool)
	owners := repository.NewOwnerRepository(pool)
	agents := repository.NewAgentRepository(pool)
	customers := repository.NewCustomerRepository(pool)
	properties := repository.NewPropertyRepository(pool)
	appointments := repository.NewAppointmentRepository(pool)
	leases := repository.NewLeaseRepository(pool)

	authSvc := service.NewAuthService(users, jwtMgr, sessions, logger)
	ownerSvc := service.NewOwnerService(owners, logger)
	agentSvc := service.NewAgentService(agents, logger)
	propertySvc := service.NewPropertyService(properties, owners, agents, logger)
	appointmentSvc := service.NewAppointmentService(appointments, properties, customers, owners, agents, logger)
	leaseSvc := service.NewLeaseService(leases, properties, customers, owners, logger)
	customerSvc := service.NewCustomerService(customers, appointmentSvc, leaseSvc, propertySvc, logger)
	adminSvc := service.NewAdminService(users, ownerSvc, agentSvc, customerSvc, logger)

	if err := authSvc.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Fatal("failed to seed admin account", zap.Error(err))
	}

	authMw := middleware.NewAuthMiddleware(jwtMgr, sessions, logger)

	handlers := router.Handlers{
		Auth:        handler.NewAuthHandler(authSvc, logger),
		Owner:       handler.NewOwnerHandler(ownerSvc, logger),
		Agent:       handler.NewAgentHandler(agentSvc, logger),
		Customer:    handler.NewCustomerHandler(customerSvc, logger),
		Admin:       handler.NewAdminHandler(adminSvc, logger),
		Property:    handler.NewPropertyHandler(propertySvc, logger),
		Appointment: handler.NewAppointmentHandler(appointmentSvc, logger),
		Lease:       handler.NewLeaseHandler(leaseSvc, logger),
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router.New(handlers, authMw, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("rental service listening", zap.String("addr", cfg.HTTPAddr))
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
