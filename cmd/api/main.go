package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shrihari6/medflow-nova/internal/config"
	authhandler "github.com/Shrihari6/medflow-nova/internal/handler/auth"
	billinghandler "github.com/Shrihari6/medflow-nova/internal/handler/billing"
	dashboardhandler "github.com/Shrihari6/medflow-nova/internal/handler/dashboard"
	directoryhandler "github.com/Shrihari6/medflow-nova/internal/handler/directory"
	navigationhandler "github.com/Shrihari6/medflow-nova/internal/handler/navigation"
	patienthandler "github.com/Shrihari6/medflow-nova/internal/handler/patient"
	"github.com/Shrihari6/medflow-nova/internal/handler"
	"github.com/Shrihari6/medflow-nova/internal/middleware"
	"github.com/Shrihari6/medflow-nova/internal/model"
	"github.com/Shrihari6/medflow-nova/internal/repository/postgres"
	"github.com/Shrihari6/medflow-nova/internal/router"
	authservice "github.com/Shrihari6/medflow-nova/internal/service/auth"
	billingservice "github.com/Shrihari6/medflow-nova/internal/service/billing"
	dashboardservice "github.com/Shrihari6/medflow-nova/internal/service/dashboard"
	directoryservice "github.com/Shrihari6/medflow-nova/internal/service/directory"
	patientservice "github.com/Shrihari6/medflow-nova/internal/service/patient"
	"github.com/Shrihari6/medflow-nova/pkg/auth"
	"github.com/Shrihari6/medflow-nova/pkg/logger"
	redisbroker "github.com/Shrihari6/medflow-nova/pkg/messaging/redis"
	"github.com/Shrihari6/medflow-nova/pkg/metrics"
	"github.com/Shrihari6/medflow-nova/pkg/security"
	"github.com/Shrihari6/medflow-nova/pkg/worker"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	log := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	staffRepo := postgres.NewStaffRepository(db)
	roomRepo := postgres.NewRoomRepository(db)
	billRepo := postgres.NewBillRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)

	// Services
	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)
	authSvc := authservice.NewService(userRepo, jwtSvc, hasher)
	patientSvc := patientservice.NewService(patientRepo, roomRepo, outboxRepo)
	directorySvc := directoryservice.NewService(doctorRepo, staffRepo)
	billingSvc := billingservice.NewService(billRepo)
	dashboardSvc := dashboardservice.NewService(patientRepo, doctorRepo, staffRepo, billRepo, dashboardservice.Config{
		CacheTTL: cfg.Dashboard.CacheTTL,
		RecentN:  cfg.Dashboard.RecentN,
	})

	if err := middleware.RegisterValidators(); err != nil {
		log.Fatal(err, "failed to register validators")
	}

	authMiddleware := middleware.NewAuthMiddleware(func(token string) (*model.Identity, error) {
		return authSvc.ValidateToken(context.Background(), token)
	})

	m := metrics.NewMetrics("medflow")

	r := router.NewRouter(
		authMiddleware,
		authhandler.NewHandler(authSvc),
		navigationhandler.NewHandler(),
		dashboardhandler.NewHandler(dashboardSvc),
		patienthandler.NewHandler(patientSvc, authMiddleware),
		directoryhandler.NewHandler(directorySvc, authMiddleware),
		billinghandler.NewHandler(billingSvc),
		handler.NewHandler(db),
		m,
		router.Config{
			RateLimitRPS:   cfg.RateLimit.RequestsPerSecond,
			RateLimitBurst: cfg.RateLimit.Burst,
			CORS:           middleware.DefaultCORSConfig(),
		},
	)
	r.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Outbox processor runs in-process; a standalone worker binary exists
	// for deployments that separate the two.
	broker, err := redisbroker.NewRedisBroker(cfg.Redis.URL)
	if err != nil {
		log.Warn("redis unavailable, outbox events will not be published", "error", err.Error())
	} else {
		defer broker.Close()
		processor := worker.NewOutboxProcessor(outboxRepo, broker, worker.OutboxProcessorConfig{
			BatchSize:    cfg.Outbox.BatchSize,
			PollInterval: cfg.Outbox.PollInterval,
		}, log, m)
		go processor.Start(ctx)
	}

	timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}

	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(err, "forced shutdown")
		os.Exit(1)
	}

	log.Info("server stopped")
}
