package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rms-backend/internal/auth"
	"rms-backend/internal/backup"
	"rms-backend/internal/cache"
	"rms-backend/internal/config"
	"rms-backend/internal/db"
	"rms-backend/internal/events"
	"rms-backend/internal/handlers"
	"rms-backend/internal/health"
	apphttp "rms-backend/internal/http"
	"rms-backend/internal/middleware"
	"rms-backend/internal/repositories"
	"rms-backend/internal/services"
	"rms-backend/internal/store"
)

func main() {
	port := flag.Int("port", 0, "override the configured listen port")
	flag.Parse()

	cfg := config.Load()
	if *port > 0 {
		cfg.Server.Port = *port
	}

	st, driver := db.Open(cfg)
	defer st.Close()

	cache.Init(cfg.Redis.Addr, cfg.Redis.Password)
	defer cache.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Fan local writes out to websocket clients and peer processes, and pull
	// peer writes into the local hub.
	hub := events.NewHub()
	st.Subscribe(func(c store.Collection) {
		hub.Broadcast(c)
		cache.PublishChange(ctx, c)
	})
	go cache.SubscribeChanges(ctx, hub.Broadcast)

	// Repositories
	userRepo := repositories.NewUserRepository(st)
	roomRepo := repositories.NewRoomRepository(st)
	assignmentRepo := repositories.NewAssignmentRepository(st)
	paymentRepo := repositories.NewPaymentRepository(st)
	feedbackRepo := repositories.NewFeedbackRepository(st)
	logRepo := repositories.NewActivityLogRepository(st)
	settingRepo := repositories.NewSettingRepository(st)
	sessionRepo := repositories.NewSessionRepository(st)

	// Services
	logService := services.NewActivityLogService(logRepo)
	authService := services.NewAuthService(userRepo, sessionRepo, logService)
	incentiveService := services.NewIncentiveService(userRepo)
	roomService := services.NewRoomService(roomRepo, assignmentRepo, logService)
	paymentService := services.NewPaymentService(roomRepo, paymentRepo, incentiveService, logService)
	employeeService := services.NewEmployeeService(userRepo, assignmentRepo, logService)
	assignmentService := services.NewAssignmentService(assignmentRepo, logService)
	feedbackService := services.NewFeedbackService(feedbackRepo)
	searchService := services.NewSearchService(userRepo, roomRepo, assignmentRepo, paymentRepo)
	settingService := services.NewSettingService(settingRepo, logService)

	jwtManager := auth.NewJWTManager(cfg)
	authMW := middleware.NewAuthMiddleware(jwtManager, userRepo)

	h := &apphttp.Handlers{
		Auth:        handlers.NewAuthHandler(authService, jwtManager),
		Rooms:       handlers.NewRoomHandler(roomService),
		Employees:   handlers.NewEmployeeHandler(employeeService),
		Assignments: handlers.NewAssignmentHandler(assignmentService),
		Payments:    handlers.NewPaymentHandler(paymentService),
		Feedback:    handlers.NewFeedbackHandler(feedbackService),
		Logs:        handlers.NewActivityLogHandler(logService),
		Search:      handlers.NewSearchHandler(searchService),
		Settings:    handlers.NewSettingHandler(settingService),
		Health:      handlers.NewHealthHandler(health.NewChecker(st, driver)),
		Monitoring:  handlers.NewMonitoringHandler(hub),
	}

	if scheduler := backup.NewScheduler(ctx, cfg, st); scheduler != nil {
		go scheduler.Run(ctx)
	}

	router := apphttp.NewRouter(h, authMW, hub)
	corsMW := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMW(router)))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("[Server] Listening on port %d (store: %s)", cfg.Server.Port, driver)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[Server] Listen failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("[Server] Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Server] Shutdown error: %v", err)
		os.Exit(1)
	}
}
