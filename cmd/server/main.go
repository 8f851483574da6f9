package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bronsonbrode/backend/internal/config"
	"github.com/bronsonbrode/backend/internal/handler"
	"github.com/bronsonbrode/backend/internal/logging"
	"github.com/bronsonbrode/backend/internal/repository"
	"github.com/bronsonbrode/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load config", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	serviceRepo := repository.NewPgServiceRepository(pool)
	portfolioRepo := repository.NewPgPortfolioRepository(pool)
	blogRepo := repository.NewPgBlogRepository(pool)
	contactRepo := repository.NewPgContactRepository(pool)
	statsRepo := repository.NewPgStatsRepository(pool)

	contentService := service.NewContentService(serviceRepo, portfolioRepo, blogRepo)
	contactService := service.NewContactService(contactRepo, time.Now)
	statsService := service.NewStatsService(statsRepo)

	router := handler.NewRouter(handler.Handlers{
		App:            handler.New(pool, cfg.FrontendURL),
		Services:       handler.NewServiceHandler(contentService),
		Portfolio:      handler.NewPortfolioHandler(contentService),
		Blog:           handler.NewBlogHandler(contentService),
		Contact:        handler.NewContactHandler(contactService, time.Local),
		Admin:          handler.NewAdminHandler(statsService),
		ContactLimiter: handler.NewRateLimiter(ctx, cfg.ContactRateLimit),
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "frontend_url", cfg.FrontendURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down", "timeout", cfg.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
