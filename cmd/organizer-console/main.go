package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"organizerConsole/internal/client/iwent"
	"organizerConsole/internal/config"
	"organizerConsole/internal/http-server/handlers/event/createEvent"
	"organizerConsole/internal/http-server/handlers/event/getAllEvents"
	"organizerConsole/internal/http-server/handlers/event/getEvent"
	"organizerConsole/internal/http-server/handlers/event/refreshEvents"
	"organizerConsole/internal/http-server/handlers/moderation/addBlockedWord"
	"organizerConsole/internal/http-server/handlers/moderation/approveReport"
	"organizerConsole/internal/http-server/handlers/moderation/clearChatHistory"
	"organizerConsole/internal/http-server/handlers/moderation/getChatGroups"
	"organizerConsole/internal/http-server/handlers/moderation/getReports"
	"organizerConsole/internal/http-server/handlers/moderation/getTools"
	"organizerConsole/internal/http-server/handlers/moderation/rejectReport"
	"organizerConsole/internal/http-server/handlers/moderation/removeBlockedWord"
	"organizerConsole/internal/http-server/handlers/moderation/toggleAutoMod"
	"organizerConsole/internal/http-server/handlers/moderation/toggleChatGroup"
	"organizerConsole/internal/http-server/handlers/session/clearToken"
	"organizerConsole/internal/http-server/handlers/session/setToken"
	"organizerConsole/internal/http-server/handlers/stats/getAnalytics"
	"organizerConsole/internal/http-server/handlers/stats/getDashboard"
	"organizerConsole/internal/http-server/middleware/mwlogger"
	"organizerConsole/internal/lib/logger/handlers/slogpretty"
	"organizerConsole/internal/lib/logger/sl"
	"organizerConsole/internal/metrics"
	"organizerConsole/internal/moderation"
	"organizerConsole/internal/storage/memory"
	"organizerConsole/internal/storage/postgres"
	"organizerConsole/internal/store/events"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// clientStorage is the key/value store holding the access token.
type clientStorage interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
	Close() error
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting organizer console", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := setupStorage(cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	series, err := metrics.NewSeriesSource(cfg.Metrics.Series)
	if err != nil {
		log.Error("invalid metrics series", sl.Err(err))
		os.Exit(1)
	}

	client := iwent.New(cfg.Remote.BaseURL, storage,
		iwent.WithTimeout(cfg.Remote.Timeout),
		iwent.WithEventsLimit(cfg.Remote.EventsLimit),
	)

	eventStore := events.New(log, client)
	moderationStore := moderation.New(log, client)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go eventStore.Initialize(ctx)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/events", getAllEvents.New(log, eventStore))
	router.Post("/events", createEvent.New(log, eventStore))
	router.Post("/events/refresh", refreshEvents.New(log, eventStore))
	router.Get("/events/{id}", getEvent.New(log, eventStore))

	router.Get("/dashboard", getDashboard.New(log, eventStore, series))
	router.Get("/analytics", getAnalytics.New(log, eventStore, series))

	router.Put("/session/token", setToken.New(log, storage))
	router.Delete("/session/token", clearToken.New(log, storage))

	router.Route("/moderation", func(r chi.Router) {
		r.Get("/reports", getReports.New(log, moderationStore))
		r.Post("/reports/{id}/approve", approveReport.New(log, moderationStore))
		r.Delete("/reports/{id}", rejectReport.New(log, moderationStore))

		r.Get("/chats", getChatGroups.New(log, moderationStore))
		r.Post("/chats/{id}/toggle", toggleChatGroup.New(log, moderationStore))
		r.Post("/chats/{id}/clear", clearChatHistory.New(log, moderationStore))

		r.Get("/tools", getTools.New(log, moderationStore))
		r.Post("/blocked-words", addBlockedWord.New(log, moderationStore))
		r.Delete("/blocked-words/{word}", removeBlockedWord.New(log, moderationStore))
		r.Post("/automod/{setting}/toggle", toggleAutoMod.New(log, moderationStore))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	if cfg.Events.RefreshInterval > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Events.RefreshInterval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					eventStore.Refresh(ctx)
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPServer.Timeout)
	defer shutdownCancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func setupStorage(cfg *config.Config) (clientStorage, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		s, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StorageMemory, "":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
