package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventsAPI/internal/clients/books"
	"eventsAPI/internal/config"
	"eventsAPI/internal/http-server/handlers/event/addParticipants"
	"eventsAPI/internal/http-server/handlers/event/createEvent"
	"eventsAPI/internal/http-server/handlers/event/deleteEvent"
	"eventsAPI/internal/http-server/handlers/event/getEvent"
	"eventsAPI/internal/http-server/handlers/event/listEvents"
	"eventsAPI/internal/http-server/handlers/event/listGuests"
	"eventsAPI/internal/http-server/handlers/event/registerGuest"
	"eventsAPI/internal/http-server/handlers/event/removeParticipants"
	"eventsAPI/internal/http-server/handlers/event/unregisterGuest"
	"eventsAPI/internal/http-server/handlers/event/updateEvent"
	"eventsAPI/internal/http-server/handlers/health"
	"eventsAPI/internal/http-server/handlers/login"
	"eventsAPI/internal/http-server/handlers/member/deleteMember"
	"eventsAPI/internal/http-server/handlers/member/getMember"
	"eventsAPI/internal/http-server/handlers/member/upsertMember"
	"eventsAPI/internal/http-server/middleware/auth"
	"eventsAPI/internal/http-server/middleware/mwlogger"
	"eventsAPI/internal/lib/i18n"
	"eventsAPI/internal/lib/logger/handlers/slogpretty"
	"eventsAPI/internal/lib/logger/sl"
	"eventsAPI/internal/models"
	"eventsAPI/internal/services/membership"
	"eventsAPI/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting events api", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	if cfg.Database.AutoMigrate {
		version, err := storage.Migrate()
		if err != nil {
			log.Error("failed to apply migrations", sl.Err(err))
			os.Exit(1)
		}
		log.Info("database schema is up to date", slog.Uint64("version", uint64(version)))
	}

	tr, err := i18n.New(cfg.Locale)
	if err != nil {
		log.Error("failed to load translations", sl.Err(err))
		os.Exit(1)
	}

	booksClient := books.New(cfg.Books.URL, cfg.Books.Timeout)

	guests := membership.New(log, models.KindGuest, storage, storage.Guests(), booksClient.UserName)
	participants := membership.New(log, models.KindParticipant, storage, storage.Participants(), booksClient.AuthorName)

	gate := auth.New(log, tr, cfg.Auth.Secret)
	authenticated := gate.Require(auth.Options{})
	adminOnly := gate.Require(auth.Options{RequireAdmin: true})
	ownerOrAdmin := gate.Require(auth.Options{RequireOwner: true})

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/health", health.New(log, storage))
	router.Post("/login", login.New(log, tr, booksClient))

	router.Route("/events", func(r chi.Router) {
		r.Get("/", listEvents.New(log, tr, cfg.Pagination, storage))
		r.With(adminOnly).Post("/", createEvent.New(log, tr, storage))

		r.Get("/{id}", getEvent.New(log, tr, storage))
		r.With(adminOnly).Put("/{id}", updateEvent.New(log, tr, storage))
		r.With(adminOnly).Delete("/{id}", deleteEvent.New(log, tr, storage))

		r.Get("/{id}/guests", listGuests.New(log, tr, cfg.Pagination, guests))
		r.With(authenticated).Post("/{id}/guests", registerGuest.New(log, tr, guests))
		r.With(authenticated).Delete("/{id}/guests", unregisterGuest.New(log, tr, guests))

		r.With(adminOnly).Post("/{id}/participants", addParticipants.New(log, tr, participants))
		r.With(adminOnly).Delete("/{id}/participants", removeParticipants.New(log, tr, participants))
	})

	router.Route("/guests/{id}", func(r chi.Router) {
		r.Get("/", getMember.New(log, tr, models.KindGuest, guests))
		r.With(ownerOrAdmin).Put("/", upsertMember.New(log, tr, models.KindGuest, guests))
		r.With(ownerOrAdmin).Delete("/", deleteMember.New(log, tr, models.KindGuest, guests))
	})

	router.Route("/participants/{id}", func(r chi.Router) {
		r.Get("/", getMember.New(log, tr, models.KindParticipant, participants))
		r.With(adminOnly).Put("/", upsertMember.New(log, tr, models.KindParticipant, participants))
		r.With(adminOnly).Delete("/", deleteMember.New(log, tr, models.KindParticipant, participants))
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
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
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
