package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic/api/internal/adminui"
	"clinic/api/internal/app"
	"clinic/api/internal/config"
	"clinic/api/internal/email"
	"clinic/api/internal/reviews"
	"clinic/api/internal/revision"
	"clinic/api/internal/search"
	"clinic/api/internal/storage"
	"clinic/api/internal/store"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	if err := store.ApplyMigrations(ctx, db, cfg.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}
	pg := store.NewPostgresStore(db)

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("parse redis url")
		}
		redisClient = redis.NewClient(opts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, reviews cache disabled")
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	var reviewsSource app.ReviewsSource
	if cfg.GooglePlacesAPIKey != "" {
		reviewsSource = reviews.New(cfg.GooglePlacesAPIKey, cfg.GooglePlaceID, redisClient, log)
	}

	var uploader app.Uploader
	if cfg.MinioEndpoint != "" {
		blob, err := storage.New(storage.Config{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
			PublicURL: cfg.PublicBlobURL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("connect object storage")
		}
		if err := blob.EnsureBucket(ctx); err != nil {
			log.Fatal().Err(err).Msg("ensure upload bucket")
		}
		uploader = blob
	}

	var engine search.Engine
	var indexer app.Indexer
	if cfg.MeiliURL != "" {
		meili := search.NewMeili(cfg.MeiliURL, cfg.MeiliMasterKey, log)
		defer meili.Close()
		engine = meili
		indexer = meili
	}
	searcher := search.NewService(engine, pg, log)

	notifier := email.NewService(email.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		FromName: cfg.SMTPFromName,
	})

	service := app.NewService(app.ServiceConfig{
		Store:    pg,
		DataDir:  cfg.DataDir,
		Notifier: notifier,
		Reviews:  reviewsSource,
		Uploader: uploader,
		Recorder: revision.New(cfg.RevisionsDir),
		Searcher: searcher,
		Indexer:  indexer,
		Logger:   log,
	})
	service.Seed(ctx, cfg.DataDir)

	api := app.NewHTTPServer(service, app.HTTPConfig{
		CORSOrigin:        cfg.CORSOrigin,
		AdminUser:         cfg.AdminUser,
		AdminPasswordHash: cfg.AdminPasswordHash,
		SessionSecret:     cfg.SessionSecret,
		SessionTTL:        cfg.SessionTTL,
	}, log)

	console := adminui.New(service, adminui.Config{
		AdminUser:    cfg.AdminUser,
		PasswordHash: cfg.AdminPasswordHash,
		Secret:       cfg.SessionSecret,
		SessionTTL:   cfg.SessionTTL,
	}, log)

	mux := http.NewServeMux()
	mux.Handle("/admin", console.Handler())
	mux.Handle("/admin/", console.Handler())
	mux.Handle("/", api.Handler())

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}
