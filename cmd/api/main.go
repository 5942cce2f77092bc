package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"retrobooth/internal/adapter/repo"
	"retrobooth/internal/album"
	"retrobooth/internal/domain"
	"retrobooth/internal/http/handlers"
	"retrobooth/internal/http/httpapi"
	"retrobooth/internal/infra"
	"retrobooth/internal/providers/genai"
	"retrobooth/internal/providers/style"
	"retrobooth/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storagePath := cfg.StoragePath
	if !filepath.IsAbs(storagePath) {
		if abs, err := filepath.Abs(storagePath); err == nil {
			storagePath = abs
		}
	}
	fileStore, err := storage.NewFileStore(storagePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure storage")
	}

	var albumRepo domain.AlbumRepository
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		albumRepo = repo.NewAlbumRepository(pool)
	} else {
		logger.Info().Msg("no DATABASE_URL set, asset bookkeeping disabled")
	}

	geminiClient, err := genai.NewClient(genai.Options{
		APIKey:     cfg.GeminiAPIKey,
		BaseURL:    cfg.GeminiBaseURL,
		Model:      cfg.GeminiModel,
		HTTPClient: &http.Client{Timeout: cfg.GenerateTimeout},
		Logger:     &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure gemini client")
	}
	if geminiClient.Offline() {
		logger.Warn().Str("model", geminiClient.Model()).Msg("gemini api key missing, using synthetic restyles")
	}

	app := handlers.NewApp(handlers.Options{
		Logger:         logger,
		Generator:      style.NewGeminiStylist(geminiClient),
		Compositor:     album.NewCompositor(logger),
		Store:          fileStore,
		Repo:           albumRepo,
		Workers:        cfg.WorkerCount,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})

	router := httpapi.NewRouter(app, httpapi.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		UploadLimit:    cfg.UploadRateLimit,
		UploadWindow:   time.Minute,
	})
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
