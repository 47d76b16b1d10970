package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/fillword/fillwordgame-go/internal/api"
	"github.com/fillword/fillwordgame-go/internal/factory"
	redisstorage "github.com/fillword/fillwordgame-go/internal/storage/redis"
)

func main() {
	// Load .env if present, before any env lookups
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func run(logger *slog.Logger) error {
	cfg, err := configFromEnv(logger)
	if err != nil {
		return err
	}

	app, err := factory.New(cfg)
	if err != nil {
		return err
	}

	if err := app.WordlistService.LoadDefaults(); err != nil {
		return err
	}
	// Extra pools can be mounted as <language>.txt files in WORDS_DIR
	if wordsDir := os.Getenv("WORDS_DIR"); wordsDir != "" {
		loadWordsDir(app, wordsDir, logger)
	}
	logger.Info("word pools loaded", slog.Any("languages", app.WordlistService.Languages()))

	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		RoundController: app.RoundController,
		HubManager:      app.HubManager,
		Clock:           app.Clock,
	})

	serverConfig, err := serverConfigFromEnv()
	if err != nil {
		return err
	}
	server := api.NewServer(router, serverConfig, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()
	logger.Info("server started", slog.String("addr", server.Addr()))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		return server.Shutdown(context.Background())
	}
}

var errMissingRedisURL = errors.New("REDIS_URL required when STORAGE_TYPE=redis")

func errInvalidPort(port string) error {
	return fmt.Errorf("invalid PORT %q", port)
}

func configFromEnv(logger *slog.Logger) (factory.Config, error) {
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			return cfg, errMissingRedisURL
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	return cfg, nil
}

func serverConfigFromEnv() (api.ServerConfig, error) {
	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return serverConfig, errInvalidPort(port)
		}
		serverConfig.Port = p
	}
	if host := os.Getenv("HOST"); host != "" {
		serverConfig.Host = host
	}
	return serverConfig, nil
}

// loadWordsDir loads every <language>.txt file in dir as a word pool,
// replacing the built-in pool for that language
func loadWordsDir(app *factory.App, dir string, logger *slog.Logger) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("could not read WORDS_DIR", slog.String("dir", dir), slog.String("error", err.Error()))
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".txt") {
			continue
		}
		language := strings.TrimSuffix(name, ".txt")
		path := filepath.Join(dir, name)
		if err := app.WordlistService.LoadFromFile(context.Background(), language, path); err != nil {
			logger.Warn("could not load word pool",
				slog.String("language", language),
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
			continue
		}
		logger.Info("word pool loaded",
			slog.String("language", language),
			slog.Int("words", app.WordlistService.PoolSize(language)),
		)
	}
}
