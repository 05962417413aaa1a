package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/zemellal/gutenshelf/internal/app"
	"github.com/zemellal/gutenshelf/internal/config"
	"github.com/zemellal/gutenshelf/internal/server"
	"github.com/zemellal/gutenshelf/internal/util"
	"github.com/zemellal/gutenshelf/pkg/ai"
	"github.com/zemellal/gutenshelf/pkg/gutenberg"
	"github.com/zemellal/gutenshelf/pkg/storage"
	"github.com/zemellal/gutenshelf/pkg/store"
)

func main() {
	configPath := flag.String("config", config.ConfigPath, "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := util.InitLogger(cfg.LogLevel)

	dataStore, err := store.NewGormStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to init postgres store: %v", err)
	}

	objects, err := newObjectStore(cfg)
	if err != nil {
		log.Fatalf("failed to init object store: %v", err)
	}

	var kv store.KV
	if cfg.RedisAddr != "" {
		kv = store.NewRedisKV(cfg.RedisAddr, cfg.RedisPassword)
	}

	core, err := app.New(app.Config{
		Store:      dataStore,
		Objects:    objects,
		KV:         kv,
		Archive:    gutenberg.NewClient(cfg.GutenbergBaseURL),
		Summarizer: ai.NewSummarizer(newGenerator(cfg)),
		OwnerName:  cfg.OwnerName,
	})
	if err != nil {
		log.Fatalf("failed to init app: %v", err)
	}

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.New(core).Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("gutenshelf listening", "addr", addr, "storage", cfg.StorageDriver, "ai_provider", cfg.AI.Provider)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
	}
}

func newObjectStore(cfg config.FileConfig) (storage.ObjectStore, error) {
	if cfg.StorageDriver == "file" {
		return storage.NewFileStore(cfg.DataDir)
	}
	return storage.NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
}

func newGenerator(cfg config.FileConfig) ai.TextGenerator {
	if cfg.AI.Provider == "ollama" {
		return ai.NewOllamaGenerator(cfg.AI.OllamaURL, cfg.AI.Model)
	}
	return ai.NewOpenAICompatGenerator(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model)
}
