// Package main is the Hondana server entry point.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/hondana/internal/catalog"
	"github.com/hyperjump/hondana/internal/chat"
	"github.com/hyperjump/hondana/internal/config"
	"github.com/hyperjump/hondana/internal/recommend"
	"github.com/hyperjump/hondana/internal/server"
	"github.com/hyperjump/hondana/internal/storage"
	"github.com/hyperjump/hondana/pkg/utils"
)

var version = "dev"

func main() {
	fs := flag.NewFlagSet("hondana", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path (optional; PORT, MONGO_URL, DB_NAME env vars override)")
	debug := fs.Bool("debug", false, "enable debug logging (generated predicates, chat routing, etc.)")
	showVersion := fs.Bool("version", false, "print version and exit")
	_ = fs.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("hondana version %s\n", version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("database", cfg.Storage.Database),
		zap.Bool("debug", debugMode),
	)

	// A broken store connection at startup is fatal; the service never runs
	// without one.
	connectCtx, connectCancel := context.WithTimeout(context.Background(), cfg.Storage.ConnectTimeout())
	store, err := storage.NewMongoStore(connectCtx, cfg.Storage.MongoURL, cfg.Storage.Database, cfg.Catalog.CategoriesCollection)
	connectCancel()
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	logger.Info("Connected to MongoDB", zap.String("database", cfg.Storage.Database))

	registry := catalog.NewRegistry(store)
	catalogSvc := catalog.NewService(store, registry, logger)
	recommendSvc := recommend.NewService(store, cfg.Catalog.RecommendCollection, int64(cfg.Catalog.RecommendLimit), logger)

	var recognizer chat.Recognizer
	if cfg.Chat.OCREndpoint != "" {
		recognizer = chat.NewHTTPRecognizer(cfg.Chat.OCREndpoint, cfg.Chat.OCRTimeout())
	}
	catalogClient := chat.NewCatalogClient(cfg.Chat.SelfURL, cfg.Chat.HTTPTimeout())
	chatRouter := chat.NewRouter(recognizer, catalogClient, logger)

	srv := server.NewServer(catalogSvc, recommendSvc, chatRouter, &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
	_ = store.Close(ctx)
}
