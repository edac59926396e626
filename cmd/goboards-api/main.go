package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goboards-dev/goboards/internal/cache"
	"github.com/goboards-dev/goboards/internal/config"
	"github.com/goboards-dev/goboards/internal/handler"
	"github.com/goboards-dev/goboards/internal/jwt"
	"github.com/goboards-dev/goboards/internal/logger"
	mw "github.com/goboards-dev/goboards/internal/middleware"
	"github.com/goboards-dev/goboards/internal/router"
	"github.com/goboards-dev/goboards/internal/service"
	"github.com/goboards-dev/goboards/internal/storage/pg"
	"github.com/goboards-dev/goboards/internal/validation"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := pg.New(cfg.Private.Pg)
	if err != nil {
		slog.Error("failed to init storage", "err", err)
		os.Exit(1)
	}
	defer storage.Cleanup()

	pages := cache.New(ctx, cfg.Public.Redis.Addr, cfg.Public.Redis.CacheTTL)
	defer pages.Cleanup()

	board := service.NewBoard(storage, validation.BoardValidator{})
	topic := service.NewTopic(storage, pages, validation.TopicValidator{}, cfg.Public.TopicsPerPage)
	post := service.NewPost(storage, pages, validation.PostValidator{})

	jwtService := jwt.New(cfg.Private.JwtKey, cfg.Public.JwtTTL)
	auth := mw.NewAuth(jwtService)

	h := handler.New(board, topic, post, storage, cfg)
	r := router.New(h, auth)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Public.Port),
		Handler: r,
	}

	go func() {
		slog.Info("server started", "port", cfg.Public.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "err", err)
	}
	slog.Info("server stopped")
}
