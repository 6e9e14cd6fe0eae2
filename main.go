package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripzy/internal/apiclient"
	intconfig "tripzy/internal/config"
	router "tripzy/internal/http"
	"tripzy/internal/repositories"
	"tripzy/internal/utils"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	log := utils.InitLogger(env.IsProduction(), env.LogLevel)
	defer func() { _ = log.Sync() }()

	var drafts repositories.DraftRepository = repositories.NewMemoryDraftRepo(env.SessionTTL)
	client, err := intconfig.ConnectRedis(env)
	switch {
	case err != nil:
		log.Warn("redis unavailable, keeping booking drafts in memory", zap.Error(err))
	case client != nil:
		drafts = repositories.NewRedisDraftRepo(client, env.SessionTTL)
		log.Info("booking drafts stored in redis", zap.String("addr", env.RedisAddr))
	}
	defer intconfig.CloseRedis()

	api := apiclient.New(env.APIBase(), nil)

	r := router.NewRouter(env, router.Deps{API: api, Drafts: drafts, Log: log})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server listening",
			zap.String("addr", env.AppAddr),
			zap.String("booking_api", api.BaseURL()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown failed", zap.Error(err))
	}

	log.Info("server stopped")
}
