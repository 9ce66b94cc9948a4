// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"rolesync/internal/membership"
	"rolesync/internal/notify"
	"rolesync/internal/platform/config"
	"rolesync/internal/platform/httpserver"
	"rolesync/internal/platform/logger"
	"rolesync/internal/platform/middleware"
	"rolesync/internal/platform/postgres"
	"rolesync/internal/platform/redis"
	"rolesync/internal/progression/store"
	"rolesync/internal/reconcile"
	syncsvc "rolesync/internal/sync"
	"rolesync/internal/sync/handler"
	"rolesync/internal/sync/lock"
	"rolesync/internal/sync/metrics"
)

func main() {
	log := logger.New()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.Postgres)
	if err != nil {
		log.Error("postgres unavailable", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		log.Error("redis unavailable", "error", err)
		os.Exit(1)
	}

	var locker lock.Locker = lock.NewMemory()
	if redisClient != nil {
		defer redisClient.Close()
		locker = lock.NewRedis(redisClient.Client)
	}

	var sink notify.Sink
	if cfg.WebhookURL != "" {
		sink = notify.NewWebhook(cfg.WebhookURL)
	}
	publisher := notify.NewPublisher(64)
	worker := notify.NewWorker(sink, publisher.Inbox(), log)

	members := membership.NewHTTPClient(cfg.MembershipBaseURL, cfg.GuildID, cfg.MembershipToken, cfg.MembershipTimeout)

	service := syncsvc.New(
		[]byte(cfg.UserdataSecret),
		store.NewPostgres(db),
		reconcile.New(members, nil),
		log,
		syncsvc.WithLocker(locker),
		syncsvc.WithNotifier(publisher),
		syncsvc.WithMetrics(metrics.New()),
	)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestTime)
	router.Use(middleware.ClientMetadata)
	handler.New(service, cfg.UserdataSecret, log).Register(router)
	router.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		err := worker.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
