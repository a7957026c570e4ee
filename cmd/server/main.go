package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"coffeeshop/internal/events"
	eventkafka "coffeeshop/internal/events/kafka"
	eventmemory "coffeeshop/internal/events/memory"
	"coffeeshop/internal/order/service"
	storememory "coffeeshop/internal/order/store/memory"
	storepostgres "coffeeshop/internal/order/store/postgres"
	storeredis "coffeeshop/internal/order/store/redis"
	"coffeeshop/internal/platform/config"
	"coffeeshop/internal/platform/httpserver"
	"coffeeshop/internal/platform/logger"
	"coffeeshop/internal/platform/metrics"
	"coffeeshop/internal/platform/postgres"
	platformredis "coffeeshop/internal/platform/redis"
	httptransport "coffeeshop/internal/transport/http"
)

// main wires high-level dependencies explicitly and keeps the server
// lifecycle small. Business logic lives in the order packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, cleanup := buildRepository(ctx, cfg, log)
	defer cleanup()

	sink, sinkClose := buildSink(cfg, log)
	defer sinkClose()

	svc := service.New(repo, events.NewPublisher(sink, log), log, m)
	router := httptransport.NewRouter(httptransport.NewHandler(svc))

	apiSrv := httpserver.New(cfg.Addr, router)
	metricsSrv := httpserver.New(cfg.MetricsAddr, metrics.Handler())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("serving orders on %s (store=%s)", cfg.Addr, cfg.StoreBackend)
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		log.Printf("serving metrics on %s", cfg.MetricsAddr)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := apiSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return metricsSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func buildRepository(ctx context.Context, cfg config.Config, log *log.Logger) (service.Repository, func()) {
	switch cfg.StoreBackend {
	case "redis":
		client, err := platformredis.New(cfg.Redis)
		if err != nil {
			log.Fatalf("redis store: %v", err)
		}
		if client == nil {
			log.Fatalf("redis store selected but COFFEESHOP_REDIS_URL is empty")
		}
		return storeredis.New(client.Client), func() { _ = client.Close() }
	case "postgres":
		db, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("postgres store: %v", err)
		}
		store := storepostgres.New(db)
		if err := store.EnsureSchema(ctx); err != nil {
			log.Fatalf("postgres schema: %v", err)
		}
		return store, func() { _ = db.Close() }
	default:
		return storememory.New(), func() {}
	}
}

func buildSink(cfg config.Config, log *log.Logger) (events.Sink, func()) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Printf("no kafka brokers configured; using in-process event sink")
		return eventmemory.NewSink(), func() {}
	}
	sink, err := eventkafka.NewSink(cfg.KafkaBrokers, cfg.KafkaTopic)
	if err != nil {
		log.Fatalf("kafka sink: %v", err)
	}
	return sink, sink.Close
}
