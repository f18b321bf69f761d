package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/catalog-service/catalog/config"
	"github.com/Astemirdum/catalog-service/catalog/internal/handler"
	"github.com/Astemirdum/catalog-service/catalog/internal/repository"
	"github.com/Astemirdum/catalog-service/catalog/internal/server"
	"github.com/Astemirdum/catalog-service/catalog/internal/service"
	"github.com/Astemirdum/catalog-service/catalog/internal/session"
	"github.com/Astemirdum/catalog-service/catalog/migrations"
	"github.com/Astemirdum/catalog-service/pkg/circuit_breaker"
	"github.com/Astemirdum/catalog-service/pkg/kafka"
	"github.com/Astemirdum/catalog-service/pkg/logger"
	"github.com/Astemirdum/catalog-service/pkg/postgres"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	cbRecordLength     = 20
	cbTimeout          = 10 * time.Second
	cbPercentile       = 0.5
	cbRecoveryRequests = 3
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "catalog")
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	rdb, err := session.NewClient(ctx, cfg.Session)
	if err != nil {
		log.Fatal("redis init", zap.Error(err))
	}
	defer rdb.Close() //nolint:errcheck
	visits := session.NewCounter(rdb, cfg.Session.TTL, log)

	opts := []service.Option{}
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		cb := circuit_breaker.New(cbRecordLength, cbTimeout, cbPercentile, cbRecoveryRequests)
		events := kafka.NewPublisher(producer, cfg.Kafka.Topic, cb)
		defer func() {
			if err := events.Close(); err != nil {
				log.Error("events close", zap.Error(err))
			}
		}()
		opts = append(opts, service.WithPublisher(events))
	} else {
		log.Info("KAFKA_ADDRS empty: catalog events disabled")
	}

	svc := service.NewService(repo, visits, log, opts...)
	h := handler.New(handler.NewServices(svc), handler.Config{
		Secret:     []byte(cfg.Auth.Secret),
		SessionTTL: cfg.Session.TTL,
	}, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ", zap.String("addr", srv.Addr()))
		return srv.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err = g.Wait(); err != nil {
		log.Error("server", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
