package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/trocalivro/exchange-service/exchange/config"
	"github.com/trocalivro/exchange-service/exchange/internal/handler"
	"github.com/trocalivro/exchange-service/exchange/internal/repository"
	"github.com/trocalivro/exchange-service/exchange/internal/server"
	"github.com/trocalivro/exchange-service/exchange/internal/service"
	"github.com/trocalivro/exchange-service/exchange/migrations"
	"github.com/trocalivro/exchange-service/pkg/kafka"
	"github.com/trocalivro/exchange-service/pkg/logger"
	"github.com/trocalivro/exchange-service/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "exchange")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}
	catalogRepo, err := repository.NewCatalogRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo catalog %w", err)
	}
	profileRepo, err := repository.NewProfileRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo profile %w", err)
	}
	ledgerRepo, err := repository.NewLedgerRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo ledger %w", err)
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka.NewProducer %w", err)
	}

	svc := service.NewService(catalogRepo, profileRepo, ledgerRepo,
		repository.NewTransactor(db), service.NewEnqueuer(producer), log)
	h := handler.New(svc, log)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	if err = producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
