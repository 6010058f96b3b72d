package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/trocalivro/exchange-service/pkg/kafka"
	"github.com/trocalivro/exchange-service/stats/internal/model"
	statsRepo "github.com/trocalivro/exchange-service/stats/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo statsRepo.Repository
}

func NewService(repo statsRepo.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

// GetStats returns the per-user roll-up.
func (s *Service) GetStats(ctx context.Context) (model.StatsInfo, error) {
	return s.repo.GetStats(ctx)
}

// Stats is invoked by the kafka consumer for every claimed event.
func (s *Service) Stats(ctx context.Context, event kafka.EventStats) error {
	return s.repo.Stats(ctx, event)
}
