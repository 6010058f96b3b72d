package handler

import (
	"context"

	"github.com/trocalivro/exchange-service/pkg/kafka"
	statsModel "github.com/trocalivro/exchange-service/stats/internal/model"
	"github.com/trocalivro/exchange-service/stats/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type StatsService interface {
	GetStats(ctx context.Context) (statsModel.StatsInfo, error)
	Stats(ctx context.Context, event kafka.EventStats) error
}

var _ StatsService = (*service.Service)(nil)
