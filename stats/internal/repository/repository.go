package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/trocalivro/exchange-service/pkg/kafka"
	"github.com/trocalivro/exchange-service/stats/internal/model"
)

type Repository interface {
	GetStats(ctx context.Context) (model.StatsInfo, error)
	Stats(ctx context.Context, event kafka.EventStats) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("stats-repo"),
	}, nil
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const statsTableName = `stats`

// counterColumn maps an event name onto the counter it bumps.
func counterColumn(event string) (string, bool) {
	switch event {
	case kafka.EventBookAdded:
		return "cnt_books", true
	case kafka.EventExchangeRequested:
		return "cnt_requested", true
	case kafka.EventExchangeAccepted:
		return "cnt_accepted", true
	case kafka.EventExchangeRejected:
		return "cnt_rejected", true
	}
	return "", false
}

func (r *repository) Stats(ctx context.Context, event kafka.EventStats) error {
	col, ok := counterColumn(event.Event)
	if !ok {
		r.log.Warn("unknown event", zap.String("event", event.Event))
		return nil
	}
	q, args, err := qb.Insert(statsTableName).
		Columns("username", col, "last_updated").
		Values(event.Username, 1, event.Ts).
		Suffix(fmt.Sprintf(
			"on conflict (username) do update set %[1]s = %[2]s.%[1]s + 1, last_updated = excluded.last_updated",
			col, statsTableName)).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("Stats upsert", zap.String("q", q), zap.Any("args", args))
		return err
	}
	return nil
}

func (r *repository) GetStats(ctx context.Context) (model.StatsInfo, error) {
	q, args, err := qb.Select("username", "cnt_books", "cnt_requested", "cnt_accepted", "cnt_rejected", "last_updated").
		From(statsTableName).
		OrderBy("username").
		ToSql()
	if err != nil {
		return model.StatsInfo{}, err
	}
	var stats []model.Stats
	if err := r.db.SelectContext(ctx, &stats, q, args...); err != nil {
		return model.StatsInfo{}, err
	}
	return model.StatsInfo{Data: stats}, nil
}
