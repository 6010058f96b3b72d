package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/trocalivro/exchange-service/exchange/internal/errs"
	"github.com/trocalivro/exchange-service/exchange/internal/model"
)

// LedgerRepository stores exchange requests. Rows are never deleted; a
// resolved request stays in the ledger for the sent/received views.
type LedgerRepository interface {
	Insert(ctx context.Context, bookID, requesterID, ownerID int) (model.Exchange, error)
	HasPending(ctx context.Context, bookID, requesterID int) (bool, error)
	GetForUpdate(ctx context.Context, exchangeUid string) (model.Exchange, error)
	UpdateResolution(ctx context.Context, exchangeID int, status model.Status, message string) (model.Exchange, error)
	ListByRequester(ctx context.Context, requesterID int) ([]model.ExchangeItem, error)
	ListByOwner(ctx context.Context, ownerID int) ([]model.ExchangeItem, error)
}

type ledgerRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewLedgerRepository(db *sqlx.DB, log *zap.Logger) (*ledgerRepository, error) {
	return &ledgerRepository{
		db:  db,
		log: log.Named("ledger-repo"),
	}, nil
}

const (
	exchangeTableName = `exchange`
)

func (r *ledgerRepository) Insert(ctx context.Context, bookID, requesterID, ownerID int) (model.Exchange, error) {
	q, args, err := qb.Insert(exchangeTableName).
		Columns("exchange_uid", "book_id", "requester_id", "owner_id", "status", "message").
		Values(uuid.New(), bookID, requesterID, ownerID, model.StatusInExchange, "").
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Exchange{}, err
	}
	var ex model.Exchange
	if err := ext(ctx, r.db).GetContext(ctx, &ex, q, args...); err != nil {
		// backstop for the one-pending-request-per-(book,requester) index
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Exchange{}, errs.ErrDuplicateRequest
		}
		r.log.Error("Insert exchange", zap.String("q", q), zap.Any("args", args))
		return model.Exchange{}, err
	}
	return ex, nil
}

func (r *ledgerRepository) HasPending(ctx context.Context, bookID, requesterID int) (bool, error) {
	q := fmt.Sprintf(`
	select exists(
		select 1 from %s
		where book_id = $1 and requester_id = $2 and status = $3
	)`, exchangeTableName)

	var pending bool
	if err := ext(ctx, r.db).GetContext(ctx, &pending, q, bookID, requesterID, model.StatusInExchange); err != nil {
		return false, err
	}
	return pending, nil
}

// GetForUpdate reads the exchange request with an exclusive row lock so that
// concurrent responses to the same request serialize. Must be called inside
// Transactor.WithinTx.
func (r *ledgerRepository) GetForUpdate(ctx context.Context, exchangeUid string) (model.Exchange, error) {
	q, args, err := qb.Select("id", "exchange_uid", "book_id", "requester_id", "owner_id", "status", "message", "created_at").
		From(exchangeTableName).
		Where(sq.Eq{"exchange_uid": exchangeUid}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.Exchange{}, err
	}
	var ex model.Exchange
	if err := ext(ctx, r.db).GetContext(ctx, &ex, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Exchange{}, errs.ErrExchangeNotFound
		}
		return model.Exchange{}, err
	}
	return ex, nil
}

func (r *ledgerRepository) UpdateResolution(ctx context.Context, exchangeID int, status model.Status, message string) (model.Exchange, error) {
	q, args, err := qb.Update(exchangeTableName).
		Set("status", status).
		Set("message", message).
		Where(sq.Eq{"id": exchangeID}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Exchange{}, err
	}
	var ex model.Exchange
	if err := ext(ctx, r.db).GetContext(ctx, &ex, q, args...); err != nil {
		r.log.Error("UpdateResolution", zap.String("q", q), zap.Any("args", args))
		return model.Exchange{}, err
	}
	return ex, nil
}

func (r *ledgerRepository) ListByRequester(ctx context.Context, requesterID int) ([]model.ExchangeItem, error) {
	return r.list(ctx, sq.Eq{"e.requester_id": requesterID})
}

func (r *ledgerRepository) ListByOwner(ctx context.Context, ownerID int) ([]model.ExchangeItem, error) {
	return r.list(ctx, sq.Eq{"e.owner_id": ownerID})
}

func (r *ledgerRepository) list(ctx context.Context, where sq.Eq) ([]model.ExchangeItem, error) {
	q, args, err := qb.Select(
		"e.exchange_uid", "b.book_uid", "b.title",
		"req.username as requester_name", "own.username as owner_name",
		"e.status", "e.message", "e.created_at").
		From(exchangeTableName + " e").
		Join(fmt.Sprintf("%s b on b.id = e.book_id", bookTableName)).
		Join(fmt.Sprintf("%s req on req.id = e.requester_id", profileTableName)).
		Join(fmt.Sprintf("%s own on own.id = e.owner_id", profileTableName)).
		Where(where).
		OrderBy("e.created_at desc", "e.id desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.ExchangeItem
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}
