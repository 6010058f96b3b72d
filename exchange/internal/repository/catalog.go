package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/trocalivro/exchange-service/exchange/internal/errs"
	"github.com/trocalivro/exchange-service/exchange/internal/model"
)

type CatalogRepository interface {
	CreateBook(ctx context.Context, ownerID int, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, bookUid string) (model.Book, error)
	GetBookForUpdate(ctx context.Context, bookUid string) (model.Book, error)
	SetBookStatus(ctx context.Context, bookID int, status model.Status) error
	ListRecent(ctx context.Context, limit int) ([]model.Book, error)
	ListByOwner(ctx context.Context, ownerID int) ([]model.Book, error)
	SearchBooks(ctx context.Context, query string) ([]model.Book, error)
}

type catalogRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewCatalogRepository(db *sqlx.DB, log *zap.Logger) (*catalogRepository, error) {
	return &catalogRepository{
		db:  db,
		log: log.Named("catalog-repo"),
	}, nil
}

const (
	bookTableName = `book`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var bookColumns = []string{"id", "book_uid", "title", "description", "genre", "author", "image", "status", "owner_id", "created_at"}

func (r *catalogRepository) CreateBook(ctx context.Context, ownerID int, req model.CreateBookRequest) (model.Book, error) {
	// status is forced AVAILABLE on creation regardless of caller input
	q, args, err := qb.Insert(bookTableName).
		Columns("book_uid", "title", "description", "genre", "author", "image", "status", "owner_id").
		Values(uuid.New(), req.Title, req.Description, req.Genre, req.Author, req.Image, model.StatusAvailable, ownerID).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := ext(ctx, r.db).GetContext(ctx, &book, q, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", q), zap.Any("args", args))
		return model.Book{}, err
	}
	return book, nil
}

func (r *catalogRepository) GetBook(ctx context.Context, bookUid string) (model.Book, error) {
	return r.getBook(ctx, bookUid, false)
}

// GetBookForUpdate reads the book with an exclusive row lock. Must be called
// inside Transactor.WithinTx; the lock is the serialization point for
// concurrent exchange creation on the same book.
func (r *catalogRepository) GetBookForUpdate(ctx context.Context, bookUid string) (model.Book, error) {
	return r.getBook(ctx, bookUid, true)
}

func (r *catalogRepository) getBook(ctx context.Context, bookUid string, forUpdate bool) (model.Book, error) {
	q := qb.Select(bookColumns...).
		From(bookTableName).
		Where(sq.Eq{"book_uid": bookUid})
	if forUpdate {
		q = q.Suffix("for update")
	}
	query, args, err := q.ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := ext(ctx, r.db).GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrBookNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *catalogRepository) SetBookStatus(ctx context.Context, bookID int, status model.Status) error {
	q := fmt.Sprintf(`update %s set status = $1 where id = $2`, bookTableName)
	_, err := ext(ctx, r.db).ExecContext(ctx, q, status, bookID)
	return err
}

func (r *catalogRepository) ListRecent(ctx context.Context, limit int) ([]model.Book, error) {
	q, args, err := qb.Select(bookColumns...).
		From(bookTableName).
		OrderBy("created_at desc", "id desc").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *catalogRepository) ListByOwner(ctx context.Context, ownerID int) ([]model.Book, error) {
	q, args, err := qb.Select(bookColumns...).
		From(bookTableName).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at desc", "id desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *catalogRepository) SearchBooks(ctx context.Context, query string) ([]model.Book, error) {
	q, args, err := qb.Select(bookColumns...).
		From(bookTableName).
		Where(sq.ILike{"title": fmt.Sprint("%", query, "%")}).
		OrderBy("created_at desc", "id desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("SearchBooks", zap.String("query", q), zap.Any("args", args))

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}
