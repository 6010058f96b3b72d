package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/trocalivro/exchange-service/identity-provider/internal/errs"
	"github.com/trocalivro/exchange-service/identity-provider/internal/model"
)

type Repository interface {
	Create(ctx context.Context, user model.User) (model.User, error)
	Get(ctx context.Context, username string) (model.User, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("user-repo"),
	}, nil
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const usersTableName = `users`

func (r *repository) Create(ctx context.Context, user model.User) (model.User, error) {
	q, args, err := qb.Insert(usersTableName).
		Columns("username", "password", "email", "user_type").
		Values(user.Username, user.Password, user.Email, user.UserType).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var created model.User
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.User{}, errs.ErrAlreadyExists
		}
		r.log.Error("Create user", zap.String("q", q), zap.Any("args", args))
		return model.User{}, err
	}
	return created, nil
}

func (r *repository) Get(ctx context.Context, username string) (model.User, error) {
	q, args, err := qb.Select("id", "username", "password", "email", "user_type", "created_at").
		From(usersTableName).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		return model.User{}, err
	}
	return user, nil
}
