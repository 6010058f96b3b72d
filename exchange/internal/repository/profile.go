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

	"github.com/trocalivro/exchange-service/exchange/internal/errs"
	"github.com/trocalivro/exchange-service/exchange/internal/model"
)

type ProfileRepository interface {
	Create(ctx context.Context, req model.CreateProfileRequest) (model.Profile, error)
	GetByUsername(ctx context.Context, username string) (model.Profile, error)
	Update(ctx context.Context, username string, req model.UpdateProfileRequest) (model.Profile, error)
}

type profileRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewProfileRepository(db *sqlx.DB, log *zap.Logger) (*profileRepository, error) {
	return &profileRepository{
		db:  db,
		log: log.Named("profile-repo"),
	}, nil
}

const (
	profileTableName = `profile`
)

func (r *profileRepository) Create(ctx context.Context, req model.CreateProfileRequest) (model.Profile, error) {
	q, args, err := qb.Insert(profileTableName).
		Columns("username", "firstname", "lastname", "email", "phone_number", "address").
		Values(req.Username, req.FirstName, req.LastName, req.Email, req.PhoneNumber, req.Address).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Profile{}, err
	}
	var profile model.Profile
	if err := r.db.GetContext(ctx, &profile, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Profile{}, errs.ErrAlreadyExists
		}
		r.log.Error("Create profile", zap.String("q", q), zap.Any("args", args))
		return model.Profile{}, err
	}
	return profile, nil
}

func (r *profileRepository) GetByUsername(ctx context.Context, username string) (model.Profile, error) {
	q, args, err := qb.Select("id", "username", "firstname", "lastname", "email", "phone_number", "reputation", "address").
		From(profileTableName).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return model.Profile{}, err
	}
	var profile model.Profile
	if err := ext(ctx, r.db).GetContext(ctx, &profile, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Profile{}, errs.ErrProfileNotFound
		}
		return model.Profile{}, err
	}
	return profile, nil
}

func (r *profileRepository) Update(ctx context.Context, username string, req model.UpdateProfileRequest) (model.Profile, error) {
	q, args, err := qb.Update(profileTableName).
		Set("firstname", req.FirstName).
		Set("lastname", req.LastName).
		Set("email", req.Email).
		Set("phone_number", req.PhoneNumber).
		Set("address", req.Address).
		Where(sq.Eq{"username": username}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Profile{}, err
	}
	var profile model.Profile
	if err := r.db.GetContext(ctx, &profile, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Profile{}, errs.ErrProfileNotFound
		}
		return model.Profile{}, err
	}
	return profile, nil
}
