package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/trocalivro/exchange-service/identity-provider/internal/model"
	userRepo "github.com/trocalivro/exchange-service/identity-provider/internal/repository"
)

const defaultUserType = "user"

// ProfileClient provisions the profile on the exchange side before the
// user record is committed locally.
type ProfileClient interface {
	CreateProfile(ctx context.Context, userReq model.UserCreateRequest) error
}

type Service struct {
	log     *zap.Logger
	repo    userRepo.Repository
	profile ProfileClient
}

func NewService(repo userRepo.Repository, profile ProfileClient, log *zap.Logger) *Service {
	return &Service{
		log:     log,
		repo:    repo,
		profile: profile,
	}
}

func (s *Service) RegisterUser(ctx context.Context, userReq model.UserCreateRequest) (model.User, error) {
	if err := s.profile.CreateProfile(ctx, userReq); err != nil {
		return model.User{}, err
	}
	user := model.User{
		Username: userReq.Username,
		Password: userReq.Password,
		Email:    userReq.Email,
		UserType: defaultUserType,
	}
	return s.repo.Create(ctx, user)
}

func (s *Service) GetUser(ctx context.Context, username string) (model.User, error) {
	return s.repo.Get(ctx, username)
}
