package handler

import (
	"context"

	"github.com/trocalivro/exchange-service/identity-provider/internal/model"
	"github.com/trocalivro/exchange-service/identity-provider/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type AuthService interface {
	RegisterUser(ctx context.Context, userReq model.UserCreateRequest) (model.User, error)
	GetUser(ctx context.Context, username string) (model.User, error)
}

var _ AuthService = (*service.Service)(nil)
