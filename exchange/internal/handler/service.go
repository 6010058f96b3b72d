package handler

import (
	"context"

	"github.com/trocalivro/exchange-service/exchange/internal/model"
	"github.com/trocalivro/exchange-service/exchange/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type ExchangeService interface {
	CreateExchangeRequest(ctx context.Context, username, bookUid string) (model.Exchange, error)
	RespondToExchangeRequest(ctx context.Context, username, exchangeUid string, req model.RespondExchangeRequest) (model.Exchange, error)
	GetSentRequests(ctx context.Context, username string) ([]model.ExchangeItem, error)
	GetReceivedRequests(ctx context.Context, username string) ([]model.ExchangeItem, error)

	AddBook(ctx context.Context, username string, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, bookUid string) (model.Book, error)
	SearchBooks(ctx context.Context, query string) ([]model.Book, error)
	ListRecentBooks(ctx context.Context, limit int) ([]model.Book, error)
	MyBooks(ctx context.Context, username string) ([]model.Book, error)

	CreateProfile(ctx context.Context, req model.CreateProfileRequest) (model.Profile, error)
	GetProfile(ctx context.Context, username string) (model.Profile, error)
	UpdateProfile(ctx context.Context, username string, req model.UpdateProfileRequest) (model.Profile, error)
}

var _ ExchangeService = (*service.Service)(nil)
