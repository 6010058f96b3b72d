package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/trocalivro/exchange-service/exchange/internal/errs"
	"github.com/trocalivro/exchange-service/exchange/internal/model"
	"github.com/trocalivro/exchange-service/exchange/internal/repository"
	"github.com/trocalivro/exchange-service/pkg/kafka"
)

type Service struct {
	log     *zap.Logger
	catalog repository.CatalogRepository
	profile repository.ProfileRepository
	ledger  repository.LedgerRepository
	tx      repository.Transactor
	queue   Enqueuer
}

func NewService(
	catalog repository.CatalogRepository,
	profile repository.ProfileRepository,
	ledger repository.LedgerRepository,
	tx repository.Transactor,
	queue Enqueuer,
	log *zap.Logger,
) *Service {
	return &Service{
		log:     log,
		catalog: catalog,
		profile: profile,
		ledger:  ledger,
		tx:      tx,
		queue:   queue,
	}
}

// CreateExchangeRequest opens a negotiation over a book. The book row is
// locked for the whole atomic section, so every precondition is evaluated
// against state visible after the lock: of two concurrent requests for the
// same AVAILABLE book exactly one succeeds, the other observes
// ErrBookNotAvailable.
func (s *Service) CreateExchangeRequest(ctx context.Context, username, bookUid string) (model.Exchange, error) {
	requester, err := s.profile.GetByUsername(ctx, username)
	if err != nil {
		return model.Exchange{}, err
	}

	var ex model.Exchange
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		book, err := s.catalog.GetBookForUpdate(ctx, bookUid)
		if err != nil {
			return err
		}
		if book.OwnerID == requester.ID {
			return errs.ErrSelfExchange
		}
		pending, err := s.ledger.HasPending(ctx, book.ID, requester.ID)
		if err != nil {
			return err
		}
		if pending {
			return errs.ErrDuplicateRequest
		}
		if book.Status != model.StatusAvailable {
			return errs.ErrBookNotAvailable
		}
		if ex, err = s.ledger.Insert(ctx, book.ID, requester.ID, book.OwnerID); err != nil {
			return err
		}
		return s.catalog.SetBookStatus(ctx, book.ID, model.StatusInExchange)
	})
	if err != nil {
		return model.Exchange{}, err
	}

	s.enqueue(username, kafka.EventExchangeRequested, bookUid)
	return ex, nil
}

// RespondToExchangeRequest resolves a pending request. Accepting marks both
// the request and the book UNAVAILABLE; rejecting returns both to AVAILABLE
// so the book can be requested again. A request resolves exactly once.
func (s *Service) RespondToExchangeRequest(ctx context.Context, username, exchangeUid string, req model.RespondExchangeRequest) (model.Exchange, error) {
	owner, err := s.profile.GetByUsername(ctx, username)
	if err != nil {
		return model.Exchange{}, err
	}

	var (
		ex    model.Exchange
		event string
	)
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		ex, err = s.ledger.GetForUpdate(ctx, exchangeUid)
		if err != nil {
			return err
		}
		if ex.OwnerID != owner.ID {
			return errs.ErrNotOwner
		}
		if ex.Status != model.StatusInExchange {
			return errs.ErrAlreadyResolved
		}

		var status model.Status
		switch req.Action {
		case model.ActionAccept:
			status, event = model.StatusUnavailable, kafka.EventExchangeAccepted
		case model.ActionReject:
			status, event = model.StatusAvailable, kafka.EventExchangeRejected
		default:
			return errs.ErrInvalidAction
		}

		if ex, err = s.ledger.UpdateResolution(ctx, ex.ID, status, req.Message); err != nil {
			return err
		}
		return s.catalog.SetBookStatus(ctx, ex.BookID, status)
	})
	if err != nil {
		return model.Exchange{}, err
	}

	s.enqueue(username, event, "")
	return ex, nil
}

func (s *Service) GetSentRequests(ctx context.Context, username string) ([]model.ExchangeItem, error) {
	requester, err := s.profile.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.ledger.ListByRequester(ctx, requester.ID)
}

func (s *Service) GetReceivedRequests(ctx context.Context, username string) ([]model.ExchangeItem, error) {
	owner, err := s.profile.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.ledger.ListByOwner(ctx, owner.ID)
}

func (s *Service) AddBook(ctx context.Context, username string, req model.CreateBookRequest) (model.Book, error) {
	owner, err := s.profile.GetByUsername(ctx, username)
	if err != nil {
		return model.Book{}, err
	}
	book, err := s.catalog.CreateBook(ctx, owner.ID, req)
	if err != nil {
		return model.Book{}, err
	}
	s.enqueue(username, kafka.EventBookAdded, book.BookUid)
	return book, nil
}

func (s *Service) GetBook(ctx context.Context, bookUid string) (model.Book, error) {
	return s.catalog.GetBook(ctx, bookUid)
}

func (s *Service) SearchBooks(ctx context.Context, query string) ([]model.Book, error) {
	return s.catalog.SearchBooks(ctx, query)
}

func (s *Service) ListRecentBooks(ctx context.Context, limit int) ([]model.Book, error) {
	return s.catalog.ListRecent(ctx, limit)
}

func (s *Service) MyBooks(ctx context.Context, username string) ([]model.Book, error) {
	owner, err := s.profile.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.catalog.ListByOwner(ctx, owner.ID)
}

func (s *Service) CreateProfile(ctx context.Context, req model.CreateProfileRequest) (model.Profile, error) {
	return s.profile.Create(ctx, req)
}

func (s *Service) GetProfile(ctx context.Context, username string) (model.Profile, error) {
	return s.profile.GetByUsername(ctx, username)
}

func (s *Service) UpdateProfile(ctx context.Context, username string, req model.UpdateProfileRequest) (model.Profile, error) {
	return s.profile.Update(ctx, username, req)
}

// enqueue publishes a stats event. Event delivery is best effort and never
// fails the user operation.
func (s *Service) enqueue(username, event, bookUid string) {
	if s.queue == nil {
		return
	}
	msg := kafka.EventStats{
		Username: username,
		Event:    event,
		BookUid:  bookUid,
		Ts:       time.Now().UTC(),
	}
	if err := s.queue.Enqueue(kafka.StatsTopic, msg); err != nil {
		s.log.Error("enqueue stats event", zap.String("event", event), zap.Error(err))
	}
}
