package errs

import (
	"errors"
)

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrExchangeNotFound = errors.New("exchange request not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrAlreadyExists    = errors.New("already exists")

	ErrSelfExchange = errors.New("cannot request an exchange for your own book")
	ErrNotOwner     = errors.New("only the book owner can respond to the request")

	ErrDuplicateRequest = errors.New("pending exchange request for this book already exists")
	ErrBookNotAvailable = errors.New("book is not available for exchange")
	ErrAlreadyResolved  = errors.New("exchange request has already been resolved")
	ErrInvalidAction    = errors.New("action must be accept or reject")
)
