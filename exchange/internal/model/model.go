package model

import (
	"time"
)

// Status is shared by books and exchange requests: a book carries its
// availability, an exchange request carries the outcome of the negotiation
// (IN_EXCHANGE while pending, UNAVAILABLE once accepted, AVAILABLE after a
// rejection reopened the book).
type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusInExchange  Status = "IN_EXCHANGE"
	StatusUnavailable Status = "UNAVAILABLE"
)

const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

type Profile struct {
	ID          int    `json:"-" db:"id"`
	Username    string `json:"username" db:"username"`
	FirstName   string `json:"firstname" db:"firstname"`
	LastName    string `json:"lastname" db:"lastname"`
	Email       string `json:"email" db:"email"`
	PhoneNumber string `json:"phoneNumber" db:"phone_number"`
	Reputation  int    `json:"reputation" db:"reputation"`
	Address     string `json:"address" db:"address"`
}

type Book struct {
	ID          int       `json:"-" db:"id"`
	BookUid     string    `json:"bookUid" db:"book_uid"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Genre       string    `json:"genre" db:"genre"`
	Author      string    `json:"author" db:"author"`
	Image       string    `json:"image,omitempty" db:"image"`
	Status      Status    `json:"status" db:"status"`
	OwnerID     int       `json:"-" db:"owner_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type Exchange struct {
	ID          int       `json:"-" db:"id"`
	ExchangeUid string    `json:"exchangeUid" db:"exchange_uid"`
	BookID      int       `json:"-" db:"book_id"`
	RequesterID int       `json:"-" db:"requester_id"`
	OwnerID     int       `json:"-" db:"owner_id"`
	Status      Status    `json:"status" db:"status"`
	Message     string    `json:"message" db:"message"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// ExchangeItem is the listing shape for the sent/received views.
type ExchangeItem struct {
	ExchangeUid string    `json:"exchangeUid" db:"exchange_uid"`
	BookUid     string    `json:"bookUid" db:"book_uid"`
	BookTitle   string    `json:"bookTitle" db:"title"`
	Requester   string    `json:"requester" db:"requester_name"`
	Owner       string    `json:"owner" db:"owner_name"`
	Status      Status    `json:"status" db:"status"`
	Message     string    `json:"message" db:"message"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type CreateProfileRequest struct {
	Username    string `json:"username" validate:"required"`
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

type UpdateProfileRequest struct {
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

type CreateBookRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Author      string `json:"author"`
	Image       string `json:"image"`
}

type CreateExchangeRequest struct {
	BookUid string `json:"bookUid" validate:"required,uuid"`
}

type RespondExchangeRequest struct {
	Action  string `json:"action" validate:"required,oneof=accept reject"`
	Message string `json:"message"`
}
