package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trocalivro/exchange-service/exchange/internal/errs"
	"github.com/trocalivro/exchange-service/exchange/internal/handler"
	"github.com/trocalivro/exchange-service/exchange/internal/model"
	"github.com/trocalivro/exchange-service/pkg/auth"
	"github.com/trocalivro/exchange-service/pkg/validate"

	service_mocks "github.com/trocalivro/exchange-service/exchange/internal/handler/mocks"
)

func withUser(username string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := auth.SetAuthContext(c.Request().Context(), username, "user")
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func TestHandler_CreateExchange(t *testing.T) {
	t.Parallel()
	type input struct {
		username string
		body     string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockExchangeService, inp input)

	const bookUid = "5f7c3b90-89f0-46bb-b5e5-54b5a2f0a47e"

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockExchangeService, inp input) {
				r.EXPECT().
					CreateExchangeRequest(gomock.Any(), inp.username, bookUid).
					Return(model.Exchange{
						ExchangeUid: "e2b7cb43-9311-45b6-a2ae-a97f647284a5",
						Status:      model.StatusInExchange,
					}, nil)
			},
			input: input{
				username: "requester",
				body:     `{"bookUid":"` + bookUid + `"}`,
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"exchangeUid":"e2b7cb43-9311-45b6-a2ae-a97f647284a5","status":"IN_EXCHANGE","message":"","createdAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name: "err. own book",
			mockBehavior: func(r *service_mocks.MockExchangeService, inp input) {
				r.EXPECT().
					CreateExchangeRequest(gomock.Any(), inp.username, bookUid).
					Return(model.Exchange{}, errs.ErrSelfExchange)
			},
			input: input{
				username: "owner",
				body:     `{"bookUid":"` + bookUid + `"}`,
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"cannot request an exchange for your own book"}`,
			},
			wantErr: true,
		},
		{
			name: "err. duplicate pending request",
			mockBehavior: func(r *service_mocks.MockExchangeService, inp input) {
				r.EXPECT().
					CreateExchangeRequest(gomock.Any(), inp.username, bookUid).
					Return(model.Exchange{}, errs.ErrDuplicateRequest)
			},
			input: input{
				username: "requester",
				body:     `{"bookUid":"` + bookUid + `"}`,
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"pending exchange request for this book already exists"}`,
			},
			wantErr: true,
		},
		{
			name: "err. book not available",
			mockBehavior: func(r *service_mocks.MockExchangeService, inp input) {
				r.EXPECT().
					CreateExchangeRequest(gomock.Any(), inp.username, bookUid).
					Return(model.Exchange{}, errs.ErrBookNotAvailable)
			},
			input: input{
				username: "requester",
				body:     `{"bookUid":"` + bookUid + `"}`,
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"book is not available for exchange"}`,
			},
			wantErr: true,
		},
		{
			name: "err. book not found",
			mockBehavior: func(r *service_mocks.MockExchangeService, inp input) {
				r.EXPECT().
					CreateExchangeRequest(gomock.Any(), inp.username, bookUid).
					Return(model.Exchange{}, errs.ErrBookNotFound)
			},
			input: input{
				username: "requester",
				body:     `{"bookUid":"` + bookUid + `"}`,
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"book not found"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. invalid bookUid",
			mockBehavior: func(r *service_mocks.MockExchangeService, inp input) {},
			input: input{
				username: "requester",
				body:     `{"bookUid":"not-a-uuid"}`,
			},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
			wantErr: true,
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockExchangeService, inp input) {
				r.EXPECT().
					CreateExchangeRequest(gomock.Any(), inp.username, bookUid).
					Return(model.Exchange{}, errors.New("db internal"))
			},
			input: input{
				username: "requester",
				body:     `{"bookUid":"` + bookUid + `"}`,
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockExchangeService(c)
			tt.mockBehavior(svc, tt.input)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/exchanges", h.CreateExchange, withUser(tt.input.username))

			r := httptest.NewRequest(http.MethodPost, "/exchanges", strings.NewReader(tt.input.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.TrimSpace(w.Body.String()))
			}
		})
	}
}

func TestHandler_RespondExchange(t *testing.T) {
	t.Parallel()
	type input struct {
		username    string
		exchangeUid string
		body        string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockExchangeService, inp input)

	const exchangeUid = "e2b7cb43-9311-45b6-a2ae-a97f647284a5"

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok accept",
			mockBehavior: func(r *service_mocks.MockExchangeService, inp input) {
				r.EXPECT().
					RespondToExchangeRequest(gomock.Any(), inp.username, exchangeUid,
						model.RespondExchangeRequest{Action: model.ActionAccept, Message: "Let's meet"}).
					Return(model.Exchange{
						ExchangeUid: exchangeUid,
						Status:      model.StatusUnavailable,
						Message:     "Let's meet",
					}, nil)
			},
			input: input{
				username:    "owner",
				exchangeUid: exchangeUid,
				body:        `{"action":"accept","message":"Let's meet"}`,
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"exchangeUid":"` + exchangeUid + `","status":"UNAVAILABLE","message":"Let's meet","createdAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name: "ok reject",
			mockBehavior: func(r *service_mocks.MockExchangeService, inp input) {
				r.EXPECT().
					RespondToExchangeRequest(gomock.Any(), inp.username, exchangeUid,
						model.RespondExchangeRequest{Action: model.ActionReject}).
					Return(model.Exchange{
						ExchangeUid: exchangeUid,
						Status:      model.StatusAvailable,
					}, nil)
			},
			input: input{
				username:    "owner",
				exchangeUid: exchangeUid,
				body:        `{"action":"reject"}`,
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"exchangeUid":"` + exchangeUid + `","status":"AVAILABLE","message":"","createdAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name: "err. already resolved",
			mockBehavior: func(r *service_mocks.MockExchangeService, inp input) {
				r.EXPECT().
					RespondToExchangeRequest(gomock.Any(), inp.username, exchangeUid,
						model.RespondExchangeRequest{Action: model.ActionReject}).
					Return(model.Exchange{}, errs.ErrAlreadyResolved)
			},
			input: input{
				username:    "owner",
				exchangeUid: exchangeUid,
				body:        `{"action":"reject"}`,
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"exchange request has already been resolved"}`,
			},
			wantErr: true,
		},
		{
			name: "err. not the owner",
			mockBehavior: func(r *service_mocks.MockExchangeService, inp input) {
				r.EXPECT().
					RespondToExchangeRequest(gomock.Any(), inp.username, exchangeUid,
						model.RespondExchangeRequest{Action: model.ActionAccept}).
					Return(model.Exchange{}, errs.ErrNotOwner)
			},
			input: input{
				username:    "outsider",
				exchangeUid: exchangeUid,
				body:        `{"action":"accept"}`,
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"only the book owner can respond to the request"}`,
			},
			wantErr: true,
		},
		{
			name: "err. exchange not found",
			mockBehavior: func(r *service_mocks.MockExchangeService, inp input) {
				r.EXPECT().
					RespondToExchangeRequest(gomock.Any(), inp.username, exchangeUid,
						model.RespondExchangeRequest{Action: model.ActionAccept}).
					Return(model.Exchange{}, errs.ErrExchangeNotFound)
			},
			input: input{
				username:    "owner",
				exchangeUid: exchangeUid,
				body:        `{"action":"accept"}`,
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"exchange request not found"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. invalid action",
			mockBehavior: func(r *service_mocks.MockExchangeService, inp input) {},
			input: input{
				username:    "owner",
				exchangeUid: exchangeUid,
				body:        `{"action":"maybe"}`,
			},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockExchangeService(c)
			tt.mockBehavior(svc, tt.input)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/exchanges/:exchangeUid/respond", h.RespondExchange, withUser(tt.input.username))

			r := httptest.NewRequest(http.MethodPost, "/exchanges/"+tt.input.exchangeUid+"/respond", strings.NewReader(tt.input.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.TrimSpace(w.Body.String()))
			}
		})
	}
}

func TestHandler_GetSentExchanges(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockExchangeService(c)
	svc.EXPECT().
		GetSentRequests(gomock.Any(), "requester").
		Return([]model.ExchangeItem{
			{
				ExchangeUid: "e2b7cb43-9311-45b6-a2ae-a97f647284a5",
				BookUid:     "5f7c3b90-89f0-46bb-b5e5-54b5a2f0a47e",
				BookTitle:   "Dom Casmurro",
				Requester:   "requester",
				Owner:       "owner",
				Status:      model.StatusInExchange,
			},
		}, nil)
	log := zap.NewExample().Named("test")
	h := handler.New(svc, log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/exchanges/sent", h.GetSentExchanges, withUser("requester"))

	r := httptest.NewRequest(http.MethodGet, "/exchanges/sent", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`[{"exchangeUid":"e2b7cb43-9311-45b6-a2ae-a97f647284a5","bookUid":"5f7c3b90-89f0-46bb-b5e5-54b5a2f0a47e","bookTitle":"Dom Casmurro","requester":"requester","owner":"owner","status":"IN_EXCHANGE","message":"","createdAt":"0001-01-01T00:00:00Z"}]`,
		strings.TrimSpace(w.Body.String()))
}
