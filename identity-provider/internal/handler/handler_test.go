package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trocalivro/exchange-service/identity-provider/internal/errs"
	"github.com/trocalivro/exchange-service/identity-provider/internal/handler"
	"github.com/trocalivro/exchange-service/identity-provider/internal/model"
	"github.com/trocalivro/exchange-service/pkg/auth"
	"github.com/trocalivro/exchange-service/pkg/circuitbreaker"
	"github.com/trocalivro/exchange-service/pkg/validate"

	service_mocks "github.com/trocalivro/exchange-service/identity-provider/internal/handler/mocks"
)

func newTestRouter(t *testing.T) (*echo.Echo, *service_mocks.MockAuthService) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	svc := service_mocks.NewMockAuthService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.POST("/register", h.Register)
	e.POST("/authorize", h.Authorize)
	return e, svc
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		e, svc := newTestRouter(t)
		svc.EXPECT().
			RegisterUser(gomock.Any(), model.UserCreateRequest{
				Username: "machado",
				Password: "secret-1",
				Email:    "machado@example.com",
			}).
			Return(model.User{Username: "machado", Email: "machado@example.com", UserType: "user"}, nil)

		r := httptest.NewRequest(http.MethodPost, "/register",
			strings.NewReader(`{"username":"machado","password":"secret-1","email":"machado@example.com"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t,
			`{"username":"machado","email":"machado@example.com","userType":"user","createdAt":"0001-01-01T00:00:00Z"}`,
			strings.TrimSpace(w.Body.String()))
	})

	t.Run("err. duplicate username", func(t *testing.T) {
		e, svc := newTestRouter(t)
		svc.EXPECT().
			RegisterUser(gomock.Any(), gomock.Any()).
			Return(model.User{}, errs.ErrAlreadyExists)

		r := httptest.NewRequest(http.MethodPost, "/register",
			strings.NewReader(`{"username":"machado","password":"secret-1"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("err. exchange service down", func(t *testing.T) {
		e, svc := newTestRouter(t)
		svc.EXPECT().
			RegisterUser(gomock.Any(), gomock.Any()).
			Return(model.User{}, circuitbreaker.ErrOpen)

		r := httptest.NewRequest(http.MethodPost, "/register",
			strings.NewReader(`{"username":"machado","password":"secret-1"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("err. short password", func(t *testing.T) {
		e, _ := newTestRouter(t)

		r := httptest.NewRequest(http.MethodPost, "/register",
			strings.NewReader(`{"username":"machado","password":"abc"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Authorize(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		e, svc := newTestRouter(t)
		svc.EXPECT().
			GetUser(gomock.Any(), "machado").
			Return(model.User{Username: "machado", Password: "secret-1", Email: "machado@example.com", UserType: "user"}, nil)

		r := httptest.NewRequest(http.MethodPost, "/authorize",
			strings.NewReader(`{"username":"machado","password":"secret-1"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var resp model.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.AccessToken)

		claims := &auth.Claims{}
		token, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(t *jwt.Token) (interface{}, error) {
			return auth.JWTKey, nil
		})
		require.NoError(t, err)
		require.True(t, token.Valid)
		require.Equal(t, "machado", claims.Profile.Username)
		require.Equal(t, "user", claims.Profile.Role)
	})

	t.Run("err. wrong password", func(t *testing.T) {
		e, svc := newTestRouter(t)
		svc.EXPECT().
			GetUser(gomock.Any(), "machado").
			Return(model.User{Username: "machado", Password: "secret-1"}, nil)

		r := httptest.NewRequest(http.MethodPost, "/authorize",
			strings.NewReader(`{"username":"machado","password":"nope-nope"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("err. unknown user", func(t *testing.T) {
		e, svc := newTestRouter(t)
		svc.EXPECT().
			GetUser(gomock.Any(), "ghost").
			Return(model.User{}, errs.ErrUserNotFound)

		r := httptest.NewRequest(http.MethodPost, "/authorize",
			strings.NewReader(`{"username":"ghost","password":"secret-1"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
