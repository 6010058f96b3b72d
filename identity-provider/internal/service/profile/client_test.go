package profile_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trocalivro/exchange-service/identity-provider/config"
	"github.com/trocalivro/exchange-service/identity-provider/internal/errs"
	"github.com/trocalivro/exchange-service/identity-provider/internal/model"
	"github.com/trocalivro/exchange-service/identity-provider/internal/service/profile"
)

func newClient(t *testing.T, h http.HandlerFunc) (*profile.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)

	log := zap.NewExample().Named("test")
	return profile.NewClient(log, config.ExchangeHTTPServer{Host: host, Port: port}), srv
}

func TestClient_CreateProfile(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		var got struct {
			Username string `json:"username"`
			Email    string `json:"email"`
		}
		c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/v1/profiles", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusCreated)
		})

		err := c.CreateProfile(context.Background(), model.UserCreateRequest{
			Username: "machado",
			Password: "secret-1",
			Email:    "machado@example.com",
		})
		require.NoError(t, err)
		require.Equal(t, "machado", got.Username)
		require.Equal(t, "machado@example.com", got.Email)
	})

	t.Run("conflict maps to already exists", func(t *testing.T) {
		c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		})

		err := c.CreateProfile(context.Background(), model.UserCreateRequest{Username: "machado"})
		require.ErrorIs(t, err, errs.ErrAlreadyExists)
	})

	t.Run("upstream error is surfaced", func(t *testing.T) {
		c, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})

		err := c.CreateProfile(context.Background(), model.UserCreateRequest{Username: "machado"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "boom")
	})
}
