package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/trocalivro/exchange-service/identity-provider/config"
	"github.com/trocalivro/exchange-service/identity-provider/internal/errs"
	"github.com/trocalivro/exchange-service/identity-provider/internal/model"
	"github.com/trocalivro/exchange-service/pkg/circuitbreaker"
)

// Client creates the exchange-side profile that backs every registered user.
type Client struct {
	log      *zap.Logger
	client   *http.Client
	cb       circuitbreaker.CircuitBreaker
	endpoint string
}

func NewClient(log *zap.Logger, cfg config.ExchangeHTTPServer) *Client {
	return &Client{
		log:      log.Named("profile-client"),
		client:   &http.Client{Timeout: time.Minute},
		cb:       circuitbreaker.New(100, time.Second, 0.2, 2),
		endpoint: fmt.Sprintf("http://%s/api/v1/profiles", net.JoinHostPort(cfg.Host, cfg.Port)),
	}
}

func (c *Client) CB() circuitbreaker.CircuitBreaker {
	return c.cb
}

func (c *Client) CreateProfile(ctx context.Context, userReq model.UserCreateRequest) error {
	return c.cb.Call(func() error {
		return c.createProfile(ctx, userReq)
	})
}

func (c *Client) createProfile(ctx context.Context, userReq model.UserCreateRequest) error {
	b := bytes.NewBuffer(nil)
	profileReq := struct {
		Username    string `json:"username"`
		FirstName   string `json:"firstname"`
		LastName    string `json:"lastname"`
		Email       string `json:"email"`
		PhoneNumber string `json:"phoneNumber"`
		Address     string `json:"address"`
	}{
		Username:    userReq.Username,
		FirstName:   userReq.FirstName,
		LastName:    userReq.LastName,
		Email:       userReq.Email,
		PhoneNumber: userReq.PhoneNumber,
		Address:     userReq.Address,
	}
	if err := json.NewEncoder(b).Encode(profileReq); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, b)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", echo.MIMEApplicationJSON)
	resp, err := c.client.Do(req)
	if err != nil {
		return errors.New("exchange service unavailable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusConflict:
		return errs.ErrAlreadyExists
	case resp.StatusCode >= 400:
		d, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return errors.New(string(d))
	}
	return nil
}
