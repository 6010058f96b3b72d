package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/trocalivro/exchange-service/exchange/internal/errs"
	"github.com/trocalivro/exchange-service/exchange/internal/model"
	"github.com/trocalivro/exchange-service/pkg/auth"
	md "github.com/trocalivro/exchange-service/pkg/middleware"
	"github.com/trocalivro/exchange-service/pkg/validate"
)

const recentBooksLimit = 12

type Handler struct {
	exchangeSvc ExchangeService
	log         *zap.Logger
}

func New(exchangeSvc ExchangeService, log *zap.Logger) *Handler {
	return &Handler{
		exchangeSvc: exchangeSvc,
		log:         log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	// called by the identity provider when a user registers
	api.POST("/profiles", h.CreateProfile)

	api.GET("/books", h.GetBooks)
	api.GET("/books/:bookUid", h.GetBook)

	protected := api.Group("", md.JwtAuthentication)
	protected.GET("/profiles/me", h.GetProfile)
	protected.PUT("/profiles/me", h.UpdateProfile)
	protected.GET("/profiles/me/books", h.MyBooks)
	protected.POST("/books", h.AddBook)

	protected.POST("/exchanges", h.CreateExchange)
	protected.POST("/exchanges/:exchangeUid/respond", h.RespondExchange)
	protected.GET("/exchanges/sent", h.GetSentExchanges)
	protected.GET("/exchanges/received", h.GetReceivedExchanges)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) CreateProfile(c echo.Context) error {
	var req model.CreateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	profile, err := h.exchangeSvc.CreateProfile(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, profile)
}

func (h *Handler) GetProfile(c echo.Context) error {
	userName, err := auth.GetUserName(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	profile, err := h.exchangeSvc.GetProfile(c.Request().Context(), userName)
	if err != nil {
		return h.domainError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	userName, err := auth.GetUserName(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	profile, err := h.exchangeSvc.UpdateProfile(c.Request().Context(), userName, req)
	if err != nil {
		return h.domainError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) AddBook(c echo.Context) error {
	userName, err := auth.GetUserName(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.exchangeSvc.AddBook(c.Request().Context(), userName, req)
	if err != nil {
		return h.domainError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) GetBook(c echo.Context) error {
	bookUid := c.Param("bookUid")
	book, err := h.exchangeSvc.GetBook(c.Request().Context(), bookUid)
	if err != nil {
		return h.domainError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) GetBooks(c echo.Context) error {
	ctx := c.Request().Context()
	var (
		books []model.Book
		err   error
	)
	if query := c.QueryParam("query"); query != "" {
		books, err = h.exchangeSvc.SearchBooks(ctx, query)
	} else {
		books, err = h.exchangeSvc.ListRecentBooks(ctx, recentBooksLimit)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) MyBooks(c echo.Context) error {
	userName, err := auth.GetUserName(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	books, err := h.exchangeSvc.MyBooks(c.Request().Context(), userName)
	if err != nil {
		return h.domainError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) CreateExchange(c echo.Context) error {
	userName, err := auth.GetUserName(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.CreateExchangeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ex, err := h.exchangeSvc.CreateExchangeRequest(c.Request().Context(), userName, req.BookUid)
	if err != nil {
		return h.domainError(err)
	}
	return c.JSON(http.StatusCreated, ex)
}

func (h *Handler) RespondExchange(c echo.Context) error {
	userName, err := auth.GetUserName(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	exchangeUid := c.Param("exchangeUid")
	if exchangeUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "exchangeUid is empty")
	}
	var req model.RespondExchangeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ex, err := h.exchangeSvc.RespondToExchangeRequest(c.Request().Context(), userName, exchangeUid, req)
	if err != nil {
		return h.domainError(err)
	}
	return c.JSON(http.StatusOK, ex)
}

func (h *Handler) GetSentExchanges(c echo.Context) error {
	userName, err := auth.GetUserName(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	items, err := h.exchangeSvc.GetSentRequests(c.Request().Context(), userName)
	if err != nil {
		return h.domainError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetReceivedExchanges(c echo.Context) error {
	userName, err := auth.GetUserName(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	items, err := h.exchangeSvc.GetReceivedRequests(c.Request().Context(), userName)
	if err != nil {
		return h.domainError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) domainError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrBookNotFound),
		errors.Is(err, errs.ErrExchangeNotFound),
		errors.Is(err, errs.ErrProfileNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrSelfExchange),
		errors.Is(err, errs.ErrNotOwner):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrDuplicateRequest),
		errors.Is(err, errs.ErrBookNotAvailable),
		errors.Is(err, errs.ErrAlreadyResolved),
		errors.Is(err, errs.ErrAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalidAction):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
