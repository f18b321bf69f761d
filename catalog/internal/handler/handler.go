package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	_ "github.com/Astemirdum/catalog-service/catalog/swagger"
	md "github.com/Astemirdum/catalog-service/pkg/middleware"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

const sessionCookie = "sessionid"

type Config struct {
	// HMAC key for bearer tokens
	Secret     []byte
	SessionTTL time.Duration
}

type Handler struct {
	svc Services
	cfg Config
	log *zap.Logger
}

func New(svc Services, cfg Config, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		cfg: cfg,
		log: log.Named("handler"),
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
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.JwtAuthentication(h.cfg.Secret),
	)

	api.GET("/", h.Summary)
	api.GET("/mybooks", h.MyBooks)
	api.GET("/borrowed", h.Borrowed)
	api.GET("/bookinstances/:id/renew", h.RenewForm)
	api.POST("/bookinstances/:id/renew", h.RenewLoan)

	api.GET("/authors/:id/books", h.AuthorBooks)
	api.GET("/genres/:id/books", h.GenreBooks)
	api.GET("/languages/:id/books", h.LanguageBooks)
	api.GET("/books/:id/instances", h.BookInstances)

	newCRUD(h, h.svc.Genres, intID).register(api, "/genres")
	newCRUD(h, h.svc.Languages, intID).register(api, "/languages")
	newCRUD(h, h.svc.Authors, intID).register(api, "/authors")
	newCRUD(h, h.svc.Books, intID).register(api, "/books")
	newCRUD(h, h.svc.Instances, uuidID).register(api, "/bookinstances")

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Summary godoc
// @Summary home page counters
// @Tags catalog
// @Produce json
// @Success 200 {object} model.Summary
// @Failure 401 {object} errs.ValidationErrorResponse
// @Router / [get]
func (h *Handler) Summary(c echo.Context) error {
	sid := h.session(c)
	sum, err := h.svc.Catalog.Summary(c.Request().Context(), sid)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, sum)
}

// session returns the caller's session id, issuing a new cookie when absent.
func (h *Handler) session(c echo.Context) string {
	if ck, err := c.Cookie(sessionCookie); err == nil && ck.Value != "" {
		return ck.Value
	}
	sid := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}

// MyBooks godoc
// @Summary copies on loan to the caller
// @Tags loans
// @Produce json
// @Param page query int false "page"
// @Success 200 {object} model.List[model.BookInstance]
// @Router /mybooks [get]
func (h *Handler) MyBooks(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}
	list, err := h.svc.Catalog.MyLoans(c.Request().Context(), page)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, list)
}

// Borrowed godoc
// @Summary every copy, soonest due first
// @Tags loans
// @Produce json
// @Param page query int false "page"
// @Success 200 {object} model.List[model.BookInstance]
// @Failure 403 {object} errs.ValidationErrorResponse
// @Router /borrowed [get]
func (h *Handler) Borrowed(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}
	list, err := h.svc.Catalog.AllLoans(c.Request().Context(), page)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) RenewForm(c echo.Context) error {
	id, err := uuidID(c.Param("id"))
	if err != nil {
		return h.fail(err)
	}
	form, err := h.svc.Catalog.RenewForm(c.Request().Context(), id)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, form)
}

// RenewLoan godoc
// @Summary move the due date of a copy
// @Tags loans
// @Accept json
// @Produce json
// @Param id path string true "instance id"
// @Param request body model.RenewRequest true "new due date"
// @Success 200 {object} model.BookInstance
// @Failure 400 {object} errs.ValidationErrorResponse
// @Router /bookinstances/{id}/renew [post]
func (h *Handler) RenewLoan(c echo.Context) error {
	id, err := uuidID(c.Param("id"))
	if err != nil {
		return h.fail(err)
	}
	var req model.RenewRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	if req.RenewalDate.IsZero() {
		return h.fail(errs.NewValidation("renewalDate", "this field is required"))
	}
	inst, err := h.svc.Catalog.RenewLoan(c.Request().Context(), id, req.RenewalDate)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, inst)
}

func (h *Handler) AuthorBooks(c echo.Context) error {
	return h.related(c, h.svc.Catalog.AuthorBooks)
}

func (h *Handler) GenreBooks(c echo.Context) error {
	return h.related(c, h.svc.Catalog.GenreBooks)
}

func (h *Handler) LanguageBooks(c echo.Context) error {
	return h.related(c, h.svc.Catalog.LanguageBooks)
}

func (h *Handler) BookInstances(c echo.Context) error {
	id, err := intID(c.Param("id"))
	if err != nil {
		return h.fail(err)
	}
	page, err := pageParam(c)
	if err != nil {
		return err
	}
	list, err := h.svc.Catalog.BookInstances(c.Request().Context(), id, page)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) related(c echo.Context, list func(ctx context.Context, id, page int) (model.List[model.Book], error)) error {
	id, err := intID(c.Param("id"))
	if err != nil {
		return h.fail(err)
	}
	page, err := pageParam(c)
	if err != nil {
		return err
	}
	books, err := list(c.Request().Context(), id, page)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, books)
}

// fail maps service errors onto HTTP statuses.
func (h *Handler) fail(err error) error {
	var verr *errs.ValidationError
	switch {
	case errors.As(err, &verr):
		return echo.NewHTTPError(http.StatusBadRequest, errs.ValidationErrorResponse{
			Message: errs.ErrValidation.Error(),
			Errors:  verr.Fields,
		})
	case errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		h.log.Error("internal", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func pageParam(c echo.Context) (int, error) {
	p := c.QueryParam("page")
	if p == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(p)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "page is invalid")
	}
	return page, nil
}

// ids that do not parse cannot name a record
func intID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.ErrNotFound
	}
	return id, nil
}

func uuidID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errs.ErrNotFound
	}
	return id, nil
}
