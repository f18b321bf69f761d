package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// crud serves the list/detail/create/update/delete routes of one entity.
type crud[T any, K comparable] struct {
	h       *Handler
	svc     CRUD[T, K]
	parseID func(string) (K, error)
}

func newCRUD[T any, K comparable](h *Handler, svc CRUD[T, K], parseID func(string) (K, error)) *crud[T, K] {
	return &crud[T, K]{h: h, svc: svc, parseID: parseID}
}

func (r *crud[T, K]) register(g *echo.Group, path string) {
	g.GET(path, r.list)
	g.POST(path, r.create)
	g.GET(path+"/:id", r.get)
	g.PUT(path+"/:id", r.update)
	g.PATCH(path+"/:id", r.patch)
	g.DELETE(path+"/:id", r.delete)
}

func (r *crud[T, K]) list(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}
	list, err := r.svc.List(c.Request().Context(), page)
	if err != nil {
		return r.h.fail(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (r *crud[T, K]) get(c echo.Context) error {
	id, err := r.parseID(c.Param("id"))
	if err != nil {
		return r.h.fail(err)
	}
	v, err := r.svc.Get(c.Request().Context(), id)
	if err != nil {
		return r.h.fail(err)
	}
	return c.JSON(http.StatusOK, v)
}

func (r *crud[T, K]) create(c echo.Context) error {
	var v T
	if err := (&echo.DefaultBinder{}).BindBody(c, &v); err != nil {
		return err
	}
	out, err := r.svc.Create(c.Request().Context(), v)
	if err != nil {
		return r.h.fail(err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (r *crud[T, K]) update(c echo.Context) error {
	id, err := r.parseID(c.Param("id"))
	if err != nil {
		return r.h.fail(err)
	}
	var v T
	if err = (&echo.DefaultBinder{}).BindBody(c, &v); err != nil {
		return err
	}
	out, err := r.svc.Update(c.Request().Context(), id, v)
	if err != nil {
		return r.h.fail(err)
	}
	return c.JSON(http.StatusOK, out)
}

// patch decodes the body over the stored record so absent fields keep
// their values.
func (r *crud[T, K]) patch(c echo.Context) error {
	id, err := r.parseID(c.Param("id"))
	if err != nil {
		return r.h.fail(err)
	}
	out, err := r.svc.Patch(c.Request().Context(), id, func(cur *T) error {
		if err := (&echo.DefaultBinder{}).BindBody(c, cur); err != nil {
			var he *echo.HTTPError
			if errors.As(err, &he) {
				return errors.Errorf("%v", he.Message)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return r.h.fail(err)
	}
	return c.JSON(http.StatusOK, out)
}

func (r *crud[T, K]) delete(c echo.Context) error {
	id, err := r.parseID(c.Param("id"))
	if err != nil {
		return r.h.fail(err)
	}
	if err = r.svc.Delete(c.Request().Context(), id); err != nil {
		return r.h.fail(err)
	}
	return c.NoContent(http.StatusNoContent)
}
