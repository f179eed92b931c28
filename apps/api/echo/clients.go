package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/zenflowhq/zenflow/core/client"
	"github.com/zenflowhq/zenflow/core/employee"
)

type clientApi struct {
	svc *client.Service
}

func registerClientAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *client.Service) {
	api := clientApi{svc: svc}

	cg := g.Group("/clients", jwt, requirePermission(employee.PermClients))
	cg.GET("", api.query)
	cg.POST("", api.create)
	cg.GET("/:id", api.retrieve)
	cg.PUT("/:id", api.update)
	cg.DELETE("/:id", api.destroy)
}

func (api *clientApi) query(ctx echo.Context) error {
	clients, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying clients")
	}
	if clients == nil {
		clients = []client.Client{}
	}
	return ctx.JSON(http.StatusOK, clients)
}

func (api *clientApi) create(ctx echo.Context) error {
	var data client.NewClient
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewClient")
	}

	c, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, c)
}

func (api *clientApi) retrieve(ctx echo.Context) error {
	c, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *clientApi) update(ctx echo.Context) error {
	var data client.UpdateClient
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateClient")
	}

	c, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *clientApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
