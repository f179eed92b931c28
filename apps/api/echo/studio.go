package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/zenflowhq/zenflow/core/employee"
	"github.com/zenflowhq/zenflow/core/studio"
)

type studioApi struct {
	svc *studio.Service
}

func registerStudioAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *studio.Service) {
	api := studioApi{svc: svc}

	sg := g.Group("/studio-profile", jwt, requirePermission(employee.PermSettings))
	sg.GET("", api.retrieve)
	sg.PUT("", api.update)
}

func (api *studioApi) retrieve(ctx echo.Context) error {
	p, err := api.svc.Get(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "getting studio profile")
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *studioApi) update(ctx echo.Context) error {
	var data studio.Profile
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Profile")
	}

	p, err := api.svc.Update(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p)
}
