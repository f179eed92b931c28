package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/zenflowhq/zenflow/core/employee"
)

type employeeApi struct {
	svc *employee.Service
}

func registerEmployeeAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *employee.Service) {
	api := employeeApi{svc: svc}

	eg := g.Group("/employees", jwt, requirePermission(employee.PermEmployees))
	eg.GET("", api.query)
	eg.POST("", api.create)
	eg.GET("/:id", api.retrieve)
	eg.PUT("/:id", api.update)
	eg.DELETE("/:id", api.destroy)
}

func (api *employeeApi) query(ctx echo.Context) error {
	employees, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying employees")
	}
	if employees == nil {
		employees = []employee.Employee{}
	}
	return ctx.JSON(http.StatusOK, employees)
}

func (api *employeeApi) create(ctx echo.Context) error {
	var data employee.NewEmployee
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEmployee")
	}

	e, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, e)
}

func (api *employeeApi) retrieve(ctx echo.Context) error {
	e, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, e)
}

func (api *employeeApi) update(ctx echo.Context) error {
	var data employee.UpdateEmployee
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateEmployee")
	}

	e, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, e)
}

func (api *employeeApi) destroy(ctx echo.Context) error {
	// cannot delete oneself
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	if claims.Subject == ctx.Param("id") {
		return errHttpForbidden
	}

	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
