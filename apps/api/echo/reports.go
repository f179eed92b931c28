package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/zenflowhq/zenflow/core/client"
	"github.com/zenflowhq/zenflow/core/employee"
	"github.com/zenflowhq/zenflow/core/payment"
	"github.com/zenflowhq/zenflow/core/reporting"
)

type reportsApi struct {
	payments *payment.Service
	clients  *client.Service
}

func registerReportsAPI(g *echo.Group, jwt echo.MiddlewareFunc, payments *payment.Service, clients *client.Service) {
	api := reportsApi{payments: payments, clients: clients}

	rg := g.Group("/reports", jwt)
	rg.GET("/revenue", api.revenue, requirePermission(employee.PermPayments))
	rg.GET("/overdue", api.overdue, requirePermission(employee.PermClients))
	rg.POST("/reminders", api.remind, requirePermission(employee.PermClients))
}

func (api *reportsApi) revenue(ctx echo.Context) error {
	records, err := api.payments.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying payment records")
	}
	return ctx.JSON(http.StatusOK, reporting.Summarize(records, time.Now()))
}

func (api *reportsApi) overdue(ctx echo.Context) error {
	clients, err := api.clients.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying clients")
	}
	return ctx.JSON(http.StatusOK, reporting.OverdueClients(clients, time.Now()))
}

func (api *reportsApi) remind(ctx echo.Context) error {
	sent, err := api.clients.SendOverdueReminders(ctx.Request().Context(), time.Now())
	if err != nil {
		return errors.Wrap(err, "sending overdue reminders")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"sent": sent})
}
