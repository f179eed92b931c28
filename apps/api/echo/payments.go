package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/zenflowhq/zenflow/core/employee"
	"github.com/zenflowhq/zenflow/core/payment"
)

type paymentApi struct {
	svc *payment.Service
}

// Payments are immutable once recorded; only create and read routes exist.
func registerPaymentAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *payment.Service) {
	api := paymentApi{svc: svc}

	pg := g.Group("/payments", jwt, requirePermission(employee.PermPayments))
	pg.GET("", api.query)
	pg.POST("", api.create)
	pg.GET("/summary", api.summary)
	pg.GET("/:id", api.retrieve)
}

func (api *paymentApi) query(ctx echo.Context) error {
	records, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying payment records")
	}
	if records == nil {
		records = []payment.Record{}
	}
	return ctx.JSON(http.StatusOK, records)
}

func (api *paymentApi) create(ctx echo.Context) error {
	var data payment.NewRecord
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRecord")
	}

	r, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, r)
}

func (api *paymentApi) retrieve(ctx echo.Context) error {
	r, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, r)
}

func (api *paymentApi) summary(ctx echo.Context) error {
	summaries, err := api.svc.Summaries(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "summarizing payments")
	}
	if summaries == nil {
		summaries = []payment.Summary{}
	}
	return ctx.JSON(http.StatusOK, summaries)
}
