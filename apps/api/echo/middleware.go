package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/zenflowhq/zenflow/core/employee"
)

// requirePermission guards a resource group behind the employee permission
// model: an explicit grant, the "all" grant, or the manager role implicitly.
func requirePermission(p employee.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			if claims.employee().HasPermission(p) {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}
