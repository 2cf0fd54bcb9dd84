package routes

import (
	"net/http"

	"github.com/black-vein/oracle/backend/internal/server/middleware"
	"github.com/black-vein/oracle/backend/internal/util"
	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func GetAlertsHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	alerts, err := q.ListOpenAlerts(ctx)
	if err != nil {
		return writeDBError(c, err, "No alerts found")
	}
	if alerts == nil {
		alerts = []pgdb.Alert{}
	}

	return c.JSON(http.StatusOK, alerts)
}

func PatchAlertHandledHandler(c echo.Context) error {
	type patchAlertParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	type patchAlertResponse struct {
		Message string      `json:"message"`
		Alert   *pgdb.Alert `json:"alert,omitempty"`
	}

	params := new(patchAlertParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, patchAlertResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, patchAlertResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	ctx := c.Request().Context()
	q := pgdb.New(cc.App.DBConn)

	var handledBy *int64
	if cc.User != nil && cc.User.UserID > 0 {
		handledBy = &cc.User.UserID
	}

	alert, err := q.MarkAlertHandled(ctx, pgdb.MarkAlertHandledParams{
		ID:        params.ID,
		HandledBy: util.NullInt64(handledBy),
	})
	if err != nil {
		return writeDBError(c, err, "Alert not found")
	}

	publishAudit(c, "alert.handled", "alert", alert.ID, alert)

	return c.JSON(http.StatusOK, patchAlertResponse{
		Message: "Alert handled",
		Alert:   &alert,
	})
}
