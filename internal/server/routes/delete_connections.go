package routes

import (
	"net/http"

	"github.com/black-vein/oracle/backend/internal/server/middleware"
	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func DeleteConnectionHandler(c echo.Context) error {
	type deleteConnectionParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(deleteConnectionParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	if err := q.DeleteRelationship(ctx, params.ID); err != nil {
		return writeDBError(c, err, "Connection not found")
	}

	publishAudit(c, "connection.deleted", "relationship", params.ID, nil)

	return c.JSON(http.StatusOK, map[string]string{"message": "Connection deleted"})
}
