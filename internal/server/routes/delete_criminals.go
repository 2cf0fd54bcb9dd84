package routes

import (
	"net/http"

	"github.com/black-vein/oracle/backend/internal/server/middleware"
	"github.com/black-vein/oracle/backend/internal/storage"
	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"
	"github.com/black-vein/oracle/backend/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func DeleteCriminalHandler(c echo.Context) error {
	type deleteCriminalParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(deleteCriminalParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App
	q := pgdb.New(app.DBConn)

	criminal, err := q.GetCriminalByID(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Criminal not found")
	}

	if err := q.DeleteCriminal(ctx, criminal.ID); err != nil {
		return writeDBError(c, err, "Criminal not found")
	}

	if criminal.PhotoKey.Valid && app.S3 != nil {
		if err := storage.DeleteFile(ctx, app.S3, criminal.PhotoKey.String); err != nil {
			logger.Warn("Failed to delete criminal photo", "key", criminal.PhotoKey.String, "err", err)
		}
	}

	publishAudit(c, "criminal.deleted", "criminal", criminal.ID, criminal)

	return c.JSON(http.StatusOK, map[string]string{"message": "Criminal deleted"})
}
