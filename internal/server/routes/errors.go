package routes

import (
	"errors"
	"net/http"

	"github.com/black-vein/oracle/backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

const uniqueViolation = "23505"

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func isIntegrityViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// writeDBError maps a query failure onto the right status code: missing
// rows are the caller's problem, duplicates are a bad request, anything
// else means the store is unavailable.
func writeDBError(c echo.Context, err error, notFoundMsg string) error {
	if isNotFound(err) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": notFoundMsg})
	}
	if isIntegrityViolation(err) {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "A record with these values already exists"})
	}
	logger.Error("Database query failed", "path", c.Path(), "err", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
}
