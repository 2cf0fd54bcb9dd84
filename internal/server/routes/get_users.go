package routes

import (
	"net/http"

	"github.com/black-vein/oracle/backend/internal/server/middleware"
	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func GetUsersHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	users, err := q.ListUsers(ctx)
	if err != nil {
		return writeDBError(c, err, "No users found")
	}
	if users == nil {
		users = []pgdb.User{}
	}

	return c.JSON(http.StatusOK, users)
}

func GetUserHandler(c echo.Context) error {
	type getUserParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	type getUserResponse struct {
		Message string          `json:"message"`
		User    *pgdb.User      `json:"user,omitempty"`
		Reports []pgdb.GdReport `json:"reports,omitempty"`
	}

	params := new(getUserParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getUserResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getUserResponse{Message: "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	user, err := q.GetUserByID(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "User not found")
	}

	reports, err := q.ListUserReports(ctx, user.ID)
	if err != nil {
		return writeDBError(c, err, "User not found")
	}

	return c.JSON(http.StatusOK, getUserResponse{
		Message: "User found",
		User:    &user,
		Reports: reports,
	})
}
