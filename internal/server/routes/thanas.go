package routes

import (
	"net/http"

	"github.com/black-vein/oracle/backend/internal/server/middleware"
	"github.com/black-vein/oracle/backend/internal/util"
	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func GetThanasHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	thanas, err := q.ListThanas(ctx)
	if err != nil {
		return writeDBError(c, err, "No thanas found")
	}
	if thanas == nil {
		thanas = []pgdb.ListThanasRow{}
	}

	return c.JSON(http.StatusOK, thanas)
}

func GetThanaHandler(c echo.Context) error {
	type getThanaParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(getThanaParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	thana, err := q.GetThanaByID(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Thana not found")
	}

	return c.JSON(http.StatusOK, thana)
}

func PostThanaHandler(c echo.Context) error {
	type postThanaBody struct {
		Name            string  `json:"name" validate:"required"`
		District        string  `json:"district" validate:"required"`
		Address         *string `json:"address"`
		Phone           *string `json:"phone"`
		OfficerInCharge *int64  `json:"officer_in_charge"`
	}

	type postThanaResponse struct {
		Message string      `json:"message"`
		Thana   *pgdb.Thana `json:"thana,omitempty"`
	}

	body := new(postThanaBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, postThanaResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, postThanaResponse{Message: "Invalid request body"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	thana, err := q.CreateThana(ctx, pgdb.CreateThanaParams{
		Name:            body.Name,
		District:        body.District,
		Address:         util.NullString(body.Address),
		Phone:           util.NullString(body.Phone),
		OfficerInCharge: util.NullInt64(body.OfficerInCharge),
	})
	if err != nil {
		return writeDBError(c, err, "Thana not found")
	}

	publishAudit(c, "thana.created", "thana", thana.ID, thana)

	return c.JSON(http.StatusCreated, postThanaResponse{
		Message: "Thana created",
		Thana:   &thana,
	})
}

func PatchThanaHandler(c echo.Context) error {
	type patchThanaBody struct {
		ID              int64   `param:"id" validate:"required,numeric"`
		Name            string  `json:"name" validate:"required"`
		District        string  `json:"district" validate:"required"`
		Address         *string `json:"address"`
		Phone           *string `json:"phone"`
		OfficerInCharge *int64  `json:"officer_in_charge"`
	}

	type patchThanaResponse struct {
		Message string      `json:"message"`
		Thana   *pgdb.Thana `json:"thana,omitempty"`
	}

	body := new(patchThanaBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, patchThanaResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, patchThanaResponse{Message: "Invalid request body"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	thana, err := q.UpdateThana(ctx, pgdb.UpdateThanaParams{
		ID:              body.ID,
		Name:            body.Name,
		District:        body.District,
		Address:         util.NullString(body.Address),
		Phone:           util.NullString(body.Phone),
		OfficerInCharge: util.NullInt64(body.OfficerInCharge),
	})
	if err != nil {
		return writeDBError(c, err, "Thana not found")
	}

	publishAudit(c, "thana.updated", "thana", thana.ID, thana)

	return c.JSON(http.StatusOK, patchThanaResponse{
		Message: "Thana updated",
		Thana:   &thana,
	})
}

func DeleteThanaHandler(c echo.Context) error {
	type deleteThanaParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(deleteThanaParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	thana, err := q.GetThanaByID(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Thana not found")
	}

	if err := q.DeleteThana(ctx, thana.ID); err != nil {
		return writeDBError(c, err, "Thana not found")
	}

	publishAudit(c, "thana.deleted", "thana", thana.ID, thana)

	return c.JSON(http.StatusOK, map[string]string{"message": "Thana deleted"})
}
