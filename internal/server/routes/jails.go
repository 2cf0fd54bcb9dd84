package routes

import (
	"net/http"

	"github.com/black-vein/oracle/backend/internal/server/middleware"
	serverutil "github.com/black-vein/oracle/backend/internal/server/util"
	"github.com/black-vein/oracle/backend/internal/util"
	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func GetJailsHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	jails, err := q.ListJails(ctx)
	if err != nil {
		return writeDBError(c, err, "No jails found")
	}
	if jails == nil {
		jails = []pgdb.ListJailsRow{}
	}

	return c.JSON(http.StatusOK, jails)
}

func GetJailHandler(c echo.Context) error {
	type getJailParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	type getJailResponse struct {
		Message string                 `json:"message"`
		Jail    *pgdb.Jail             `json:"jail,omitempty"`
		Blocks  []serverutil.JailBlock `json:"blocks,omitempty"`
	}

	params := new(getJailParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getJailResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getJailResponse{Message: "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	jail, err := q.GetJailByID(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Jail not found")
	}

	rows, err := q.GetJailHierarchy(ctx, jail.ID)
	if err != nil {
		return writeDBError(c, err, "Jail not found")
	}

	return c.JSON(http.StatusOK, getJailResponse{
		Message: "Jail found",
		Jail:    &jail,
		Blocks:  serverutil.BuildJailTree(rows),
	})
}

func GetJailPrisonersHandler(c echo.Context) error {
	type prisonersParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(prisonersParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	if _, err := q.GetJailByID(ctx, params.ID); err != nil {
		return writeDBError(c, err, "Jail not found")
	}

	prisoners, err := q.ListJailPrisoners(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Jail not found")
	}
	if prisoners == nil {
		prisoners = []pgdb.JailPrisonerRow{}
	}

	return c.JSON(http.StatusOK, prisoners)
}

func PostJailHandler(c echo.Context) error {
	type postJailBody struct {
		Name       string  `json:"name" validate:"required"`
		Location   *string `json:"location"`
		Capacity   int32   `json:"capacity" validate:"required,min=1"`
		WardenName *string `json:"warden_name"`
		Phone      *string `json:"phone"`
	}

	type postJailResponse struct {
		Message string     `json:"message"`
		Jail    *pgdb.Jail `json:"jail,omitempty"`
	}

	body := new(postJailBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, postJailResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, postJailResponse{Message: "Invalid request body"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	jail, err := q.CreateJail(ctx, pgdb.CreateJailParams{
		Name:       body.Name,
		Location:   util.NullString(body.Location),
		Capacity:   body.Capacity,
		WardenName: util.NullString(body.WardenName),
		Phone:      util.NullString(body.Phone),
	})
	if err != nil {
		return writeDBError(c, err, "Jail not found")
	}

	publishAudit(c, "jail.created", "jail", jail.ID, jail)

	return c.JSON(http.StatusCreated, postJailResponse{
		Message: "Jail created",
		Jail:    &jail,
	})
}

func PatchJailHandler(c echo.Context) error {
	type patchJailBody struct {
		ID         int64   `param:"id" validate:"required,numeric"`
		Name       string  `json:"name" validate:"required"`
		Location   *string `json:"location"`
		Capacity   int32   `json:"capacity" validate:"required,min=1"`
		WardenName *string `json:"warden_name"`
		Phone      *string `json:"phone"`
	}

	type patchJailResponse struct {
		Message string     `json:"message"`
		Jail    *pgdb.Jail `json:"jail,omitempty"`
	}

	body := new(patchJailBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, patchJailResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, patchJailResponse{Message: "Invalid request body"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	jail, err := q.UpdateJail(ctx, pgdb.UpdateJailParams{
		ID:         body.ID,
		Name:       body.Name,
		Location:   util.NullString(body.Location),
		Capacity:   body.Capacity,
		WardenName: util.NullString(body.WardenName),
		Phone:      util.NullString(body.Phone),
	})
	if err != nil {
		return writeDBError(c, err, "Jail not found")
	}

	publishAudit(c, "jail.updated", "jail", jail.ID, jail)

	return c.JSON(http.StatusOK, patchJailResponse{
		Message: "Jail updated",
		Jail:    &jail,
	})
}

func DeleteJailHandler(c echo.Context) error {
	type deleteJailParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(deleteJailParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	jail, err := q.GetJailByID(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Jail not found")
	}

	if err := q.DeleteJail(ctx, jail.ID); err != nil {
		return writeDBError(c, err, "Jail not found")
	}

	publishAudit(c, "jail.deleted", "jail", jail.ID, jail)

	return c.JSON(http.StatusOK, map[string]string{"message": "Jail deleted"})
}
