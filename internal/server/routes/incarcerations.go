package routes

import (
	"net/http"

	"github.com/black-vein/oracle/backend/internal/server/middleware"
	"github.com/black-vein/oracle/backend/internal/util"
	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func GetIncarcerationsHandler(c echo.Context) error {
	type incarcerationQuery struct {
		Active bool `query:"active"`
	}

	params := new(incarcerationQuery)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	var records []pgdb.ListIncarcerationsRow
	var err error
	if params.Active {
		records, err = q.ListActiveIncarcerations(ctx)
	} else {
		records, err = q.ListIncarcerations(ctx)
	}
	if err != nil {
		return writeDBError(c, err, "No incarcerations found")
	}
	if records == nil {
		records = []pgdb.ListIncarcerationsRow{}
	}

	return c.JSON(http.StatusOK, records)
}

func GetIncarcerationHandler(c echo.Context) error {
	type getIncarcerationParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(getIncarcerationParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	incarceration, err := q.GetIncarcerationByID(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Incarceration not found")
	}

	return c.JSON(http.StatusOK, incarceration)
}

func PostIncarcerationHandler(c echo.Context) error {
	type postIncarcerationBody struct {
		CriminalID int64  `json:"criminal_id" validate:"required,numeric"`
		ArrestID   *int64 `json:"arrest_id"`
		CellID     int64  `json:"cell_id" validate:"required,numeric"`
	}

	type postIncarcerationResponse struct {
		Message       string              `json:"message"`
		Incarceration *pgdb.Incarceration `json:"incarceration,omitempty"`
	}

	body := new(postIncarcerationBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, postIncarcerationResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, postIncarcerationResponse{Message: "Invalid request body"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn

	tx, err := conn.Begin(ctx)
	if err != nil {
		return writeDBError(c, err, "Cell not found")
	}
	defer tx.Rollback(ctx)
	qtx := pgdb.New(conn).WithTx(tx)

	if _, err := qtx.GetCriminalByID(ctx, body.CriminalID); err != nil {
		return writeDBError(c, err, "Criminal not found")
	}

	cell, err := qtx.GetCellForUpdate(ctx, body.CellID)
	if err != nil {
		return writeDBError(c, err, "Cell not found")
	}

	occupants, err := qtx.CountActiveCellOccupants(ctx, cell.ID)
	if err != nil {
		return writeDBError(c, err, "Cell not found")
	}
	if occupants >= int64(cell.Capacity) {
		return c.JSON(http.StatusConflict, postIncarcerationResponse{Message: "Cell is at capacity"})
	}

	incarceration, err := qtx.CreateIncarceration(ctx, pgdb.CreateIncarcerationParams{
		CriminalID: body.CriminalID,
		ArrestID:   util.NullInt64(body.ArrestID),
		CellID:     cell.ID,
	})
	if err != nil {
		return writeDBError(c, err, "Cell not found")
	}

	err = qtx.UpdateCriminalStatus(ctx, pgdb.UpdateCriminalStatusParams{
		ID:     body.CriminalID,
		Status: "in_custody",
	})
	if err != nil {
		return writeDBError(c, err, "Criminal not found")
	}

	if err := tx.Commit(ctx); err != nil {
		return writeDBError(c, err, "Cell not found")
	}

	publishAudit(c, "incarceration.admitted", "incarceration", incarceration.ID, incarceration)

	return c.JSON(http.StatusCreated, postIncarcerationResponse{
		Message:       "Criminal admitted",
		Incarceration: &incarceration,
	})
}

func PatchIncarcerationCellHandler(c echo.Context) error {
	type transferBody struct {
		ID     int64 `param:"id" validate:"required,numeric"`
		CellID int64 `json:"cell_id" validate:"required,numeric"`
	}

	type transferResponse struct {
		Message       string              `json:"message"`
		Incarceration *pgdb.Incarceration `json:"incarceration,omitempty"`
	}

	body := new(transferBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, transferResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, transferResponse{Message: "Invalid request body"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn

	tx, err := conn.Begin(ctx)
	if err != nil {
		return writeDBError(c, err, "Incarceration not found")
	}
	defer tx.Rollback(ctx)
	qtx := pgdb.New(conn).WithTx(tx)

	cell, err := qtx.GetCellForUpdate(ctx, body.CellID)
	if err != nil {
		return writeDBError(c, err, "Cell not found")
	}

	occupants, err := qtx.CountActiveCellOccupants(ctx, cell.ID)
	if err != nil {
		return writeDBError(c, err, "Cell not found")
	}
	if occupants >= int64(cell.Capacity) {
		return c.JSON(http.StatusConflict, transferResponse{Message: "Cell is at capacity"})
	}

	// Only open incarcerations can be moved; a released record falls
	// through as not found.
	incarceration, err := qtx.TransferIncarcerationCell(ctx, pgdb.TransferIncarcerationCellParams{
		ID:     body.ID,
		CellID: cell.ID,
	})
	if err != nil {
		return writeDBError(c, err, "Incarceration not found or already released")
	}

	if err := tx.Commit(ctx); err != nil {
		return writeDBError(c, err, "Incarceration not found")
	}

	publishAudit(c, "incarceration.transferred", "incarceration", incarceration.ID, incarceration)

	return c.JSON(http.StatusOK, transferResponse{
		Message:       "Criminal transferred",
		Incarceration: &incarceration,
	})
}

func PatchIncarcerationReleaseHandler(c echo.Context) error {
	type releaseBody struct {
		ID            int64   `param:"id" validate:"required,numeric"`
		ReleaseReason *string `json:"release_reason"`
	}

	type releaseResponse struct {
		Message       string              `json:"message"`
		Incarceration *pgdb.Incarceration `json:"incarceration,omitempty"`
	}

	body := new(releaseBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, releaseResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, releaseResponse{Message: "Invalid request body"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn

	tx, err := conn.Begin(ctx)
	if err != nil {
		return writeDBError(c, err, "Incarceration not found")
	}
	defer tx.Rollback(ctx)
	qtx := pgdb.New(conn).WithTx(tx)

	incarceration, err := qtx.ReleaseIncarceration(ctx, pgdb.ReleaseIncarcerationParams{
		ID:            body.ID,
		ReleaseReason: util.NullString(body.ReleaseReason),
	})
	if err != nil {
		return writeDBError(c, err, "Incarceration not found or already released")
	}

	err = qtx.UpdateCriminalStatus(ctx, pgdb.UpdateCriminalStatusParams{
		ID:     incarceration.CriminalID,
		Status: "released",
	})
	if err != nil {
		return writeDBError(c, err, "Incarceration not found")
	}

	if err := tx.Commit(ctx); err != nil {
		return writeDBError(c, err, "Incarceration not found")
	}

	publishAudit(c, "incarceration.released", "incarceration", incarceration.ID, incarceration)

	return c.JSON(http.StatusOK, releaseResponse{
		Message:       "Criminal released",
		Incarceration: &incarceration,
	})
}
