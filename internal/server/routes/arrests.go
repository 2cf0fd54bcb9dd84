package routes

import (
	"net/http"
	"time"

	"github.com/black-vein/oracle/backend/internal/server/middleware"
	"github.com/black-vein/oracle/backend/internal/util"
	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// custodyToCriminalStatus maps an arrest custody state onto the criminal
// status it implies. Unknown custody states leave the criminal untouched.
func custodyToCriminalStatus(custodyStatus string) (string, bool) {
	switch custodyStatus {
	case "in_custody":
		return "in_custody", true
	case "on_bail":
		return "on_bail", true
	case "released":
		return "released", true
	case "escaped":
		return "escaped", true
	case "transferred":
		return "in_custody", true
	}
	return "", false
}

func GetArrestsHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	arrests, err := q.ListArrests(ctx)
	if err != nil {
		return writeDBError(c, err, "No arrests found")
	}
	if arrests == nil {
		arrests = []pgdb.ListArrestsRow{}
	}

	return c.JSON(http.StatusOK, arrests)
}

func GetArrestStatsHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	stats, err := q.GetArrestStats(ctx)
	if err != nil {
		return writeDBError(c, err, "No arrests found")
	}
	if stats == nil {
		stats = []pgdb.ArrestStatsRow{}
	}

	return c.JSON(http.StatusOK, stats)
}

func GetArrestHandler(c echo.Context) error {
	type getArrestParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(getArrestParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	arrest, err := q.GetArrestByID(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Arrest record not found")
	}

	return c.JSON(http.StatusOK, arrest)
}

func PostArrestHandler(c echo.Context) error {
	type postArrestBody struct {
		CriminalID    int64   `json:"criminal_id" validate:"required,numeric"`
		OfficerID     *int64  `json:"officer_id"`
		ThanaID       *int64  `json:"thana_id"`
		CaseID        *int64  `json:"case_id"`
		ArrestDate    *string `json:"arrest_date"`
		Location      *string `json:"location"`
		Charges       string  `json:"charges" validate:"required"`
		CustodyStatus string  `json:"custody_status" validate:"required,oneof=in_custody on_bail released escaped transferred"`
		Notes         *string `json:"notes"`
	}

	type postArrestResponse struct {
		Message string             `json:"message"`
		Arrest  *pgdb.ArrestRecord `json:"arrest,omitempty"`
	}

	body := new(postArrestBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, postArrestResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, postArrestResponse{Message: "Invalid request body"})
	}

	arrestDate := time.Now()
	if body.ArrestDate != nil && *body.ArrestDate != "" {
		parsed, err := time.Parse(time.RFC3339, *body.ArrestDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, postArrestResponse{Message: "Invalid arrest_date, expected RFC 3339"})
		}
		arrestDate = parsed
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn

	tx, err := conn.Begin(ctx)
	if err != nil {
		return writeDBError(c, err, "Arrest record not found")
	}
	defer tx.Rollback(ctx)
	qtx := pgdb.New(conn).WithTx(tx)

	if _, err := qtx.GetCriminalByID(ctx, body.CriminalID); err != nil {
		return writeDBError(c, err, "Criminal not found")
	}

	arrest, err := qtx.CreateArrest(ctx, pgdb.CreateArrestParams{
		CriminalID:    body.CriminalID,
		OfficerID:     util.NullInt64(body.OfficerID),
		ThanaID:       util.NullInt64(body.ThanaID),
		CaseID:        util.NullInt64(body.CaseID),
		ArrestDate:    arrestDate,
		Location:      util.NullString(body.Location),
		Charges:       body.Charges,
		CustodyStatus: body.CustodyStatus,
		Notes:         util.NullString(body.Notes),
	})
	if err != nil {
		return writeDBError(c, err, "Criminal not found")
	}

	if status, ok := custodyToCriminalStatus(body.CustodyStatus); ok {
		err = qtx.UpdateCriminalStatus(ctx, pgdb.UpdateCriminalStatusParams{
			ID:     body.CriminalID,
			Status: status,
		})
		if err != nil {
			return writeDBError(c, err, "Criminal not found")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return writeDBError(c, err, "Criminal not found")
	}

	publishAudit(c, "arrest.created", "arrest", arrest.ID, arrest)

	return c.JSON(http.StatusCreated, postArrestResponse{
		Message: "Arrest recorded",
		Arrest:  &arrest,
	})
}

func PatchArrestStatusHandler(c echo.Context) error {
	type patchArrestBody struct {
		ID            int64  `param:"id" validate:"required,numeric"`
		CustodyStatus string `json:"custody_status" validate:"required,oneof=in_custody on_bail released escaped transferred"`
	}

	type patchArrestResponse struct {
		Message string             `json:"message"`
		Arrest  *pgdb.ArrestRecord `json:"arrest,omitempty"`
	}

	body := new(patchArrestBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, patchArrestResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, patchArrestResponse{Message: "Invalid request body"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn

	tx, err := conn.Begin(ctx)
	if err != nil {
		return writeDBError(c, err, "Arrest record not found")
	}
	defer tx.Rollback(ctx)
	qtx := pgdb.New(conn).WithTx(tx)

	arrest, err := qtx.UpdateArrestCustodyStatus(ctx, pgdb.UpdateArrestCustodyStatusParams{
		ID:            body.ID,
		CustodyStatus: body.CustodyStatus,
	})
	if err != nil {
		return writeDBError(c, err, "Arrest record not found")
	}

	// Only the criminal's latest arrest drives their status. Updating an
	// old record must not clobber newer custody information.
	latest, err := qtx.GetLatestArrestForCriminal(ctx, arrest.CriminalID)
	if err != nil {
		return writeDBError(c, err, "Arrest record not found")
	}
	if latest.ID == arrest.ID {
		if status, ok := custodyToCriminalStatus(body.CustodyStatus); ok {
			err = qtx.UpdateCriminalStatus(ctx, pgdb.UpdateCriminalStatusParams{
				ID:     arrest.CriminalID,
				Status: status,
			})
			if err != nil {
				return writeDBError(c, err, "Arrest record not found")
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return writeDBError(c, err, "Arrest record not found")
	}

	publishAudit(c, "arrest.custody_changed", "arrest", arrest.ID, arrest)

	return c.JSON(http.StatusOK, patchArrestResponse{
		Message: "Custody status updated",
		Arrest:  &arrest,
	})
}
