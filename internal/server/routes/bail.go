package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/black-vein/oracle/backend/internal/server/middleware"
	"github.com/black-vein/oracle/backend/internal/util"
	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"
	"github.com/black-vein/oracle/backend/pkg/logger"

	"github.com/jackc/pgx/v5"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func GetBailRecordsHandler(c echo.Context) error {
	type bailQuery struct {
		Active bool `query:"active"`
	}

	params := new(bailQuery)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	var records []pgdb.ListBailRecordsRow
	var err error
	if params.Active {
		records, err = q.ListActiveBails(ctx)
	} else {
		records, err = q.ListBailRecords(ctx)
	}
	if err != nil {
		return writeDBError(c, err, "No bail records found")
	}
	if records == nil {
		records = []pgdb.ListBailRecordsRow{}
	}

	return c.JSON(http.StatusOK, records)
}

func GetBailHandler(c echo.Context) error {
	type getBailParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(getBailParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	bail, err := q.GetBailByID(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Bail record not found")
	}

	return c.JSON(http.StatusOK, bail)
}

func GetBailStatsHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	stats, err := q.GetBailStats(ctx)
	if err != nil {
		return writeDBError(c, err, "No bail records found")
	}
	if stats == nil {
		stats = []pgdb.BailStatsRow{}
	}

	return c.JSON(http.StatusOK, stats)
}

func PostBailHandler(c echo.Context) error {
	type postBailBody struct {
		ArrestID    int64    `json:"arrest_id" validate:"required,numeric"`
		Amount      *float64 `json:"amount"`
		Status      string   `json:"status" validate:"required,oneof=pending granted rejected revoked"`
		GrantedBy   *string  `json:"granted_by"`
		HearingDate *string  `json:"hearing_date"`
	}

	type postBailResponse struct {
		Message string           `json:"message"`
		Bail    *pgdb.BailRecord `json:"bail,omitempty"`
	}

	body := new(postBailBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, postBailResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, postBailResponse{Message: "Invalid request body"})
	}

	var hearingDate *time.Time
	if body.HearingDate != nil && *body.HearingDate != "" {
		parsed, err := time.Parse("2006-01-02", *body.HearingDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, postBailResponse{Message: "Invalid hearing_date, expected YYYY-MM-DD"})
		}
		hearingDate = &parsed
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn

	tx, err := conn.Begin(ctx)
	if err != nil {
		return writeDBError(c, err, "Arrest record not found")
	}
	defer tx.Rollback(ctx)
	qtx := pgdb.New(conn).WithTx(tx)

	arrest, err := qtx.GetArrestByID(ctx, body.ArrestID)
	if err != nil {
		return writeDBError(c, err, "Arrest record not found")
	}

	bail, err := qtx.CreateBailRecord(ctx, pgdb.CreateBailRecordParams{
		ArrestID:    arrest.ID,
		CriminalID:  arrest.CriminalID,
		Amount:      util.NullFloat64(body.Amount),
		Status:      body.Status,
		GrantedBy:   util.NullString(body.GrantedBy),
		HearingDate: util.NullTime(hearingDate),
	})
	if err != nil {
		return writeDBError(c, err, "Arrest record not found")
	}

	// A granted bail moves the criminal out of custody and closes any
	// open incarceration.
	if body.Status == "granted" {
		if err := applyBailGrant(c, qtx, arrest); err != nil {
			return writeDBError(c, err, "Arrest record not found")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return writeDBError(c, err, "Arrest record not found")
	}

	publishAudit(c, "bail.created", "bail", bail.ID, bail)

	return c.JSON(http.StatusCreated, postBailResponse{
		Message: "Bail record created",
		Bail:    &bail,
	})
}

func PatchBailHandler(c echo.Context) error {
	type patchBailRecordBody struct {
		ID          int64    `param:"id" validate:"required,numeric"`
		Amount      *float64 `json:"amount"`
		GrantedBy   *string  `json:"granted_by"`
		HearingDate *string  `json:"hearing_date"`
	}

	type patchBailRecordResponse struct {
		Message string           `json:"message"`
		Bail    *pgdb.BailRecord `json:"bail,omitempty"`
	}

	body := new(patchBailRecordBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, patchBailRecordResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, patchBailRecordResponse{Message: "Invalid request body"})
	}

	var hearingDate *time.Time
	if body.HearingDate != nil && *body.HearingDate != "" {
		parsed, err := time.Parse("2006-01-02", *body.HearingDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, patchBailRecordResponse{Message: "Invalid hearing_date, expected YYYY-MM-DD"})
		}
		hearingDate = &parsed
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn

	tx, err := conn.Begin(ctx)
	if err != nil {
		return writeDBError(c, err, "Bail record not found")
	}
	defer tx.Rollback(ctx)
	qtx := pgdb.New(conn).WithTx(tx)

	existing, err := qtx.GetBailByID(ctx, body.ID)
	if err != nil {
		return writeDBError(c, err, "Bail record not found")
	}

	// Absent fields keep their stored value.
	amount := existing.Amount
	if body.Amount != nil {
		amount = util.NullFloat64(body.Amount)
	}
	grantedBy := existing.GrantedBy
	if body.GrantedBy != nil {
		grantedBy = util.NullString(body.GrantedBy)
	}
	hearing := existing.HearingDate
	if hearingDate != nil {
		hearing = util.NullTime(hearingDate)
	}

	bail, err := qtx.UpdateBailRecord(ctx, pgdb.UpdateBailRecordParams{
		ID:          body.ID,
		Amount:      amount,
		GrantedBy:   grantedBy,
		HearingDate: hearing,
	})
	if err != nil {
		return writeDBError(c, err, "Bail record not found")
	}

	if err := tx.Commit(ctx); err != nil {
		return writeDBError(c, err, "Bail record not found")
	}

	publishAudit(c, "bail.updated", "bail", bail.ID, bail)

	return c.JSON(http.StatusOK, patchBailRecordResponse{
		Message: "Bail record updated",
		Bail:    &bail,
	})
}

func PatchBailStatusHandler(c echo.Context) error {
	type patchBailBody struct {
		ID     int64  `param:"id" validate:"required,numeric"`
		Status string `json:"status" validate:"required,oneof=pending granted rejected revoked"`
	}

	type patchBailResponse struct {
		Message string           `json:"message"`
		Bail    *pgdb.BailRecord `json:"bail,omitempty"`
	}

	body := new(patchBailBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, patchBailResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, patchBailResponse{Message: "Invalid request body"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn

	tx, err := conn.Begin(ctx)
	if err != nil {
		return writeDBError(c, err, "Bail record not found")
	}
	defer tx.Rollback(ctx)
	qtx := pgdb.New(conn).WithTx(tx)

	bail, err := qtx.UpdateBailStatus(ctx, pgdb.UpdateBailStatusParams{
		ID:     body.ID,
		Status: body.Status,
	})
	if err != nil {
		return writeDBError(c, err, "Bail record not found")
	}

	arrest, err := qtx.GetArrestByID(ctx, bail.ArrestID)
	if err != nil {
		return writeDBError(c, err, "Bail record not found")
	}

	switch body.Status {
	case "granted":
		if err := applyBailGrant(c, qtx, arrest); err != nil {
			return writeDBError(c, err, "Bail record not found")
		}
	case "revoked":
		// Revocation puts the criminal back in custody.
		_, err = qtx.UpdateArrestCustodyStatus(ctx, pgdb.UpdateArrestCustodyStatusParams{
			ID:            arrest.ID,
			CustodyStatus: "in_custody",
		})
		if err != nil {
			return writeDBError(c, err, "Bail record not found")
		}
		err = qtx.UpdateCriminalStatus(ctx, pgdb.UpdateCriminalStatusParams{
			ID:     arrest.CriminalID,
			Status: "in_custody",
		})
		if err != nil {
			return writeDBError(c, err, "Bail record not found")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return writeDBError(c, err, "Bail record not found")
	}

	publishAudit(c, "bail.status_changed", "bail", bail.ID, bail)

	return c.JSON(http.StatusOK, patchBailResponse{
		Message: "Bail status updated",
		Bail:    &bail,
	})
}

// applyBailGrant performs the custody side effects of a granted bail:
// the arrest and criminal move to on_bail and an open incarceration,
// if any, is released.
func applyBailGrant(c echo.Context, qtx *pgdb.Queries, arrest pgdb.ArrestRecord) error {
	ctx := c.Request().Context()

	_, err := qtx.UpdateArrestCustodyStatus(ctx, pgdb.UpdateArrestCustodyStatusParams{
		ID:            arrest.ID,
		CustodyStatus: "on_bail",
	})
	if err != nil {
		return err
	}

	err = qtx.UpdateCriminalStatus(ctx, pgdb.UpdateCriminalStatusParams{
		ID:     arrest.CriminalID,
		Status: "on_bail",
	})
	if err != nil {
		return err
	}

	open, err := qtx.GetOpenIncarcerationForCriminal(ctx, arrest.CriminalID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}

	reason := "bail"
	_, err = qtx.ReleaseIncarceration(ctx, pgdb.ReleaseIncarcerationParams{
		ID:            open.ID,
		ReleaseReason: util.NullString(&reason),
	})
	if err != nil {
		logger.Error("Failed to release incarceration on bail grant", "incarceration", open.ID, "err", err)
		return err
	}
	return nil
}
