package routes

import (
	"net/http"

	"github.com/black-vein/oracle/backend/internal/server/middleware"
	"github.com/black-vein/oracle/backend/internal/util"
	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func GetGdReportsHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	reports, err := q.ListGdReports(ctx)
	if err != nil {
		return writeDBError(c, err, "No reports found")
	}
	if reports == nil {
		reports = []pgdb.ListGdReportsRow{}
	}

	return c.JSON(http.StatusOK, reports)
}

func GetGdReportSummaryHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	summary, err := q.GetGdReportSummary(ctx)
	if err != nil {
		return writeDBError(c, err, "No reports found")
	}
	if summary == nil {
		summary = []pgdb.GdReportSummaryRow{}
	}

	return c.JSON(http.StatusOK, summary)
}

func GetGdReportHandler(c echo.Context) error {
	type getReportParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(getReportParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	report, err := q.GetGdReportByID(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Report not found")
	}

	return c.JSON(http.StatusOK, report)
}

func PostGdReportHandler(c echo.Context) error {
	type postReportBody struct {
		ThanaID *int64 `json:"thana_id"`
		Subject string `json:"subject" validate:"required"`
		Details string `json:"details" validate:"required"`
	}

	type postReportResponse struct {
		Message string         `json:"message"`
		Report  *pgdb.GdReport `json:"report,omitempty"`
	}

	body := new(postReportBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, postReportResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, postReportResponse{Message: "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	ctx := c.Request().Context()
	q := pgdb.New(cc.App.DBConn)

	var userID *int64
	if cc.User != nil && cc.User.UserID > 0 {
		userID = &cc.User.UserID
	}

	report, err := q.CreateGdReport(ctx, pgdb.CreateGdReportParams{
		UserID:  util.NullInt64(userID),
		ThanaID: util.NullInt64(body.ThanaID),
		Subject: body.Subject,
		Details: body.Details,
	})
	if err != nil {
		return writeDBError(c, err, "Report not found")
	}

	publishAudit(c, "report.created", "gd_report", report.ID, report)

	return c.JSON(http.StatusCreated, postReportResponse{
		Message: "Report filed",
		Report:  &report,
	})
}

func PatchGdReportStatusHandler(c echo.Context) error {
	type patchReportBody struct {
		ID     int64  `param:"id" validate:"required,numeric"`
		Status string `json:"status" validate:"required,oneof=pending under_review resolved dismissed"`
	}

	type patchReportResponse struct {
		Message string         `json:"message"`
		Report  *pgdb.GdReport `json:"report,omitempty"`
	}

	body := new(patchReportBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, patchReportResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, patchReportResponse{Message: "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	ctx := c.Request().Context()
	q := pgdb.New(cc.App.DBConn)

	var reviewedBy *int64
	if cc.User != nil && cc.User.UserID > 0 {
		reviewedBy = &cc.User.UserID
	}

	report, err := q.UpdateGdReportStatus(ctx, pgdb.UpdateGdReportStatusParams{
		ID:         body.ID,
		Status:     body.Status,
		ReviewedBy: util.NullInt64(reviewedBy),
	})
	if err != nil {
		return writeDBError(c, err, "Report not found")
	}

	publishAudit(c, "report.reviewed", "gd_report", report.ID, report)

	return c.JSON(http.StatusOK, patchReportResponse{
		Message: "Report status updated",
		Report:  &report,
	})
}
