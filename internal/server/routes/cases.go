package routes

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/black-vein/oracle/backend/internal/server/middleware"
	"github.com/black-vein/oracle/backend/internal/util"
	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

func GetCasesHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	cases, err := q.ListCases(ctx)
	if err != nil {
		return writeDBError(c, err, "No cases found")
	}
	if cases == nil {
		cases = []pgdb.ListCasesRow{}
	}

	return c.JSON(http.StatusOK, cases)
}

func GetCaseHandler(c echo.Context) error {
	type getCaseParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(getCaseParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	caseFile, err := q.GetCaseByID(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Case not found")
	}

	return c.JSON(http.StatusOK, caseFile)
}

func PostCaseHandler(c echo.Context) error {
	type postCaseBody struct {
		CaseNumber  *string `json:"case_number"`
		Title       string  `json:"title" validate:"required"`
		Description *string `json:"description"`
		Status      string  `json:"status" validate:"required,oneof=open under_investigation in_court closed dismissed"`
		ThanaID     *int64  `json:"thana_id"`
		OfficerID   *int64  `json:"officer_id"`
	}

	type postCaseResponse struct {
		Message string         `json:"message"`
		Case    *pgdb.CaseFile `json:"case,omitempty"`
	}

	body := new(postCaseBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, postCaseResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, postCaseResponse{Message: "Invalid request body"})
	}

	caseNumber := ""
	if body.CaseNumber != nil {
		caseNumber = strings.TrimSpace(*body.CaseNumber)
	}
	if caseNumber == "" {
		suffix, err := gonanoid.Generate("0123456789ABCDEFGHJKMNPQRSTVWXYZ", 8)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, postCaseResponse{Message: "Internal server error"})
		}
		caseNumber = fmt.Sprintf("CF-%d-%s", time.Now().Year(), suffix)
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	caseFile, err := q.CreateCase(ctx, pgdb.CreateCaseParams{
		CaseNumber:  caseNumber,
		Title:       body.Title,
		Description: util.NullString(body.Description),
		Status:      body.Status,
		ThanaID:     util.NullInt64(body.ThanaID),
		OfficerID:   util.NullInt64(body.OfficerID),
	})
	if err != nil {
		return writeDBError(c, err, "Case not found")
	}

	publishAudit(c, "case.created", "case", caseFile.ID, caseFile)

	return c.JSON(http.StatusCreated, postCaseResponse{
		Message: "Case filed",
		Case:    &caseFile,
	})
}

func PatchCaseStatusHandler(c echo.Context) error {
	type patchCaseBody struct {
		ID     int64  `param:"id" validate:"required,numeric"`
		Status string `json:"status" validate:"required,oneof=open under_investigation in_court closed dismissed"`
	}

	type patchCaseResponse struct {
		Message string         `json:"message"`
		Case    *pgdb.CaseFile `json:"case,omitempty"`
	}

	body := new(patchCaseBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, patchCaseResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, patchCaseResponse{Message: "Invalid request body"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	caseFile, err := q.UpdateCaseStatus(ctx, pgdb.UpdateCaseStatusParams{
		ID:     body.ID,
		Status: body.Status,
	})
	if err != nil {
		return writeDBError(c, err, "Case not found")
	}

	publishAudit(c, "case.status_changed", "case", caseFile.ID, caseFile)

	return c.JSON(http.StatusOK, patchCaseResponse{
		Message: "Case status updated",
		Case:    &caseFile,
	})
}

func DeleteCaseHandler(c echo.Context) error {
	type deleteCaseParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(deleteCaseParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	caseFile, err := q.GetCaseByID(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Case not found")
	}

	if err := q.DeleteCase(ctx, caseFile.ID); err != nil {
		return writeDBError(c, err, "Case not found")
	}

	publishAudit(c, "case.deleted", "case", caseFile.ID, caseFile)

	return c.JSON(http.StatusOK, map[string]string{"message": "Case deleted"})
}
