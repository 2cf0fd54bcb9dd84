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

func GetOfficersHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	officers, err := q.ListOfficers(ctx)
	if err != nil {
		return writeDBError(c, err, "No officers found")
	}
	if officers == nil {
		officers = []pgdb.ListOfficersRow{}
	}

	return c.JSON(http.StatusOK, officers)
}

func GetRanksHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	ranks, err := q.ListRanks(ctx)
	if err != nil {
		return writeDBError(c, err, "No ranks found")
	}
	if ranks == nil {
		ranks = []pgdb.Rank{}
	}

	return c.JSON(http.StatusOK, ranks)
}

func GetOfficerHandler(c echo.Context) error {
	type getOfficerParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(getOfficerParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	officer, err := q.GetOfficerByID(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Officer not found")
	}

	return c.JSON(http.StatusOK, officer)
}

func PostOfficerHandler(c echo.Context) error {
	type postOfficerBody struct {
		Name        string  `json:"name" validate:"required"`
		BadgeNumber string  `json:"badge_number" validate:"required"`
		RankID      *int64  `json:"rank_id"`
		ThanaID     *int64  `json:"thana_id"`
		Phone       *string `json:"phone"`
		Status      string  `json:"status" validate:"required,oneof=active suspended retired transferred"`
		JoinedAt    *string `json:"joined_at"`
	}

	type postOfficerResponse struct {
		Message string        `json:"message"`
		Officer *pgdb.Officer `json:"officer,omitempty"`
	}

	body := new(postOfficerBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, postOfficerResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, postOfficerResponse{Message: "Invalid request body"})
	}

	var joinedAt *time.Time
	if body.JoinedAt != nil && *body.JoinedAt != "" {
		parsed, err := time.Parse("2006-01-02", *body.JoinedAt)
		if err != nil {
			return c.JSON(http.StatusBadRequest, postOfficerResponse{Message: "Invalid joined_at, expected YYYY-MM-DD"})
		}
		joinedAt = &parsed
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	officer, err := q.CreateOfficer(ctx, pgdb.CreateOfficerParams{
		Name:        body.Name,
		BadgeNumber: body.BadgeNumber,
		RankID:      util.NullInt64(body.RankID),
		ThanaID:     util.NullInt64(body.ThanaID),
		Phone:       util.NullString(body.Phone),
		Status:      body.Status,
		JoinedAt:    util.NullTime(joinedAt),
	})
	if err != nil {
		return writeDBError(c, err, "Officer not found")
	}

	publishAudit(c, "officer.created", "officer", officer.ID, officer)

	return c.JSON(http.StatusCreated, postOfficerResponse{
		Message: "Officer created",
		Officer: &officer,
	})
}

func PatchOfficerHandler(c echo.Context) error {
	type patchOfficerBody struct {
		ID      int64   `param:"id" validate:"required,numeric"`
		Name    string  `json:"name" validate:"required"`
		RankID  *int64  `json:"rank_id"`
		ThanaID *int64  `json:"thana_id"`
		Phone   *string `json:"phone"`
		Status  string  `json:"status" validate:"required,oneof=active suspended retired transferred"`
	}

	type patchOfficerResponse struct {
		Message string        `json:"message"`
		Officer *pgdb.Officer `json:"officer,omitempty"`
	}

	body := new(patchOfficerBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, patchOfficerResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(body); err != nil {
		return c.JSON(http.StatusBadRequest, patchOfficerResponse{Message: "Invalid request body"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	officer, err := q.UpdateOfficer(ctx, pgdb.UpdateOfficerParams{
		ID:      body.ID,
		Name:    body.Name,
		RankID:  util.NullInt64(body.RankID),
		ThanaID: util.NullInt64(body.ThanaID),
		Phone:   util.NullString(body.Phone),
		Status:  body.Status,
	})
	if err != nil {
		return writeDBError(c, err, "Officer not found")
	}

	publishAudit(c, "officer.updated", "officer", officer.ID, officer)

	return c.JSON(http.StatusOK, patchOfficerResponse{
		Message: "Officer updated",
		Officer: &officer,
	})
}

func DeleteOfficerHandler(c echo.Context) error {
	type deleteOfficerParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	params := new(deleteOfficerParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	officer, err := q.GetOfficerByID(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Officer not found")
	}

	if err := q.DeleteOfficer(ctx, officer.ID); err != nil {
		return writeDBError(c, err, "Officer not found")
	}

	publishAudit(c, "officer.deleted", "officer", officer.ID, officer)

	return c.JSON(http.StatusOK, map[string]string{"message": "Officer deleted"})
}
