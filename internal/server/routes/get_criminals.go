package routes

import (
	"net/http"

	"github.com/black-vein/oracle/backend/internal/server/middleware"
	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

func GetCriminalsHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	criminals, err := q.ListCriminals(ctx)
	if err != nil {
		return writeDBError(c, err, "No criminals found")
	}
	if criminals == nil {
		criminals = []pgdb.ListCriminalsRow{}
	}

	return c.JSON(http.StatusOK, criminals)
}

func SearchCriminalsHandler(c echo.Context) error {
	type searchParams struct {
		Query string `query:"q" validate:"required"`
	}

	params := new(searchParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	criminals, err := q.SearchCriminals(ctx, params.Query)
	if err != nil {
		return writeDBError(c, err, "No criminals found")
	}
	if criminals == nil {
		criminals = []pgdb.Criminal{}
	}

	return c.JSON(http.StatusOK, criminals)
}

func GetCriminalStatsHandler(c echo.Context) error {
	type statsResponse struct {
		Total        int64                         `json:"total"`
		AvgRiskLevel float64                       `json:"avg_risk_level"`
		ByStatus     []pgdb.CriminalStatusCountRow `json:"by_status"`
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	stats, err := q.GetCriminalStats(ctx)
	if err != nil {
		return writeDBError(c, err, "No criminals found")
	}
	byStatus, err := q.GetCriminalStatusCounts(ctx)
	if err != nil {
		return writeDBError(c, err, "No criminals found")
	}
	if byStatus == nil {
		byStatus = []pgdb.CriminalStatusCountRow{}
	}

	return c.JSON(http.StatusOK, statsResponse{
		Total:        stats.Total,
		AvgRiskLevel: stats.AvgRiskLevel,
		ByStatus:     byStatus,
	})
}

func GetWantedCriminalsHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	wanted, err := q.ListWantedCriminals(ctx)
	if err != nil {
		return writeDBError(c, err, "No wanted criminals found")
	}
	if wanted == nil {
		wanted = []pgdb.WantedCriminalRow{}
	}

	return c.JSON(http.StatusOK, wanted)
}

func GetCriminalHandler(c echo.Context) error {
	type getCriminalParams struct {
		ID int64 `param:"id" validate:"required,numeric"`
	}

	type getCriminalResponse struct {
		Message       string                         `json:"message"`
		Criminal      *pgdb.Criminal                 `json:"criminal,omitempty"`
		Relationships []pgdb.CriminalRelationshipRow `json:"relationships,omitempty"`
		Organizations []pgdb.CriminalOrganizationRow `json:"organizations,omitempty"`
		Arrests       []pgdb.ArrestRecord            `json:"arrests,omitempty"`
	}

	params := new(getCriminalParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getCriminalResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getCriminalResponse{Message: "Invalid request params"})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	criminal, err := q.GetCriminalByID(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Criminal not found")
	}

	relationships, err := q.GetCriminalRelationships(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Criminal not found")
	}
	organizations, err := q.GetCriminalOrganizations(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Criminal not found")
	}
	arrests, err := q.GetCriminalArrests(ctx, params.ID)
	if err != nil {
		return writeDBError(c, err, "Criminal not found")
	}

	return c.JSON(http.StatusOK, getCriminalResponse{
		Message:       "Criminal found",
		Criminal:      &criminal,
		Relationships: relationships,
		Organizations: organizations,
		Arrests:       arrests,
	})
}
