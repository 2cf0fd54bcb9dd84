package routes

import (
	"net/http"

	"github.com/black-vein/oracle/backend/internal/server/middleware"
	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"

	"github.com/labstack/echo/v4"
)

func GetThanaCaseSummaryHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	summary, err := q.GetThanaCaseSummary(ctx)
	if err != nil {
		return writeDBError(c, err, "No case data found")
	}
	if summary == nil {
		summary = []pgdb.ThanaCaseSummaryRow{}
	}

	return c.JSON(http.StatusOK, summary)
}

func GetJailOccupancyHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	occupancy, err := q.GetJailOccupancy(ctx)
	if err != nil {
		return writeDBError(c, err, "No jail data found")
	}
	if occupancy == nil {
		occupancy = []pgdb.JailOccupancyRow{}
	}

	return c.JSON(http.StatusOK, occupancy)
}

func GetRiskDistributionHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	distribution, err := q.GetRiskDistribution(ctx)
	if err != nil {
		return writeDBError(c, err, "No criminal data found")
	}
	if distribution == nil {
		distribution = []pgdb.RiskDistributionRow{}
	}

	return c.JSON(http.StatusOK, distribution)
}

func GetArrestTrendsHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	trends, err := q.GetMonthlyArrestTrends(ctx)
	if err != nil {
		return writeDBError(c, err, "No arrest data found")
	}
	if trends == nil {
		trends = []pgdb.MonthlyArrestTrendRow{}
	}

	return c.JSON(http.StatusOK, trends)
}

func GetOfficerWorkloadHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	workload, err := q.GetOfficerWorkload(ctx)
	if err != nil {
		return writeDBError(c, err, "No officer data found")
	}
	if workload == nil {
		workload = []pgdb.OfficerWorkloadRow{}
	}

	return c.JSON(http.StatusOK, workload)
}

func GetDashboardHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	q := pgdb.New(conn)

	stats, err := q.GetDashboardStats(ctx)
	if err != nil {
		return writeDBError(c, err, "No dashboard data found")
	}

	return c.JSON(http.StatusOK, stats)
}
