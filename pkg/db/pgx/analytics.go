package pgdb

import (
	"context"
	"time"
)

const getThanaCaseSummary = `
SELECT t.id AS thana_id, t.name AS thana_name,
       COUNT(cf.id) AS total_cases,
       COUNT(cf.id) FILTER (WHERE cf.status = 'open') AS open_cases,
       COUNT(cf.id) FILTER (WHERE cf.status = 'closed') AS closed_cases
FROM thanas t
LEFT JOIN case_files cf ON cf.thana_id = t.id
GROUP BY t.id, t.name
ORDER BY total_cases DESC
`

type ThanaCaseSummaryRow struct {
	ThanaID     int64  `json:"thana_id"`
	ThanaName   string `json:"thana_name"`
	TotalCases  int64  `json:"total_cases"`
	OpenCases   int64  `json:"open_cases"`
	ClosedCases int64  `json:"closed_cases"`
}

func (q *Queries) GetThanaCaseSummary(ctx context.Context) ([]ThanaCaseSummaryRow, error) {
	rows, err := q.db.Query(ctx, getThanaCaseSummary)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ThanaCaseSummaryRow
	for rows.Next() {
		var i ThanaCaseSummaryRow
		if err := rows.Scan(&i.ThanaID, &i.ThanaName, &i.TotalCases, &i.OpenCases, &i.ClosedCases); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getJailOccupancy = `
SELECT j.id AS jail_id, j.name AS jail_name, j.capacity,
       COUNT(i.id) FILTER (WHERE i.released_at IS NULL) AS occupied,
       CASE WHEN j.capacity > 0
            THEN ROUND(COUNT(i.id) FILTER (WHERE i.released_at IS NULL) * 100.0 / j.capacity, 1)
            ELSE 0
       END::float8 AS occupancy_pct
FROM jails j
LEFT JOIN cell_blocks b ON b.jail_id = j.id
LEFT JOIN cells c ON c.block_id = b.id
LEFT JOIN incarcerations i ON i.cell_id = c.id
GROUP BY j.id, j.name, j.capacity
ORDER BY occupancy_pct DESC
`

type JailOccupancyRow struct {
	JailID       int64   `json:"jail_id"`
	JailName     string  `json:"jail_name"`
	Capacity     int32   `json:"capacity"`
	Occupied     int64   `json:"occupied"`
	OccupancyPct float64 `json:"occupancy_pct"`
}

func (q *Queries) GetJailOccupancy(ctx context.Context) ([]JailOccupancyRow, error) {
	rows, err := q.db.Query(ctx, getJailOccupancy)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []JailOccupancyRow
	for rows.Next() {
		var i JailOccupancyRow
		if err := rows.Scan(&i.JailID, &i.JailName, &i.Capacity, &i.Occupied, &i.OccupancyPct); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getRiskDistribution = `
SELECT risk_level, COUNT(*) AS count
FROM criminals
GROUP BY risk_level
ORDER BY risk_level ASC
`

type RiskDistributionRow struct {
	RiskLevel int32 `json:"risk_level"`
	Count     int64 `json:"count"`
}

func (q *Queries) GetRiskDistribution(ctx context.Context) ([]RiskDistributionRow, error) {
	rows, err := q.db.Query(ctx, getRiskDistribution)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RiskDistributionRow
	for rows.Next() {
		var i RiskDistributionRow
		if err := rows.Scan(&i.RiskLevel, &i.Count); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getMonthlyArrestTrends = `
SELECT DATE_TRUNC('month', arrest_date) AS month, COUNT(*) AS count
FROM arrest_records
WHERE arrest_date >= NOW() - INTERVAL '12 months'
GROUP BY month
ORDER BY month ASC
`

type MonthlyArrestTrendRow struct {
	Month time.Time `json:"month"`
	Count int64     `json:"count"`
}

func (q *Queries) GetMonthlyArrestTrends(ctx context.Context) ([]MonthlyArrestTrendRow, error) {
	rows, err := q.db.Query(ctx, getMonthlyArrestTrends)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []MonthlyArrestTrendRow
	for rows.Next() {
		var i MonthlyArrestTrendRow
		if err := rows.Scan(&i.Month, &i.Count); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getOfficerWorkload = `
SELECT o.id AS officer_id, o.name AS officer_name,
       COUNT(DISTINCT a.id) AS arrests,
       COUNT(DISTINCT cf.id) AS cases
FROM officers o
LEFT JOIN arrest_records a ON a.officer_id = o.id
LEFT JOIN case_files cf ON cf.officer_id = o.id
GROUP BY o.id, o.name
ORDER BY arrests DESC, cases DESC
`

type OfficerWorkloadRow struct {
	OfficerID   int64  `json:"officer_id"`
	OfficerName string `json:"officer_name"`
	Arrests     int64  `json:"arrests"`
	Cases       int64  `json:"cases"`
}

func (q *Queries) GetOfficerWorkload(ctx context.Context) ([]OfficerWorkloadRow, error) {
	rows, err := q.db.Query(ctx, getOfficerWorkload)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OfficerWorkloadRow
	for rows.Next() {
		var i OfficerWorkloadRow
		if err := rows.Scan(&i.OfficerID, &i.OfficerName, &i.Arrests, &i.Cases); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getDashboardStats = `
SELECT
    (SELECT COUNT(*) FROM criminals) AS total_criminals,
    (SELECT COUNT(*) FROM criminals WHERE status IN ('wanted', 'escaped')) AS wanted,
    (SELECT COUNT(*) FROM arrest_records WHERE custody_status = 'in_custody') AS in_custody,
    (SELECT COUNT(*) FROM case_files WHERE status = 'open') AS open_cases,
    (SELECT COUNT(*) FROM gd_reports WHERE status = 'pending') AS pending_reports,
    (SELECT COUNT(*) FROM alerts WHERE status = 'open') AS open_alerts
`

type DashboardStatsRow struct {
	TotalCriminals int64 `json:"total_criminals"`
	Wanted         int64 `json:"wanted"`
	InCustody      int64 `json:"in_custody"`
	OpenCases      int64 `json:"open_cases"`
	PendingReports int64 `json:"pending_reports"`
	OpenAlerts     int64 `json:"open_alerts"`
}

func (q *Queries) GetDashboardStats(ctx context.Context) (DashboardStatsRow, error) {
	row := q.db.QueryRow(ctx, getDashboardStats)
	var i DashboardStatsRow
	err := row.Scan(
		&i.TotalCriminals, &i.Wanted, &i.InCustody,
		&i.OpenCases, &i.PendingReports, &i.OpenAlerts,
	)
	return i, err
}
