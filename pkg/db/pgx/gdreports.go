package pgdb

import (
	"context"
	"database/sql"
)

const listGdReports = `
SELECT g.id, g.user_id, g.thana_id, g.subject, g.details, g.status, g.reviewed_by, g.created_at,
       u.name AS user_name, t.name AS thana_name
FROM gd_reports g
LEFT JOIN users u ON u.id = g.user_id
LEFT JOIN thanas t ON t.id = g.thana_id
ORDER BY g.created_at DESC
`

type ListGdReportsRow struct {
	GdReport
	UserName  sql.NullString `json:"user_name"`
	ThanaName sql.NullString `json:"thana_name"`
}

func (q *Queries) ListGdReports(ctx context.Context) ([]ListGdReportsRow, error) {
	rows, err := q.db.Query(ctx, listGdReports)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListGdReportsRow
	for rows.Next() {
		var i ListGdReportsRow
		if err := rows.Scan(
			&i.ID, &i.UserID, &i.ThanaID, &i.Subject, &i.Details, &i.Status,
			&i.ReviewedBy, &i.CreatedAt, &i.UserName, &i.ThanaName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getGdReportByID = `
SELECT id, user_id, thana_id, subject, details, status, reviewed_by, created_at
FROM gd_reports
WHERE id = $1
`

func (q *Queries) GetGdReportByID(ctx context.Context, id int64) (GdReport, error) {
	row := q.db.QueryRow(ctx, getGdReportByID, id)
	var i GdReport
	err := row.Scan(
		&i.ID, &i.UserID, &i.ThanaID, &i.Subject, &i.Details,
		&i.Status, &i.ReviewedBy, &i.CreatedAt,
	)
	return i, err
}

const createGdReport = `
INSERT INTO gd_reports (user_id, thana_id, subject, details, status)
VALUES ($1, $2, $3, $4, 'pending')
RETURNING id, user_id, thana_id, subject, details, status, reviewed_by, created_at
`

type CreateGdReportParams struct {
	UserID  sql.NullInt64
	ThanaID sql.NullInt64
	Subject string
	Details string
}

func (q *Queries) CreateGdReport(ctx context.Context, arg CreateGdReportParams) (GdReport, error) {
	row := q.db.QueryRow(ctx, createGdReport, arg.UserID, arg.ThanaID, arg.Subject, arg.Details)
	var i GdReport
	err := row.Scan(
		&i.ID, &i.UserID, &i.ThanaID, &i.Subject, &i.Details,
		&i.Status, &i.ReviewedBy, &i.CreatedAt,
	)
	return i, err
}

const updateGdReportStatus = `
UPDATE gd_reports
SET status = $2, reviewed_by = $3
WHERE id = $1
RETURNING id, user_id, thana_id, subject, details, status, reviewed_by, created_at
`

type UpdateGdReportStatusParams struct {
	ID         int64
	Status     string
	ReviewedBy sql.NullInt64
}

func (q *Queries) UpdateGdReportStatus(ctx context.Context, arg UpdateGdReportStatusParams) (GdReport, error) {
	row := q.db.QueryRow(ctx, updateGdReportStatus, arg.ID, arg.Status, arg.ReviewedBy)
	var i GdReport
	err := row.Scan(
		&i.ID, &i.UserID, &i.ThanaID, &i.Subject, &i.Details,
		&i.Status, &i.ReviewedBy, &i.CreatedAt,
	)
	return i, err
}

const getGdReportSummary = `
SELECT status, COUNT(*) AS count
FROM gd_reports
GROUP BY status
ORDER BY count DESC
`

type GdReportSummaryRow struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

func (q *Queries) GetGdReportSummary(ctx context.Context) ([]GdReportSummaryRow, error) {
	rows, err := q.db.Query(ctx, getGdReportSummary)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GdReportSummaryRow
	for rows.Next() {
		var i GdReportSummaryRow
		if err := rows.Scan(&i.Status, &i.Count); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
