package pgdb

import (
	"context"
	"database/sql"
)

const listOpenAlerts = `
SELECT id, incident_id, title, warning_level, status, handled_by, created_at, handled_at
FROM alerts
WHERE status = 'open'
ORDER BY warning_level DESC, created_at DESC
`

func (q *Queries) ListOpenAlerts(ctx context.Context) ([]Alert, error) {
	rows, err := q.db.Query(ctx, listOpenAlerts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Alert
	for rows.Next() {
		var i Alert
		if err := rows.Scan(
			&i.ID, &i.IncidentID, &i.Title, &i.WarningLevel, &i.Status,
			&i.HandledBy, &i.CreatedAt, &i.HandledAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const markAlertHandled = `
UPDATE alerts
SET status = 'handled', handled_by = $2, handled_at = NOW()
WHERE id = $1
RETURNING id, incident_id, title, warning_level, status, handled_by, created_at, handled_at
`

type MarkAlertHandledParams struct {
	ID        int64
	HandledBy sql.NullInt64
}

func (q *Queries) MarkAlertHandled(ctx context.Context, arg MarkAlertHandledParams) (Alert, error) {
	row := q.db.QueryRow(ctx, markAlertHandled, arg.ID, arg.HandledBy)
	var i Alert
	err := row.Scan(
		&i.ID, &i.IncidentID, &i.Title, &i.WarningLevel, &i.Status,
		&i.HandledBy, &i.CreatedAt, &i.HandledAt,
	)
	return i, err
}
