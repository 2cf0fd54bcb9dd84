package pgdb

import (
	"context"
	"database/sql"
	"time"
)

const createIncident = `
INSERT INTO incidents (title, description, incident_type, location, thana_id, warning_level, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, title, description, incident_type, location, thana_id, warning_level, occurred_at, created_at
`

type CreateIncidentParams struct {
	Title        string
	Description  sql.NullString
	IncidentType sql.NullString
	Location     sql.NullString
	ThanaID      sql.NullInt64
	WarningLevel int32
	OccurredAt   time.Time
}

func (q *Queries) CreateIncident(ctx context.Context, arg CreateIncidentParams) (Incident, error) {
	row := q.db.QueryRow(ctx, createIncident,
		arg.Title, arg.Description, arg.IncidentType, arg.Location,
		arg.ThanaID, arg.WarningLevel, arg.OccurredAt,
	)
	var i Incident
	err := row.Scan(
		&i.ID, &i.Title, &i.Description, &i.IncidentType, &i.Location,
		&i.ThanaID, &i.WarningLevel, &i.OccurredAt, &i.CreatedAt,
	)
	return i, err
}

const listIncidents = `
SELECT id, title, description, incident_type, location, thana_id, warning_level, occurred_at, created_at
FROM incidents
ORDER BY occurred_at DESC
LIMIT 100
`

func (q *Queries) ListIncidents(ctx context.Context) ([]Incident, error) {
	rows, err := q.db.Query(ctx, listIncidents)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Incident
	for rows.Next() {
		var i Incident
		if err := rows.Scan(
			&i.ID, &i.Title, &i.Description, &i.IncidentType, &i.Location,
			&i.ThanaID, &i.WarningLevel, &i.OccurredAt, &i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const addIncidentParticipant = `
INSERT INTO incident_participants (incident_id, criminal_id, role)
VALUES ($1, $2, $3)
ON CONFLICT (incident_id, criminal_id) DO UPDATE SET role = EXCLUDED.role
`

type AddIncidentParticipantParams struct {
	IncidentID int64
	CriminalID int64
	Role       sql.NullString
}

func (q *Queries) AddIncidentParticipant(ctx context.Context, arg AddIncidentParticipantParams) error {
	_, err := q.db.Exec(ctx, addIncidentParticipant, arg.IncidentID, arg.CriminalID, arg.Role)
	return err
}

const getCriminalIncidentTimeline = `
SELECT i.id, i.title, i.incident_type, i.warning_level, i.occurred_at,
       AVG(i.warning_level) OVER (
           ORDER BY i.occurred_at
           ROWS BETWEEN 2 PRECEDING AND CURRENT ROW
       )::float8 AS rolling_warning_level,
       COUNT(*) OVER ()::bigint AS total_incidents
FROM incidents i
JOIN incident_participants p ON p.incident_id = i.id
WHERE p.criminal_id = $1
ORDER BY i.occurred_at ASC
`

type CriminalIncidentTimelineRow struct {
	ID                  int64          `json:"id"`
	Title               string         `json:"title"`
	IncidentType        sql.NullString `json:"incident_type"`
	WarningLevel        int32          `json:"warning_level"`
	OccurredAt          time.Time      `json:"occurred_at"`
	RollingWarningLevel float64        `json:"rolling_warning_level"`
	TotalIncidents      int64          `json:"total_incidents"`
}

func (q *Queries) GetCriminalIncidentTimeline(ctx context.Context, criminalID int64) ([]CriminalIncidentTimelineRow, error) {
	rows, err := q.db.Query(ctx, getCriminalIncidentTimeline, criminalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CriminalIncidentTimelineRow
	for rows.Next() {
		var i CriminalIncidentTimelineRow
		if err := rows.Scan(
			&i.ID, &i.Title, &i.IncidentType, &i.WarningLevel, &i.OccurredAt,
			&i.RollingWarningLevel, &i.TotalIncidents,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
