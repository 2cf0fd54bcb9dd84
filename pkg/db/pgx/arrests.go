package pgdb

import (
	"context"
	"database/sql"
	"time"
)

const listArrests = `
SELECT a.id, a.criminal_id, a.officer_id, a.thana_id, a.case_id, a.arrest_date,
       a.location, a.charges, a.custody_status, a.notes, a.created_at,
       c.name AS criminal_name, o.name AS officer_name, t.name AS thana_name
FROM arrest_records a
JOIN criminals c ON c.id = a.criminal_id
LEFT JOIN officers o ON o.id = a.officer_id
LEFT JOIN thanas t ON t.id = a.thana_id
ORDER BY a.arrest_date DESC
`

type ListArrestsRow struct {
	ArrestRecord
	CriminalName string         `json:"criminal_name"`
	OfficerName  sql.NullString `json:"officer_name"`
	ThanaName    sql.NullString `json:"thana_name"`
}

func (q *Queries) ListArrests(ctx context.Context) ([]ListArrestsRow, error) {
	rows, err := q.db.Query(ctx, listArrests)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListArrestsRow
	for rows.Next() {
		var i ListArrestsRow
		if err := rows.Scan(
			&i.ID, &i.CriminalID, &i.OfficerID, &i.ThanaID, &i.CaseID, &i.ArrestDate,
			&i.Location, &i.Charges, &i.CustodyStatus, &i.Notes, &i.CreatedAt,
			&i.CriminalName, &i.OfficerName, &i.ThanaName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getArrestByID = `
SELECT id, criminal_id, officer_id, thana_id, case_id, arrest_date,
       location, charges, custody_status, notes, created_at
FROM arrest_records
WHERE id = $1
`

func (q *Queries) GetArrestByID(ctx context.Context, id int64) (ArrestRecord, error) {
	row := q.db.QueryRow(ctx, getArrestByID, id)
	var i ArrestRecord
	err := row.Scan(
		&i.ID, &i.CriminalID, &i.OfficerID, &i.ThanaID, &i.CaseID, &i.ArrestDate,
		&i.Location, &i.Charges, &i.CustodyStatus, &i.Notes, &i.CreatedAt,
	)
	return i, err
}

const getArrestStats = `
SELECT custody_status, COUNT(*) AS count
FROM arrest_records
GROUP BY custody_status
ORDER BY count DESC
`

type ArrestStatsRow struct {
	CustodyStatus string `json:"custody_status"`
	Count         int64  `json:"count"`
}

func (q *Queries) GetArrestStats(ctx context.Context) ([]ArrestStatsRow, error) {
	rows, err := q.db.Query(ctx, getArrestStats)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ArrestStatsRow
	for rows.Next() {
		var i ArrestStatsRow
		if err := rows.Scan(&i.CustodyStatus, &i.Count); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const createArrest = `
INSERT INTO arrest_records (criminal_id, officer_id, thana_id, case_id, arrest_date, location, charges, custody_status, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, criminal_id, officer_id, thana_id, case_id, arrest_date,
          location, charges, custody_status, notes, created_at
`

type CreateArrestParams struct {
	CriminalID    int64
	OfficerID     sql.NullInt64
	ThanaID       sql.NullInt64
	CaseID        sql.NullInt64
	ArrestDate    time.Time
	Location      sql.NullString
	Charges       string
	CustodyStatus string
	Notes         sql.NullString
}

func (q *Queries) CreateArrest(ctx context.Context, arg CreateArrestParams) (ArrestRecord, error) {
	row := q.db.QueryRow(ctx, createArrest,
		arg.CriminalID, arg.OfficerID, arg.ThanaID, arg.CaseID, arg.ArrestDate,
		arg.Location, arg.Charges, arg.CustodyStatus, arg.Notes,
	)
	var i ArrestRecord
	err := row.Scan(
		&i.ID, &i.CriminalID, &i.OfficerID, &i.ThanaID, &i.CaseID, &i.ArrestDate,
		&i.Location, &i.Charges, &i.CustodyStatus, &i.Notes, &i.CreatedAt,
	)
	return i, err
}

const updateArrestCustodyStatus = `
UPDATE arrest_records SET custody_status = $2 WHERE id = $1
RETURNING id, criminal_id, officer_id, thana_id, case_id, arrest_date,
          location, charges, custody_status, notes, created_at
`

type UpdateArrestCustodyStatusParams struct {
	ID            int64
	CustodyStatus string
}

func (q *Queries) UpdateArrestCustodyStatus(ctx context.Context, arg UpdateArrestCustodyStatusParams) (ArrestRecord, error) {
	row := q.db.QueryRow(ctx, updateArrestCustodyStatus, arg.ID, arg.CustodyStatus)
	var i ArrestRecord
	err := row.Scan(
		&i.ID, &i.CriminalID, &i.OfficerID, &i.ThanaID, &i.CaseID, &i.ArrestDate,
		&i.Location, &i.Charges, &i.CustodyStatus, &i.Notes, &i.CreatedAt,
	)
	return i, err
}

const getLatestArrestForCriminal = `
SELECT id, criminal_id, officer_id, thana_id, case_id, arrest_date,
       location, charges, custody_status, notes, created_at
FROM arrest_records
WHERE criminal_id = $1
ORDER BY arrest_date DESC
LIMIT 1
`

func (q *Queries) GetLatestArrestForCriminal(ctx context.Context, criminalID int64) (ArrestRecord, error) {
	row := q.db.QueryRow(ctx, getLatestArrestForCriminal, criminalID)
	var i ArrestRecord
	err := row.Scan(
		&i.ID, &i.CriminalID, &i.OfficerID, &i.ThanaID, &i.CaseID, &i.ArrestDate,
		&i.Location, &i.Charges, &i.CustodyStatus, &i.Notes, &i.CreatedAt,
	)
	return i, err
}
