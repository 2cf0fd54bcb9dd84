package pgdb

import (
	"context"
	"database/sql"
)

const listBailRecords = `
SELECT b.id, b.arrest_id, b.criminal_id, b.amount, b.status, b.granted_by,
       b.hearing_date, b.granted_at, b.created_at,
       c.name AS criminal_name
FROM bail_records b
JOIN criminals c ON c.id = b.criminal_id
ORDER BY b.created_at DESC
`

type ListBailRecordsRow struct {
	BailRecord
	CriminalName string `json:"criminal_name"`
}

func (q *Queries) ListBailRecords(ctx context.Context) ([]ListBailRecordsRow, error) {
	rows, err := q.db.Query(ctx, listBailRecords)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListBailRecordsRow
	for rows.Next() {
		var i ListBailRecordsRow
		if err := rows.Scan(
			&i.ID, &i.ArrestID, &i.CriminalID, &i.Amount, &i.Status, &i.GrantedBy,
			&i.HearingDate, &i.GrantedAt, &i.CreatedAt, &i.CriminalName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listActiveBails = `
SELECT b.id, b.arrest_id, b.criminal_id, b.amount, b.status, b.granted_by,
       b.hearing_date, b.granted_at, b.created_at,
       c.name AS criminal_name
FROM bail_records b
JOIN criminals c ON c.id = b.criminal_id
WHERE b.status = 'granted'
ORDER BY b.granted_at DESC
`

func (q *Queries) ListActiveBails(ctx context.Context) ([]ListBailRecordsRow, error) {
	rows, err := q.db.Query(ctx, listActiveBails)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListBailRecordsRow
	for rows.Next() {
		var i ListBailRecordsRow
		if err := rows.Scan(
			&i.ID, &i.ArrestID, &i.CriminalID, &i.Amount, &i.Status, &i.GrantedBy,
			&i.HearingDate, &i.GrantedAt, &i.CreatedAt, &i.CriminalName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getBailByID = `
SELECT id, arrest_id, criminal_id, amount, status, granted_by,
       hearing_date, granted_at, created_at
FROM bail_records
WHERE id = $1
`

func (q *Queries) GetBailByID(ctx context.Context, id int64) (BailRecord, error) {
	row := q.db.QueryRow(ctx, getBailByID, id)
	var i BailRecord
	err := row.Scan(
		&i.ID, &i.ArrestID, &i.CriminalID, &i.Amount, &i.Status, &i.GrantedBy,
		&i.HearingDate, &i.GrantedAt, &i.CreatedAt,
	)
	return i, err
}

const getBailStats = `
SELECT status, COUNT(*) AS count, COALESCE(SUM(amount), 0)::float8 AS total_amount
FROM bail_records
GROUP BY status
ORDER BY count DESC
`

type BailStatsRow struct {
	Status      string  `json:"status"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

func (q *Queries) GetBailStats(ctx context.Context) ([]BailStatsRow, error) {
	rows, err := q.db.Query(ctx, getBailStats)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BailStatsRow
	for rows.Next() {
		var i BailStatsRow
		if err := rows.Scan(&i.Status, &i.Count, &i.TotalAmount); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const createBailRecord = `
INSERT INTO bail_records (arrest_id, criminal_id, amount, status, granted_by, hearing_date, granted_at)
VALUES ($1, $2, $3, $4, $5, $6, CASE WHEN $4 = 'granted' THEN NOW() ELSE NULL END)
RETURNING id, arrest_id, criminal_id, amount, status, granted_by,
          hearing_date, granted_at, created_at
`

type CreateBailRecordParams struct {
	ArrestID    int64
	CriminalID  int64
	Amount      sql.NullFloat64
	Status      string
	GrantedBy   sql.NullString
	HearingDate sql.NullTime
}

func (q *Queries) CreateBailRecord(ctx context.Context, arg CreateBailRecordParams) (BailRecord, error) {
	row := q.db.QueryRow(ctx, createBailRecord,
		arg.ArrestID, arg.CriminalID, arg.Amount, arg.Status, arg.GrantedBy, arg.HearingDate,
	)
	var i BailRecord
	err := row.Scan(
		&i.ID, &i.ArrestID, &i.CriminalID, &i.Amount, &i.Status, &i.GrantedBy,
		&i.HearingDate, &i.GrantedAt, &i.CreatedAt,
	)
	return i, err
}

const updateBailStatus = `
UPDATE bail_records
SET status = $2,
    granted_at = CASE WHEN $2 = 'granted' THEN NOW() ELSE granted_at END
WHERE id = $1
RETURNING id, arrest_id, criminal_id, amount, status, granted_by,
          hearing_date, granted_at, created_at
`

type UpdateBailStatusParams struct {
	ID     int64
	Status string
}

func (q *Queries) UpdateBailStatus(ctx context.Context, arg UpdateBailStatusParams) (BailRecord, error) {
	row := q.db.QueryRow(ctx, updateBailStatus, arg.ID, arg.Status)
	var i BailRecord
	err := row.Scan(
		&i.ID, &i.ArrestID, &i.CriminalID, &i.Amount, &i.Status, &i.GrantedBy,
		&i.HearingDate, &i.GrantedAt, &i.CreatedAt,
	)
	return i, err
}

const updateBailRecord = `
UPDATE bail_records
SET amount = $2, granted_by = $3, hearing_date = $4
WHERE id = $1
RETURNING id, arrest_id, criminal_id, amount, status, granted_by,
          hearing_date, granted_at, created_at
`

type UpdateBailRecordParams struct {
	ID          int64
	Amount      sql.NullFloat64
	GrantedBy   sql.NullString
	HearingDate sql.NullTime
}

func (q *Queries) UpdateBailRecord(ctx context.Context, arg UpdateBailRecordParams) (BailRecord, error) {
	row := q.db.QueryRow(ctx, updateBailRecord,
		arg.ID, arg.Amount, arg.GrantedBy, arg.HearingDate,
	)
	var i BailRecord
	err := row.Scan(
		&i.ID, &i.ArrestID, &i.CriminalID, &i.Amount, &i.Status, &i.GrantedBy,
		&i.HearingDate, &i.GrantedAt, &i.CreatedAt,
	)
	return i, err
}
