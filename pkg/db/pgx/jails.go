package pgdb

import (
	"context"
	"database/sql"
	"time"
)

const listJails = `
SELECT j.id, j.name, j.location, j.capacity, j.warden_name, j.phone, j.created_at,
       COUNT(i.id) FILTER (WHERE i.released_at IS NULL) AS current_inmates
FROM jails j
LEFT JOIN cell_blocks b ON b.jail_id = j.id
LEFT JOIN cells c ON c.block_id = b.id
LEFT JOIN incarcerations i ON i.cell_id = c.id
GROUP BY j.id
ORDER BY j.name ASC
`

type ListJailsRow struct {
	Jail
	CurrentInmates int64 `json:"current_inmates"`
}

func (q *Queries) ListJails(ctx context.Context) ([]ListJailsRow, error) {
	rows, err := q.db.Query(ctx, listJails)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListJailsRow
	for rows.Next() {
		var i ListJailsRow
		if err := rows.Scan(
			&i.ID, &i.Name, &i.Location, &i.Capacity, &i.WardenName,
			&i.Phone, &i.CreatedAt, &i.CurrentInmates,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getJailByID = `
SELECT id, name, location, capacity, warden_name, phone, created_at
FROM jails
WHERE id = $1
`

func (q *Queries) GetJailByID(ctx context.Context, id int64) (Jail, error) {
	row := q.db.QueryRow(ctx, getJailByID, id)
	var i Jail
	err := row.Scan(&i.ID, &i.Name, &i.Location, &i.Capacity, &i.WardenName, &i.Phone, &i.CreatedAt)
	return i, err
}

const createJail = `
INSERT INTO jails (name, location, capacity, warden_name, phone)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, location, capacity, warden_name, phone, created_at
`

type CreateJailParams struct {
	Name       string
	Location   sql.NullString
	Capacity   int32
	WardenName sql.NullString
	Phone      sql.NullString
}

func (q *Queries) CreateJail(ctx context.Context, arg CreateJailParams) (Jail, error) {
	row := q.db.QueryRow(ctx, createJail,
		arg.Name, arg.Location, arg.Capacity, arg.WardenName, arg.Phone,
	)
	var i Jail
	err := row.Scan(&i.ID, &i.Name, &i.Location, &i.Capacity, &i.WardenName, &i.Phone, &i.CreatedAt)
	return i, err
}

const updateJail = `
UPDATE jails
SET name = $2, location = $3, capacity = $4, warden_name = $5, phone = $6
WHERE id = $1
RETURNING id, name, location, capacity, warden_name, phone, created_at
`

type UpdateJailParams struct {
	ID         int64
	Name       string
	Location   sql.NullString
	Capacity   int32
	WardenName sql.NullString
	Phone      sql.NullString
}

func (q *Queries) UpdateJail(ctx context.Context, arg UpdateJailParams) (Jail, error) {
	row := q.db.QueryRow(ctx, updateJail,
		arg.ID, arg.Name, arg.Location, arg.Capacity, arg.WardenName, arg.Phone,
	)
	var i Jail
	err := row.Scan(&i.ID, &i.Name, &i.Location, &i.Capacity, &i.WardenName, &i.Phone, &i.CreatedAt)
	return i, err
}

const deleteJail = `
DELETE FROM jails WHERE id = $1
`

func (q *Queries) DeleteJail(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteJail, id)
	return err
}

const getJailHierarchy = `
SELECT b.id AS block_id, b.name AS block_name, b.floor,
       c.id AS cell_id, c.cell_number, c.capacity,
       COUNT(i.id) FILTER (WHERE i.released_at IS NULL) AS occupants
FROM cell_blocks b
LEFT JOIN cells c ON c.block_id = b.id
LEFT JOIN incarcerations i ON i.cell_id = c.id
WHERE b.jail_id = $1
GROUP BY b.id, b.name, b.floor, c.id, c.cell_number, c.capacity
ORDER BY b.name ASC, c.cell_number ASC
`

type JailHierarchyRow struct {
	BlockID    int64          `json:"block_id"`
	BlockName  string         `json:"block_name"`
	Floor      sql.NullInt32  `json:"floor"`
	CellID     sql.NullInt64  `json:"cell_id"`
	CellNumber sql.NullString `json:"cell_number"`
	Capacity   sql.NullInt32  `json:"capacity"`
	Occupants  int64          `json:"occupants"`
}

func (q *Queries) GetJailHierarchy(ctx context.Context, jailID int64) ([]JailHierarchyRow, error) {
	rows, err := q.db.Query(ctx, getJailHierarchy, jailID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []JailHierarchyRow
	for rows.Next() {
		var i JailHierarchyRow
		if err := rows.Scan(
			&i.BlockID, &i.BlockName, &i.Floor, &i.CellID,
			&i.CellNumber, &i.Capacity, &i.Occupants,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listJailPrisoners = `
SELECT cr.id AS criminal_id, cr.name, cr.risk_level, cr.status,
       b.name AS block_name, c.cell_number, i.admitted_at
FROM incarcerations i
JOIN cells c ON c.id = i.cell_id
JOIN cell_blocks b ON b.id = c.block_id
JOIN criminals cr ON cr.id = i.criminal_id
WHERE b.jail_id = $1 AND i.released_at IS NULL
ORDER BY b.name ASC, c.cell_number ASC, cr.name ASC
`

type JailPrisonerRow struct {
	CriminalID int64     `json:"criminal_id"`
	Name       string    `json:"name"`
	RiskLevel  int32     `json:"risk_level"`
	Status     string    `json:"status"`
	BlockName  string    `json:"block_name"`
	CellNumber string    `json:"cell_number"`
	AdmittedAt time.Time `json:"admitted_at"`
}

func (q *Queries) ListJailPrisoners(ctx context.Context, jailID int64) ([]JailPrisonerRow, error) {
	rows, err := q.db.Query(ctx, listJailPrisoners, jailID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []JailPrisonerRow
	for rows.Next() {
		var i JailPrisonerRow
		if err := rows.Scan(
			&i.CriminalID, &i.Name, &i.RiskLevel, &i.Status,
			&i.BlockName, &i.CellNumber, &i.AdmittedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
