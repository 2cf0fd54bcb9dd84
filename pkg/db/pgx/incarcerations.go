package pgdb

import (
	"context"
	"database/sql"
)

const listIncarcerations = `
SELECT i.id, i.criminal_id, i.arrest_id, i.cell_id, i.admitted_at,
       i.released_at, i.release_reason,
       cr.name AS criminal_name, c.cell_number, b.name AS block_name, j.name AS jail_name
FROM incarcerations i
JOIN criminals cr ON cr.id = i.criminal_id
JOIN cells c ON c.id = i.cell_id
JOIN cell_blocks b ON b.id = c.block_id
JOIN jails j ON j.id = b.jail_id
ORDER BY i.admitted_at DESC
`

type ListIncarcerationsRow struct {
	Incarceration
	CriminalName string `json:"criminal_name"`
	CellNumber   string `json:"cell_number"`
	BlockName    string `json:"block_name"`
	JailName     string `json:"jail_name"`
}

func (q *Queries) ListIncarcerations(ctx context.Context) ([]ListIncarcerationsRow, error) {
	rows, err := q.db.Query(ctx, listIncarcerations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListIncarcerationsRow
	for rows.Next() {
		var i ListIncarcerationsRow
		if err := rows.Scan(
			&i.ID, &i.CriminalID, &i.ArrestID, &i.CellID, &i.AdmittedAt,
			&i.ReleasedAt, &i.ReleaseReason,
			&i.CriminalName, &i.CellNumber, &i.BlockName, &i.JailName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listActiveIncarcerations = `
SELECT i.id, i.criminal_id, i.arrest_id, i.cell_id, i.admitted_at,
       i.released_at, i.release_reason,
       cr.name AS criminal_name, c.cell_number, b.name AS block_name, j.name AS jail_name
FROM incarcerations i
JOIN criminals cr ON cr.id = i.criminal_id
JOIN cells c ON c.id = i.cell_id
JOIN cell_blocks b ON b.id = c.block_id
JOIN jails j ON j.id = b.jail_id
WHERE i.released_at IS NULL
ORDER BY i.admitted_at DESC
`

func (q *Queries) ListActiveIncarcerations(ctx context.Context) ([]ListIncarcerationsRow, error) {
	rows, err := q.db.Query(ctx, listActiveIncarcerations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListIncarcerationsRow
	for rows.Next() {
		var i ListIncarcerationsRow
		if err := rows.Scan(
			&i.ID, &i.CriminalID, &i.ArrestID, &i.CellID, &i.AdmittedAt,
			&i.ReleasedAt, &i.ReleaseReason,
			&i.CriminalName, &i.CellNumber, &i.BlockName, &i.JailName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getIncarcerationByID = `
SELECT id, criminal_id, arrest_id, cell_id, admitted_at, released_at, release_reason
FROM incarcerations
WHERE id = $1
`

func (q *Queries) GetIncarcerationByID(ctx context.Context, id int64) (Incarceration, error) {
	row := q.db.QueryRow(ctx, getIncarcerationByID, id)
	var i Incarceration
	err := row.Scan(
		&i.ID, &i.CriminalID, &i.ArrestID, &i.CellID,
		&i.AdmittedAt, &i.ReleasedAt, &i.ReleaseReason,
	)
	return i, err
}

const getOpenIncarcerationForCriminal = `
SELECT id, criminal_id, arrest_id, cell_id, admitted_at, released_at, release_reason
FROM incarcerations
WHERE criminal_id = $1 AND released_at IS NULL
ORDER BY admitted_at DESC
LIMIT 1
`

func (q *Queries) GetOpenIncarcerationForCriminal(ctx context.Context, criminalID int64) (Incarceration, error) {
	row := q.db.QueryRow(ctx, getOpenIncarcerationForCriminal, criminalID)
	var i Incarceration
	err := row.Scan(
		&i.ID, &i.CriminalID, &i.ArrestID, &i.CellID,
		&i.AdmittedAt, &i.ReleasedAt, &i.ReleaseReason,
	)
	return i, err
}

const createIncarceration = `
INSERT INTO incarcerations (criminal_id, arrest_id, cell_id)
VALUES ($1, $2, $3)
RETURNING id, criminal_id, arrest_id, cell_id, admitted_at, released_at, release_reason
`

type CreateIncarcerationParams struct {
	CriminalID int64
	ArrestID   sql.NullInt64
	CellID     int64
}

func (q *Queries) CreateIncarceration(ctx context.Context, arg CreateIncarcerationParams) (Incarceration, error) {
	row := q.db.QueryRow(ctx, createIncarceration, arg.CriminalID, arg.ArrestID, arg.CellID)
	var i Incarceration
	err := row.Scan(
		&i.ID, &i.CriminalID, &i.ArrestID, &i.CellID,
		&i.AdmittedAt, &i.ReleasedAt, &i.ReleaseReason,
	)
	return i, err
}

const releaseIncarceration = `
UPDATE incarcerations
SET released_at = NOW(), release_reason = $2
WHERE id = $1 AND released_at IS NULL
RETURNING id, criminal_id, arrest_id, cell_id, admitted_at, released_at, release_reason
`

type ReleaseIncarcerationParams struct {
	ID            int64
	ReleaseReason sql.NullString
}

func (q *Queries) ReleaseIncarceration(ctx context.Context, arg ReleaseIncarcerationParams) (Incarceration, error) {
	row := q.db.QueryRow(ctx, releaseIncarceration, arg.ID, arg.ReleaseReason)
	var i Incarceration
	err := row.Scan(
		&i.ID, &i.CriminalID, &i.ArrestID, &i.CellID,
		&i.AdmittedAt, &i.ReleasedAt, &i.ReleaseReason,
	)
	return i, err
}

const transferIncarcerationCell = `
UPDATE incarcerations
SET cell_id = $2
WHERE id = $1 AND released_at IS NULL
RETURNING id, criminal_id, arrest_id, cell_id, admitted_at, released_at, release_reason
`

type TransferIncarcerationCellParams struct {
	ID     int64
	CellID int64
}

func (q *Queries) TransferIncarcerationCell(ctx context.Context, arg TransferIncarcerationCellParams) (Incarceration, error) {
	row := q.db.QueryRow(ctx, transferIncarcerationCell, arg.ID, arg.CellID)
	var i Incarceration
	err := row.Scan(
		&i.ID, &i.CriminalID, &i.ArrestID, &i.CellID,
		&i.AdmittedAt, &i.ReleasedAt, &i.ReleaseReason,
	)
	return i, err
}

const getCellForUpdate = `
SELECT id, block_id, cell_number, capacity FROM cells WHERE id = $1 FOR UPDATE
`

// GetCellForUpdate locks the cell row so concurrent admissions to the
// same cell serialize on the capacity check.
func (q *Queries) GetCellForUpdate(ctx context.Context, id int64) (Cell, error) {
	row := q.db.QueryRow(ctx, getCellForUpdate, id)
	var i Cell
	err := row.Scan(&i.ID, &i.BlockID, &i.CellNumber, &i.Capacity)
	return i, err
}

const countActiveCellOccupants = `
SELECT COUNT(*) FROM incarcerations WHERE cell_id = $1 AND released_at IS NULL
`

func (q *Queries) CountActiveCellOccupants(ctx context.Context, cellID int64) (int64, error) {
	row := q.db.QueryRow(ctx, countActiveCellOccupants, cellID)
	var count int64
	err := row.Scan(&count)
	return count, err
}
