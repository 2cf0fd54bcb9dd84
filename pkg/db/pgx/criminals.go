package pgdb

import (
	"context"
	"database/sql"
)

const listCriminals = `
SELECT c.id, c.name, c.alias, c.nid, c.date_of_birth, c.gender, c.address,
       c.photo_key, c.risk_level, c.status, c.thana_id, c.created_at, c.updated_at,
       t.name AS thana_name
FROM criminals c
LEFT JOIN thanas t ON t.id = c.thana_id
ORDER BY c.risk_level DESC, c.name ASC
`

type ListCriminalsRow struct {
	Criminal
	ThanaName sql.NullString `json:"thana_name"`
}

func (q *Queries) ListCriminals(ctx context.Context) ([]ListCriminalsRow, error) {
	rows, err := q.db.Query(ctx, listCriminals)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListCriminalsRow
	for rows.Next() {
		var i ListCriminalsRow
		if err := rows.Scan(
			&i.ID, &i.Name, &i.Alias, &i.Nid, &i.DateOfBirth, &i.Gender, &i.Address,
			&i.PhotoKey, &i.RiskLevel, &i.Status, &i.ThanaID, &i.CreatedAt, &i.UpdatedAt,
			&i.ThanaName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const searchCriminals = `
SELECT id, name, alias, nid, date_of_birth, gender, address,
       photo_key, risk_level, status, thana_id, created_at, updated_at
FROM criminals
WHERE name ILIKE '%' || $1 || '%' OR alias ILIKE '%' || $1 || '%'
ORDER BY name ASC
LIMIT 25
`

func (q *Queries) SearchCriminals(ctx context.Context, query string) ([]Criminal, error) {
	rows, err := q.db.Query(ctx, searchCriminals, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Criminal
	for rows.Next() {
		var i Criminal
		if err := rows.Scan(
			&i.ID, &i.Name, &i.Alias, &i.Nid, &i.DateOfBirth, &i.Gender, &i.Address,
			&i.PhotoKey, &i.RiskLevel, &i.Status, &i.ThanaID, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getCriminalByID = `
SELECT id, name, alias, nid, date_of_birth, gender, address,
       photo_key, risk_level, status, thana_id, created_at, updated_at
FROM criminals
WHERE id = $1
`

func (q *Queries) GetCriminalByID(ctx context.Context, id int64) (Criminal, error) {
	row := q.db.QueryRow(ctx, getCriminalByID, id)
	var i Criminal
	err := row.Scan(
		&i.ID, &i.Name, &i.Alias, &i.Nid, &i.DateOfBirth, &i.Gender, &i.Address,
		&i.PhotoKey, &i.RiskLevel, &i.Status, &i.ThanaID, &i.CreatedAt, &i.UpdatedAt,
	)
	return i, err
}

const getCriminalStatusCounts = `
SELECT status, COUNT(*) AS count
FROM criminals
GROUP BY status
ORDER BY count DESC
`

type CriminalStatusCountRow struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

func (q *Queries) GetCriminalStatusCounts(ctx context.Context) ([]CriminalStatusCountRow, error) {
	rows, err := q.db.Query(ctx, getCriminalStatusCounts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CriminalStatusCountRow
	for rows.Next() {
		var i CriminalStatusCountRow
		if err := rows.Scan(&i.Status, &i.Count); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getCriminalStats = `
SELECT COUNT(*) AS total, COALESCE(AVG(risk_level), 0)::float8 AS avg_risk_level
FROM criminals
`

type GetCriminalStatsRow struct {
	Total        int64   `json:"total"`
	AvgRiskLevel float64 `json:"avg_risk_level"`
}

func (q *Queries) GetCriminalStats(ctx context.Context) (GetCriminalStatsRow, error) {
	row := q.db.QueryRow(ctx, getCriminalStats)
	var i GetCriminalStatsRow
	err := row.Scan(&i.Total, &i.AvgRiskLevel)
	return i, err
}

const listWantedCriminals = `
SELECT c.id, c.name, c.alias, c.risk_level, c.status,
       a.arrest_date AS last_arrest_date, a.charges AS last_charges
FROM criminals c
LEFT JOIN LATERAL (
    SELECT arrest_date, charges
    FROM arrest_records
    WHERE criminal_id = c.id
    ORDER BY arrest_date DESC
    LIMIT 1
) a ON true
WHERE c.status IN ('wanted', 'escaped', 'unknown') OR c.risk_level >= 4
ORDER BY c.risk_level DESC, c.name ASC
`

type WantedCriminalRow struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Alias          sql.NullString `json:"alias"`
	RiskLevel      int32          `json:"risk_level"`
	Status         string         `json:"status"`
	LastArrestDate sql.NullTime   `json:"last_arrest_date"`
	LastCharges    sql.NullString `json:"last_charges"`
}

func (q *Queries) ListWantedCriminals(ctx context.Context) ([]WantedCriminalRow, error) {
	rows, err := q.db.Query(ctx, listWantedCriminals)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []WantedCriminalRow
	for rows.Next() {
		var i WantedCriminalRow
		if err := rows.Scan(
			&i.ID, &i.Name, &i.Alias, &i.RiskLevel, &i.Status,
			&i.LastArrestDate, &i.LastCharges,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const createCriminal = `
INSERT INTO criminals (name, alias, nid, date_of_birth, gender, address, risk_level, status, thana_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, name, alias, nid, date_of_birth, gender, address,
          photo_key, risk_level, status, thana_id, created_at, updated_at
`

type CreateCriminalParams struct {
	Name        string
	Alias       sql.NullString
	Nid         sql.NullString
	DateOfBirth sql.NullTime
	Gender      sql.NullString
	Address     sql.NullString
	RiskLevel   int32
	Status      string
	ThanaID     sql.NullInt64
}

func (q *Queries) CreateCriminal(ctx context.Context, arg CreateCriminalParams) (Criminal, error) {
	row := q.db.QueryRow(ctx, createCriminal,
		arg.Name, arg.Alias, arg.Nid, arg.DateOfBirth, arg.Gender,
		arg.Address, arg.RiskLevel, arg.Status, arg.ThanaID,
	)
	var i Criminal
	err := row.Scan(
		&i.ID, &i.Name, &i.Alias, &i.Nid, &i.DateOfBirth, &i.Gender, &i.Address,
		&i.PhotoKey, &i.RiskLevel, &i.Status, &i.ThanaID, &i.CreatedAt, &i.UpdatedAt,
	)
	return i, err
}

const updateCriminal = `
UPDATE criminals
SET name = $2, alias = $3, address = $4, risk_level = $5, status = $6,
    thana_id = $7, updated_at = NOW()
WHERE id = $1
RETURNING id, name, alias, nid, date_of_birth, gender, address,
          photo_key, risk_level, status, thana_id, created_at, updated_at
`

type UpdateCriminalParams struct {
	ID        int64
	Name      string
	Alias     sql.NullString
	Address   sql.NullString
	RiskLevel int32
	Status    string
	ThanaID   sql.NullInt64
}

func (q *Queries) UpdateCriminal(ctx context.Context, arg UpdateCriminalParams) (Criminal, error) {
	row := q.db.QueryRow(ctx, updateCriminal,
		arg.ID, arg.Name, arg.Alias, arg.Address, arg.RiskLevel, arg.Status, arg.ThanaID,
	)
	var i Criminal
	err := row.Scan(
		&i.ID, &i.Name, &i.Alias, &i.Nid, &i.DateOfBirth, &i.Gender, &i.Address,
		&i.PhotoKey, &i.RiskLevel, &i.Status, &i.ThanaID, &i.CreatedAt, &i.UpdatedAt,
	)
	return i, err
}

const updateCriminalStatus = `
UPDATE criminals SET status = $2, updated_at = NOW() WHERE id = $1
`

type UpdateCriminalStatusParams struct {
	ID     int64
	Status string
}

func (q *Queries) UpdateCriminalStatus(ctx context.Context, arg UpdateCriminalStatusParams) error {
	_, err := q.db.Exec(ctx, updateCriminalStatus, arg.ID, arg.Status)
	return err
}

const updateCriminalPhotoKey = `
UPDATE criminals SET photo_key = $2, updated_at = NOW() WHERE id = $1
`

type UpdateCriminalPhotoKeyParams struct {
	ID       int64
	PhotoKey sql.NullString
}

func (q *Queries) UpdateCriminalPhotoKey(ctx context.Context, arg UpdateCriminalPhotoKeyParams) error {
	_, err := q.db.Exec(ctx, updateCriminalPhotoKey, arg.ID, arg.PhotoKey)
	return err
}

const deleteCriminal = `
DELETE FROM criminals WHERE id = $1
`

func (q *Queries) DeleteCriminal(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteCriminal, id)
	return err
}

const getCriminalArrests = `
SELECT id, criminal_id, officer_id, thana_id, case_id, arrest_date,
       location, charges, custody_status, notes, created_at
FROM arrest_records
WHERE criminal_id = $1
ORDER BY arrest_date DESC
`

func (q *Queries) GetCriminalArrests(ctx context.Context, criminalID int64) ([]ArrestRecord, error) {
	rows, err := q.db.Query(ctx, getCriminalArrests, criminalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ArrestRecord
	for rows.Next() {
		var i ArrestRecord
		if err := rows.Scan(
			&i.ID, &i.CriminalID, &i.OfficerID, &i.ThanaID, &i.CaseID, &i.ArrestDate,
			&i.Location, &i.Charges, &i.CustodyStatus, &i.Notes, &i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getCriminalOrganizations = `
SELECT o.id, o.name, o.org_type, o.territory, co.role
FROM criminal_organizations co
JOIN organizations o ON o.id = co.organization_id
WHERE co.criminal_id = $1
ORDER BY o.name ASC
`

type CriminalOrganizationRow struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	OrgType   sql.NullString `json:"org_type"`
	Territory sql.NullString `json:"territory"`
	Role      sql.NullString `json:"role"`
}

func (q *Queries) GetCriminalOrganizations(ctx context.Context, criminalID int64) ([]CriminalOrganizationRow, error) {
	rows, err := q.db.Query(ctx, getCriminalOrganizations, criminalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CriminalOrganizationRow
	for rows.Next() {
		var i CriminalOrganizationRow
		if err := rows.Scan(&i.ID, &i.Name, &i.OrgType, &i.Territory, &i.Role); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
