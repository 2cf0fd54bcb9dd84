package pgdb

import (
	"context"
	"database/sql"
)

const listCases = `
SELECT cf.id, cf.case_number, cf.title, cf.description, cf.status,
       cf.thana_id, cf.officer_id, cf.filed_at, cf.updated_at,
       t.name AS thana_name, o.name AS officer_name
FROM case_files cf
LEFT JOIN thanas t ON t.id = cf.thana_id
LEFT JOIN officers o ON o.id = cf.officer_id
ORDER BY cf.filed_at DESC
`

type ListCasesRow struct {
	CaseFile
	ThanaName   sql.NullString `json:"thana_name"`
	OfficerName sql.NullString `json:"officer_name"`
}

func (q *Queries) ListCases(ctx context.Context) ([]ListCasesRow, error) {
	rows, err := q.db.Query(ctx, listCases)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListCasesRow
	for rows.Next() {
		var i ListCasesRow
		if err := rows.Scan(
			&i.ID, &i.CaseNumber, &i.Title, &i.Description, &i.Status,
			&i.ThanaID, &i.OfficerID, &i.FiledAt, &i.UpdatedAt,
			&i.ThanaName, &i.OfficerName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getCaseByID = `
SELECT id, case_number, title, description, status, thana_id, officer_id, filed_at, updated_at
FROM case_files
WHERE id = $1
`

func (q *Queries) GetCaseByID(ctx context.Context, id int64) (CaseFile, error) {
	row := q.db.QueryRow(ctx, getCaseByID, id)
	var i CaseFile
	err := row.Scan(
		&i.ID, &i.CaseNumber, &i.Title, &i.Description, &i.Status,
		&i.ThanaID, &i.OfficerID, &i.FiledAt, &i.UpdatedAt,
	)
	return i, err
}

const createCase = `
INSERT INTO case_files (case_number, title, description, status, thana_id, officer_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, case_number, title, description, status, thana_id, officer_id, filed_at, updated_at
`

type CreateCaseParams struct {
	CaseNumber  string
	Title       string
	Description sql.NullString
	Status      string
	ThanaID     sql.NullInt64
	OfficerID   sql.NullInt64
}

func (q *Queries) CreateCase(ctx context.Context, arg CreateCaseParams) (CaseFile, error) {
	row := q.db.QueryRow(ctx, createCase,
		arg.CaseNumber, arg.Title, arg.Description, arg.Status, arg.ThanaID, arg.OfficerID,
	)
	var i CaseFile
	err := row.Scan(
		&i.ID, &i.CaseNumber, &i.Title, &i.Description, &i.Status,
		&i.ThanaID, &i.OfficerID, &i.FiledAt, &i.UpdatedAt,
	)
	return i, err
}

const updateCaseStatus = `
UPDATE case_files
SET status = $2, updated_at = NOW()
WHERE id = $1
RETURNING id, case_number, title, description, status, thana_id, officer_id, filed_at, updated_at
`

type UpdateCaseStatusParams struct {
	ID     int64
	Status string
}

func (q *Queries) UpdateCaseStatus(ctx context.Context, arg UpdateCaseStatusParams) (CaseFile, error) {
	row := q.db.QueryRow(ctx, updateCaseStatus, arg.ID, arg.Status)
	var i CaseFile
	err := row.Scan(
		&i.ID, &i.CaseNumber, &i.Title, &i.Description, &i.Status,
		&i.ThanaID, &i.OfficerID, &i.FiledAt, &i.UpdatedAt,
	)
	return i, err
}

const deleteCase = `
DELETE FROM case_files WHERE id = $1
`

func (q *Queries) DeleteCase(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteCase, id)
	return err
}
