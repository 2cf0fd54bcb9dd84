package pgdb

import (
	"context"
	"database/sql"
)

const listOfficers = `
SELECT o.id, o.name, o.badge_number, o.rank_id, o.thana_id, o.phone,
       o.status, o.joined_at, o.created_at,
       r.name AS rank_name, t.name AS thana_name
FROM officers o
LEFT JOIN ranks r ON r.id = o.rank_id
LEFT JOIN thanas t ON t.id = o.thana_id
ORDER BY r.level DESC NULLS LAST, o.name ASC
`

type ListOfficersRow struct {
	Officer
	RankName  sql.NullString `json:"rank_name"`
	ThanaName sql.NullString `json:"thana_name"`
}

func (q *Queries) ListOfficers(ctx context.Context) ([]ListOfficersRow, error) {
	rows, err := q.db.Query(ctx, listOfficers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListOfficersRow
	for rows.Next() {
		var i ListOfficersRow
		if err := rows.Scan(
			&i.ID, &i.Name, &i.BadgeNumber, &i.RankID, &i.ThanaID, &i.Phone,
			&i.Status, &i.JoinedAt, &i.CreatedAt, &i.RankName, &i.ThanaName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getOfficerByID = `
SELECT id, name, badge_number, rank_id, thana_id, phone, status, joined_at, created_at
FROM officers
WHERE id = $1
`

func (q *Queries) GetOfficerByID(ctx context.Context, id int64) (Officer, error) {
	row := q.db.QueryRow(ctx, getOfficerByID, id)
	var i Officer
	err := row.Scan(
		&i.ID, &i.Name, &i.BadgeNumber, &i.RankID, &i.ThanaID,
		&i.Phone, &i.Status, &i.JoinedAt, &i.CreatedAt,
	)
	return i, err
}

const createOfficer = `
INSERT INTO officers (name, badge_number, rank_id, thana_id, phone, status, joined_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, name, badge_number, rank_id, thana_id, phone, status, joined_at, created_at
`

type CreateOfficerParams struct {
	Name        string
	BadgeNumber string
	RankID      sql.NullInt64
	ThanaID     sql.NullInt64
	Phone       sql.NullString
	Status      string
	JoinedAt    sql.NullTime
}

func (q *Queries) CreateOfficer(ctx context.Context, arg CreateOfficerParams) (Officer, error) {
	row := q.db.QueryRow(ctx, createOfficer,
		arg.Name, arg.BadgeNumber, arg.RankID, arg.ThanaID, arg.Phone, arg.Status, arg.JoinedAt,
	)
	var i Officer
	err := row.Scan(
		&i.ID, &i.Name, &i.BadgeNumber, &i.RankID, &i.ThanaID,
		&i.Phone, &i.Status, &i.JoinedAt, &i.CreatedAt,
	)
	return i, err
}

const updateOfficer = `
UPDATE officers
SET name = $2, rank_id = $3, thana_id = $4, phone = $5, status = $6
WHERE id = $1
RETURNING id, name, badge_number, rank_id, thana_id, phone, status, joined_at, created_at
`

type UpdateOfficerParams struct {
	ID      int64
	Name    string
	RankID  sql.NullInt64
	ThanaID sql.NullInt64
	Phone   sql.NullString
	Status  string
}

func (q *Queries) UpdateOfficer(ctx context.Context, arg UpdateOfficerParams) (Officer, error) {
	row := q.db.QueryRow(ctx, updateOfficer,
		arg.ID, arg.Name, arg.RankID, arg.ThanaID, arg.Phone, arg.Status,
	)
	var i Officer
	err := row.Scan(
		&i.ID, &i.Name, &i.BadgeNumber, &i.RankID, &i.ThanaID,
		&i.Phone, &i.Status, &i.JoinedAt, &i.CreatedAt,
	)
	return i, err
}

const deleteOfficer = `
DELETE FROM officers WHERE id = $1
`

func (q *Queries) DeleteOfficer(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteOfficer, id)
	return err
}

const listRanks = `
SELECT id, name, level FROM ranks ORDER BY level DESC
`

func (q *Queries) ListRanks(ctx context.Context) ([]Rank, error) {
	rows, err := q.db.Query(ctx, listRanks)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Rank
	for rows.Next() {
		var i Rank
		if err := rows.Scan(&i.ID, &i.Name, &i.Level); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
