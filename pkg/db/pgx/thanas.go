package pgdb

import (
	"context"
	"database/sql"
)

const listThanas = `
SELECT t.id, t.name, t.district, t.address, t.phone, t.officer_in_charge, t.created_at,
       o.name AS officer_in_charge_name
FROM thanas t
LEFT JOIN officers o ON o.id = t.officer_in_charge
ORDER BY t.district ASC, t.name ASC
`

type ListThanasRow struct {
	Thana
	OfficerInChargeName sql.NullString `json:"officer_in_charge_name"`
}

func (q *Queries) ListThanas(ctx context.Context) ([]ListThanasRow, error) {
	rows, err := q.db.Query(ctx, listThanas)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListThanasRow
	for rows.Next() {
		var i ListThanasRow
		if err := rows.Scan(
			&i.ID, &i.Name, &i.District, &i.Address, &i.Phone, &i.OfficerInCharge,
			&i.CreatedAt, &i.OfficerInChargeName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getThanaByID = `
SELECT id, name, district, address, phone, officer_in_charge, created_at
FROM thanas
WHERE id = $1
`

func (q *Queries) GetThanaByID(ctx context.Context, id int64) (Thana, error) {
	row := q.db.QueryRow(ctx, getThanaByID, id)
	var i Thana
	err := row.Scan(&i.ID, &i.Name, &i.District, &i.Address, &i.Phone, &i.OfficerInCharge, &i.CreatedAt)
	return i, err
}

const createThana = `
INSERT INTO thanas (name, district, address, phone, officer_in_charge)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, district, address, phone, officer_in_charge, created_at
`

type CreateThanaParams struct {
	Name            string
	District        string
	Address         sql.NullString
	Phone           sql.NullString
	OfficerInCharge sql.NullInt64
}

func (q *Queries) CreateThana(ctx context.Context, arg CreateThanaParams) (Thana, error) {
	row := q.db.QueryRow(ctx, createThana,
		arg.Name, arg.District, arg.Address, arg.Phone, arg.OfficerInCharge,
	)
	var i Thana
	err := row.Scan(&i.ID, &i.Name, &i.District, &i.Address, &i.Phone, &i.OfficerInCharge, &i.CreatedAt)
	return i, err
}

const updateThana = `
UPDATE thanas
SET name = $2, district = $3, address = $4, phone = $5, officer_in_charge = $6
WHERE id = $1
RETURNING id, name, district, address, phone, officer_in_charge, created_at
`

type UpdateThanaParams struct {
	ID              int64
	Name            string
	District        string
	Address         sql.NullString
	Phone           sql.NullString
	OfficerInCharge sql.NullInt64
}

func (q *Queries) UpdateThana(ctx context.Context, arg UpdateThanaParams) (Thana, error) {
	row := q.db.QueryRow(ctx, updateThana,
		arg.ID, arg.Name, arg.District, arg.Address, arg.Phone, arg.OfficerInCharge,
	)
	var i Thana
	err := row.Scan(&i.ID, &i.Name, &i.District, &i.Address, &i.Phone, &i.OfficerInCharge, &i.CreatedAt)
	return i, err
}

const deleteThana = `
DELETE FROM thanas WHERE id = $1
`

func (q *Queries) DeleteThana(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteThana, id)
	return err
}
