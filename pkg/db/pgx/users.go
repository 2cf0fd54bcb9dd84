package pgdb

import (
	"context"
)

const listUsers = `
SELECT id, name, email, phone, address, created_at
FROM users
ORDER BY name ASC
`

func (q *Queries) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := q.db.Query(ctx, listUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []User
	for rows.Next() {
		var i User
		if err := rows.Scan(&i.ID, &i.Name, &i.Email, &i.Phone, &i.Address, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getUserByID = `
SELECT id, name, email, phone, address, created_at
FROM users
WHERE id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, id int64) (User, error) {
	row := q.db.QueryRow(ctx, getUserByID, id)
	var i User
	err := row.Scan(&i.ID, &i.Name, &i.Email, &i.Phone, &i.Address, &i.CreatedAt)
	return i, err
}

const listUserReports = `
SELECT id, user_id, thana_id, subject, details, status, reviewed_by, created_at
FROM gd_reports
WHERE user_id = $1
ORDER BY created_at DESC
`

func (q *Queries) ListUserReports(ctx context.Context, userID int64) ([]GdReport, error) {
	rows, err := q.db.Query(ctx, listUserReports, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GdReport
	for rows.Next() {
		var i GdReport
		if err := rows.Scan(
			&i.ID, &i.UserID, &i.ThanaID, &i.Subject, &i.Details,
			&i.Status, &i.ReviewedBy, &i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
