package pgdb

import (
	"context"
	"database/sql"
)

const listOrganizations = `
SELECT o.id, o.name, o.org_type, o.territory, o.created_at,
       COUNT(co.criminal_id) AS member_count
FROM organizations o
LEFT JOIN criminal_organizations co ON co.organization_id = o.id
GROUP BY o.id
ORDER BY member_count DESC, o.name ASC
`

type ListOrganizationsRow struct {
	Organization
	MemberCount int64 `json:"member_count"`
}

func (q *Queries) ListOrganizations(ctx context.Context) ([]ListOrganizationsRow, error) {
	rows, err := q.db.Query(ctx, listOrganizations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListOrganizationsRow
	for rows.Next() {
		var i ListOrganizationsRow
		if err := rows.Scan(
			&i.ID, &i.Name, &i.OrgType, &i.Territory, &i.CreatedAt, &i.MemberCount,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getOrganizationByID = `
SELECT id, name, org_type, territory, created_at
FROM organizations
WHERE id = $1
`

func (q *Queries) GetOrganizationByID(ctx context.Context, id int64) (Organization, error) {
	row := q.db.QueryRow(ctx, getOrganizationByID, id)
	var i Organization
	err := row.Scan(&i.ID, &i.Name, &i.OrgType, &i.Territory, &i.CreatedAt)
	return i, err
}

const listOrganizationMembers = `
SELECT c.id, c.name, c.alias, c.risk_level, c.status, co.role
FROM criminal_organizations co
JOIN criminals c ON c.id = co.criminal_id
WHERE co.organization_id = $1
ORDER BY c.risk_level DESC, c.name ASC
`

type OrganizationMemberRow struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Alias     sql.NullString `json:"alias"`
	RiskLevel int32          `json:"risk_level"`
	Status    string         `json:"status"`
	Role      sql.NullString `json:"role"`
}

func (q *Queries) ListOrganizationMembers(ctx context.Context, organizationID int64) ([]OrganizationMemberRow, error) {
	rows, err := q.db.Query(ctx, listOrganizationMembers, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OrganizationMemberRow
	for rows.Next() {
		var i OrganizationMemberRow
		if err := rows.Scan(&i.ID, &i.Name, &i.Alias, &i.RiskLevel, &i.Status, &i.Role); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const createOrganization = `
INSERT INTO organizations (name, org_type, territory)
VALUES ($1, $2, $3)
RETURNING id, name, org_type, territory, created_at
`

type CreateOrganizationParams struct {
	Name      string
	OrgType   sql.NullString
	Territory sql.NullString
}

func (q *Queries) CreateOrganization(ctx context.Context, arg CreateOrganizationParams) (Organization, error) {
	row := q.db.QueryRow(ctx, createOrganization, arg.Name, arg.OrgType, arg.Territory)
	var i Organization
	err := row.Scan(&i.ID, &i.Name, &i.OrgType, &i.Territory, &i.CreatedAt)
	return i, err
}

const addCriminalToOrganization = `
INSERT INTO criminal_organizations (criminal_id, organization_id, role)
VALUES ($1, $2, $3)
ON CONFLICT (criminal_id, organization_id) DO UPDATE SET role = EXCLUDED.role
`

type AddCriminalToOrganizationParams struct {
	CriminalID     int64
	OrganizationID int64
	Role           sql.NullString
}

func (q *Queries) AddCriminalToOrganization(ctx context.Context, arg AddCriminalToOrganizationParams) error {
	_, err := q.db.Exec(ctx, addCriminalToOrganization, arg.CriminalID, arg.OrganizationID, arg.Role)
	return err
}
