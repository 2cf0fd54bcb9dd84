package pgdb

import (
	"context"
	"database/sql"
)

const upsertRelationship = `
INSERT INTO relationships (source_id, target_id, relation_type, strength)
VALUES ($1, $2, $3, $4)
ON CONFLICT (source_id, target_id, relation_type)
DO UPDATE SET strength = EXCLUDED.strength, last_seen = NOW()
RETURNING id, source_id, target_id, relation_type, strength, first_seen, last_seen
`

type UpsertRelationshipParams struct {
	SourceID     int64
	TargetID     int64
	RelationType string
	Strength     int32
}

func (q *Queries) UpsertRelationship(ctx context.Context, arg UpsertRelationshipParams) (Relationship, error) {
	row := q.db.QueryRow(ctx, upsertRelationship,
		arg.SourceID, arg.TargetID, arg.RelationType, arg.Strength,
	)
	var i Relationship
	err := row.Scan(
		&i.ID, &i.SourceID, &i.TargetID, &i.RelationType,
		&i.Strength, &i.FirstSeen, &i.LastSeen,
	)
	return i, err
}

const getOutgoingRelationships = `
SELECT target_id, relation_type, strength
FROM relationships
WHERE source_id = $1
ORDER BY target_id ASC
`

type OutgoingRelationshipRow struct {
	TargetID     int64  `json:"target_id"`
	RelationType string `json:"relation_type"`
	Strength     int32  `json:"strength"`
}

func (q *Queries) GetOutgoingRelationships(ctx context.Context, sourceID int64) ([]OutgoingRelationshipRow, error) {
	rows, err := q.db.Query(ctx, getOutgoingRelationships, sourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OutgoingRelationshipRow
	for rows.Next() {
		var i OutgoingRelationshipRow
		if err := rows.Scan(&i.TargetID, &i.RelationType, &i.Strength); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getCriminalRelationships = `
SELECT r.id, r.source_id, r.target_id, r.relation_type, r.strength, r.first_seen, r.last_seen,
       c.name AS target_name, c.alias AS target_alias
FROM relationships r
JOIN criminals c ON c.id = r.target_id
WHERE r.source_id = $1
ORDER BY r.strength DESC, c.name ASC
`

type CriminalRelationshipRow struct {
	Relationship
	TargetName  string         `json:"target_name"`
	TargetAlias sql.NullString `json:"target_alias"`
}

func (q *Queries) GetCriminalRelationships(ctx context.Context, sourceID int64) ([]CriminalRelationshipRow, error) {
	rows, err := q.db.Query(ctx, getCriminalRelationships, sourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CriminalRelationshipRow
	for rows.Next() {
		var i CriminalRelationshipRow
		if err := rows.Scan(
			&i.ID, &i.SourceID, &i.TargetID, &i.RelationType, &i.Strength,
			&i.FirstSeen, &i.LastSeen, &i.TargetName, &i.TargetAlias,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const deleteRelationship = `
DELETE FROM relationships WHERE id = $1
`

func (q *Queries) DeleteRelationship(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteRelationship, id)
	return err
}
