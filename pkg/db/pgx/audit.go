package pgdb

import (
	"context"
	"database/sql"
	"encoding/json"
)

const insertAuditLog = `
INSERT INTO audit_log (correlation_id, event_type, entity, entity_id, actor, payload)
VALUES ($1, $2, $3, $4, $5, $6)
`

type InsertAuditLogParams struct {
	CorrelationID string
	EventType     string
	Entity        string
	EntityID      sql.NullInt64
	Actor         sql.NullString
	Payload       json.RawMessage
}

func (q *Queries) InsertAuditLog(ctx context.Context, arg InsertAuditLogParams) error {
	_, err := q.db.Exec(ctx, insertAuditLog,
		arg.CorrelationID, arg.EventType, arg.Entity, arg.EntityID, arg.Actor, arg.Payload,
	)
	return err
}
