package queue

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"
	"github.com/black-vein/oracle/backend/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rabbitmq/amqp091-go"
)

// AuditQueue carries one message per custody state transition; the worker
// drains it into the audit_log table.
const AuditQueue = "audit_queue"

type AuditEventMsg struct {
	CorrelationID string          `json:"correlation_id"`
	EventType     string          `json:"event_type"`
	Entity        string          `json:"entity"`
	EntityID      int64           `json:"entity_id"`
	Actor         string          `json:"actor"`
	Payload       json.RawMessage `json:"payload,omitempty"`
}

// PublishAuditEvent enqueues an audit event. A publish failure is logged
// and swallowed: auditing never fails the originating request.
func PublishAuditEvent(ch *amqp091.Channel, event AuditEventMsg) {
	if event.CorrelationID == "" {
		id, err := gonanoid.New()
		if err != nil {
			logger.Error("[Audit] Failed to generate correlation id", "err", err)
			return
		}
		event.CorrelationID = id
	}

	body, err := json.Marshal(event)
	if err != nil {
		logger.Error("[Audit] Failed to marshal audit event", "err", err)
		return
	}

	if err := PublishFIFO(ch, AuditQueue, body); err != nil {
		logger.Error("[Audit] Failed to publish audit event",
			"event_type", event.EventType, "entity", event.Entity, "err", err)
	}
}

// ProcessAuditEvent persists one queued audit event.
func ProcessAuditEvent(ctx context.Context, conn *pgxpool.Pool, msgBody []byte) error {
	var event AuditEventMsg
	if err := json.Unmarshal(msgBody, &event); err != nil {
		return fmt.Errorf("failed to decode audit event: %w", err)
	}
	if event.EventType == "" || event.Entity == "" {
		return fmt.Errorf("audit event missing event_type or entity")
	}

	q := pgdb.New(conn)
	err := q.InsertAuditLog(ctx, pgdb.InsertAuditLogParams{
		CorrelationID: event.CorrelationID,
		EventType:     event.EventType,
		Entity:        event.Entity,
		EntityID:      sql.NullInt64{Int64: event.EntityID, Valid: event.EntityID != 0},
		Actor:         sql.NullString{String: event.Actor, Valid: event.Actor != ""},
		Payload:       event.Payload,
	})
	if err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}

	logger.Debug("[Audit] Logged event",
		"event_type", event.EventType, "entity", event.Entity, "entity_id", event.EntityID)
	return nil
}
