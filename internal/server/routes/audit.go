package routes

import (
	"encoding/json"
	"fmt"

	"github.com/black-vein/oracle/backend/internal/queue"
	"github.com/black-vein/oracle/backend/internal/server/middleware"

	"github.com/labstack/echo/v4"
)

// publishAudit records a custody state transition on the audit queue.
// Failures are handled inside the queue package; the request never notices.
func publishAudit(c echo.Context, eventType string, entity string, entityID int64, payload any) {
	cc := c.(*middleware.AppContext)
	if cc.App.Queue == nil {
		return
	}

	actor := ""
	if cc.User != nil {
		actor = fmt.Sprintf("%s:%d", cc.User.Role, cc.User.UserID)
	}

	var body json.RawMessage
	if payload != nil {
		if b, err := json.Marshal(payload); err == nil {
			body = b
		}
	}

	queue.PublishAuditEvent(cc.App.Queue, queue.AuditEventMsg{
		EventType: eventType,
		Entity:    entity,
		EntityID:  entityID,
		Actor:     actor,
		Payload:   body,
	})
}
