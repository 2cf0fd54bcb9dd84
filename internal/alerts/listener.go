package alerts

import (
	"context"
	"errors"
	"time"

	"github.com/black-vein/oracle/backend/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

const notifyChannel = "incident_alerts"

// keepaliveInterval bounds each wait so idle connections get pinged
// before the server side times them out.
const keepaliveInterval = 30 * time.Second

// Listen holds a dedicated connection on LISTEN incident_alerts and feeds
// every notification into the hub. Any failure is logged and ends the
// listener; the rest of the server keeps running without real-time alerts.
func Listen(ctx context.Context, pool *pgxpool.Pool, hub *Hub) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		logger.Warn("[Alerts] Could not acquire listener connection, real-time alerts disabled", "err", err)
		return
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		logger.Warn("[Alerts] LISTEN failed, real-time alerts disabled", "err", err)
		return
	}
	logger.Info("[Alerts] Listening for incident notifications", "channel", notifyChannel)

	for {
		waitCtx, cancel := context.WithTimeout(ctx, keepaliveInterval)
		notification, err := conn.Conn().WaitForNotification(waitCtx)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if errors.Is(err, context.DeadlineExceeded) {
				if err := conn.Ping(ctx); err != nil {
					logger.Error("[Alerts] Keepalive ping failed, real-time alerts disabled", "err", err)
					return
				}
				continue
			}
			logger.Error("[Alerts] Listener failed, real-time alerts disabled", "err", err)
			return
		}

		logger.Debug("[Alerts] Incident notification received", "channel", notification.Channel)
		hub.Publish(notification.Payload)
	}
}
