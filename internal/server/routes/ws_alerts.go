package routes

import (
	"net/http"

	"github.com/black-vein/oracle/backend/internal/server/middleware"
	"github.com/black-vein/oracle/backend/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// AlertsSocketHandler subscribes a client to the incident alert feed.
// The socket is write-only from the server's perspective; the read loop
// exists to detect the client going away.
func AlertsSocketHandler(c echo.Context) error {
	hub := c.(*middleware.AppContext).App.Hub
	if hub == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"message": "Alert feed unavailable"})
	}

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn("Websocket upgrade failed", "err", err)
		return nil
	}
	defer ws.Close()

	hub.Register(ws)
	defer hub.Unregister(ws)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return nil
		}
	}
}
