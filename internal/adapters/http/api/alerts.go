package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/talentscan/talentscan/pkg/logger"
)

const (
	wsWriteWait    = 10 * time.Second
	wsPingInterval = 30 * time.Second
	wsBuffer       = 32
)

// AlertsHandler streams risk alerts over a websocket.
type AlertsHandler struct {
	deps     Dependencies
	upgrader websocket.Upgrader
	logger   logger.Logger
}

// NewAlertsHandler creates a new alerts handler.
func NewAlertsHandler(deps Dependencies) *AlertsHandler {
	return &AlertsHandler{
		deps: deps,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: logger.Get().Named("api.alerts"),
	}
}

// HandleAlertStream handles GET /alerts/ws. Each connection gets its own
// bus subscription; a slow client drops alerts rather than stalling the
// monitor.
func (h *AlertsHandler) HandleAlertStream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		return
	}

	name := "ws-" + uuid.NewString()
	alerts, cancel := h.deps.SubscribeAlerts(name, wsBuffer)
	ctx := r.Context()

	// Read pump: the client never sends payloads, but reading surfaces
	// close frames and connection drops.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	defer func() {
		cancel()
		_ = conn.Close()
	}()

	ping := time.NewTicker(wsPingInterval)
	defer ping.Stop()

	for {
		select {
		case alert, ok := <-alerts:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(alert); err != nil {
				h.logger.Debug(ctx, "alert stream write failed",
					logger.String("subscriber", name),
					logger.Error(err),
				)
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			return
		case <-ctx.Done():
			return
		}
	}
}
