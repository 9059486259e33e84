package handlers

import (
	"net/http"

	"chorus/internal/logging"
	"chorus/internal/notify"
)

// ServeWebsocket upgrades the connection and subscribes it to catalog
// updates.
func (h *Handlers) ServeWebsocket(w http.ResponseWriter, r *http.Request) {
	upgrader := notify.Upgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("Websocket upgrade failed: %v", err)
		return
	}

	client := notify.NewClient(h.hub, conn)
	h.hub.RegisterClient(client)
	client.StartPumps()
}
