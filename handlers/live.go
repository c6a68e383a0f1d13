// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/livepoll/livepoll/realtime"
)

type LiveHandler struct {
	hub *realtime.Hub
}

func NewLiveHandler(hub *realtime.Hub) *LiveHandler {
	return &LiveHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Same open policy as the REST surface's CORS middleware.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS handles GET /ws, upgrading the connection and serving it until
// the client disconnects.
func (h *LiveHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote an HTTP error to the client.
		slog.Error("websocket upgrade failed", "error", err, "remote", r.RemoteAddr)
		return
	}

	slog.Info("websocket connected", "remote", r.RemoteAddr)
	realtime.NewClient(h.hub, conn).Serve()
	slog.Info("websocket disconnected", "remote", r.RemoteAddr)
}
