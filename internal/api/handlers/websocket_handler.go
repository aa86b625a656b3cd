package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dwellist/dwellist-backend/internal/api/middleware"
	ws "github.com/dwellist/dwellist-backend/internal/websocket"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// WebsocketHandler upgrades /ws connections for live mailbox notifications
type WebsocketHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewWebsocketHandler creates a new WebsocketHandler
func NewWebsocketHandler(hub *ws.Hub, upgrader websocket.Upgrader, logger *slog.Logger) *WebsocketHandler {
	return &WebsocketHandler{hub: hub, upgrader: upgrader, logger: logger}
}

// Serve handles GET /ws. The connection is bound to the authenticated user;
// the client can only subscribe to its own mailbox.
func (h *WebsocketHandler) Serve(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written the failure response.
		h.logger.Warn("websocket upgrade failed",
			slog.String("remote_ip", c.RealIP()),
			slog.String("error", err.Error()))
		return nil
	}

	client := ws.NewClient(h.hub, conn, principal.ID, h.logger)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()

	return nil
}
