package handlers

import (
	ws "banter/server/internal/websocket"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// WebSocketHandler upgrades authenticated requests to live connections
type WebSocketHandler struct {
	Hub *ws.Hub
}

// Upgrade checks if the request should be upgraded to WebSocket
func (h *WebSocketHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}

	return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{
		"success": false,
		"error":   "WebSocket upgrade required",
	})
}

// Handle runs the connection. Each connection gets a fresh session ID;
// the hub maps the user to it until disconnect.
func (h *WebSocketHandler) Handle(c *websocket.Conn) {
	userID := c.Locals("userID").(string)

	client := ws.NewClient(userID, uuid.NewString(), c, h.Hub)
	h.Hub.Connect(client)

	go client.WritePump()
	client.ReadPump() // Blocks until the connection closes
}

// Stats returns live connection statistics
func (h *WebSocketHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"onlineUsers": h.Hub.OnlineCount(),
			"userIds":     h.Hub.OnlineUsers(),
		},
	})
}
