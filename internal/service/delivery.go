package service

import ws "banter/server/internal/websocket"

// Delivery is the live-transport collaborator. Services hand it events
// addressed to a user ID; delivery to an offline user is a no-op.
type Delivery interface {
	IsOnline(userID string) bool
	Push(userID string, event ws.Event)
	DropPresence(userID string)
}

func status(live Delivery, userID string) string {
	if live.IsOnline(userID) {
		return "online"
	}
	return "offline"
}
