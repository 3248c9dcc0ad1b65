package websocket

import "time"

// EventType represents different WebSocket event types
type EventType string

const (
	// Server -> client events
	EventMessage       EventType = "message"
	EventMessageSeen   EventType = "message_seen"
	EventNotification  EventType = "notification"
	EventFriendRequest EventType = "friend_request"
	EventFriendStatus  EventType = "friend_status"
	EventUserTyping    EventType = "user_typing"

	// Client -> server events
	EventTyping     EventType = "typing"
	EventStopTyping EventType = "stop_typing"
)

// Event represents an outbound WebSocket message
type Event struct {
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// FriendStatusPayload announces a friend going online or offline
type FriendStatusPayload struct {
	UserID string `json:"userId"`
	Status string `json:"status"` // "online" or "offline"
}

// TypingPayload announces a user starting or stopping typing
type TypingPayload struct {
	UserID   string `json:"userId"`
	IsTyping bool   `json:"isTyping"`
}

// SeenPayload announces that a message was read
type SeenPayload struct {
	MessageID string     `json:"messageId"`
	SeenAt    *time.Time `json:"seenAt"`
}

// IncomingEvent represents events received from clients
type IncomingEvent struct {
	Type    EventType         `json:"type"`
	Payload map[string]string `json:"payload"`
}
