package models

import "time"

// Message represents a direct message between two friends
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

// MessageStatus tracks read state for a message. It shares the message's
// ID as its key and lives and dies with the message.
type MessageStatus struct {
	ID        string     `json:"id"`
	MessageID string     `json:"messageId"`
	Seen      bool       `json:"seen"`
	SeenAt    *time.Time `json:"seenAt"`
}

// MessageWithStatus is a message merged with its read state, as returned
// from conversation history.
type MessageWithStatus struct {
	ID         string     `json:"id"`
	SenderID   string     `json:"senderId"`
	ReceiverID string     `json:"receiverId"`
	Content    string     `json:"content"`
	Timestamp  time.Time  `json:"timestamp"`
	Seen       bool       `json:"seen"`
	SeenAt     *time.Time `json:"seenAt"`
}
