package models

import "time"

// NotificationType distinguishes what produced a notification
type NotificationType string

const (
	NotificationFriendRequest NotificationType = "friend_request"
	NotificationSystem        NotificationType = "system"
	NotificationMessage       NotificationType = "message"
)

// Notification is an inbox record for a user. SenderID and SenderName are
// empty for system notifications.
type Notification struct {
	ID         string           `json:"id"`
	Type       NotificationType `json:"type"`
	SenderID   string           `json:"senderId,omitempty"`
	SenderName string           `json:"senderName,omitempty"`
	ReceiverID string           `json:"receiverId"`
	Content    string           `json:"content"`
	Read       bool             `json:"read"`
	Timestamp  time.Time        `json:"timestamp"`
}
