package service

import (
	"fmt"
	"sort"
	"time"

	"banter/server/internal/models"
	"banter/server/internal/store"
	ws "banter/server/internal/websocket"

	"github.com/google/uuid"
)

// Messages is the messaging pipeline: creation, retrieval, deletion and
// read-status tracking for direct messages between friends.
type Messages struct {
	db   *store.Store
	live Delivery
}

func NewMessages(db *store.Store, live Delivery) *Messages {
	return &Messages{db: db, live: live}
}

// Send stores a message together with its unseen status and a message
// notification for the receiver, all under one lock so no reader can
// observe the message without its status. The message and notification
// are pushed live if the receiver is online.
func (s *Messages) Send(senderID, receiverID, content string) (*models.Message, error) {
	if receiverID == "" || content == "" {
		return nil, ErrInvalidInput
	}

	s.db.Lock()
	defer s.db.Unlock()

	sender, ok := s.db.Users.Get(senderID)
	if !ok {
		return nil, ErrUserNotFound
	}
	if _, ok := s.db.Users.Get(receiverID); !ok {
		return nil, ErrUserNotFound
	}
	if !s.db.AreFriends(senderID, receiverID) {
		return nil, ErrNotFriends
	}

	message := &models.Message{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  time.Now(),
	}
	s.db.Messages.Put(message.ID, message)
	s.db.MessageStatuses.Put(message.ID, &models.MessageStatus{
		ID:        message.ID,
		MessageID: message.ID,
		Seen:      false,
	})

	notification := &models.Notification{
		ID:         uuid.NewString(),
		Type:       models.NotificationMessage,
		SenderID:   senderID,
		SenderName: sender.Username,
		ReceiverID: receiverID,
		Content:    fmt.Sprintf("New message from %s", sender.Username),
		Timestamp:  time.Now(),
	}
	s.db.Notifications.Put(notification.ID, notification)

	if s.live.IsOnline(receiverID) {
		s.live.Push(receiverID, ws.Event{
			Type:      ws.EventMessage,
			Payload:   message,
			Timestamp: time.Now(),
		})
		s.live.Push(receiverID, ws.Event{
			Type:      ws.EventNotification,
			Payload:   notification,
			Timestamp: time.Now(),
		})
	}

	return message, nil
}

// Conversation returns the full history between userID and friendID,
// each message merged with its read status, in ascending timestamp
// order.
//
// Read triggers write: every message authored by the friend that is not
// yet seen gets marked seen with the current time, and a message_seen
// event is pushed to the friend if online. The records returned carry
// the status as it was before the marking.
func (s *Messages) Conversation(userID, friendID string) ([]models.MessageWithStatus, error) {
	s.db.Lock()
	defer s.db.Unlock()

	if !s.db.AreFriends(userID, friendID) {
		return nil, ErrNotFriends
	}

	conversation := []models.MessageWithStatus{}
	for _, m := range s.db.Messages.Values() {
		betweenPair := (m.SenderID == userID && m.ReceiverID == friendID) ||
			(m.SenderID == friendID && m.ReceiverID == userID)
		if !betweenPair {
			continue
		}

		merged := models.MessageWithStatus{
			ID:         m.ID,
			SenderID:   m.SenderID,
			ReceiverID: m.ReceiverID,
			Content:    m.Content,
			Timestamp:  m.Timestamp,
		}
		// A missing status should not happen since message and status
		// are created together, but retrieval tolerates it as unseen.
		status, ok := s.db.MessageStatuses.Get(m.ID)
		if ok {
			merged.Seen = status.Seen
			merged.SeenAt = status.SeenAt
		}
		conversation = append(conversation, merged)

		if m.SenderID == friendID && !(ok && status.Seen) {
			now := time.Now()
			s.db.MessageStatuses.Put(m.ID, &models.MessageStatus{
				ID:        m.ID,
				MessageID: m.ID,
				Seen:      true,
				SeenAt:    &now,
			})
			if s.live.IsOnline(friendID) {
				s.live.Push(friendID, ws.Event{
					Type:      ws.EventMessageSeen,
					Payload:   ws.SeenPayload{MessageID: m.ID, SeenAt: &now},
					Timestamp: now,
				})
			}
		}
	}

	sort.SliceStable(conversation, func(i, j int) bool {
		return conversation[i].Timestamp.Before(conversation[j].Timestamp)
	})

	return conversation, nil
}

// Delete removes a message and its status together. Only the sender may
// delete.
func (s *Messages) Delete(requesterID, messageID string) error {
	s.db.Lock()
	defer s.db.Unlock()

	message, ok := s.db.Messages.Get(messageID)
	if !ok {
		return ErrMessageNotFound
	}
	if message.SenderID != requesterID {
		return ErrForbidden
	}

	s.db.Messages.Remove(messageID)
	s.db.MessageStatuses.Remove(messageID)

	return nil
}

// MarkSeen overwrites the message's status to seen and notifies the
// sender if online. Only the receiver may mark.
func (s *Messages) MarkSeen(requesterID, messageID string) error {
	s.db.Lock()
	defer s.db.Unlock()

	message, ok := s.db.Messages.Get(messageID)
	if !ok {
		return ErrMessageNotFound
	}
	if message.ReceiverID != requesterID {
		return ErrForbidden
	}

	now := time.Now()
	s.db.MessageStatuses.Put(messageID, &models.MessageStatus{
		ID:        messageID,
		MessageID: messageID,
		Seen:      true,
		SeenAt:    &now,
	})

	if s.live.IsOnline(message.SenderID) {
		s.live.Push(message.SenderID, ws.Event{
			Type:      ws.EventMessageSeen,
			Payload:   ws.SeenPayload{MessageID: messageID, SeenAt: &now},
			Timestamp: now,
		})
	}

	return nil
}
