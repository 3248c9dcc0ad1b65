package service

import (
	"sort"

	"banter/server/internal/models"
	"banter/server/internal/store"
)

// Notifications manages the notification inbox. Records are only ever
// created inside the social-graph and messaging operations; this
// service covers listing and read/delete management.
type Notifications struct {
	db *store.Store
}

func NewNotifications(db *store.Store) *Notifications {
	return &Notifications{db: db}
}

// ListFor returns the user's notifications, newest first.
func (s *Notifications) ListFor(userID string) []*models.Notification {
	s.db.Lock()
	defer s.db.Unlock()

	notifications := []*models.Notification{}
	for _, n := range s.db.Notifications.Values() {
		if n.ReceiverID == userID {
			notifications = append(notifications, n)
		}
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Timestamp.After(notifications[j].Timestamp)
	})

	return notifications
}

// MarkRead flags a single notification as read. Idempotent.
func (s *Notifications) MarkRead(userID, notificationID string) error {
	s.db.Lock()
	defer s.db.Unlock()

	notification, ok := s.db.Notifications.Get(notificationID)
	if !ok {
		return ErrNotificationNotFound
	}
	if notification.ReceiverID != userID {
		return ErrForbidden
	}

	updated := *notification
	updated.Read = true
	s.db.Notifications.Put(notificationID, &updated)

	return nil
}

// MarkAllRead flags every notification of the user as read. Records
// belonging to other users are silently skipped.
func (s *Notifications) MarkAllRead(userID string) {
	s.db.Lock()
	defer s.db.Unlock()

	for _, n := range s.db.Notifications.Values() {
		if n.ReceiverID != userID {
			continue
		}
		updated := *n
		updated.Read = true
		s.db.Notifications.Put(n.ID, &updated)
	}
}

// Delete removes a single notification after an ownership check.
func (s *Notifications) Delete(userID, notificationID string) error {
	s.db.Lock()
	defer s.db.Unlock()

	notification, ok := s.db.Notifications.Get(notificationID)
	if !ok {
		return ErrNotificationNotFound
	}
	if notification.ReceiverID != userID {
		return ErrForbidden
	}

	s.db.Notifications.Remove(notificationID)

	return nil
}

// ClearAll removes every notification of the user.
func (s *Notifications) ClearAll(userID string) {
	s.db.Lock()
	defer s.db.Unlock()

	for _, n := range s.db.Notifications.Values() {
		if n.ReceiverID == userID {
			s.db.Notifications.Remove(n.ID)
		}
	}
}
