package service

import (
	"fmt"
	"time"

	"banter/server/internal/models"
	"banter/server/internal/store"
	ws "banter/server/internal/websocket"

	"github.com/google/uuid"
)

// Friends manages the friend-request lifecycle and friendship edges.
type Friends struct {
	db   *store.Store
	live Delivery
}

func NewFriends(db *store.Store, live Delivery) *Friends {
	return &Friends{db: db, live: live}
}

// SendRequest creates a pending request keyed sender_receiver plus a
// friend_request notification for the receiver, pushed live if they are
// online.
//
// Only the forward key is checked for duplicates: two users can have
// requests to each other in flight at the same time. Known behavior,
// kept as is.
func (s *Friends) SendRequest(senderID, receiverID string) error {
	if receiverID == "" {
		return ErrInvalidInput
	}

	s.db.Lock()
	defer s.db.Unlock()

	sender, ok := s.db.Users.Get(senderID)
	if !ok {
		return ErrUserNotFound
	}
	if _, ok := s.db.Users.Get(receiverID); !ok {
		return ErrUserNotFound
	}

	requestID := models.PairKey(senderID, receiverID)
	if _, ok := s.db.FriendRequests.Get(requestID); ok {
		return ErrDuplicateRequest
	}
	if s.db.AreFriends(senderID, receiverID) {
		return ErrAlreadyFriends
	}

	s.db.FriendRequests.Put(requestID, &models.FriendRequest{
		ID:         requestID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.RequestPending,
		CreatedAt:  time.Now(),
	})

	notification := s.notify(&models.Notification{
		Type:       models.NotificationFriendRequest,
		SenderID:   senderID,
		SenderName: sender.Username,
		ReceiverID: receiverID,
		Content:    fmt.Sprintf("%s sent you a friend request", sender.Username),
	})

	if s.live.IsOnline(receiverID) {
		s.live.Push(receiverID, ws.Event{
			Type: ws.EventFriendRequest,
			Payload: models.UserSummary{
				ID:         sender.ID,
				Username:   sender.Username,
				ProfilePic: sender.ProfilePic,
				Status:     "online",
			},
			Timestamp: time.Now(),
		})
		s.live.Push(receiverID, ws.Event{
			Type:      ws.EventNotification,
			Payload:   notification,
			Timestamp: time.Now(),
		})
	}

	return nil
}

// AcceptRequest turns a pending request from requesterID into a
// friendship keyed accepter_requester, deletes the request, notifies
// both parties, and returns the new friend's summary.
func (s *Friends) AcceptRequest(accepterID, requesterID string) (models.UserSummary, error) {
	s.db.Lock()
	defer s.db.Unlock()

	requestID := models.PairKey(requesterID, accepterID)
	if _, ok := s.db.FriendRequests.Get(requestID); !ok {
		return models.UserSummary{}, ErrRequestNotFound
	}

	requester, ok := s.db.Users.Get(requesterID)
	if !ok {
		return models.UserSummary{}, ErrUserNotFound
	}
	accepter, ok := s.db.Users.Get(accepterID)
	if !ok {
		return models.UserSummary{}, ErrUserNotFound
	}

	friendshipID := models.PairKey(accepterID, requesterID)
	s.db.Friendships.Put(friendshipID, &models.Friendship{
		ID:        friendshipID,
		User1ID:   accepterID,
		User2ID:   requesterID,
		CreatedAt: time.Now(),
	})
	s.db.FriendRequests.Remove(requestID)

	s.notify(&models.Notification{
		Type:       models.NotificationSystem,
		ReceiverID: accepterID,
		Content:    fmt.Sprintf("You are now friends with %s", requester.Username),
	})
	accepted := s.notify(&models.Notification{
		Type:       models.NotificationSystem,
		ReceiverID: requesterID,
		Content:    fmt.Sprintf("%s accepted your friend request", accepter.Username),
	})

	if s.live.IsOnline(requesterID) {
		s.live.Push(requesterID, ws.Event{
			Type:      ws.EventNotification,
			Payload:   accepted,
			Timestamp: time.Now(),
		})
	}

	return models.UserSummary{
		ID:         requester.ID,
		Username:   requester.Username,
		ProfilePic: requester.ProfilePic,
		Status:     status(s.live, requesterID),
	}, nil
}

// RejectRequest deletes the pending request from requesterID. Nothing
// terminal is recorded, so the requester is free to send again.
func (s *Friends) RejectRequest(rejecterID, requesterID string) error {
	s.db.Lock()
	defer s.db.Unlock()

	requestID := models.PairKey(requesterID, rejecterID)
	if !s.db.FriendRequests.Remove(requestID) {
		return ErrRequestNotFound
	}
	return nil
}

// List returns the user's friends with live presence.
func (s *Friends) List(userID string) []models.UserSummary {
	s.db.Lock()
	defer s.db.Unlock()

	friends := []models.UserSummary{}
	for _, f := range s.db.Friendships.Values() {
		if !f.Involves(userID) {
			continue
		}
		friend, ok := s.db.Users.Get(f.OtherParty(userID))
		if !ok {
			continue
		}
		friends = append(friends, models.UserSummary{
			ID:         friend.ID,
			Username:   friend.Username,
			ProfilePic: friend.ProfilePic,
			Status:     status(s.live, friend.ID),
		})
	}
	return friends
}

// PendingRequests returns the senders of requests awaiting the user's
// decision.
func (s *Friends) PendingRequests(userID string) []models.UserSummary {
	s.db.Lock()
	defer s.db.Unlock()

	pending := []models.UserSummary{}
	for _, r := range s.db.FriendRequests.Values() {
		if r.ReceiverID != userID || r.Status != models.RequestPending {
			continue
		}
		sender, ok := s.db.Users.Get(r.SenderID)
		if !ok {
			continue
		}
		pending = append(pending, models.UserSummary{
			ID:         sender.ID,
			Username:   sender.Username,
			ProfilePic: sender.ProfilePic,
			Status:     status(s.live, sender.ID),
		})
	}
	return pending
}

// Remove deletes the friendship edge in whichever direction it is
// stored.
func (s *Friends) Remove(userID, otherID string) error {
	s.db.Lock()
	defer s.db.Unlock()

	if s.db.Friendships.Remove(models.PairKey(userID, otherID)) {
		return nil
	}
	if s.db.Friendships.Remove(models.PairKey(otherID, userID)) {
		return nil
	}
	return ErrFriendshipNotFound
}

// notify stores a notification record, filling in ID, read flag and
// timestamp. Requires the store lock to be held.
func (s *Friends) notify(n *models.Notification) *models.Notification {
	n.ID = uuid.NewString()
	n.Read = false
	n.Timestamp = time.Now()
	s.db.Notifications.Put(n.ID, n)
	return n
}
