package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"banter/server/internal/models"
	"banter/server/internal/store"
)

// Hub tracks presence and typing state and pushes events to connected
// clients. Presence maps user ID to the current session ID; at most one
// entry exists per user and a second connection for the same user
// supersedes the first without closing it. Absence means offline.
//
// Lock order: the store mutex is never acquired while holding h.mu, so
// services may call into the hub while they hold the store lock.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*Client   // session ID -> client
	presence map[string]string    // user ID -> session ID
	typing   map[string]time.Time // PairKey(user, target) -> last typing time

	db *store.Store
}

// NewHub creates a hub with empty presence and typing state. Both maps
// live for the whole process; the only way entries come and go is
// through Connect/Disconnect and SetTyping/ClearTyping.
func NewHub(db *store.Store) *Hub {
	return &Hub{
		sessions: make(map[string]*Client),
		presence: make(map[string]string),
		typing:   make(map[string]time.Time),
		db:       db,
	}
}

// Connect registers a session for a user and tells each online friend
// that the user came online.
func (h *Hub) Connect(client *Client) {
	h.db.Lock()
	friendIDs := h.db.FriendIDs(client.UserID)
	h.db.Unlock()

	event := Event{
		Type:      EventFriendStatus,
		Payload:   FriendStatusPayload{UserID: client.UserID, Status: "online"},
		Timestamp: time.Now(),
	}

	h.mu.Lock()
	h.sessions[client.SessionID] = client
	h.presence[client.UserID] = client.SessionID
	for _, friendID := range friendIDs {
		h.pushLocked(friendID, event)
	}
	h.mu.Unlock()

	log.Printf("client connected: user=%s session=%s", client.UserID, client.SessionID)
}

// Disconnect drops a session. The transport only knows the closing
// session, so the owning user is resolved from the presence map; if the
// user already reconnected under a newer session the presence entry is
// left alone and only the stale session is discarded.
func (h *Hub) Disconnect(sessionID string) {
	h.mu.Lock()
	delete(h.sessions, sessionID)

	userID := ""
	for uid, sid := range h.presence {
		if sid == sessionID {
			userID = uid
			break
		}
	}
	if userID != "" {
		delete(h.presence, userID)
	}
	h.mu.Unlock()

	if userID == "" {
		return
	}

	h.db.Lock()
	friendIDs := h.db.FriendIDs(userID)
	h.db.Unlock()

	event := Event{
		Type:      EventFriendStatus,
		Payload:   FriendStatusPayload{UserID: userID, Status: "offline"},
		Timestamp: time.Now(),
	}

	h.mu.Lock()
	for _, friendID := range friendIDs {
		h.pushLocked(friendID, event)
	}
	h.mu.Unlock()

	log.Printf("client disconnected: user=%s session=%s", userID, sessionID)
}

// IsOnline reports whether the user has an active session.
func (h *Hub) IsOnline(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.presence[userID]
	return ok
}

// Push delivers an event to the user's current session. Delivery to an
// offline user is a no-op; there is no retry.
func (h *Hub) Push(userID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	h.pushLocked(userID, event)
}

// pushLocked requires h.mu to be held (read or write).
func (h *Hub) pushLocked(userID string, event Event) {
	sessionID, ok := h.presence[userID]
	if !ok {
		return
	}
	client, ok := h.sessions[sessionID]
	if !ok {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", event.Type, err)
		return
	}

	select {
	case client.Send <- data:
	default:
		log.Printf("dropping %s event for slow client: %s", event.Type, userID)
	}
}

// DropPresence removes the user's presence entry without any broadcast.
// Used when an account is deleted while connected.
func (h *Hub) DropPresence(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.presence, userID)
}

// SetTyping records that userID is typing to targetID and notifies the
// target if online. A repeated call just refreshes the timestamp.
func (h *Hub) SetTyping(userID, targetID string) {
	if userID == "" || targetID == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.typing[models.PairKey(userID, targetID)] = time.Now()
	h.pushLocked(targetID, Event{
		Type:      EventUserTyping,
		Payload:   TypingPayload{UserID: userID, IsTyping: true},
		Timestamp: time.Now(),
	})
}

// ClearTyping removes the typing entry, a no-op if absent, and notifies
// the target if online. Indicators persist until cleared or superseded;
// there is no time-based expiry.
func (h *Hub) ClearTyping(userID, targetID string) {
	if userID == "" || targetID == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.typing, models.PairKey(userID, targetID))
	h.pushLocked(targetID, Event{
		Type:      EventUserTyping,
		Payload:   TypingPayload{UserID: userID, IsTyping: false},
		Timestamp: time.Now(),
	})
}

// IsTyping reports whether userID has an uncleared typing indicator
// toward targetID.
func (h *Hub) IsTyping(userID, targetID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.typing[models.PairKey(userID, targetID)]
	return ok
}

// OnlineCount returns the number of users with an active session.
func (h *Hub) OnlineCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.presence)
}

// OnlineUsers returns the IDs of users with an active session.
func (h *Hub) OnlineUsers() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := make([]string, 0, len(h.presence))
	for id := range h.presence {
		ids = append(ids, id)
	}
	return ids
}
