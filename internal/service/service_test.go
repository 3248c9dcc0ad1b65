package service

import (
	"encoding/json"
	"testing"

	"banter/server/internal/models"
	"banter/server/internal/store"
	ws "banter/server/internal/websocket"

	"github.com/stretchr/testify/require"
)

// testEnv wires the services against a fresh store and a real hub. The
// hub works without websocket connections: clients registered with a
// nil conn receive their events on the Send channel.
type testEnv struct {
	db            *store.Store
	hub           *ws.Hub
	users         *Users
	friends       *Friends
	messages      *Messages
	notifications *Notifications
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := store.New()
	hub := ws.NewHub(db)
	return &testEnv{
		db:            db,
		hub:           hub,
		users:         NewUsers(db, hub),
		friends:       NewFriends(db, hub),
		messages:      NewMessages(db, hub),
		notifications: NewNotifications(db),
	}
}

func (e *testEnv) seedUser(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := e.users.Create(username, username+"@example.com", "hashed-pw")
	require.NoError(t, err)
	return user
}

// befriend runs the full request/accept flow between two users.
func (e *testEnv) befriend(t *testing.T, a, b string) {
	t.Helper()
	require.NoError(t, e.friends.SendRequest(a, b))
	_, err := e.friends.AcceptRequest(b, a)
	require.NoError(t, err)
}

// goOnline registers a connectionless client so pushed events can be
// read from its Send channel.
func (e *testEnv) goOnline(userID, sessionID string) *ws.Client {
	client := ws.NewClient(userID, sessionID, nil, e.hub)
	e.hub.Connect(client)
	return client
}

type receivedEvent struct {
	Type    ws.EventType    `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// drainEvents returns everything currently buffered on the client.
func drainEvents(t *testing.T, client *ws.Client) []receivedEvent {
	t.Helper()
	var events []receivedEvent
	for {
		select {
		case data := <-client.Send:
			var event receivedEvent
			require.NoError(t, json.Unmarshal(data, &event))
			events = append(events, event)
		default:
			return events
		}
	}
}

func eventTypes(events []receivedEvent) []ws.EventType {
	types := make([]ws.EventType, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}
