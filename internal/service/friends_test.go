package service

import (
	"testing"

	"banter/server/internal/models"
	ws "banter/server/internal/websocket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRequest(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")

	require.NoError(t, env.friends.SendRequest(alice.ID, bob.ID))

	request, ok := env.db.FriendRequests.Get(models.PairKey(alice.ID, bob.ID))
	require.True(t, ok, "request must be keyed sender_receiver")
	assert.Equal(t, models.RequestPending, request.Status)

	notifications := env.notifications.ListFor(bob.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationFriendRequest, notifications[0].Type)
	assert.Equal(t, alice.ID, notifications[0].SenderID)
	assert.False(t, notifications[0].Read)
}

func TestSendRequestReceiverMissing(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice")

	require.ErrorIs(t, env.friends.SendRequest(alice.ID, "ghost"), ErrNotFound)
}

func TestSendRequestDuplicate(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")

	require.NoError(t, env.friends.SendRequest(alice.ID, bob.ID))
	require.ErrorIs(t, env.friends.SendRequest(alice.ID, bob.ID), ErrDuplicate)

	// Only the forward key is checked: the reverse request goes through,
	// so both can be pending at once. Current behavior, not necessarily
	// desirable.
	require.NoError(t, env.friends.SendRequest(bob.ID, alice.ID))
	assert.Equal(t, 2, env.db.FriendRequests.Len())
}

func TestSendRequestAlreadyFriends(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	env.befriend(t, alice.ID, bob.ID)

	require.ErrorIs(t, env.friends.SendRequest(alice.ID, bob.ID), ErrConflict)
	require.ErrorIs(t, env.friends.SendRequest(bob.ID, alice.ID), ErrConflict)
}

func TestSendRequestPushesToOnlineReceiver(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	client := env.goOnline(bob.ID, "s1")

	require.NoError(t, env.friends.SendRequest(alice.ID, bob.ID))

	types := eventTypes(drainEvents(t, client))
	assert.Contains(t, types, ws.EventFriendRequest)
	assert.Contains(t, types, ws.EventNotification)
}

func TestAcceptRequest(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	require.NoError(t, env.friends.SendRequest(alice.ID, bob.ID))

	friend, err := env.friends.AcceptRequest(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, friend.ID)
	assert.Equal(t, "alice", friend.Username)
	assert.Equal(t, "offline", friend.Status)

	// Exactly one friendship, keyed accepter_requester
	assert.Equal(t, 1, env.db.Friendships.Len())
	_, ok := env.db.Friendships.Get(models.PairKey(bob.ID, alice.ID))
	assert.True(t, ok)

	// The request record is deleted, not transitioned
	_, ok = env.db.FriendRequests.Get(models.PairKey(alice.ID, bob.ID))
	assert.False(t, ok)

	// Both parties see each other
	aliceFriends := env.friends.List(alice.ID)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, bob.ID, aliceFriends[0].ID)
	bobFriends := env.friends.List(bob.ID)
	require.Len(t, bobFriends, 1)
	assert.Equal(t, alice.ID, bobFriends[0].ID)

	// One system notification each
	require.Len(t, env.notifications.ListFor(alice.ID), 1)
	require.Len(t, env.notifications.ListFor(bob.ID), 2) // friend_request + system
}

func TestAcceptRequestNotFound(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")

	_, err := env.friends.AcceptRequest(bob.ID, alice.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRejectRequest(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	require.NoError(t, env.friends.SendRequest(alice.ID, bob.ID))

	require.NoError(t, env.friends.RejectRequest(bob.ID, alice.ID))
	assert.Zero(t, env.db.FriendRequests.Len())
	assert.Zero(t, env.db.Friendships.Len(), "reject must not create a friendship")

	require.ErrorIs(t, env.friends.RejectRequest(bob.ID, alice.ID), ErrNotFound)

	// Nothing terminal is stored, so re-sending after a rejection is
	// always permitted.
	require.NoError(t, env.friends.SendRequest(alice.ID, bob.ID))
}

func TestPendingRequests(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	carol := env.seedUser(t, "carol")

	require.NoError(t, env.friends.SendRequest(alice.ID, carol.ID))
	require.NoError(t, env.friends.SendRequest(bob.ID, carol.ID))
	require.NoError(t, env.friends.SendRequest(carol.ID, alice.ID))

	pending := env.friends.PendingRequests(carol.ID)
	require.Len(t, pending, 2)

	senders := map[string]bool{}
	for _, p := range pending {
		senders[p.ID] = true
	}
	assert.True(t, senders[alice.ID])
	assert.True(t, senders[bob.ID])
}

func TestRemoveFriend(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	env.befriend(t, alice.ID, bob.ID)

	// The edge is stored as bob_alice (accepter first); removal from
	// alice's side must still find it.
	require.NoError(t, env.friends.Remove(alice.ID, bob.ID))
	assert.Empty(t, env.friends.List(alice.ID))
	assert.Empty(t, env.friends.List(bob.ID))

	require.ErrorIs(t, env.friends.Remove(alice.ID, bob.ID), ErrNotFound)
}

func TestAcceptPushesNotificationToRequester(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	require.NoError(t, env.friends.SendRequest(alice.ID, bob.ID))

	client := env.goOnline(alice.ID, "s1")
	_, err := env.friends.AcceptRequest(bob.ID, alice.ID)
	require.NoError(t, err)

	types := eventTypes(drainEvents(t, client))
	assert.Contains(t, types, ws.EventNotification)
}
