package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserAndFindByEmail(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.users.Create("alice", "alice@example.com", "hash")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	found, err := env.users.ByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "alice", found.Username)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice")

	_, err := env.users.Create("other", "alice@example.com", "hash")
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestCreateUserMissingFields(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.Create("", "a@example.com", "hash")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.users.Create("a", "", "hash")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestByIDNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.ByID("nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "alice")

	pic := "avatar.png"
	updated, err := env.users.UpdateProfile(user.ID, ProfileUpdate{ProfilePic: &pic})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Username, "username must survive a pic-only update")
	assert.Equal(t, "avatar.png", updated.ProfilePic)

	name := "alice2"
	updated, err = env.users.UpdateProfile(user.ID, ProfileUpdate{Username: &name})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "avatar.png", updated.ProfilePic, "pic must survive a name-only update")
}

func TestSearch(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "Alice")
	env.seedUser(t, "alicia")
	env.seedUser(t, "bob")

	results := env.users.Search("ali", alice.ID)
	require.Len(t, results, 1, "match is case-insensitive and excludes the caller")
	assert.Equal(t, "alicia", results[0].Username)
	assert.Equal(t, "offline", results[0].Status)

	assert.Empty(t, env.users.Search("", alice.ID), "empty query matches nothing")
}

func TestSearchAnnotatesPresence(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")

	env.goOnline(bob.ID, "s1")

	results := env.users.Search("bob", alice.ID)
	require.Len(t, results, 1)
	assert.Equal(t, "online", results[0].Status)
}

func TestDeleteAccountCascades(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	env.befriend(t, alice.ID, bob.ID)

	_, err := env.messages.Send(alice.ID, bob.ID, "hi")
	require.NoError(t, err)

	require.NoError(t, env.users.DeleteAccount(alice.ID))

	_, err = env.users.ByID(alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, env.friends.List(bob.ID), "friendship must be gone")

	// Conversation access now fails because the edge was removed
	_, err = env.messages.Conversation(bob.ID, alice.ID)
	assert.ErrorIs(t, err, ErrNotFriends)
	assert.Zero(t, env.db.Messages.Len(), "messages referencing the deleted user must be gone")
	assert.Zero(t, env.db.MessageStatuses.Len())

	// The friend-request and message flows left notifications in bob's
	// inbox naming alice as sender; the cascade must take those too.
	for _, n := range env.notifications.ListFor(bob.ID) {
		assert.NotEqual(t, alice.ID, n.SenderID,
			"bob's inbox must not reference the deleted user")
		assert.NotEqual(t, alice.ID, n.ReceiverID)
	}
}

func TestDeleteAccountClearsCounterpartInbox(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")

	require.NoError(t, env.friends.SendRequest(alice.ID, bob.ID))
	require.NotEmpty(t, env.notifications.ListFor(bob.ID))

	require.NoError(t, env.users.DeleteAccount(alice.ID))

	assert.Empty(t, env.notifications.ListFor(bob.ID),
		"the request notification named the deleted user as sender")
}

func TestDeleteAccountDropsPresence(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedUser(t, "alice")
	env.goOnline(alice.ID, "s1")
	require.True(t, env.hub.IsOnline(alice.ID))

	require.NoError(t, env.users.DeleteAccount(alice.ID))
	assert.False(t, env.hub.IsOnline(alice.ID))
}
