package store

import (
	"sync"

	"banter/server/internal/models"
)

// Store owns every entity collection. All state is memory-resident and
// lost on restart.
//
// The embedded mutex serializes whole logical operations, not individual
// table calls: a service method locks once, performs its full
// read-modify-write sequence across however many collections it touches,
// and unlocks. That is what keeps composite writes (message + status,
// friendship + request removal) atomic to readers.
type Store struct {
	sync.Mutex

	Users           *Table[*models.User]
	FriendRequests  *Table[*models.FriendRequest]
	Friendships     *Table[*models.Friendship]
	Messages        *Table[*models.Message]
	MessageStatuses *Table[*models.MessageStatus]
	Notifications   *Table[*models.Notification]
}

// New creates an empty store.
func New() *Store {
	return &Store{
		Users:           NewTable[*models.User](),
		FriendRequests:  NewTable[*models.FriendRequest](),
		Friendships:     NewTable[*models.Friendship](),
		Messages:        NewTable[*models.Message](),
		MessageStatuses: NewTable[*models.MessageStatus](),
		Notifications:   NewTable[*models.Notification](),
	}
}

// Friendship looks up the edge between two users in either direction.
func (s *Store) Friendship(a, b string) (*models.Friendship, bool) {
	if f, ok := s.Friendships.Get(models.PairKey(a, b)); ok {
		return f, true
	}
	if f, ok := s.Friendships.Get(models.PairKey(b, a)); ok {
		return f, true
	}
	return nil, false
}

// AreFriends reports whether a friendship edge exists between two users.
func (s *Store) AreFriends(a, b string) bool {
	_, ok := s.Friendship(a, b)
	return ok
}

// FriendIDs returns the IDs of every friend of the given user.
func (s *Store) FriendIDs(userID string) []string {
	var ids []string
	for _, f := range s.Friendships.Values() {
		if f.Involves(userID) {
			ids = append(ids, f.OtherParty(userID))
		}
	}
	return ids
}
