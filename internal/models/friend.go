package models

import "time"

// RequestStatus is the lifecycle state of a friend request. Accepted and
// rejected requests are deleted rather than transitioned, so pending is
// the only value ever stored.
type RequestStatus string

const RequestPending RequestStatus = "pending"

// FriendRequest is a pending invitation, keyed senderID_receiverID.
type FriendRequest struct {
	ID         string        `json:"id"`
	SenderID   string        `json:"senderId"`
	ReceiverID string        `json:"receiverId"`
	Status     RequestStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// Friendship is a confirmed relation between two users. It is undirected
// but stored exactly once, keyed user1ID_user2ID with the accepting user
// first; lookups must try both directions.
type Friendship struct {
	ID        string    `json:"id"`
	User1ID   string    `json:"user1Id"`
	User2ID   string    `json:"user2Id"`
	CreatedAt time.Time `json:"createdAt"`
}

// PairKey builds the composite key used for both friend requests and
// friendships.
func PairKey(a, b string) string {
	return a + "_" + b
}

// Involves reports whether the friendship touches the given user.
func (f *Friendship) Involves(userID string) bool {
	return f.User1ID == userID || f.User2ID == userID
}

// OtherParty returns the counterpart of the given user in the friendship.
func (f *Friendship) OtherParty(userID string) string {
	if f.User1ID == userID {
		return f.User2ID
	}
	return f.User1ID
}
