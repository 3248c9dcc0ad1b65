package service

import (
	"strings"
	"time"

	"banter/server/internal/models"
	"banter/server/internal/store"

	"github.com/google/uuid"
)

// Users is the identity and directory service.
type Users struct {
	db   *store.Store
	live Delivery
}

func NewUsers(db *store.Store, live Delivery) *Users {
	return &Users{db: db, live: live}
}

// Create registers a new user. The password must already be hashed by
// the caller. Email uniqueness is checked with a full scan, which is
// O(n) and fine at this scale.
func (s *Users) Create(username, email, passwordHash string) (*models.User, error) {
	if username == "" || email == "" || passwordHash == "" {
		return nil, ErrInvalidInput
	}

	s.db.Lock()
	defer s.db.Unlock()

	for _, u := range s.db.Users.Values() {
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: time.Now(),
	}
	s.db.Users.Put(user.ID, user)

	return user, nil
}

// ByEmail finds a user by email address.
func (s *Users) ByEmail(email string) (*models.User, error) {
	s.db.Lock()
	defer s.db.Unlock()

	for _, u := range s.db.Users.Values() {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

// ByID finds a user by ID.
func (s *Users) ByID(id string) (*models.User, error) {
	s.db.Lock()
	defer s.db.Unlock()

	user, ok := s.db.Users.Get(id)
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ProfileUpdate carries the optional fields of an update; nil means
// leave the current value alone.
type ProfileUpdate struct {
	Username   *string
	ProfilePic *string
}

// UpdateProfile overwrites only the provided fields.
func (s *Users) UpdateProfile(id string, update ProfileUpdate) (*models.User, error) {
	s.db.Lock()
	defer s.db.Unlock()

	user, ok := s.db.Users.Get(id)
	if !ok {
		return nil, ErrUserNotFound
	}

	updated := *user
	if update.Username != nil {
		updated.Username = *update.Username
	}
	if update.ProfilePic != nil {
		updated.ProfilePic = *update.ProfilePic
	}
	s.db.Users.Put(id, &updated)

	return &updated, nil
}

// SetPassword stores a new password hash. Verifying the old password is
// the caller's job.
func (s *Users) SetPassword(id, passwordHash string) error {
	if passwordHash == "" {
		return ErrInvalidInput
	}

	s.db.Lock()
	defer s.db.Unlock()

	user, ok := s.db.Users.Get(id)
	if !ok {
		return ErrUserNotFound
	}

	updated := *user
	updated.Password = passwordHash
	s.db.Users.Put(id, &updated)

	return nil
}

// Search returns users whose username contains the query,
// case-insensitive, excluding the requesting user. An empty query
// matches nothing.
func (s *Users) Search(query, excludeID string) []models.UserSummary {
	results := []models.UserSummary{}
	if query == "" {
		return results
	}
	query = strings.ToLower(query)

	s.db.Lock()
	defer s.db.Unlock()

	for _, u := range s.db.Users.Values() {
		if u.ID == excludeID {
			continue
		}
		if !strings.Contains(strings.ToLower(u.Username), query) {
			continue
		}
		results = append(results, models.UserSummary{
			ID:         u.ID,
			Username:   u.Username,
			ProfilePic: u.ProfilePic,
			Status:     status(s.live, u.ID),
		})
	}
	return results
}

// DeleteAccount removes the user and cascades across every collection
// that references the ID: friendships, friend requests, messages with
// their statuses, and notifications on either end, so a counterpart's
// inbox keeps no record naming the deleted account. The presence entry
// is dropped too so a connected session stops receiving deliveries.
func (s *Users) DeleteAccount(id string) error {
	s.db.Lock()
	defer s.db.Unlock()

	if _, ok := s.db.Users.Get(id); !ok {
		return ErrUserNotFound
	}

	for _, f := range s.db.Friendships.Values() {
		if f.Involves(id) {
			s.db.Friendships.Remove(f.ID)
		}
	}
	for _, r := range s.db.FriendRequests.Values() {
		if r.SenderID == id || r.ReceiverID == id {
			s.db.FriendRequests.Remove(r.ID)
		}
	}
	for _, m := range s.db.Messages.Values() {
		if m.SenderID == id || m.ReceiverID == id {
			s.db.Messages.Remove(m.ID)
			s.db.MessageStatuses.Remove(m.ID)
		}
	}
	for _, n := range s.db.Notifications.Values() {
		if n.ReceiverID == id || n.SenderID == id {
			s.db.Notifications.Remove(n.ID)
		}
	}

	s.live.DropPresence(id)
	s.db.Users.Remove(id)

	return nil
}
