package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure a service returns wraps exactly one of
// these, so handlers map kinds to status codes with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("duplicate")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

var (
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrRequestNotFound      = fmt.Errorf("friend request %w", ErrNotFound)
	ErrFriendshipNotFound   = fmt.Errorf("friendship %w", ErrNotFound)
	ErrMessageNotFound      = fmt.Errorf("message %w", ErrNotFound)
	ErrNotificationNotFound = fmt.Errorf("notification %w", ErrNotFound)

	ErrDuplicateEmail   = fmt.Errorf("%w: email already registered", ErrDuplicate)
	ErrDuplicateRequest = fmt.Errorf("%w: friend request already sent", ErrDuplicate)
	ErrAlreadyFriends   = fmt.Errorf("%w: already friends", ErrConflict)
	ErrNotFriends       = fmt.Errorf("%w: users are not friends", ErrForbidden)
)
