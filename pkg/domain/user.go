package domain

import "github.com/google/uuid"

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

func (id UserID) String() string { return uuid.UUID(id).String() }

// Identity is an authenticated caller as resolved from a bearer credential.
type Identity struct {
	// UserID is the subject of the credential.
	UserID UserID
	// Email is optional and preferred over the ID when recording who did something.
	Email string
}

// String returns the human-meaningful identity: the email when known, the user ID otherwise.
func (i Identity) String() string {
	if i.Email != "" {
		return i.Email
	}

	return i.UserID.String()
}
