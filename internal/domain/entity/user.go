// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account on the marketplace. The visibility rules only look at
// Role and IsPremium; the rest is identity data.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Name         string    // The user's display name.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt hash, never serialized to clients.
	Role         Role      // USER, VENDOR or ADMIN.
	IsPremium    bool      // Set by a successful subscription checkout.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// Requester is the identity attached to an inbound request.
// A nil *Requester is an anonymous caller.
type Requester struct {
	ID        uuid.UUID
	Role      Role
	IsPremium bool
}

// RequesterFromUser builds the request identity from the stored user row.
func RequesterFromUser(user *User) *Requester {
	if user == nil {
		return nil
	}

	return &Requester{
		ID:        user.ID,
		Role:      user.Role,
		IsPremium: user.IsPremium,
	}
}
