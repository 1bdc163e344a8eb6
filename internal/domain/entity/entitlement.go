package entity

import "github.com/google/uuid"

// Entitlement is the capability set of a requester, computed once per request.
type Entitlement struct {
	UserID         uuid.UUID
	Authenticated  bool
	CanReadPremium bool
	CanModerate    bool
	CanOwnShops    bool
}

// NewEntitlement derives capabilities from the requester. A nil requester
// gets the anonymous entitlement.
func NewEntitlement(r *Requester) Entitlement {
	if r == nil {
		return Entitlement{}
	}

	isAdmin := r.Role == RoleAdmin

	return Entitlement{
		UserID:         r.ID,
		Authenticated:  true,
		CanReadPremium: r.IsPremium || isAdmin,
		CanModerate:    isAdmin,
		CanOwnShops:    r.Role.CanOwnShops(),
	}
}

// Owns reports whether the requester is the given user.
func (e Entitlement) Owns(userID uuid.UUID) bool {
	return e.Authenticated && e.UserID == userID
}
