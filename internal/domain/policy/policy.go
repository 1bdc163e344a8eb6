// Package policy holds the visibility and authority rules for posts.
// Every function is pure over an entity.Entitlement.
package policy

import (
	"marketplace/internal/domain/entity"
)

// CanReadPremium reports whether premium posts are visible to the requester.
func CanReadPremium(ent entity.Entitlement) bool {
	return ent.CanReadPremium
}

// CanRead reports whether a single post is visible to the requester.
// Premium gating is checked before the moderation state.
func CanRead(ent entity.Entitlement, post *entity.Post) bool {
	return ReadDenial(ent, post) == DenialNone
}

// Denial names the rule that hid a post.
type Denial int

const (
	DenialNone Denial = iota
	DenialPremium
	DenialNotApproved
)

// ReadDenial returns the first rule that hides post from the requester.
func ReadDenial(ent entity.Entitlement, post *entity.Post) Denial {
	if post.IsPremium && !CanReadPremium(ent) {
		return DenialPremium
	}
	if !post.IsApproved() && !ent.CanModerate && !ent.Owns(post.AuthorID) {
		return DenialNotApproved
	}

	return DenialNone
}

// CanWrite reports moderation authority: approving and rejecting posts,
// deleting comments and managing categories.
func CanWrite(ent entity.Entitlement) bool {
	return ent.CanModerate
}

// CanAttachShop reports whether a post may reference shop.
func CanAttachShop(ent entity.Entitlement, shop *entity.Shop) bool {
	return ent.CanModerate || ent.Owns(shop.OwnerID)
}

// CanCreateShop reports whether the requester may open a shop.
func CanCreateShop(ent entity.Entitlement) bool {
	return ent.Authenticated && ent.CanOwnShops
}
