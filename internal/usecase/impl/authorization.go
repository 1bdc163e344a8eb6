package impl

import (
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/policy"
)

// requireAuthenticated rejects anonymous requesters.
func requireAuthenticated(requester *entity.Requester) (entity.Entitlement, error) {
	ent := entity.NewEntitlement(requester)
	if !ent.Authenticated {
		return ent, domainerrors.ErrUnauthorized
	}

	return ent, nil
}

// requireModerator rejects requesters without moderation authority.
func requireModerator(requester *entity.Requester) (entity.Entitlement, error) {
	ent, err := requireAuthenticated(requester)
	if err != nil {
		return ent, err
	}
	if !policy.CanWrite(ent) {
		return ent, domainerrors.ErrForbidden.WrapMessage("admin role required")
	}

	return ent, nil
}
