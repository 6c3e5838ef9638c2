package meeting

import (
	"github.com/google/uuid"

	"github.com/relatecrm/backend/internal/domain/entities"
	"github.com/relatecrm/backend/internal/domain/repositories"
)

// Requester identifies the authenticated caller. The role is resolved into a
// MeetingScope exactly once per request; nothing downstream branches on it.
type Requester struct {
	UserID uuid.UUID
	Role   entities.UserRole
}

// ResolveScope computes the query scope for the requester.
//
// The privileged role sees all active meetings and may narrow the listing
// with a creator filter. Every other role is forced to its own meetings:
// a supplied creator filter is overridden, so non-privileged requesters can
// never widen their view past what they created.
func ResolveScope(requester Requester, creatorFilter *uuid.UUID) repositories.MeetingScope {
	if requester.Role == entities.RoleSuperAdmin {
		return repositories.MeetingScope{CreatedBy: creatorFilter}
	}

	self := requester.UserID
	return repositories.MeetingScope{CreatedBy: &self}
}
