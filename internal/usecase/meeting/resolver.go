package meeting

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/relatecrm/backend/internal/domain/entities"
	"github.com/relatecrm/backend/internal/domain/repositories"
)

// ResolvedMeeting is a meeting with its references replaced by the
// referenced records. Each reference list is resolved independently and
// attached to the one output record; the lists are never flattened against
// each other.
type ResolvedMeeting struct {
	Meeting *entities.Meeting

	// Creator is nil when the referenced user no longer exists. Callers
	// render an empty display name in that case instead of failing.
	Creator *entities.User

	// Attendees and AttendeeLeads keep the stored reference order.
	// Identifiers that no longer resolve are dropped, not reported.
	Attendees     []*entities.Contact
	AttendeeLeads []*entities.Lead
}

// Resolver performs the read-time join of meeting references against the
// user, contact and lead stores.
type Resolver struct {
	userRepo    repositories.UserRepository
	contactRepo repositories.ContactRepository
	leadRepo    repositories.LeadRepository
}

// NewResolver creates a new resolver
func NewResolver(
	userRepo repositories.UserRepository,
	contactRepo repositories.ContactRepository,
	leadRepo repositories.LeadRepository,
) *Resolver {
	return &Resolver{
		userRepo:    userRepo,
		contactRepo: contactRepo,
		leadRepo:    leadRepo,
	}
}

// Resolve enriches a batch of meetings. Referenced records are loaded with
// one lookup per entity kind for the whole batch.
func (r *Resolver) Resolve(ctx context.Context, meetings []*entities.Meeting) ([]*ResolvedMeeting, error) {
	if len(meetings) == 0 {
		return []*ResolvedMeeting{}, nil
	}

	userIDs := make([]uuid.UUID, 0, len(meetings))
	var contactIDs, leadIDs []uuid.UUID
	for _, m := range meetings {
		userIDs = append(userIDs, m.CreatedBy)
		contactIDs = append(contactIDs, m.AttendeeIDs...)
		leadIDs = append(leadIDs, m.AttendeeLeadIDs...)
	}

	users, err := r.userRepo.FindByIDs(ctx, dedupe(userIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve meeting creators: %w", err)
	}
	contacts, err := r.contactRepo.FindByIDs(ctx, dedupe(contactIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve meeting attendees: %w", err)
	}
	leads, err := r.leadRepo.FindByIDs(ctx, dedupe(leadIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve meeting lead attendees: %w", err)
	}

	usersByID := make(map[uuid.UUID]*entities.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}
	contactsByID := make(map[uuid.UUID]*entities.Contact, len(contacts))
	for _, c := range contacts {
		contactsByID[c.ID] = c
	}
	leadsByID := make(map[uuid.UUID]*entities.Lead, len(leads))
	for _, l := range leads {
		leadsByID[l.ID] = l
	}

	resolved := make([]*ResolvedMeeting, 0, len(meetings))
	for _, m := range meetings {
		rm := &ResolvedMeeting{
			Meeting:       m,
			Creator:       usersByID[m.CreatedBy],
			Attendees:     make([]*entities.Contact, 0, len(m.AttendeeIDs)),
			AttendeeLeads: make([]*entities.Lead, 0, len(m.AttendeeLeadIDs)),
		}
		for _, id := range m.AttendeeIDs {
			if c, ok := contactsByID[id]; ok {
				rm.Attendees = append(rm.Attendees, c)
			}
		}
		for _, id := range m.AttendeeLeadIDs {
			if l, ok := leadsByID[id]; ok {
				rm.AttendeeLeads = append(rm.AttendeeLeads, l)
			}
		}
		resolved = append(resolved, rm)
	}

	return resolved, nil
}

// ResolveOne enriches a single meeting
func (r *Resolver) ResolveOne(ctx context.Context, m *entities.Meeting) (*ResolvedMeeting, error) {
	resolved, err := r.Resolve(ctx, []*entities.Meeting{m})
	if err != nil {
		return nil, err
	}
	return resolved[0], nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
