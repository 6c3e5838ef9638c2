package meeting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "github.com/relatecrm/backend/errors"
	"github.com/relatecrm/backend/internal/domain/entities"
	"github.com/relatecrm/backend/internal/domain/repositories"
)

// MeetingService handles meeting business logic
type MeetingService struct {
	meetingRepo repositories.MeetingRepository
	userRepo    repositories.UserRepository
	contactRepo repositories.ContactRepository
	leadRepo    repositories.LeadRepository
	resolver    *Resolver
}

// NewMeetingService creates a new meeting service
func NewMeetingService(
	meetingRepo repositories.MeetingRepository,
	userRepo repositories.UserRepository,
	contactRepo repositories.ContactRepository,
	leadRepo repositories.LeadRepository,
) *MeetingService {
	return &MeetingService{
		meetingRepo: meetingRepo,
		userRepo:    userRepo,
		contactRepo: contactRepo,
		leadRepo:    leadRepo,
		resolver:    NewResolver(userRepo, contactRepo, leadRepo),
	}
}

// CreateMeetingInput represents input for creating a meeting. Reference
// identifiers arrive as strings; well-formedness is part of reference
// validation, not request binding.
type CreateMeetingInput struct {
	Agenda        string
	CreatedBy     string
	Attendees     []string
	AttendeeLeads []string
	Location      *string
	Related       datatypes.JSON
	DateTime      *time.Time
	Notes         *string
}

// CreateMeeting validates all references and persists a new meeting.
// Nothing is persisted when any check fails.
func (s *MeetingService) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error) {
	if input.Agenda == "" || input.CreatedBy == "" {
		return nil, apperrors.ErrValidationFailed("Agenda and createdBy are required")
	}

	createdBy, err := s.validateCreator(ctx, input.CreatedBy)
	if err != nil {
		return nil, err
	}
	attendeeIDs, err := s.validateContacts(ctx, input.Attendees)
	if err != nil {
		return nil, err
	}
	leadIDs, err := s.validateLeads(ctx, input.AttendeeLeads)
	if err != nil {
		return nil, err
	}

	meeting := &entities.Meeting{
		Agenda:          input.Agenda,
		AttendeeIDs:     attendeeIDs,
		AttendeeLeadIDs: leadIDs,
		Location:        input.Location,
		Related:         input.Related,
		DateTime:        input.DateTime,
		Notes:           input.Notes,
		CreatedBy:       createdBy,
		Status:          entities.MeetingStatusActive,
	}

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	return meeting, nil
}

// validateCreator checks that the identifier is well-formed and refers to an
// existing user
func (s *MeetingService) validateCreator(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.ErrReferenceNotFound("createdBy value", raw)
	}
	exists, err := s.userRepo.Exists(ctx, id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to check creator reference: %w", err)
	}
	if !exists {
		return uuid.Nil, apperrors.ErrReferenceNotFound("createdBy value", raw)
	}
	return id, nil
}

// validateContacts checks every attendee reference, failing fast on the
// first malformed or unknown identifier
func (s *MeetingService) validateContacts(ctx context.Context, raw []string) (datatypes.JSONSlice[uuid.UUID], error) {
	ids := make(datatypes.JSONSlice[uuid.UUID], 0, len(raw))
	for _, candidate := range raw {
		id, err := uuid.Parse(candidate)
		if err != nil {
			return nil, apperrors.ErrReferenceNotFound("attendee", candidate)
		}
		exists, err := s.contactRepo.Exists(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check attendee reference: %w", err)
		}
		if !exists {
			return nil, apperrors.ErrReferenceNotFound("attendee", candidate)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// validateLeads checks every lead attendee reference, failing fast on the
// first malformed or unknown identifier
func (s *MeetingService) validateLeads(ctx context.Context, raw []string) (datatypes.JSONSlice[uuid.UUID], error) {
	ids := make(datatypes.JSONSlice[uuid.UUID], 0, len(raw))
	for _, candidate := range raw {
		id, err := uuid.Parse(candidate)
		if err != nil {
			return nil, apperrors.ErrReferenceNotFound("lead attendee", candidate)
		}
		exists, err := s.leadRepo.Exists(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check lead attendee reference: %w", err)
		}
		if !exists {
			return nil, apperrors.ErrReferenceNotFound("lead attendee", candidate)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// GetMeeting retrieves one meeting with resolved references
func (s *MeetingService) GetMeeting(ctx context.Context, meetingID uuid.UUID) (*ResolvedMeeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingNotFound(meetingID.String())
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	return s.resolver.ResolveOne(ctx, meeting)
}

// ListMeetings retrieves the meetings visible to the requester with
// resolved references. The requester's role is resolved into a scope value
// exactly once, before the repository is touched.
func (s *MeetingService) ListMeetings(ctx context.Context, requester Requester, creatorFilter *uuid.UUID) ([]*ResolvedMeeting, error) {
	scope := ResolveScope(requester, creatorFilter)

	meetings, err := s.meetingRepo.ListByScope(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	return s.resolver.Resolve(ctx, meetings)
}

// DeleteMeeting soft-deletes one meeting. Deleting a meeting that is absent
// or already deleted reports not found; the record itself is never removed.
func (s *MeetingService) DeleteMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Meeting, error) {
	if err := s.meetingRepo.SoftDelete(ctx, meetingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingNotFound(meetingID.String())
		}
		return nil, fmt.Errorf("failed to delete meeting: %w", err)
	}

	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load deleted meeting: %w", err)
	}
	return meeting, nil
}

// DeleteMeetings soft-deletes every matching meeting. Identifiers that
// match no record are skipped without error.
func (s *MeetingService) DeleteMeetings(ctx context.Context, meetingIDs []uuid.UUID) (int64, error) {
	count, err := s.meetingRepo.SoftDeleteMany(ctx, meetingIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to delete meetings: %w", err)
	}
	return count, nil
}
