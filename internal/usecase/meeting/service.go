package meeting

import (
	"context"

	"github.com/google/uuid"
	"github.com/relatecrm/backend/internal/domain/entities"
)

// Service defines the interface for the meeting use case
type Service interface {
	// CreateMeeting validates all references and persists a new meeting
	CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error)

	// GetMeeting retrieves one meeting with resolved references
	GetMeeting(ctx context.Context, meetingID uuid.UUID) (*ResolvedMeeting, error)

	// ListMeetings retrieves the meetings visible to the requester,
	// with resolved references
	ListMeetings(ctx context.Context, requester Requester, creatorFilter *uuid.UUID) ([]*ResolvedMeeting, error)

	// DeleteMeeting soft-deletes one meeting and returns the record
	DeleteMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Meeting, error)

	// DeleteMeetings soft-deletes every matching meeting and returns the
	// number of records affected
	DeleteMeetings(ctx context.Context, meetingIDs []uuid.UUID) (int64, error)
}

// Ensure MeetingService implements Service interface
var _ Service = (*MeetingService)(nil)
