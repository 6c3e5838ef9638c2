package presenter

import (
	"encoding/json"

	meetingdto "github.com/relatecrm/backend/internal/adapter/dto/meeting"
	"github.com/relatecrm/backend/internal/domain/entities"
	meetingUsecase "github.com/relatecrm/backend/internal/usecase/meeting"
)

// ToMeetingResponse converts a resolved meeting to its response DTO.
// The display name is the creator's first and last name joined by a single
// space; when the creator no longer exists it stays empty.
func ToMeetingResponse(rm *meetingUsecase.ResolvedMeeting) *meetingdto.MeetingResponse {
	if rm == nil || rm.Meeting == nil {
		return nil
	}

	m := rm.Meeting

	response := &meetingdto.MeetingResponse{
		ID:            m.ID.String(),
		Agenda:        m.Agenda,
		Attendees:     make([]*meetingdto.ContactResponse, 0, len(rm.Attendees)),
		AttendeeLeads: make([]*meetingdto.LeadResponse, 0, len(rm.AttendeeLeads)),
		Location:      m.Location,
		Related:       json.RawMessage(m.Related),
		DateTime:      m.DateTime,
		Notes:         m.Notes,
		Status:        string(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	if rm.Creator != nil {
		response.CreateByName = rm.Creator.FullName()
	}

	for _, c := range rm.Attendees {
		response.Attendees = append(response.Attendees, ToContactResponse(c))
	}
	for _, l := range rm.AttendeeLeads {
		response.AttendeeLeads = append(response.AttendeeLeads, ToLeadResponse(l))
	}

	return response
}

// ToMeetingListResponse converts a slice of resolved meetings
func ToMeetingListResponse(resolved []*meetingUsecase.ResolvedMeeting) []*meetingdto.MeetingResponse {
	responses := make([]*meetingdto.MeetingResponse, 0, len(resolved))
	for _, rm := range resolved {
		responses = append(responses, ToMeetingResponse(rm))
	}
	return responses
}

// ToContactResponse converts a Contact entity to its response DTO
func ToContactResponse(c *entities.Contact) *meetingdto.ContactResponse {
	if c == nil {
		return nil
	}
	return &meetingdto.ContactResponse{
		ID:        c.ID.String(),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

// ToLeadResponse converts a Lead entity to its response DTO
func ToLeadResponse(l *entities.Lead) *meetingdto.LeadResponse {
	if l == nil {
		return nil
	}
	return &meetingdto.LeadResponse{
		ID:     l.ID.String(),
		Name:   l.Name,
		Email:  l.Email,
		Phone:  l.Phone,
		Source: l.Source,
		Status: l.Status,
	}
}
