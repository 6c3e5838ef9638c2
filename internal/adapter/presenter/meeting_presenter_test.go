package presenter

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/relatecrm/backend/internal/domain/entities"
	meetingUsecase "github.com/relatecrm/backend/internal/usecase/meeting"
)

func TestToMeetingResponse(t *testing.T) {
	email := "alice@example.com"
	when := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	rm := &meetingUsecase.ResolvedMeeting{
		Meeting: &entities.Meeting{
			ID:        uuid.New(),
			Agenda:    "Quarterly review",
			DateTime:  &when,
			CreatedBy: uuid.New(),
			Status:    entities.MeetingStatusActive,
		},
		Creator: &entities.User{FirstName: "Jane", LastName: "Doe"},
		Attendees: []*entities.Contact{
			{ID: uuid.New(), FirstName: "Alice", LastName: "Smith", Email: &email},
		},
		AttendeeLeads: []*entities.Lead{
			{ID: uuid.New(), Name: "Acme"},
		},
	}

	resp := ToMeetingResponse(rm)

	if resp.CreateByName != "Jane Doe" {
		t.Fatalf("createByName = %q, want %q", resp.CreateByName, "Jane Doe")
	}
	if resp.Agenda != "Quarterly review" {
		t.Fatalf("unexpected agenda %q", resp.Agenda)
	}
	if len(resp.Attendees) != 1 || resp.Attendees[0].FirstName != "Alice" {
		t.Fatalf("unexpected attendees %+v", resp.Attendees)
	}
	if len(resp.AttendeeLeads) != 1 || resp.AttendeeLeads[0].Name != "Acme" {
		t.Fatalf("unexpected attendee leads %+v", resp.AttendeeLeads)
	}
	if resp.Status != "active" {
		t.Fatalf("unexpected status %q", resp.Status)
	}
}

func TestToMeetingResponse_AbsentCreator(t *testing.T) {
	rm := &meetingUsecase.ResolvedMeeting{
		Meeting: &entities.Meeting{ID: uuid.New(), Agenda: "Sync", CreatedBy: uuid.New()},
	}

	resp := ToMeetingResponse(rm)

	if resp.CreateByName != "" {
		t.Fatalf("expected empty createByName for absent creator, got %q", resp.CreateByName)
	}
	if resp.Attendees == nil || len(resp.Attendees) != 0 {
		t.Fatalf("expected empty attendee list, got %v", resp.Attendees)
	}
}

func TestToMeetingResponse_Nil(t *testing.T) {
	if resp := ToMeetingResponse(nil); resp != nil {
		t.Fatal("expected nil response for nil input")
	}
	if resp := ToMeetingResponse(&meetingUsecase.ResolvedMeeting{}); resp != nil {
		t.Fatal("expected nil response for missing meeting")
	}
}

func TestToMeetingListResponse(t *testing.T) {
	resolved := []*meetingUsecase.ResolvedMeeting{
		{Meeting: &entities.Meeting{ID: uuid.New(), Agenda: "First"}},
		{Meeting: &entities.Meeting{ID: uuid.New(), Agenda: "Second"}},
	}

	responses := ToMeetingListResponse(resolved)
	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}

	if responses := ToMeetingListResponse(nil); len(responses) != 0 {
		t.Fatalf("expected empty list, got %d", len(responses))
	}
}
