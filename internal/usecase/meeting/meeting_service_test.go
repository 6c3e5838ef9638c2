package meeting

import (
	"context"
	stdErrors "errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/relatecrm/backend/errors"
	"github.com/relatecrm/backend/internal/domain/entities"
	"github.com/relatecrm/backend/internal/domain/repositories"
)

// In-memory stubs for the repository contracts

type stubMeetingRepo struct {
	meetings    map[uuid.UUID]*entities.Meeting
	createCalls int
}

func newStubMeetingRepo() *stubMeetingRepo {
	return &stubMeetingRepo{meetings: make(map[uuid.UUID]*entities.Meeting)}
}

func (s *stubMeetingRepo) Create(_ context.Context, m *entities.Meeting) error {
	s.createCalls++
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	s.meetings[m.ID] = m
	return nil
}

func (s *stubMeetingRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Meeting, error) {
	m, ok := s.meetings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (s *stubMeetingRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	m, ok := s.meetings[id]
	if !ok || m.Status != entities.MeetingStatusActive {
		return gorm.ErrRecordNotFound
	}
	m.Status = entities.MeetingStatusDeleted
	return nil
}

func (s *stubMeetingRepo) SoftDeleteMany(_ context.Context, ids []uuid.UUID) (int64, error) {
	var count int64
	for _, id := range ids {
		if m, ok := s.meetings[id]; ok && m.Status == entities.MeetingStatusActive {
			m.Status = entities.MeetingStatusDeleted
			count++
		}
	}
	return count, nil
}

func (s *stubMeetingRepo) ListByScope(_ context.Context, scope repositories.MeetingScope) ([]*entities.Meeting, error) {
	var out []*entities.Meeting
	for _, m := range s.meetings {
		if m.Status != entities.MeetingStatusActive {
			continue
		}
		if scope.CreatedBy != nil && m.CreatedBy != *scope.CreatedBy {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type stubUserRepo struct {
	users map[uuid.UUID]*entities.User
}

func newStubUserRepo(users ...*entities.User) *stubUserRepo {
	s := &stubUserRepo{users: make(map[uuid.UUID]*entities.User)}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (s *stubUserRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entities.User, error) {
	var out []*entities.User
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *stubUserRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := s.users[id]
	return ok, nil
}

type stubContactRepo struct {
	contacts map[uuid.UUID]*entities.Contact
}

func newStubContactRepo(contacts ...*entities.Contact) *stubContactRepo {
	s := &stubContactRepo{contacts: make(map[uuid.UUID]*entities.Contact)}
	for _, c := range contacts {
		s.contacts[c.ID] = c
	}
	return s
}

func (s *stubContactRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Contact, error) {
	c, ok := s.contacts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (s *stubContactRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entities.Contact, error) {
	var out []*entities.Contact
	for _, id := range ids {
		if c, ok := s.contacts[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubContactRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := s.contacts[id]
	return ok, nil
}

type stubLeadRepo struct {
	leads map[uuid.UUID]*entities.Lead
}

func newStubLeadRepo(leads ...*entities.Lead) *stubLeadRepo {
	s := &stubLeadRepo{leads: make(map[uuid.UUID]*entities.Lead)}
	for _, l := range leads {
		s.leads[l.ID] = l
	}
	return s
}

func (s *stubLeadRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Lead, error) {
	l, ok := s.leads[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return l, nil
}

func (s *stubLeadRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entities.Lead, error) {
	var out []*entities.Lead
	for _, id := range ids {
		if l, ok := s.leads[id]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *stubLeadRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := s.leads[id]
	return ok, nil
}

func newTestService() (*MeetingService, *stubMeetingRepo, *stubUserRepo, *stubContactRepo, *stubLeadRepo) {
	meetingRepo := newStubMeetingRepo()
	userRepo := newStubUserRepo()
	contactRepo := newStubContactRepo()
	leadRepo := newStubLeadRepo()
	svc := NewMeetingService(meetingRepo, userRepo, contactRepo, leadRepo)
	return svc, meetingRepo, userRepo, contactRepo, leadRepo
}

func TestCreateMeeting_MissingRequiredFields(t *testing.T) {
	svc, meetingRepo, userRepo, _, _ := newTestService()
	creator := &entities.User{ID: uuid.New(), FirstName: "Jane", LastName: "Doe", Role: entities.RoleUser}
	userRepo.users[creator.ID] = creator

	cases := []CreateMeetingInput{
		{Agenda: "", CreatedBy: creator.ID.String()},
		{Agenda: "Sync", CreatedBy: ""},
	}

	for _, input := range cases {
		if _, err := svc.CreateMeeting(context.Background(), input); err == nil {
			t.Fatalf("expected validation error for input %+v", input)
		}
	}

	if meetingRepo.createCalls != 0 {
		t.Fatalf("expected no persistence, got %d create calls", meetingRepo.createCalls)
	}
}

func TestCreateMeeting_UnknownAttendeeFailsFast(t *testing.T) {
	svc, meetingRepo, userRepo, contactRepo, _ := newTestService()
	creator := &entities.User{ID: uuid.New(), FirstName: "Jane", LastName: "Doe"}
	userRepo.users[creator.ID] = creator
	known := &entities.Contact{ID: uuid.New(), FirstName: "Bob"}
	contactRepo.contacts[known.ID] = known
	unknown := uuid.New()

	_, err := svc.CreateMeeting(context.Background(), CreateMeetingInput{
		Agenda:    "Sync",
		CreatedBy: creator.ID.String(),
		Attendees: []string{known.ID.String(), unknown.String()},
	})
	if err == nil {
		t.Fatal("expected reference error")
	}

	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != apperrors.ErrorCode_REFERENCE_NOT_FOUND {
		t.Fatalf("unexpected code %v", appErr.Code)
	}
	if appErr.Details["id"] != unknown.String() {
		t.Fatalf("error should name the failing identifier, got %v", appErr.Details)
	}

	if meetingRepo.createCalls != 0 {
		t.Fatal("nothing should be persisted when a reference is invalid")
	}
}

func TestCreateMeeting_MalformedCreatorID(t *testing.T) {
	svc, meetingRepo, _, _, _ := newTestService()

	_, err := svc.CreateMeeting(context.Background(), CreateMeetingInput{
		Agenda:    "Sync",
		CreatedBy: "not-a-uuid",
	})
	if err == nil {
		t.Fatal("expected reference error for malformed creator id")
	}
	if meetingRepo.createCalls != 0 {
		t.Fatal("nothing should be persisted")
	}
}

func TestCreateMeeting_Success(t *testing.T) {
	svc, meetingRepo, userRepo, contactRepo, leadRepo := newTestService()
	creator := &entities.User{ID: uuid.New(), FirstName: "Jane", LastName: "Doe"}
	userRepo.users[creator.ID] = creator
	contact := &entities.Contact{ID: uuid.New(), FirstName: "Bob"}
	contactRepo.contacts[contact.ID] = contact
	lead := &entities.Lead{ID: uuid.New(), Name: "Acme"}
	leadRepo.leads[lead.ID] = lead

	meeting, err := svc.CreateMeeting(context.Background(), CreateMeetingInput{
		Agenda:        "Sync",
		CreatedBy:     creator.ID.String(),
		Attendees:     []string{contact.ID.String()},
		AttendeeLeads: []string{lead.ID.String()},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if meeting.Agenda != "Sync" {
		t.Fatalf("unexpected agenda %q", meeting.Agenda)
	}
	if meeting.Status != entities.MeetingStatusActive {
		t.Fatalf("new meeting should be active, got %s", meeting.Status)
	}
	if len(meeting.AttendeeIDs) != 1 || meeting.AttendeeIDs[0] != contact.ID {
		t.Fatalf("unexpected attendee refs %v", meeting.AttendeeIDs)
	}
	if _, ok := meetingRepo.meetings[meeting.ID]; !ok {
		t.Fatal("meeting not persisted")
	}
}

func TestListMeetings_NonPrivilegedForcedToSelf(t *testing.T) {
	svc, meetingRepo, userRepo, _, _ := newTestService()
	self := &entities.User{ID: uuid.New(), FirstName: "Jane", LastName: "Doe", Role: entities.RoleUser}
	other := &entities.User{ID: uuid.New(), FirstName: "John", LastName: "Smith", Role: entities.RoleUser}
	userRepo.users[self.ID] = self
	userRepo.users[other.ID] = other

	mine := &entities.Meeting{ID: uuid.New(), Agenda: "Mine", CreatedBy: self.ID, Status: entities.MeetingStatusActive}
	theirs := &entities.Meeting{ID: uuid.New(), Agenda: "Theirs", CreatedBy: other.ID, Status: entities.MeetingStatusActive}
	meetingRepo.meetings[mine.ID] = mine
	meetingRepo.meetings[theirs.ID] = theirs

	// A non-privileged requester tries to widen the view with a filter
	// pointing at another creator; the scope must still be forced to self.
	requester := Requester{UserID: self.ID, Role: entities.RoleUser}
	resolved, err := svc.ListMeetings(context.Background(), requester, &other.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resolved) != 1 {
		t.Fatalf("expected 1 meeting, got %d", len(resolved))
	}
	if resolved[0].Meeting.CreatedBy != self.ID {
		t.Fatal("non-privileged requester received a meeting they did not create")
	}
}

func TestListMeetings_SuperAdminSeesAllActive(t *testing.T) {
	svc, meetingRepo, userRepo, _, _ := newTestService()
	admin := &entities.User{ID: uuid.New(), FirstName: "Ada", LastName: "Admin", Role: entities.RoleSuperAdmin}
	other := &entities.User{ID: uuid.New(), FirstName: "John", LastName: "Smith", Role: entities.RoleUser}
	userRepo.users[admin.ID] = admin
	userRepo.users[other.ID] = other

	active := &entities.Meeting{ID: uuid.New(), Agenda: "Active", CreatedBy: other.ID, Status: entities.MeetingStatusActive}
	deleted := &entities.Meeting{ID: uuid.New(), Agenda: "Deleted", CreatedBy: other.ID, Status: entities.MeetingStatusDeleted}
	meetingRepo.meetings[active.ID] = active
	meetingRepo.meetings[deleted.ID] = deleted

	requester := Requester{UserID: admin.ID, Role: entities.RoleSuperAdmin}
	resolved, err := svc.ListMeetings(context.Background(), requester, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resolved) != 1 {
		t.Fatalf("expected only the active meeting, got %d records", len(resolved))
	}
	if resolved[0].Meeting.ID != active.ID {
		t.Fatal("deleted meeting leaked into the listing")
	}
}

func TestDeleteMeeting_RepeatReportsNotFound(t *testing.T) {
	svc, meetingRepo, _, _, _ := newTestService()
	m := &entities.Meeting{ID: uuid.New(), Agenda: "Sync", CreatedBy: uuid.New(), Status: entities.MeetingStatusActive}
	meetingRepo.meetings[m.ID] = m

	deleted, err := svc.DeleteMeeting(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if deleted.Status != entities.MeetingStatusDeleted {
		t.Fatalf("expected deleted status, got %s", deleted.Status)
	}

	_, err = svc.DeleteMeeting(context.Background(), m.ID)
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_MEETING_NOT_FOUND {
		t.Fatalf("second delete should report not found, got %v", err)
	}
	if meetingRepo.meetings[m.ID].Status != entities.MeetingStatusDeleted {
		t.Fatal("record should stay deleted")
	}
}

func TestDeleteMeetings_SkipsUnknownIDs(t *testing.T) {
	svc, meetingRepo, _, _, _ := newTestService()
	m := &entities.Meeting{ID: uuid.New(), Agenda: "Sync", CreatedBy: uuid.New(), Status: entities.MeetingStatusActive}
	meetingRepo.meetings[m.ID] = m

	count, err := svc.DeleteMeetings(context.Background(), []uuid.UUID{m.ID, uuid.New()})
	if err != nil {
		t.Fatalf("bulk delete should not fail on unknown ids: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 deleted record, got %d", count)
	}
	if meetingRepo.meetings[m.ID].Status != entities.MeetingStatusDeleted {
		t.Fatal("known meeting should be deleted")
	}
}

func TestGetMeeting_NotFound(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.GetMeeting(context.Background(), uuid.New())
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_MEETING_NOT_FOUND {
		t.Fatalf("expected meeting not found, got %v", err)
	}
}

func TestGetMeeting_MissingCreatorResolvesEmpty(t *testing.T) {
	svc, meetingRepo, _, _, _ := newTestService()

	// Creator reference dangles: the user was removed after the meeting
	// was created. Resolution must not fail.
	m := &entities.Meeting{ID: uuid.New(), Agenda: "Sync", CreatedBy: uuid.New(), Status: entities.MeetingStatusActive}
	meetingRepo.meetings[m.ID] = m

	resolved, err := svc.GetMeeting(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Creator != nil {
		t.Fatal("expected absent creator")
	}
}
