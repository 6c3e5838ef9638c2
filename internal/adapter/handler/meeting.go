package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	apperrors "github.com/relatecrm/backend/errors"
	meetingdto "github.com/relatecrm/backend/internal/adapter/dto/meeting"
	"github.com/relatecrm/backend/internal/adapter/presenter"
	"github.com/relatecrm/backend/internal/domain/entities"
	meetingUsecase "github.com/relatecrm/backend/internal/usecase/meeting"
)

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	meetingService meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// CreateMeeting handles POST /meetings
// @Summary      Create a new meeting
// @Description  Validates all references and persists a new meeting record
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      meeting.CreateMeetingRequest  true  "Meeting creation request"
// @Success      201      {object}  meeting.CreateMeetingResponse  "Meeting created successfully"
// @Failure      400      {object}  map[string]interface{}  "Missing required fields or invalid reference"
// @Failure      500      {object}  map[string]interface{}  "Failed to create meeting"
// @Router       /meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meetingdto.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrValidationFailed("Agenda and createdBy are required"))
	}

	input := meetingUsecase.CreateMeetingInput{
		Agenda:        req.Agenda,
		CreatedBy:     req.CreatedBy,
		Attendees:     req.Attendees,
		AttendeeLeads: req.AttendeeLeads,
		Location:      req.Location,
		Related:       datatypes.JSON(req.Related),
		DateTime:      req.DateTime,
		Notes:         req.Notes,
	}

	meeting, err := h.meetingService.CreateMeeting(c.Request().Context(), input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusCreated, &meetingdto.CreateMeetingResponse{
		Message: "Meeting created successfully",
		Meeting: meeting,
	})
}

// ListMeetings handles GET /meetings
// @Summary      List meetings
// @Description  Lists the meetings visible to the requester with resolved references
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        createdBy  query     string  false  "Creator filter (privileged role only)"
// @Success      200        {array}   meeting.MeetingResponse  "Resolved meeting records"
// @Failure      500        {object}  map[string]interface{}  "Failed to fetch meetings"
// @Router       /meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	requester, err := requesterFromContext(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingdto.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	var creatorFilter *uuid.UUID
	if req.CreatedBy != "" {
		id, err := uuid.Parse(req.CreatedBy)
		if err != nil {
			return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid createdBy filter"))
		}
		creatorFilter = &id
	}

	resolved, err := h.meetingService.ListMeetings(c.Request().Context(), requester, creatorFilter)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToMeetingListResponse(resolved))
}

// GetMeeting handles GET /meetings/:id
// @Summary      View a meeting
// @Description  Returns one meeting with resolved references
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  meeting.MeetingResponse  "Resolved meeting record"
// @Failure      400  {object}  map[string]interface{}  "Invalid meeting ID"
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidMeetingID())
	}

	resolved, err := h.meetingService.GetMeeting(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToMeetingResponse(resolved))
}

// DeleteMeeting handles DELETE /meetings/:id
// @Summary      Delete a meeting
// @Description  Soft-deletes one meeting; the record is marked deleted, never removed
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  meeting.DeleteMeetingResponse  "Meeting deleted successfully"
// @Failure      400  {object}  map[string]interface{}  "Invalid meeting ID"
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id} [delete]
func (h *Meeting) DeleteMeeting(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidMeetingID())
	}

	meeting, err := h.meetingService.DeleteMeeting(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, &meetingdto.DeleteMeetingResponse{
		Message: "Meeting deleted successfully",
		Meeting: meeting,
	})
}

// DeleteMeetings handles POST /meetings/delete-many
// @Summary      Bulk delete meetings
// @Description  Soft-deletes every matching meeting; unknown identifiers are skipped
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      meeting.DeleteManyRequest  true  "Meeting IDs"
// @Success      200      {object}  meeting.DeleteManyResponse  "Bulk delete summary"
// @Failure      500      {object}  map[string]interface{}  "Failed to delete meetings"
// @Router       /meetings/delete-many [post]
func (h *Meeting) DeleteMeetings(c echo.Context) error {
	var req meetingdto.DeleteManyRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	// Best-effort bulk semantics: malformed identifiers are skipped the
	// same way unknown ones are.
	ids := make([]uuid.UUID, 0, len(req.MeetingIDs))
	for _, raw := range req.MeetingIDs {
		if id, err := uuid.Parse(raw); err == nil {
			ids = append(ids, id)
		}
	}

	count, err := h.meetingService.DeleteMeetings(c.Request().Context(), ids)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, &meetingdto.DeleteManyResponse{
		Message:      "Meetings deleted successfully",
		DeletedCount: count,
	})
}

// requesterFromContext reads the identity set by the auth middleware
func requesterFromContext(c echo.Context) (meetingUsecase.Requester, error) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return meetingUsecase.Requester{}, apperrors.ErrUnauthenticated()
	}
	role, ok := c.Get("user_role").(entities.UserRole)
	if !ok {
		return meetingUsecase.Requester{}, apperrors.ErrUnauthenticated()
	}
	return meetingUsecase.Requester{UserID: userID, Role: role}, nil
}
