package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/application/adapter"
	"github.com/study-tracker/backend/internal/application/usecase/session"
	domainerror "github.com/study-tracker/backend/internal/domain/error"
	"github.com/study-tracker/backend/internal/integration/entrypoint/dto"
)

// SessionController handles study session endpoints. POST /sessions is
// action-discriminated: the request body's action field selects between
// starting a timer, stopping one, and adding a completed session manually.
type SessionController struct {
	startUseCase  *session.StartSessionUseCase
	stopUseCase   *session.StopSessionUseCase
	addUseCase    *session.AddSessionUseCase
	editUseCase   *session.EditSessionUseCase
	deleteUseCase *session.DeleteSessionUseCase
	listUseCase   *session.ListSessionsUseCase
}

// NewSessionController creates a new session controller instance.
func NewSessionController(
	startUseCase *session.StartSessionUseCase,
	stopUseCase *session.StopSessionUseCase,
	addUseCase *session.AddSessionUseCase,
	editUseCase *session.EditSessionUseCase,
	deleteUseCase *session.DeleteSessionUseCase,
	listUseCase *session.ListSessionsUseCase,
) *SessionController {
	return &SessionController{
		startUseCase:  startUseCase,
		stopUseCase:   stopUseCase,
		addUseCase:    addUseCase,
		editUseCase:   editUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// Handle handles POST /sessions requests, dispatching on the action field.
func (c *SessionController) Handle(ctx *gin.Context) {
	var req dto.SessionActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidSessionAction),
		})
		return
	}

	switch req.Action {
	case "start":
		c.start(ctx, req)
	case "stop":
		c.stop(ctx, req)
	case "add":
		c.add(ctx, req)
	default:
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "action must be 'start', 'stop' or 'add'",
			Code:  string(domainerror.ErrCodeInvalidSessionAction),
		})
	}
}

func (c *SessionController) start(ctx *gin.Context, req dto.SessionActionRequest) {
	input := session.StartSessionInput{}

	var ok bool
	if input.GoalID, ok = parseOptionalUUID(ctx, req.GoalID, "goal"); !ok {
		return
	}
	if input.SubjectID, ok = parseOptionalUUID(ctx, req.SubjectID, "subject"); !ok {
		return
	}
	if input.TopicID, ok = parseOptionalUUID(ctx, req.TopicID, "topic"); !ok {
		return
	}

	output, err := c.startUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSessionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSessionResponse(output.Session))
}

func (c *SessionController) stop(ctx *gin.Context, req dto.SessionActionRequest) {
	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid session ID format",
			Code:  string(domainerror.ErrCodeMissingSessionFields),
		})
		return
	}

	output, err := c.stopUseCase.Execute(ctx.Request.Context(), session.StopSessionInput{SessionID: sessionID})
	if err != nil {
		c.handleSessionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSessionResponse(output.Session))
}

func (c *SessionController) add(ctx *gin.Context, req dto.SessionActionRequest) {
	input := session.AddSessionInput{
		Duration: req.Duration,
		Date:     req.Date,
		Comment:  req.Comment,
	}

	var ok bool
	if input.GoalID, ok = parseOptionalUUID(ctx, req.GoalID, "goal"); !ok {
		return
	}
	if input.SubjectID, ok = parseOptionalUUID(ctx, req.SubjectID, "subject"); !ok {
		return
	}
	if input.TopicID, ok = parseOptionalUUID(ctx, req.TopicID, "topic"); !ok {
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSessionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSessionResponse(output.Session))
}

// Update handles PATCH /sessions/:id requests.
func (c *SessionController) Update(ctx *gin.Context) {
	sessionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid session ID format",
		})
		return
	}

	var req dto.UpdateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingSessionFields),
		})
		return
	}

	input := session.EditSessionInput{
		SessionID: sessionID,
		Duration:  req.Duration,
		Date:      req.Date,
		Comment:   req.Comment,
	}

	// For the references, an absent field leaves the session untouched and
	// an empty string clears it.
	if req.SubjectID != nil {
		input.SubjectIDSet = true
		if *req.SubjectID != "" {
			id, err := uuid.Parse(*req.SubjectID)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "Invalid subject ID format",
					Code:  string(domainerror.ErrCodeMissingSessionFields),
				})
				return
			}
			input.SubjectID = &id
		}
	}
	if req.TopicID != nil {
		input.TopicIDSet = true
		if *req.TopicID != "" {
			id, err := uuid.Parse(*req.TopicID)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "Invalid topic ID format",
					Code:  string(domainerror.ErrCodeMissingSessionFields),
				})
				return
			}
			input.TopicID = &id
		}
	}

	output, err := c.editUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSessionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSessionResponse(output.Session))
}

// Delete handles DELETE /sessions/:id requests.
func (c *SessionController) Delete(ctx *gin.Context) {
	sessionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid session ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), session.DeleteSessionInput{SessionID: sessionID}); err != nil {
		c.handleSessionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// List handles GET /sessions requests with optional goal_id, subject_id and
// topic_id query filters.
func (c *SessionController) List(ctx *gin.Context) {
	filter := adapter.SessionFilter{}

	var ok bool
	if filter.GoalID, ok = parseOptionalUUID(ctx, ctx.Query("goal_id"), "goal"); !ok {
		return
	}
	if filter.SubjectID, ok = parseOptionalUUID(ctx, ctx.Query("subject_id"), "subject"); !ok {
		return
	}
	if filter.TopicID, ok = parseOptionalUUID(ctx, ctx.Query("topic_id"), "topic"); !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), session.ListSessionsInput{Filter: filter})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve sessions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSessionListResponse(output.Sessions))
}

// parseOptionalUUID parses a UUID field that may be absent. It writes the
// error response itself and reports success via the second return value.
func parseOptionalUUID(ctx *gin.Context, value, field string) (*uuid.UUID, bool) {
	if value == "" {
		return nil, true
	}
	id, err := uuid.Parse(value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + field + " ID format",
			Code:  string(domainerror.ErrCodeMissingSessionFields),
		})
		return nil, false
	}
	return &id, true
}

// handleSessionError handles session errors and returns appropriate HTTP responses.
func (c *SessionController) handleSessionError(ctx *gin.Context, err error) {
	var sessionErr *domainerror.SessionError
	if errors.As(err, &sessionErr) {
		statusCode := c.getStatusCodeForSessionError(sessionErr)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: sessionErr.Message,
			Code:  string(sessionErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSessionError maps session errors to HTTP status codes. A
// missing referenced goal, subject or topic is a not-found regardless of the
// validation code it is reported under.
func (c *SessionController) getStatusCodeForSessionError(sessionErr *domainerror.SessionError) int {
	if errors.Is(sessionErr, domainerror.ErrGoalNotFound) ||
		errors.Is(sessionErr, domainerror.ErrSubjectNotFound) ||
		errors.Is(sessionErr, domainerror.ErrTopicNotFound) {
		return http.StatusNotFound
	}

	switch sessionErr.Code {
	case domainerror.ErrCodeSessionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeSessionAlreadyStopped, domainerror.ErrCodeSessionStillRunning:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidDuration,
		domainerror.ErrCodeInvalidSessionDate,
		domainerror.ErrCodeMissingSessionGoal,
		domainerror.ErrCodeMissingSessionSubject,
		domainerror.ErrCodeInvalidSessionAction,
		domainerror.ErrCodeMissingSessionFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
