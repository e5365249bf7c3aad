package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/application/usecase/subject"
	domainerror "github.com/study-tracker/backend/internal/domain/error"
	"github.com/study-tracker/backend/internal/integration/entrypoint/dto"
)

// SubjectController handles subject endpoints.
type SubjectController struct {
	createUseCase         *subject.CreateSubjectUseCase
	updateScheduleUseCase *subject.UpdateSubjectScheduleUseCase
}

// NewSubjectController creates a new subject controller instance.
func NewSubjectController(
	createUseCase *subject.CreateSubjectUseCase,
	updateScheduleUseCase *subject.UpdateSubjectScheduleUseCase,
) *SubjectController {
	return &SubjectController{
		createUseCase:         createUseCase,
		updateScheduleUseCase: updateScheduleUseCase,
	}
}

// Create handles POST /goals/:id/subjects requests.
func (c *SubjectController) Create(ctx *gin.Context) {
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingSubjectFields),
		})
		return
	}

	input := subject.CreateSubjectInput{
		GoalID: goalID,
		Name:   req.Name,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSubjectError(ctx, err)
		return
	}

	response := dto.ToSubjectResponse(output.Subject)
	ctx.JSON(http.StatusCreated, response)
}

// UpdateSchedule handles PATCH /subjects/:id requests.
func (c *SubjectController) UpdateSchedule(ctx *gin.Context) {
	subjectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid subject ID format",
		})
		return
	}

	var req dto.UpdateSubjectScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingSubjectFields),
		})
		return
	}

	input := subject.UpdateSubjectScheduleInput{
		SubjectID:        subjectID,
		DailyMinutesGoal: req.DailyMinutesGoal,
		DaysOfWeek:       req.DaysOfWeek,
		StartDate:        req.StartDate,
		FinishDate:       req.FinishDate,
	}

	output, err := c.updateScheduleUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSubjectError(ctx, err)
		return
	}

	response := dto.ToSubjectResponse(output.Subject)
	ctx.JSON(http.StatusOK, response)
}

// handleSubjectError handles subject errors and returns appropriate HTTP responses.
func (c *SubjectController) handleSubjectError(ctx *gin.Context, err error) {
	var subjectErr *domainerror.SubjectError
	if errors.As(err, &subjectErr) {
		statusCode := c.getStatusCodeForSubjectError(subjectErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: subjectErr.Message,
			Code:  string(subjectErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSubjectError maps subject error codes to HTTP status codes.
func (c *SubjectController) getStatusCodeForSubjectError(code domainerror.SubjectErrorCode) int {
	switch code {
	case domainerror.ErrCodeSubjectNotFound, domainerror.ErrCodeSubjectGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingSubjectName,
		domainerror.ErrCodeMissingSubjectFields,
		domainerror.ErrCodeInvalidDailyMinutesGoal,
		domainerror.ErrCodeInvalidScheduleDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
