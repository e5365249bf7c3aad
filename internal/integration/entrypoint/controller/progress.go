package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/application/usecase/progress"
	domainerror "github.com/study-tracker/backend/internal/domain/error"
	"github.com/study-tracker/backend/internal/integration/entrypoint/dto"
)

// ProgressController handles the progress aggregation endpoint.
type ProgressController struct {
	computeUseCase *progress.ComputeProgressUseCase
}

// NewProgressController creates a new progress controller instance.
func NewProgressController(computeUseCase *progress.ComputeProgressUseCase) *ProgressController {
	return &ProgressController{
		computeUseCase: computeUseCase,
	}
}

// Get handles GET /progress requests. goal_id is required; subject_id
// narrows the scope, view selects the window (default day) and date sets the
// reference date (default today).
func (c *ProgressController) Get(ctx *gin.Context) {
	goalID, err := uuid.Parse(ctx.Query("goal_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid or missing goal_id",
		})
		return
	}

	view, err := progress.ParseViewMode(ctx.Query("view"))
	if err != nil {
		c.handleProgressError(ctx, err)
		return
	}

	input := progress.ComputeProgressInput{
		GoalID:        goalID,
		View:          view,
		ReferenceDate: ctx.Query("date"),
	}

	if raw := ctx.Query("subject_id"); raw != "" {
		subjectID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid subject_id format",
			})
			return
		}
		input.SubjectID = &subjectID
	}

	output, err := c.computeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProgressError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProgressResponse(output))
}

// handleProgressError handles progress errors and returns appropriate HTTP responses.
func (c *ProgressController) handleProgressError(ctx *gin.Context, err error) {
	var progressErr *domainerror.ProgressError
	if errors.As(err, &progressErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: progressErr.Message,
			Code:  string(progressErr.Code),
		})
		return
	}

	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		status := http.StatusInternalServerError
		if goalErr.Code == domainerror.ErrCodeGoalNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	var subjectErr *domainerror.SubjectError
	if errors.As(err, &subjectErr) {
		status := http.StatusInternalServerError
		if subjectErr.Code == domainerror.ErrCodeSubjectNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
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
