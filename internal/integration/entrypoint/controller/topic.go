package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/study-tracker/backend/internal/application/usecase/topic"
	domainerror "github.com/study-tracker/backend/internal/domain/error"
	"github.com/study-tracker/backend/internal/integration/entrypoint/dto"
)

// TopicController handles topic endpoints.
type TopicController struct {
	createUseCase *topic.CreateTopicUseCase
}

// NewTopicController creates a new topic controller instance.
func NewTopicController(createUseCase *topic.CreateTopicUseCase) *TopicController {
	return &TopicController{
		createUseCase: createUseCase,
	}
}

// Create handles POST /subjects/:id/topics requests.
func (c *TopicController) Create(ctx *gin.Context) {
	subjectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid subject ID format",
		})
		return
	}

	var req dto.CreateTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTopicName),
		})
		return
	}

	input := topic.CreateTopicInput{
		SubjectID: subjectID,
		Name:      req.Name,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTopicError(ctx, err)
		return
	}

	response := dto.ToTopicResponse(output.Topic)
	ctx.JSON(http.StatusCreated, response)
}

// handleTopicError handles topic errors and returns appropriate HTTP responses.
func (c *TopicController) handleTopicError(ctx *gin.Context, err error) {
	var topicErr *domainerror.TopicError
	if errors.As(err, &topicErr) {
		statusCode := c.getStatusCodeForTopicError(topicErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: topicErr.Message,
			Code:  string(topicErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTopicError maps topic error codes to HTTP status codes.
func (c *TopicController) getStatusCodeForTopicError(code domainerror.TopicErrorCode) int {
	switch code {
	case domainerror.ErrCodeTopicNotFound, domainerror.ErrCodeTopicSubjectNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingTopicName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
