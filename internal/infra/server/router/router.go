// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/study-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/study-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	goalController     *controller.GoalController
	subjectController  *controller.SubjectController
	topicController    *controller.TopicController
	sessionController  *controller.SessionController
	progressController *controller.ProgressController
	sessionRateLimiter *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	goalController *controller.GoalController,
	subjectController *controller.SubjectController,
	topicController *controller.TopicController,
	sessionController *controller.SessionController,
	progressController *controller.ProgressController,
	sessionRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:   healthController,
		goalController:     goalController,
		subjectController:  subjectController,
		topicController:    topicController,
		sessionController:  sessionController,
		progressController: progressController,
		sessionRateLimiter: sessionRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Goal routes
		if r.goalController != nil {
			goals := v1.Group("/goals")
			{
				goals.POST("", r.goalController.Create)
				goals.GET("", r.goalController.List)
				goals.GET("/:id", r.goalController.Get)
				goals.PATCH("/:id", r.goalController.UpdateDates)
				goals.DELETE("/:id", r.goalController.Delete)

				if r.subjectController != nil {
					goals.POST("/:id/subjects", r.subjectController.Create)
				}
			}
		}

		// Subject routes
		if r.subjectController != nil {
			subjects := v1.Group("/subjects")
			{
				subjects.PATCH("/:id", r.subjectController.UpdateSchedule)

				if r.topicController != nil {
					subjects.POST("/:id/topics", r.topicController.Create)
				}
			}
		}

		// Session routes (mutations behind the rate limiter)
		if r.sessionController != nil {
			sessions := v1.Group("/sessions")
			{
				sessions.GET("", r.sessionController.List)

				if r.sessionRateLimiter != nil {
					limited := sessions.Group("")
					limited.Use(r.sessionRateLimiter.Middleware())
					{
						limited.POST("", r.sessionController.Handle)
						limited.PATCH("/:id", r.sessionController.Update)
						limited.DELETE("/:id", r.sessionController.Delete)
					}
				} else {
					sessions.POST("", r.sessionController.Handle)
					sessions.PATCH("/:id", r.sessionController.Update)
					sessions.DELETE("/:id", r.sessionController.Delete)
				}
			}
		}

		// Progress route
		if r.progressController != nil {
			v1.GET("/progress", r.progressController.Get)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
