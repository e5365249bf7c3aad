// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/study-tracker/backend/config"
	"github.com/study-tracker/backend/internal/application/usecase/goal"
	"github.com/study-tracker/backend/internal/application/usecase/progress"
	"github.com/study-tracker/backend/internal/application/usecase/session"
	"github.com/study-tracker/backend/internal/application/usecase/subject"
	"github.com/study-tracker/backend/internal/application/usecase/topic"
	"github.com/study-tracker/backend/internal/infra/server/router"
	"github.com/study-tracker/backend/internal/integration/adapters"
	"github.com/study-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/study-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/study-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	goalRepo := persistence.NewGoalRepository(db)
	subjectRepo := persistence.NewSubjectRepository(db)
	topicRepo := persistence.NewTopicRepository(db)
	sessionRepo := persistence.NewSessionRepository(db)
	txManager := persistence.NewTransactionManager(db)

	// Create adapters
	clock := adapters.NewSystemClock()

	// Create goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, subjectRepo, topicRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo, subjectRepo, topicRepo)
	updateGoalDatesUseCase := goal.NewUpdateGoalDatesUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, subjectRepo, topicRepo, sessionRepo, txManager)

	// Create subject and topic use cases
	createSubjectUseCase := subject.NewCreateSubjectUseCase(subjectRepo, goalRepo)
	updateSubjectScheduleUseCase := subject.NewUpdateSubjectScheduleUseCase(subjectRepo)
	createTopicUseCase := topic.NewCreateTopicUseCase(topicRepo, subjectRepo)

	// Create session use cases
	startSessionUseCase := session.NewStartSessionUseCase(sessionRepo, goalRepo, subjectRepo, clock)
	stopSessionUseCase := session.NewStopSessionUseCase(sessionRepo, goalRepo, subjectRepo, topicRepo, txManager, clock)
	addSessionUseCase := session.NewAddSessionUseCase(sessionRepo, goalRepo, subjectRepo, topicRepo, txManager, clock)
	editSessionUseCase := session.NewEditSessionUseCase(sessionRepo, goalRepo, subjectRepo, topicRepo, txManager)
	deleteSessionUseCase := session.NewDeleteSessionUseCase(sessionRepo, goalRepo, subjectRepo, topicRepo, txManager)
	listSessionsUseCase := session.NewListSessionsUseCase(sessionRepo)

	// Create progress use case
	computeProgressUseCase := progress.NewComputeProgressUseCase(goalRepo, subjectRepo, sessionRepo, clock)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	goalController := controller.NewGoalController(
		createGoalUseCase,
		listGoalsUseCase,
		getGoalUseCase,
		updateGoalDatesUseCase,
		deleteGoalUseCase,
	)

	subjectController := controller.NewSubjectController(
		createSubjectUseCase,
		updateSubjectScheduleUseCase,
	)

	topicController := controller.NewTopicController(createTopicUseCase)

	sessionController := controller.NewSessionController(
		startSessionUseCase,
		stopSessionUseCase,
		addSessionUseCase,
		editSessionUseCase,
		deleteSessionUseCase,
		listSessionsUseCase,
	)

	progressController := controller.NewProgressController(computeProgressUseCase)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var sessionRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		sessionRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		sessionRateLimiter = middleware.NewRateLimiter()
	}

	// Create router
	r := router.NewRouter(
		healthController,
		goalController,
		subjectController,
		topicController,
		sessionController,
		progressController,
		sessionRateLimiter,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
