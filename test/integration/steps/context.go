// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/study-tracker/backend/config"
	"github.com/study-tracker/backend/internal/infra/dependency"
	"github.com/study-tracker/backend/internal/integration/persistence/model"
	"github.com/study-tracker/backend/test/integration/mock"
)

type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	serverPort int

	currentGoalID    uuid.UUID
	currentSubjectID uuid.UUID
	currentTopicID   uuid.UUID
	currentSessionID uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"goals":          &model.GoalModel{},
			"subjects":       &model.SubjectModel{},
			"topics":         &model.TopicModel{},
			"study_sessions": &model.StudySessionModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Data setup steps
	ctx.Given(`^a goal named "([^"]*)" exists$`, test.aGoalNamedExists)
	ctx.Given(`^the goal runs from "([^"]*)" to "([^"]*)"$`, test.theGoalRunsFromTo)
	ctx.Given(`^a subject named "([^"]*)" exists for the goal$`, test.aSubjectNamedExistsForTheGoal)
	ctx.Given(`^the subject is scheduled for (\d+) minutes on "([^"]*)"$`, test.theSubjectIsScheduledForMinutesOn)
	ctx.Given(`^a topic named "([^"]*)" exists for the subject$`, test.aTopicNamedExistsForTheSubject)
	ctx.Given(`^a completed session of (\d+) minutes exists on "([^"]*)"$`, test.aCompletedSessionOfMinutesExistsOn)
	ctx.Given(`^a completed session of (\d+) minutes exists today$`, test.aCompletedSessionOfMinutesExistsToday)
	ctx.Given(`^a running session exists that started (\d+) minutes ago$`, test.aRunningSessionExistsThatStartedMinutesAgo)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should not exist$`, test.theResponseFieldShouldNotExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.currentGoalID = uuid.Nil
	t.currentSubjectID = uuid.Nil
	t.currentTopicID = uuid.Nil
	t.currentSessionID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			injector := dependency.NewInjector(cfg, testDB.DbConn)
			engine := injector.Router.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aGoalNamedExists(name string) error {
	goalID := uuid.New()
	t.currentGoalID = goalID

	now := time.Now().UTC()
	goalModel := &model.GoalModel{
		ID:        goalID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(goalModel).Error
}

func (t *testContext) theGoalRunsFromTo(startDate, finishDate string) error {
	return t.db.DbConn.Model(&model.GoalModel{}).
		Where("id = ?", t.currentGoalID).
		Updates(map[string]any{
			"start_date":  startDate,
			"finish_date": finishDate,
		}).Error
}

func (t *testContext) aSubjectNamedExistsForTheGoal(name string) error {
	subjectID := uuid.New()
	t.currentSubjectID = subjectID

	now := time.Now().UTC()
	subjectModel := &model.SubjectModel{
		ID:        subjectID,
		GoalID:    t.currentGoalID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(subjectModel).Error
}

func (t *testContext) theSubjectIsScheduledForMinutesOn(minutes int, days string) error {
	dayList := strings.Split(days, ",")
	for i := range dayList {
		dayList[i] = strings.TrimSpace(dayList[i])
	}
	encoded, err := json.Marshal(dayList)
	if err != nil {
		return err
	}

	return t.db.DbConn.Model(&model.SubjectModel{}).
		Where("id = ?", t.currentSubjectID).
		Updates(map[string]any{
			"daily_minutes_goal": minutes,
			"days_of_week":       string(encoded),
		}).Error
}

func (t *testContext) aTopicNamedExistsForTheSubject(name string) error {
	topicID := uuid.New()
	t.currentTopicID = topicID

	now := time.Now().UTC()
	topicModel := &model.TopicModel{
		ID:        topicID,
		SubjectID: t.currentSubjectID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(topicModel).Error
}

func (t *testContext) aCompletedSessionOfMinutesExistsOn(minutes int, date string) error {
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	sessionID := uuid.New()
	t.currentSessionID = sessionID

	start := day.Add(12 * time.Hour)
	end := start.Add(time.Duration(minutes) * time.Minute)
	now := time.Now().UTC()

	sessionModel := &model.StudySessionModel{
		ID:        sessionID,
		GoalID:    t.currentGoalID,
		StartTime: start,
		EndTime:   &end,
		Duration:  minutes,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if t.currentSubjectID != uuid.Nil {
		subjectID := t.currentSubjectID
		sessionModel.SubjectID = &subjectID
	}
	if t.currentTopicID != uuid.Nil {
		topicID := t.currentTopicID
		sessionModel.TopicID = &topicID
	}

	if err := t.db.DbConn.Create(sessionModel).Error; err != nil {
		return err
	}

	// Completed sessions carry their minutes on the denormalized counters.
	if err := t.db.DbConn.Model(&model.GoalModel{}).
		Where("id = ?", t.currentGoalID).
		Update("total_study_time", gorm.Expr("total_study_time + ?", minutes)).Error; err != nil {
		return err
	}
	if t.currentSubjectID != uuid.Nil {
		if err := t.db.DbConn.Model(&model.SubjectModel{}).
			Where("id = ?", t.currentSubjectID).
			Update("study_time", gorm.Expr("study_time + ?", minutes)).Error; err != nil {
			return err
		}
	}
	if t.currentTopicID != uuid.Nil {
		if err := t.db.DbConn.Model(&model.TopicModel{}).
			Where("id = ?", t.currentTopicID).
			Update("study_time", gorm.Expr("study_time + ?", minutes)).Error; err != nil {
			return err
		}
	}

	return nil
}

func (t *testContext) aCompletedSessionOfMinutesExistsToday(minutes int) error {
	today := time.Now().UTC().Format("2006-01-02")
	return t.aCompletedSessionOfMinutesExistsOn(minutes, today)
}

func (t *testContext) aRunningSessionExistsThatStartedMinutesAgo(minutes int) error {
	sessionID := uuid.New()
	t.currentSessionID = sessionID

	now := time.Now().UTC()
	start := now.Add(-time.Duration(minutes) * time.Minute)

	sessionModel := &model.StudySessionModel{
		ID:        sessionID,
		GoalID:    t.currentGoalID,
		StartTime: start,
		Date:      start.Format("2006-01-02"),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if t.currentSubjectID != uuid.Nil {
		subjectID := t.currentSubjectID
		sessionModel.SubjectID = &subjectID
	}
	if t.currentTopicID != uuid.Nil {
		topicID := t.currentTopicID
		sessionModel.TopicID = &topicID
	}

	return t.db.DbConn.Create(sessionModel).Error
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{goal_id}}", t.currentGoalID.String())
	content = strings.ReplaceAll(content, "{{subject_id}}", t.currentSubjectID.String())
	content = strings.ReplaceAll(content, "{{topic_id}}", t.currentTopicID.String())
	content = strings.ReplaceAll(content, "{{session_id}}", t.currentSessionID.String())
	content = strings.ReplaceAll(content, "{{today}}", time.Now().UTC().Format("2006-01-02"))
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
		t.captureIDs(responseBody)
	}

	return nil
}

// captureIDs stores created resource IDs from the response body so later
// steps can reference them through placeholders. The resource kind is told
// apart by fields unique to each response shape.
func (t *testContext) captureIDs(body map[string]any) {
	idStr, ok := body["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	switch {
	case hasField(body, "total_study_time"):
		t.currentGoalID = id
	case hasField(body, "start_time"):
		t.currentSessionID = id
	case hasField(body, "goal_id"):
		t.currentSubjectID = id
	case hasField(body, "subject_id"):
		t.currentTopicID = id
	}
}

func hasField(body map[string]any, field string) bool {
	_, ok := body[field]
	return ok
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldNotExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if value := getFieldValue(body, field); value != nil {
		return fmt.Errorf("field '%s' should not exist but is '%v'", field, value)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
