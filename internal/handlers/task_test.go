package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/taskhive/taskhive-api/internal/constants"
	"github.com/taskhive/taskhive-api/internal/database"
	"github.com/taskhive/taskhive-api/internal/dto"
	"github.com/taskhive/taskhive-api/internal/models"
	"github.com/taskhive/taskhive-api/internal/repository"
	"github.com/taskhive/taskhive-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *TaskHandler
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.User{}, &models.Task{})
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	taskRepo := repository.NewTaskRepository(suite.db)
	userRepo := repository.NewUserRepository(suite.db)
	suite.handler = NewTaskHandler(services.NewTaskService(taskRepo, userRepo))

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskHandlerTestSuite) createTestUser(name, email string) *models.User {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

func (suite *TaskHandlerTestSuite) createTestTask(title, platform string, userID uint64) *models.Task {
	task := &models.Task{
		Title:    title,
		Platform: platform,
		Status:   models.TaskStatusTodo,
		Assignee: "Someone",
		DueDate:  time.Now().AddDate(0, 0, 7),
		UserID:   userID,
	}
	suite.db.Create(task)
	return task
}

// serve routes a request through a router that authenticates as userID.
func (suite *TaskHandlerTestSuite) serve(userID uint64, method, url string, payload interface{}) *httptest.ResponseRecorder {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, userID)
	})
	r.GET("/api/tasks", suite.handler.ListTasks)
	r.POST("/api/tasks", suite.handler.CreateTask)
	r.PUT("/api/tasks/:id", suite.handler.UpdateTask)
	r.PATCH("/api/tasks/:id/status", suite.handler.UpdateStatus)
	r.DELETE("/api/tasks/:id", suite.handler.DeleteTask)

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		suite.Require().NoError(err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func (suite *TaskHandlerTestSuite) TestCreateTask() {
	user := suite.createTestUser("Owner", "owner@example.com")

	w := suite.serve(user.ID, http.MethodPost, "/api/tasks", map[string]interface{}{
		"title":    "Write launch post",
		"platform": "LinkedIn",
		"assignee": "Owner",
		"due_date": time.Now().AddDate(0, 0, 3).Format(time.RFC3339),
	})

	suite.Equal(http.StatusCreated, w.Code)

	var response dto.TaskDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("Write launch post", response.Title)
	suite.Equal(models.TaskStatusTodo, response.Status, "status defaults to todo")
}

func (suite *TaskHandlerTestSuite) TestCreateTask_MissingDueDate() {
	user := suite.createTestUser("Owner", "owner@example.com")

	w := suite.serve(user.ID, http.MethodPost, "/api/tasks", map[string]interface{}{
		"title":    "No due date",
		"platform": "LinkedIn",
		"assignee": "Owner",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestListTasks_GlobalAcrossUsers() {
	alice := suite.createTestUser("Alice", "alice@example.com")
	bob := suite.createTestUser("Bob", "bob@example.com")
	suite.createTestTask("Alice task", "Twitter", alice.ID)
	suite.createTestTask("Bob task", "LinkedIn", bob.ID)

	w := suite.serve(alice.ID, http.MethodGet, "/api/tasks", nil)

	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Tasks []dto.TaskWithOwnerDTO `json:"tasks"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Len(response.Tasks, 2, "listing spans all users")

	names := map[string]string{}
	for _, task := range response.Tasks {
		names[task.Title] = task.UserName
	}
	suite.Equal("Alice", names["Alice task"])
	suite.Equal("Bob", names["Bob task"])
}

func (suite *TaskHandlerTestSuite) TestListTasks_PlatformFilter() {
	user := suite.createTestUser("Owner", "owner@example.com")
	suite.createTestTask("On Twitter", "Twitter", user.ID)
	suite.createTestTask("On LinkedIn", "LinkedIn", user.ID)

	w := suite.serve(user.ID, http.MethodGet, "/api/tasks?platform=Twitter", nil)

	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Tasks []dto.TaskWithOwnerDTO `json:"tasks"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Tasks, 1)
	suite.Equal("On Twitter", response.Tasks[0].Title)
}

func (suite *TaskHandlerTestSuite) TestListTasks_DeletedOwnerAnnotation() {
	user := suite.createTestUser("Ghost", "ghost@example.com")
	suite.createTestTask("Orphaned", "Twitter", user.ID)
	suite.Require().NoError(suite.db.Delete(&models.User{}, user.ID).Error)

	viewer := suite.createTestUser("Viewer", "viewer@example.com")
	w := suite.serve(viewer.ID, http.MethodGet, "/api/tasks", nil)

	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Tasks []dto.TaskWithOwnerDTO `json:"tasks"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Tasks, 1)
	suite.Equal("Unknown User", response.Tasks[0].UserName)
}

func (suite *TaskHandlerTestSuite) TestUpdateStatus_RoundTrip() {
	user := suite.createTestUser("Owner", "owner@example.com")
	task := suite.createTestTask("Cycling", "Twitter", user.ID)
	url := fmt.Sprintf("/api/tasks/%d/status", task.ID)

	w := suite.serve(user.ID, http.MethodPatch, url, map[string]string{"status": "done"})
	suite.Equal(http.StatusOK, w.Code)

	w = suite.serve(user.ID, http.MethodPatch, url, map[string]string{"status": "todo"})
	suite.Equal(http.StatusOK, w.Code)

	var stored models.Task
	suite.Require().NoError(suite.db.First(&stored, task.ID).Error)
	suite.Equal(models.TaskStatusTodo, stored.Status, "done is not terminal")
}

func (suite *TaskHandlerTestSuite) TestUpdateStatus_Invalid() {
	user := suite.createTestUser("Owner", "owner@example.com")
	task := suite.createTestTask("Cycling", "Twitter", user.ID)

	w := suite.serve(user.ID, http.MethodPatch, fmt.Sprintf("/api/tasks/%d/status", task.ID),
		map[string]string{"status": "archived"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_WrongOwner() {
	owner := suite.createTestUser("Owner", "owner@example.com")
	intruder := suite.createTestUser("Intruder", "intruder@example.com")
	task := suite.createTestTask("Protected", "Twitter", owner.ID)

	w := suite.serve(intruder.ID, http.MethodPut, fmt.Sprintf("/api/tasks/%d", task.ID),
		map[string]interface{}{
			"title":    "Hijacked",
			"platform": "Twitter",
			"assignee": "Intruder",
			"due_date": time.Now().AddDate(0, 0, 1).Format(time.RFC3339),
		})

	suite.Equal(http.StatusNotFound, w.Code, "ownership violation reads as not found")

	var stored models.Task
	suite.Require().NoError(suite.db.First(&stored, task.ID).Error)
	suite.Equal("Protected", stored.Title, "record must be unchanged")
}

func (suite *TaskHandlerTestSuite) TestDeleteTask_WrongOwner() {
	owner := suite.createTestUser("Owner", "owner@example.com")
	intruder := suite.createTestUser("Intruder", "intruder@example.com")
	task := suite.createTestTask("Protected", "Twitter", owner.ID)

	w := suite.serve(intruder.ID, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", task.ID), nil)

	suite.Equal(http.StatusNotFound, w.Code)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.Task{}).Count(&count).Error)
	suite.Equal(int64(1), count, "record must survive")
}

func (suite *TaskHandlerTestSuite) TestDeleteTask_Owner() {
	owner := suite.createTestUser("Owner", "owner@example.com")
	task := suite.createTestTask("Doomed", "Twitter", owner.ID)

	w := suite.serve(owner.ID, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", task.ID), nil)

	suite.Equal(http.StatusOK, w.Code)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.Task{}).Count(&count).Error)
	suite.Equal(int64(0), count)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
