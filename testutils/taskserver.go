package testutils

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Operations of the fake task service that can be made to fail.
const (
	OpList   = "list"
	OpCreate = "create"
	OpStatus = "status"
	OpDelete = "delete"
)

// TaskRecord is a task as stored by the fake task service.
type TaskRecord struct {
	Seq         uint   `gorm:"primaryKey;autoIncrement"`
	UID         string `gorm:"uniqueIndex"`
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
}

func (r TaskRecord) toJSON() gin.H {
	return gin.H{
		"id":          r.UID,
		"title":       r.Title,
		"description": r.Description,
		"completed":   r.Completed,
		"createdAt":   r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// RecordedRequest is a request the fake task service received.
type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Body     string
	Header   http.Header
}

type failure struct {
	status  int
	message string
}

// TaskServer is an in-process task service backed by SQLite, used to run
// the HTTP client and the UI against real responses.
type TaskServer struct {
	db     *gorm.DB
	server *httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
	failures map[string]failure
}

// NewTaskServer starts a fake task service that is shut down when t ends.
func NewTaskServer(t *testing.T) *TaskServer {
	t.Helper()

	db := NewTestDB(t)
	if err := db.AutoMigrate(&TaskRecord{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	s := &TaskServer{
		db:       db,
		failures: map[string]failure{},
	}
	s.server = httptest.NewServer(s.router())
	t.Cleanup(func() {
		s.server.Close()
		CloseTestDB(t, db)
	})
	return s
}

// BaseURL is the root the task routes live under.
func (s *TaskServer) BaseURL() string {
	return s.server.URL + "/api"
}

// Seed stores tasks directly, bypassing the HTTP routes. Records without a
// UID or CreatedAt get generated ones.
func (s *TaskServer) Seed(t *testing.T, records ...TaskRecord) []TaskRecord {
	t.Helper()

	for i := range records {
		if records[i].UID == "" {
			records[i].UID = uuid.NewString()
		}
		if records[i].CreatedAt.IsZero() {
			records[i].CreatedAt = time.Now()
		}
		if err := s.db.Create(&records[i]).Error; err != nil {
			t.Fatalf("Failed to seed task: %v", err)
		}
	}
	return records
}

// Tasks returns every stored task in creation order.
func (s *TaskServer) Tasks(t *testing.T) []TaskRecord {
	t.Helper()

	var records []TaskRecord
	if err := s.db.Order("seq").Find(&records).Error; err != nil {
		t.Fatalf("Failed to read tasks: %v", err)
	}
	return records
}

// Fail makes every following call to op answer with status and message.
func (s *TaskServer) Fail(op string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = failure{status: status, message: message}
}

// Recover undoes Fail for op.
func (s *TaskServer) Recover(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, op)
}

// Requests returns a copy of the requests received so far.
func (s *TaskServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

func (s *TaskServer) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	app := gin.New()
	app.Use(gin.Recovery(), s.recordMiddleware())

	api := app.Group("/api")
	api.GET("/tasks", s.failMiddleware(OpList), s.handleList)
	api.POST("/tasks", s.failMiddleware(OpCreate), s.handleCreate)
	api.PATCH("/tasks/:id/status", s.failMiddleware(OpStatus), s.handleStatus)
	api.DELETE("/tasks/:id", s.failMiddleware(OpDelete), s.handleDelete)
	return app
}

func (s *TaskServer) recordMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}
		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:   c.Request.Method,
			Path:     c.Request.URL.EscapedPath(),
			RawQuery: c.Request.URL.RawQuery,
			Body:     string(body),
			Header:   c.Request.Header.Clone(),
		})
		s.mu.Unlock()
		c.Next()
	}
}

func (s *TaskServer) failMiddleware(op string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		f, ok := s.failures[op]
		s.mu.Unlock()
		if ok {
			c.AbortWithStatusJSON(f.status, gin.H{"error": gin.H{"message": f.message}})
			return
		}
		c.Next()
	}
}

func (s *TaskServer) handleList(c *gin.Context) {
	query := s.db.Order("seq")
	switch c.Query("completed") {
	case "":
	case "true":
		query = query.Where("completed = ?", true)
	case "false":
		query = query.Where("completed = ?", false)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "completed must be true or false"}})
		return
	}

	var records []TaskRecord
	if err := query.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": err.Error()}})
		return
	}
	out := make([]gin.H, 0, len(records))
	for _, r := range records {
		out = append(out, r.toJSON())
	}
	c.JSON(http.StatusOK, out)
}

func (s *TaskServer) handleCreate(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": err.Error()}})
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "title and description are required"}})
		return
	}

	record := TaskRecord{
		UID:         uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if err := s.db.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": err.Error()}})
		return
	}
	c.JSON(http.StatusCreated, record.toJSON())
}

func (s *TaskServer) handleStatus(c *gin.Context) {
	var req struct {
		Completed *bool `json:"completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Completed == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "completed is required"}})
		return
	}

	record, ok := s.find(c)
	if !ok {
		return
	}
	record.Completed = *req.Completed
	if err := s.db.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": err.Error()}})
		return
	}
	c.JSON(http.StatusOK, record.toJSON())
}

func (s *TaskServer) handleDelete(c *gin.Context) {
	record, ok := s.find(c)
	if !ok {
		return
	}
	if err := s.db.Delete(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": err.Error()}})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *TaskServer) find(c *gin.Context) (TaskRecord, bool) {
	var record TaskRecord
	err := s.db.Where("uid = ?", c.Param("id")).First(&record).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "task not found"}})
		return record, false
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": err.Error()}})
		return record, false
	}
	return record, true
}
