package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/JosephArr12/gradebook-backend/internal/models"
	"github.com/JosephArr12/gradebook-backend/internal/repository"
	"github.com/JosephArr12/gradebook-backend/internal/services"
)

const testCourseID = 999001

// newTestRouter spins up the full stack (gin → service → gorm) against an
// in-memory SQLite database seeded with the well-known test course.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Course{},
		&models.Enrollment{},
		&models.Assignment{},
		&models.AssignmentGrade{},
	))

	course := models.Course{
		ID:         testCourseID,
		Title:      "cst363-database",
		Semester:   "Spring",
		Year:       2023,
		Instructor: "dwisneski@csumb.edu",
		Enrollments: []models.Enrollment{
			{StudentEmail: "test@csumb.edu", StudentName: "Test Student"},
		},
	}
	require.NoError(t, db.Create(&course).Error)

	svc := services.NewGradebookService(
		repository.NewCourseRepository(db),
		repository.NewEnrollmentRepository(db),
		repository.NewAssignmentRepository(db),
		repository.NewGradeRepository(db),
		nil,
	)

	router := gin.New()
	RegisterRoutes(router, NewAssignmentHandler(svc, testCourseID), NewGradebookHandler(svc))
	return router, db
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(data))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeAssignment(t *testing.T, w *httptest.ResponseRecorder) services.AssignmentDTO {
	t.Helper()
	var dto services.AssignmentDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	return dto
}

func TestCreateAssignmentEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/createAssignment", gin.H{
		"assignmentName": "TestA1",
		"courseId":       testCourseID,
		"dueDate":        "2023-03-03",
	})
	require.Equal(t, http.StatusOK, w.Code)

	dto := decodeAssignment(t, w)
	assert.Equal(t, "TestA1", dto.AssignmentName)
	assert.Equal(t, "2023-03-03", dto.DueDate)
	assert.NotZero(t, dto.AssignmentID)
}

func TestCreateAssignmentEndpointErrors(t *testing.T) {
	router, _ := newTestRouter(t)

	// missing required fields
	w := doRequest(t, router, http.MethodPost, "/createAssignment", gin.H{"courseId": testCourseID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// malformed date
	w = doRequest(t, router, http.MethodPost, "/createAssignment", gin.H{
		"assignmentName": "TestA1",
		"courseId":       testCourseID,
		"dueDate":        "03-03-2023",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown course
	w = doRequest(t, router, http.MethodPost, "/createAssignment", gin.H{
		"assignmentName": "TestA1",
		"courseId":       123456,
		"dueDate":        "2023-03-03",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAssignmentByPathEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/createAssignment/TestA1/2023-03-03", nil)
	require.Equal(t, http.StatusOK, w.Code)

	dto := decodeAssignment(t, w)
	assert.Equal(t, "TestA1", dto.AssignmentName)
	assert.Equal(t, "2023-03-03", dto.DueDate)
	assert.Equal(t, uint(testCourseID), dto.CourseID)

	// explicit course wins over the default
	w = doRequest(t, router, http.MethodPost, "/createAssignment/TestA2/2023-03-03?courseId=123456", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChangeAssignmentEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/createAssignment", gin.H{
		"assignmentName": "TestA1",
		"courseId":       testCourseID,
		"dueDate":        "2023-03-03",
	})
	require.Equal(t, http.StatusOK, w.Code)
	created := decodeAssignment(t, w)

	w = doRequest(t, router, http.MethodPut, fmt.Sprintf("/changeAssignment/%d", created.AssignmentID), gin.H{
		"assignmentName": "TestA100",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeAssignment(t, w)
	assert.Equal(t, "TestA100", updated.AssignmentName)
	assert.Equal(t, "2023-03-03", updated.DueDate)

	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/assignment/%d", created.AssignmentID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "TestA100", decodeAssignment(t, w).AssignmentName)
}

func TestChangeAssignmentEndpointErrors(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodPut, "/changeAssignment/999", gin.H{"assignmentName": "TestA100"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, http.MethodPut, "/changeAssignment/abc", gin.H{"assignmentName": "TestA100"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteAssignmentEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/createAssignment", gin.H{
		"assignmentName": "TestA1",
		"courseId":       testCourseID,
		"dueDate":        "2023-03-03",
	})
	require.Equal(t, http.StatusOK, w.Code)
	created := decodeAssignment(t, w)

	w = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/deleteAssignment/%d", created.AssignmentID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var result services.DeleteResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Deleted)

	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/assignment/%d", created.AssignmentID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAssignmentEndpointRefusesGraded(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/createAssignment", gin.H{
		"assignmentName": "TestA1",
		"courseId":       testCourseID,
		"dueDate":        "2023-03-03",
	})
	require.Equal(t, http.StatusOK, w.Code)
	created := decodeAssignment(t, w)

	w = doRequest(t, router, http.MethodPost, fmt.Sprintf("/recordGrade/%d", created.AssignmentID), gin.H{
		"studentEmail": "test@csumb.edu",
		"score":        "80",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Still 200, but nothing was deleted.
	w = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/deleteAssignment/%d", created.AssignmentID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var result services.DeleteResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Deleted)

	w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/assignment/%d", created.AssignmentID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListAssignmentsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, name := range []string{"TestA1", "TestA2"} {
		w := doRequest(t, router, http.MethodPost, "/createAssignment", gin.H{
			"assignmentName": name,
			"courseId":       testCourseID,
			"dueDate":        "2023-03-03",
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/courses/%d/assignments", testCourseID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []services.AssignmentDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	w = doRequest(t, router, http.MethodGet, "/courses/123456/assignments", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
