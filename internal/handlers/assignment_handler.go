package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JosephArr12/gradebook-backend/internal/services"
)

// AssignmentHandler serves the assignment lifecycle endpoints.
type AssignmentHandler struct {
	gradebookService *services.GradebookService

	// defaultCourseID backs the path-parameter create variant, which
	// carries no course in its body.
	defaultCourseID uint
}

func NewAssignmentHandler(gradebookService *services.GradebookService, defaultCourseID uint) *AssignmentHandler {
	return &AssignmentHandler{
		gradebookService: gradebookService,
		defaultCourseID:  defaultCourseID,
	}
}

// CreateAssignmentRequest - body of POST /createAssignment.
type CreateAssignmentRequest struct {
	AssignmentName string `json:"assignmentName" binding:"required"`
	CourseID       uint   `json:"courseId" binding:"required"`
	DueDate        string `json:"dueDate" binding:"required"`
}

// CreateAssignment creates an assignment from a JSON body.
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.gradebookService.CreateAssignment(req.CourseID, req.AssignmentName, req.DueDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// CreateAssignmentByPath creates an assignment from path parameters.
// The course is taken from the courseId query parameter, falling back to
// the configured default course.
func (h *AssignmentHandler) CreateAssignmentByPath(c *gin.Context) {
	courseID := h.defaultCourseID
	if raw := c.Query("courseId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid courseId"})
			return
		}
		courseID = uint(parsed)
	}

	assignment, err := h.gradebookService.CreateAssignment(courseID, c.Param("name"), c.Param("date"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// ChangeAssignment applies a partial update to an assignment. Fields absent
// from the body are left as stored.
func (h *AssignmentHandler) ChangeAssignment(c *gin.Context) {
	id, ok := assignmentIDParam(c)
	if !ok {
		return
	}

	var patch services.AssignmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.gradebookService.ChangeAssignment(id, patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// DeleteAssignment deletes an assignment when no grades exist against it.
// The response is 200 either way; the deleted flag says what happened.
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	id, ok := assignmentIDParam(c)
	if !ok {
		return
	}

	result, err := h.gradebookService.DeleteAssignment(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAssignment returns a single assignment.
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	id, ok := assignmentIDParam(c)
	if !ok {
		return
	}

	assignment, err := h.gradebookService.GetAssignment(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// ListAssignments returns a course's assignments.
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	raw := c.Param("courseId")
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course ID"})
		return
	}

	assignments, err := h.gradebookService.ListAssignments(uint(parsed))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

func assignmentIDParam(c *gin.Context) (uint, bool) {
	parsed, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment ID"})
		return 0, false
	}
	return uint(parsed), true
}
