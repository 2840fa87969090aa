package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JosephArr12/gradebook-backend/internal/services"
)

// GradebookHandler serves grade recording and the gradebook view.
type GradebookHandler struct {
	gradebookService *services.GradebookService
}

func NewGradebookHandler(gradebookService *services.GradebookService) *GradebookHandler {
	return &GradebookHandler{gradebookService: gradebookService}
}

// RecordGradeRequest - body of POST /recordGrade/:assignmentId.
type RecordGradeRequest struct {
	StudentEmail string `json:"studentEmail" binding:"required"`
	Score        string `json:"score"`
}

// RecordGrade records or updates one student's score on an assignment.
func (h *GradebookHandler) RecordGrade(c *gin.Context) {
	raw := c.Param("assignmentId")
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment ID"})
		return
	}

	var req RecordGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	grade, err := h.gradebookService.RecordGrade(uint(parsed), req.StudentEmail, req.Score)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, grade)
}

// GetGradebook returns the full gradebook view for a course.
func (h *GradebookHandler) GetGradebook(c *gin.Context) {
	raw := c.Param("courseId")
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course ID"})
		return
	}

	view, err := h.gradebookService.GetGradebook(uint(parsed))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
