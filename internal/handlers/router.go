package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the gradebook HTTP surface on a router or group.
func RegisterRoutes(router gin.IRouter, assignments *AssignmentHandler, gradebook *GradebookHandler) {
	router.POST("/createAssignment", assignments.CreateAssignment)
	router.POST("/createAssignment/:name/:date", assignments.CreateAssignmentByPath)
	router.POST("/changeAssignment/:id", assignments.ChangeAssignment)
	router.PUT("/changeAssignment/:id", assignments.ChangeAssignment)
	router.DELETE("/deleteAssignment/:id", assignments.DeleteAssignment)
	router.POST("/deleteAssignment/:id", assignments.DeleteAssignment)
	router.GET("/assignment/:id", assignments.GetAssignment)
	router.GET("/courses/:courseId/assignments", assignments.ListAssignments)
	router.POST("/recordGrade/:assignmentId", gradebook.RecordGrade)
	router.GET("/gradebook/:courseId", gradebook.GetGradebook)
}
