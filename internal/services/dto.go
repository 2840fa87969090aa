package services

import "github.com/JosephArr12/gradebook-backend/internal/models"

// AssignmentDTO is the wire shape of an assignment.
type AssignmentDTO struct {
	AssignmentID   uint   `json:"assignmentId"`
	AssignmentName string `json:"assignmentName"`
	CourseID       uint   `json:"courseId"`
	DueDate        string `json:"dueDate"`
	NeedsGrading   bool   `json:"needsGrading"`
}

// AssignmentPatch carries a partial update. Pointer fields distinguish
// "not supplied" from "supplied as empty", so an absent field never
// clobbers the stored value.
type AssignmentPatch struct {
	Name    *string `json:"assignmentName"`
	DueDate *string `json:"dueDate"`
}

// DeleteResult reports whether a delete actually happened. Deletion is
// refused silently when grades exist, so callers must check the flag.
type DeleteResult struct {
	AssignmentID uint `json:"assignmentId"`
	Deleted      bool `json:"deleted"`
}

// GradeDTO is the wire shape of one recorded score.
type GradeDTO struct {
	AssignmentID   uint   `json:"assignmentId"`
	AssignmentName string `json:"assignmentName"`
	StudentEmail   string `json:"studentEmail"`
	Score          string `json:"score"`
}

// GradebookDTO is the aggregate view of a course: every enrolled student
// crossed with every assignment. Ungraded cells carry an empty score.
type GradebookDTO struct {
	CourseID uint               `json:"courseId"`
	Students []StudentGradesDTO `json:"students"`
}

type StudentGradesDTO struct {
	StudentEmail string          `json:"studentEmail"`
	StudentName  string          `json:"studentName"`
	Grades       []GradeEntryDTO `json:"grades"`
}

type GradeEntryDTO struct {
	AssignmentID   uint   `json:"assignmentId"`
	AssignmentName string `json:"assignmentName"`
	Score          string `json:"score"`
}

func toAssignmentDTO(a *models.Assignment) *AssignmentDTO {
	return &AssignmentDTO{
		AssignmentID:   a.ID,
		AssignmentName: a.Name,
		CourseID:       a.CourseID,
		DueDate:        a.DueDate.String(),
		NeedsGrading:   a.NeedsGrading,
	}
}
