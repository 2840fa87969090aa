package models

import "time"

// Assignment - a gradable unit of work within a course.
type Assignment struct {
	ID       uint   `json:"assignmentId" gorm:"primaryKey"`
	Name     string `json:"assignmentName" gorm:"not null"`
	DueDate  Date   `json:"dueDate" gorm:"not null"`
	CourseID uint   `json:"courseId" gorm:"not null;index"`

	// NeedsGrading is a cached projection: the due date has passed and at
	// least one enrolled student has no grade yet. Recomputed on every
	// mutation that could affect it, never maintained incrementally.
	NeedsGrading bool `json:"needsGrading"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// AssignmentGrade - the recorded score for one student on one assignment.
// At most one grade per (assignment, enrollment) pair. The score is a string
// so non-numeric sentinels ("", "incomplete") can sit next to numeric scores.
type AssignmentGrade struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	AssignmentID uint   `json:"assignmentId" gorm:"not null;uniqueIndex:idx_assignment_enrollment"`
	EnrollmentID uint   `json:"enrollmentId" gorm:"not null;uniqueIndex:idx_assignment_enrollment"`
	Score        string `json:"score"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
