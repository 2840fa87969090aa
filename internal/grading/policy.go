// Package grading holds the pure decision logic for an assignment's grading
// state. Nothing in here touches persistence; callers load the counts and
// store the result.
package grading

import "github.com/JosephArr12/gradebook-backend/internal/models"

// NeedsGrading reports whether an assignment currently needs grading:
// its due date is on or before today and fewer grades have been recorded
// than there are students enrolled in its course.
func NeedsGrading(dueDate, today models.Date, enrollmentCount, gradeCount int) bool {
	if dueDate.Time.After(today.Time) {
		return false
	}
	return gradeCount < enrollmentCount
}

// CanDelete reports whether an assignment may be deleted. Recorded grades
// represent work already evaluated, so any grade at all blocks deletion.
func CanDelete(gradeCount int) bool {
	return gradeCount == 0
}
