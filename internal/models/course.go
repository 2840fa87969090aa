package models

import "time"

// Course - a course offering with its roster and assignments.
// Courses are created by course setup, never by the gradebook itself.
type Course struct {
	ID         uint   `json:"courseId" gorm:"primaryKey"`
	Title      string `json:"title" gorm:"not null"`
	Semester   string `json:"semester"`
	Year       int    `json:"year"`
	Instructor string `json:"instructor" gorm:"index"` // instructor email

	Enrollments []Enrollment `json:"-" gorm:"foreignKey:CourseID"`
	Assignments []Assignment `json:"-" gorm:"foreignKey:CourseID"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Enrollment - one student's registration in one course.
type Enrollment struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	CourseID     uint   `json:"courseId" gorm:"not null;index;uniqueIndex:idx_course_student"`
	StudentEmail string `json:"studentEmail" gorm:"not null;uniqueIndex:idx_course_student"`
	StudentName  string `json:"studentName"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
