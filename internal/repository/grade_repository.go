package repository

import (
	"gorm.io/gorm"

	"github.com/JosephArr12/gradebook-backend/internal/models"
)

type GradeRepository interface {
	Create(grade *models.AssignmentGrade) error
	Update(grade *models.AssignmentGrade) error
	// GetByAssignmentAndStudent resolves the composite natural key
	// (assignment id, student email) through the enrollment table.
	GetByAssignmentAndStudent(assignmentID uint, studentEmail string) (*models.AssignmentGrade, error)
	ListByCourse(courseID uint) ([]models.AssignmentGrade, error)
	CountByAssignment(assignmentID uint) (int64, error)
}

type gradeRepository struct {
	db *gorm.DB
}

func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &gradeRepository{db: db}
}

func (r *gradeRepository) Create(grade *models.AssignmentGrade) error {
	return r.db.Create(grade).Error
}

func (r *gradeRepository) Update(grade *models.AssignmentGrade) error {
	return r.db.Save(grade).Error
}

func (r *gradeRepository) GetByAssignmentAndStudent(assignmentID uint, studentEmail string) (*models.AssignmentGrade, error) {
	var grade models.AssignmentGrade
	err := r.db.
		Joins("JOIN enrollments ON enrollments.id = assignment_grades.enrollment_id").
		Where("assignment_grades.assignment_id = ? AND enrollments.student_email = ?", assignmentID, studentEmail).
		First(&grade).Error
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *gradeRepository) ListByCourse(courseID uint) ([]models.AssignmentGrade, error) {
	var grades []models.AssignmentGrade
	err := r.db.
		Joins("JOIN assignments ON assignments.id = assignment_grades.assignment_id").
		Where("assignments.course_id = ?", courseID).
		Find(&grades).Error
	return grades, err
}

func (r *gradeRepository) CountByAssignment(assignmentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.AssignmentGrade{}).
		Where("assignment_id = ?", assignmentID).
		Count(&count).Error
	return count, err
}
