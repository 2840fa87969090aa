package repository

import (
	"gorm.io/gorm"

	"github.com/JosephArr12/gradebook-backend/internal/models"
)

type EnrollmentRepository interface {
	Create(enrollment *models.Enrollment) error
	GetByCourseAndEmail(courseID uint, studentEmail string) (*models.Enrollment, error)
	ListByCourse(courseID uint) ([]models.Enrollment, error)
	CountByCourse(courseID uint) (int64, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Create(enrollment *models.Enrollment) error {
	return r.db.Create(enrollment).Error
}

func (r *enrollmentRepository) GetByCourseAndEmail(courseID uint, studentEmail string) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.
		Where("course_id = ? AND student_email = ?", courseID, studentEmail).
		First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) ListByCourse(courseID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.
		Where("course_id = ?", courseID).
		Order("student_name ASC").
		Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepository) CountByCourse(courseID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Enrollment{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}
