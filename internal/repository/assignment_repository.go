package repository

import (
	"gorm.io/gorm"

	"github.com/JosephArr12/gradebook-backend/internal/models"
)

type AssignmentRepository interface {
	Create(assignment *models.Assignment) error
	GetByID(id uint) (*models.Assignment, error)
	ListByCourse(courseID uint) ([]models.Assignment, error)
	Update(assignment *models.Assignment) error
	Delete(id uint) error
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(assignment *models.Assignment) error {
	return r.db.Create(assignment).Error
}

func (r *assignmentRepository) GetByID(id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) ListByCourse(courseID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.
		Where("course_id = ?", courseID).
		Order("due_date ASC, id ASC").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepository) Update(assignment *models.Assignment) error {
	return r.db.Save(assignment).Error
}

func (r *assignmentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Assignment{}, "id = ?", id).Error
}
