package repository

import (
	"gorm.io/gorm"

	"github.com/JosephArr12/gradebook-backend/internal/models"
)

type CourseRepository interface {
	GetByID(id uint) (*models.Course, error)
	Create(course *models.Course) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) GetByID(id uint) (*models.Course, error) {
	var course models.Course
	err := r.db.First(&course, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) Create(course *models.Course) error {
	return r.db.Create(course).Error
}
