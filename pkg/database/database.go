package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/JosephArr12/gradebook-backend/internal/models"
)

// Database wraps the gorm connection.
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the store: Postgres when a URL is given, a local
// SQLite file otherwise.
func NewDatabase(dbPath, databaseURL string) (*Database, error) {
	var dialector gorm.Dialector
	if databaseURL != "" {
		dialector = postgres.Open(databaseURL)
	} else {
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dialector = sqlite.Open(dbPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return database, nil
}

// Migrate runs the schema migration.
func (d *Database) Migrate() error {
	return d.DB.AutoMigrate(
		&models.Course{},
		&models.Enrollment{},
		&models.Assignment{},
		&models.AssignmentGrade{},
	)
}

// Close closes the underlying connection.
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// EnsureTestCourse creates the well-known test course and its single
// enrollment if they are missing. Course setup is otherwise an upstream
// system's job; this only keeps a development database usable.
func (d *Database) EnsureTestCourse(courseID uint) error {
	var course models.Course
	result := d.DB.First(&course, "id = ?", courseID)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		course = models.Course{
			ID:         courseID,
			Title:      "cst363-database",
			Semester:   "Spring",
			Year:       2023,
			Instructor: "dwisneski@csumb.edu",
			Enrollments: []models.Enrollment{
				{StudentEmail: "test@csumb.edu", StudentName: "Test Student"},
			},
		}
		if err := d.DB.Create(&course).Error; err != nil {
			return fmt.Errorf("failed to create test course: %w", err)
		}
		return nil
	}

	return result.Error
}
