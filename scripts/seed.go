package main

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/JosephArr12/gradebook-backend/internal/models"
)

func main() {
	db, err := gorm.Open(sqlite.Open("gradebook.db"), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Course{},
		&models.Enrollment{},
		&models.Assignment{},
		&models.AssignmentGrade{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	courses := []models.Course{
		{
			ID:         999001,
			Title:      "cst363-database",
			Semester:   "Spring",
			Year:       2023,
			Instructor: "dwisneski@csumb.edu",
			Enrollments: []models.Enrollment{
				{StudentEmail: "test@csumb.edu", StudentName: "Test Student"},
				{StudentEmail: "jgross@csumb.edu", StudentName: "Jane Gross"},
				{StudentEmail: "npham@csumb.edu", StudentName: "Nancy Pham"},
			},
		},
		{
			ID:         999002,
			Title:      "cst438-software-engineering",
			Semester:   "Spring",
			Year:       2023,
			Instructor: "dwisneski@csumb.edu",
			Enrollments: []models.Enrollment{
				{StudentEmail: "test@csumb.edu", StudentName: "Test Student"},
			},
		},
	}

	for i := range courses {
		if err := db.Create(&courses[i]).Error; err != nil {
			log.Printf("Failed to create course %s: %v", courses[i].Title, err)
		}
	}

	dueDate, _ := models.ParseDate("2023-03-03")
	assignments := []models.Assignment{
		{Name: "db homework 1", DueDate: dueDate, CourseID: 999001, NeedsGrading: true},
		{Name: "db homework 2", DueDate: dueDate, CourseID: 999001, NeedsGrading: true},
	}

	for i := range assignments {
		if err := db.Create(&assignments[i]).Error; err != nil {
			log.Printf("Failed to create assignment %s: %v", assignments[i].Name, err)
		}
	}

	fmt.Println("Seed data created")
}
