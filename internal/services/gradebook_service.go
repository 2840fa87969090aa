package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/JosephArr12/gradebook-backend/internal/grading"
	"github.com/JosephArr12/gradebook-backend/internal/models"
	"github.com/JosephArr12/gradebook-backend/internal/repository"
)

// Notifier pushes instructor-facing notifications. Implementations may be
// absent (nil) when no notification channel is configured.
type Notifier interface {
	AssignmentCreated(courseTitle, assignmentName, dueDate string)
	GradeRecorded(assignmentName, studentEmail, score string)
}

// GradebookService orchestrates the assignment lifecycle: create, edit and
// delete assignments, record grades and assemble the gradebook view. All
// grading-state decisions are delegated to the grading package.
type GradebookService struct {
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
	assignmentRepo repository.AssignmentRepository
	gradeRepo      repository.GradeRepository
	notifier       Notifier
}

func NewGradebookService(
	courseRepo repository.CourseRepository,
	enrollmentRepo repository.EnrollmentRepository,
	assignmentRepo repository.AssignmentRepository,
	gradeRepo repository.GradeRepository,
	notifier Notifier,
) *GradebookService {
	return &GradebookService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		assignmentRepo: assignmentRepo,
		gradeRepo:      gradeRepo,
		notifier:       notifier,
	}
}

// CreateAssignment creates a new assignment on an existing course and
// computes its initial needs-grading status. No grades exist yet, so the
// status is true exactly when the due date has already passed and the
// course has at least one enrollment.
func (s *GradebookService) CreateAssignment(courseID uint, name, dueDate string) (*AssignmentDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("assignment name is required: %w", ErrInvalidArgument)
	}
	due, err := models.ParseDate(dueDate)
	if err != nil {
		return nil, fmt.Errorf("due date: %v: %w", err, ErrInvalidArgument)
	}

	course, err := s.courseRepo.GetByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("course %d: %w", courseID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading course %d: %w", courseID, err)
	}

	enrollmentCount, err := s.enrollmentRepo.CountByCourse(course.ID)
	if err != nil {
		return nil, fmt.Errorf("counting enrollments: %w", err)
	}

	assignment := &models.Assignment{
		Name:         name,
		DueDate:      due,
		CourseID:     course.ID,
		NeedsGrading: grading.NeedsGrading(due, models.Today(), int(enrollmentCount), 0),
	}
	if err := s.assignmentRepo.Create(assignment); err != nil {
		return nil, fmt.Errorf("creating assignment: %w", err)
	}

	if s.notifier != nil {
		s.notifier.AssignmentCreated(course.Title, assignment.Name, assignment.DueDate.String())
	}

	return toAssignmentDTO(assignment), nil
}

// ChangeAssignment applies a partial update. Absent patch fields leave the
// stored values untouched; the needs-grading status is recomputed when the
// due date changes.
func (s *GradebookService) ChangeAssignment(id uint, patch AssignmentPatch) (*AssignmentDTO, error) {
	assignment, err := s.loadAssignment(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, fmt.Errorf("assignment name is required: %w", ErrInvalidArgument)
		}
		assignment.Name = name
	}

	if patch.DueDate != nil {
		due, err := models.ParseDate(*patch.DueDate)
		if err != nil {
			return nil, fmt.Errorf("due date: %v: %w", err, ErrInvalidArgument)
		}
		assignment.DueDate = due

		needs, err := s.computeNeedsGrading(assignment)
		if err != nil {
			return nil, err
		}
		assignment.NeedsGrading = needs
	}

	if err := s.assignmentRepo.Update(assignment); err != nil {
		return nil, fmt.Errorf("updating assignment %d: %w", id, err)
	}
	return toAssignmentDTO(assignment), nil
}

// DeleteAssignment removes an assignment unless grades have been recorded
// against it. A blocked delete is not an error: the result flag reports
// whether the assignment was actually removed.
func (s *GradebookService) DeleteAssignment(id uint) (*DeleteResult, error) {
	assignment, err := s.loadAssignment(id)
	if err != nil {
		return nil, err
	}

	gradeCount, err := s.gradeRepo.CountByAssignment(assignment.ID)
	if err != nil {
		return nil, fmt.Errorf("counting grades: %w", err)
	}
	if !grading.CanDelete(int(gradeCount)) {
		return &DeleteResult{AssignmentID: assignment.ID, Deleted: false}, nil
	}

	if err := s.assignmentRepo.Delete(assignment.ID); err != nil {
		return nil, fmt.Errorf("deleting assignment %d: %w", id, err)
	}
	return &DeleteResult{AssignmentID: assignment.ID, Deleted: true}, nil
}

// RecordGrade records or updates the score for one student on one
// assignment, then refreshes the assignment's needs-grading status.
func (s *GradebookService) RecordGrade(assignmentID uint, studentEmail, score string) (*GradeDTO, error) {
	assignment, err := s.loadAssignment(assignmentID)
	if err != nil {
		return nil, err
	}

	enrollment, err := s.enrollmentRepo.GetByCourseAndEmail(assignment.CourseID, studentEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("enrollment for %s in course %d: %w", studentEmail, assignment.CourseID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading enrollment: %w", err)
	}

	grade, err := s.gradeRepo.GetByAssignmentAndStudent(assignment.ID, studentEmail)
	switch {
	case err == nil:
		grade.Score = score
		if err := s.gradeRepo.Update(grade); err != nil {
			return nil, fmt.Errorf("updating grade: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		grade = &models.AssignmentGrade{
			AssignmentID: assignment.ID,
			EnrollmentID: enrollment.ID,
			Score:        score,
		}
		if err := s.gradeRepo.Create(grade); err != nil {
			return nil, fmt.Errorf("creating grade: %w", err)
		}
	default:
		return nil, fmt.Errorf("loading grade: %w", err)
	}

	if err := s.refreshNeedsGrading(assignment); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.GradeRecorded(assignment.Name, studentEmail, score)
	}

	return &GradeDTO{
		AssignmentID:   assignment.ID,
		AssignmentName: assignment.Name,
		StudentEmail:   studentEmail,
		Score:          grade.Score,
	}, nil
}

// GetAssignment returns a single assignment.
func (s *GradebookService) GetAssignment(id uint) (*AssignmentDTO, error) {
	assignment, err := s.loadAssignment(id)
	if err != nil {
		return nil, err
	}
	return toAssignmentDTO(assignment), nil
}

// ListAssignments returns a course's assignments ordered by due date.
func (s *GradebookService) ListAssignments(courseID uint) ([]AssignmentDTO, error) {
	if _, err := s.courseRepo.GetByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("course %d: %w", courseID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading course %d: %w", courseID, err)
	}

	assignments, err := s.assignmentRepo.ListByCourse(courseID)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}

	dtos := make([]AssignmentDTO, 0, len(assignments))
	for i := range assignments {
		dtos = append(dtos, *toAssignmentDTO(&assignments[i]))
	}
	return dtos, nil
}

// GetGradebook assembles the full course view: every enrolled student
// crossed with every assignment, grades filled in where recorded.
func (s *GradebookService) GetGradebook(courseID uint) (*GradebookDTO, error) {
	course, err := s.courseRepo.GetByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("course %d: %w", courseID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading course %d: %w", courseID, err)
	}

	enrollments, err := s.enrollmentRepo.ListByCourse(course.ID)
	if err != nil {
		return nil, fmt.Errorf("listing enrollments: %w", err)
	}
	assignments, err := s.assignmentRepo.ListByCourse(course.ID)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	grades, err := s.gradeRepo.ListByCourse(course.ID)
	if err != nil {
		return nil, fmt.Errorf("listing grades: %w", err)
	}

	// (enrollment, assignment) -> score
	scores := make(map[uint]map[uint]string, len(grades))
	for _, g := range grades {
		if scores[g.EnrollmentID] == nil {
			scores[g.EnrollmentID] = make(map[uint]string)
		}
		scores[g.EnrollmentID][g.AssignmentID] = g.Score
	}

	view := &GradebookDTO{
		CourseID: course.ID,
		Students: make([]StudentGradesDTO, 0, len(enrollments)),
	}
	for _, enrollment := range enrollments {
		row := StudentGradesDTO{
			StudentEmail: enrollment.StudentEmail,
			StudentName:  enrollment.StudentName,
			Grades:       make([]GradeEntryDTO, 0, len(assignments)),
		}
		for _, a := range assignments {
			row.Grades = append(row.Grades, GradeEntryDTO{
				AssignmentID:   a.ID,
				AssignmentName: a.Name,
				Score:          scores[enrollment.ID][a.ID],
			})
		}
		view.Students = append(view.Students, row)
	}
	return view, nil
}

func (s *GradebookService) loadAssignment(id uint) (*models.Assignment, error) {
	assignment, err := s.assignmentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("assignment %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading assignment %d: %w", id, err)
	}
	return assignment, nil
}

func (s *GradebookService) computeNeedsGrading(assignment *models.Assignment) (bool, error) {
	enrollmentCount, err := s.enrollmentRepo.CountByCourse(assignment.CourseID)
	if err != nil {
		return false, fmt.Errorf("counting enrollments: %w", err)
	}
	gradeCount, err := s.gradeRepo.CountByAssignment(assignment.ID)
	if err != nil {
		return false, fmt.Errorf("counting grades: %w", err)
	}
	return grading.NeedsGrading(assignment.DueDate, models.Today(), int(enrollmentCount), int(gradeCount)), nil
}

// refreshNeedsGrading recomputes the cached status and persists the
// assignment only when the value actually changed.
func (s *GradebookService) refreshNeedsGrading(assignment *models.Assignment) error {
	needs, err := s.computeNeedsGrading(assignment)
	if err != nil {
		return err
	}
	if needs == assignment.NeedsGrading {
		return nil
	}
	assignment.NeedsGrading = needs
	if err := s.assignmentRepo.Update(assignment); err != nil {
		return fmt.Errorf("updating assignment %d: %w", assignment.ID, err)
	}
	return nil
}
