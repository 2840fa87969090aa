package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JosephArr12/gradebook-backend/internal/models"
)

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	assert.NoError(t, err)
	return d
}

func TestNeedsGrading(t *testing.T) {
	today := mustDate(t, "2023-03-10")

	tests := []struct {
		name            string
		dueDate         string
		enrollmentCount int
		gradeCount      int
		want            bool
	}{
		{"due date in the past, no grades", "2023-03-03", 3, 0, true},
		{"due date today, no grades", "2023-03-10", 3, 0, true},
		{"due date in the future", "2023-03-11", 3, 0, false},
		{"due date in the future, some grades", "2024-01-01", 3, 2, false},
		{"past due, partially graded", "2023-03-03", 3, 2, true},
		{"past due, fully graded", "2023-03-03", 3, 3, false},
		{"past due, empty roster", "2023-03-03", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NeedsGrading(mustDate(t, tt.dueDate), today, tt.enrollmentCount, tt.gradeCount)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanDelete(t *testing.T) {
	assert.True(t, CanDelete(0))
	assert.False(t, CanDelete(1))
	assert.False(t, CanDelete(10))
}
