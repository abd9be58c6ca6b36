package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/6ogunt48/class-manager/domain"
	"github.com/6ogunt48/class-manager/internal/mocks"
)

func assignmentRouter(assignmentSvc domain.AssignmentService, user *domain.User) *gin.Engine {
	h := NewAssignmentHandlers(assignmentSvc)
	r := gin.New()
	r.POST("/assignment/create-assignment/", asUser(user), h.CreateAssignment)
	r.GET("/assignment/teacher/assignments", asUser(user), h.TeacherAssignments)
	r.GET("/assignment/student/assignments/:course_id", asUser(user), h.StudentCourseAssignments)
	r.POST("/assignment/student/submit-assignment/", asUser(user), h.SubmitAssignment)
	return r
}

func TestAssignmentHandlers_CreateAssignment(t *testing.T) {
	body := gin.H{
		"course_id":   10,
		"title":       "Homework 1",
		"description": "Chapter one exercises",
		"due_date":    "10-15-2026",
	}

	t.Run("successful creation parses the due date", func(t *testing.T) {
		assignmentSvc := mocks.NewMockAssignmentService()
		var gotDue time.Time
		assignmentSvc.CreateAssignmentFunc = func(ctx context.Context, courseID uint, title, description string, dueDate time.Time, filePath string) (*domain.Assignment, error) {
			gotDue = dueDate
			return &domain.Assignment{ID: 20, CourseID: courseID, Title: title, DueDate: dueDate}, nil
		}

		w := performJSON(assignmentRouter(assignmentSvc, testTeacher()), http.MethodPost, "/assignment/create-assignment/", body)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), gotDue)
		assert.Contains(t, w.Body.String(), "10-15-2026")
	})

	t.Run("malformed due date", func(t *testing.T) {
		bad := gin.H{"course_id": 10, "title": "Homework 1", "due_date": "2026-10-15"}
		w := performJSON(assignmentRouter(mocks.NewMockAssignmentService(), testTeacher()), http.MethodPost, "/assignment/create-assignment/", bad)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "MM-DD-YYYY")
	})

	t.Run("duplicate title", func(t *testing.T) {
		assignmentSvc := mocks.NewMockAssignmentService()
		assignmentSvc.CreateAssignmentFunc = func(ctx context.Context, courseID uint, title, description string, dueDate time.Time, filePath string) (*domain.Assignment, error) {
			return nil, domain.ErrAssignmentTitleTaken
		}
		w := performJSON(assignmentRouter(assignmentSvc, testTeacher()), http.MethodPost, "/assignment/create-assignment/", body)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Assignment title already exists")
	})

	t.Run("unknown course", func(t *testing.T) {
		assignmentSvc := mocks.NewMockAssignmentService()
		assignmentSvc.CreateAssignmentFunc = func(ctx context.Context, courseID uint, title, description string, dueDate time.Time, filePath string) (*domain.Assignment, error) {
			return nil, domain.ErrCourseNotFound
		}
		w := performJSON(assignmentRouter(assignmentSvc, testTeacher()), http.MethodPost, "/assignment/create-assignment/", body)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAssignmentHandlers_TeacherAssignments(t *testing.T) {
	t.Run("assignments present", func(t *testing.T) {
		assignmentSvc := mocks.NewMockAssignmentService()
		assignmentSvc.TeacherAssignmentsFunc = func(ctx context.Context, teacherID uint) ([]domain.Assignment, error) {
			return []domain.Assignment{{ID: 20, CourseID: 10, Title: "Homework 1"}}, nil
		}
		w := performJSON(assignmentRouter(assignmentSvc, testTeacher()), http.MethodGet, "/assignment/teacher/assignments", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Homework 1")
	})

	t.Run("no assignments", func(t *testing.T) {
		w := performJSON(assignmentRouter(mocks.NewMockAssignmentService(), testTeacher()), http.MethodGet, "/assignment/teacher/assignments", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "No assignments found")
	})
}

func TestAssignmentHandlers_StudentCourseAssignments(t *testing.T) {
	t.Run("not enrolled", func(t *testing.T) {
		assignmentSvc := mocks.NewMockAssignmentService()
		assignmentSvc.StudentCourseAssignmentsFunc = func(ctx context.Context, studentID, courseID uint) ([]domain.Assignment, error) {
			return nil, domain.ErrNotEnrolled
		}
		w := performJSON(assignmentRouter(assignmentSvc, testStudent()), http.MethodGet, "/assignment/student/assignments/10", nil)
		require.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Not enrolled in this course")
	})

	t.Run("enrolled with assignments", func(t *testing.T) {
		assignmentSvc := mocks.NewMockAssignmentService()
		assignmentSvc.StudentCourseAssignmentsFunc = func(ctx context.Context, studentID, courseID uint) ([]domain.Assignment, error) {
			return []domain.Assignment{{ID: 20, CourseID: courseID, Title: "Homework 1"}}, nil
		}
		w := performJSON(assignmentRouter(assignmentSvc, testStudent()), http.MethodGet, "/assignment/student/assignments/10", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-numeric course id", func(t *testing.T) {
		w := performJSON(assignmentRouter(mocks.NewMockAssignmentService(), testStudent()), http.MethodGet, "/assignment/student/assignments/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAssignmentHandlers_SubmitAssignment(t *testing.T) {
	body := gin.H{"assignment_id": 20, "file_path": "uploads/hw1.pdf"}

	tests := []struct {
		name           string
		submit         func(ctx context.Context, studentID, assignmentID uint, filePath string) (*domain.Submission, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful submission",
			submit: func(ctx context.Context, studentID, assignmentID uint, filePath string) (*domain.Submission, error) {
				return &domain.Submission{ID: 40, StudentID: studentID, AssignmentID: assignmentID, FilePath: filePath}, nil
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   "Assignment submitted successfully",
		},
		{
			name: "unknown assignment",
			submit: func(ctx context.Context, studentID, assignmentID uint, filePath string) (*domain.Submission, error) {
				return nil, domain.ErrAssignmentNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Assignment not found",
		},
		{
			name: "not enrolled",
			submit: func(ctx context.Context, studentID, assignmentID uint, filePath string) (*domain.Submission, error) {
				return nil, domain.ErrNotEnrolled
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   "Not enrolled in this course",
		},
		{
			name: "duplicate submission",
			submit: func(ctx context.Context, studentID, assignmentID uint, filePath string) (*domain.Submission, error) {
				return nil, domain.ErrAlreadySubmitted
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Assignment already submitted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignmentSvc := mocks.NewMockAssignmentService()
			assignmentSvc.SubmitAssignmentFunc = tt.submit

			w := performJSON(assignmentRouter(assignmentSvc, testStudent()), http.MethodPost, "/assignment/student/submit-assignment/", body)
			require.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
