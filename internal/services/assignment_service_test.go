package services

import (
	"context"
	"testing"
	"time"

	"github.com/6ogunt48/class-manager/domain"
	"github.com/6ogunt48/class-manager/internal/mocks"
)

func sampleAssignment() *domain.Assignment {
	return &domain.Assignment{
		ID:          20,
		CourseID:    10,
		Title:       "Homework 1",
		Description: "Chapter one exercises",
		DueDate:     time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestAssignmentServiceImpl_CreateAssignment(t *testing.T) {
	dueDate := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	t.Run("successful creation invalidates the teacher listing", func(t *testing.T) {
		courseRepo := mocks.NewMockCourseRepository()
		courseRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Course, error) {
			return sampleCourse(), nil
		}
		assignmentRepo := mocks.NewMockAssignmentRepository()
		assignmentRepo.CreateFunc = func(ctx context.Context, assignment *domain.Assignment) error {
			assignment.ID = 20
			return nil
		}
		cache := mocks.NewMockListingCache()
		var invalidatedTeacher uint
		cache.InvalidateTeacherAssignmentsFunc = func(ctx context.Context, teacherID uint) error {
			invalidatedTeacher = teacherID
			return nil
		}

		svc := NewAssignmentService(assignmentRepo, courseRepo, mocks.NewMockEnrollmentRepository(), mocks.NewMockSubmissionRepository(), cache)
		assignment, err := svc.CreateAssignment(context.Background(), 10, "Homework 1", "Chapter one exercises", dueDate, "")
		if err != nil {
			t.Fatalf("CreateAssignment() error = %v", err)
		}
		if assignment.ID != 20 {
			t.Errorf("assignment ID = %d, want 20", assignment.ID)
		}
		if invalidatedTeacher != 1 {
			t.Errorf("invalidated teacher %d, want 1", invalidatedTeacher)
		}
	})

	t.Run("unknown course", func(t *testing.T) {
		svc := NewAssignmentService(mocks.NewMockAssignmentRepository(), mocks.NewMockCourseRepository(), mocks.NewMockEnrollmentRepository(), mocks.NewMockSubmissionRepository(), mocks.NewMockListingCache())
		_, err := svc.CreateAssignment(context.Background(), 99, "Homework 1", "", dueDate, "")
		if err != domain.ErrCourseNotFound {
			t.Fatalf("CreateAssignment() error = %v, want %v", err, domain.ErrCourseNotFound)
		}
	})

	t.Run("duplicate title", func(t *testing.T) {
		courseRepo := mocks.NewMockCourseRepository()
		courseRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Course, error) {
			return sampleCourse(), nil
		}
		assignmentRepo := mocks.NewMockAssignmentRepository()
		assignmentRepo.FindByTitleFunc = func(ctx context.Context, title string) (*domain.Assignment, error) {
			return sampleAssignment(), nil
		}
		createCalled := false
		assignmentRepo.CreateFunc = func(ctx context.Context, assignment *domain.Assignment) error {
			createCalled = true
			return nil
		}

		svc := NewAssignmentService(assignmentRepo, courseRepo, mocks.NewMockEnrollmentRepository(), mocks.NewMockSubmissionRepository(), mocks.NewMockListingCache())
		_, err := svc.CreateAssignment(context.Background(), 10, "Homework 1", "", dueDate, "")
		if err != domain.ErrAssignmentTitleTaken {
			t.Fatalf("CreateAssignment() error = %v, want %v", err, domain.ErrAssignmentTitleTaken)
		}
		if createCalled {
			t.Error("assignment was created despite the duplicate title")
		}
	})
}

func TestAssignmentServiceImpl_TeacherAssignments(t *testing.T) {
	t.Run("cache hit skips the repository", func(t *testing.T) {
		cache := mocks.NewMockListingCache()
		cache.GetTeacherAssignmentsFunc = func(ctx context.Context, teacherID uint) ([]domain.Assignment, error) {
			return []domain.Assignment{*sampleAssignment()}, nil
		}
		assignmentRepo := mocks.NewMockAssignmentRepository()
		listCalled := false
		assignmentRepo.ListByTeacherFunc = func(ctx context.Context, teacherID uint) ([]domain.Assignment, error) {
			listCalled = true
			return nil, nil
		}

		svc := NewAssignmentService(assignmentRepo, mocks.NewMockCourseRepository(), mocks.NewMockEnrollmentRepository(), mocks.NewMockSubmissionRepository(), cache)
		assignments, err := svc.TeacherAssignments(context.Background(), 1)
		if err != nil {
			t.Fatalf("TeacherAssignments() error = %v", err)
		}
		if len(assignments) != 1 || assignments[0].Title != "Homework 1" {
			t.Errorf("unexpected listing %+v", assignments)
		}
		if listCalled {
			t.Error("repository was queried despite the cache hit")
		}
	})

	t.Run("cache miss populates the cache", func(t *testing.T) {
		cache := mocks.NewMockListingCache()
		cacheWritten := false
		cache.SetTeacherAssignmentsFunc = func(ctx context.Context, teacherID uint, assignments []domain.Assignment) error {
			cacheWritten = true
			return nil
		}
		assignmentRepo := mocks.NewMockAssignmentRepository()
		assignmentRepo.ListByTeacherFunc = func(ctx context.Context, teacherID uint) ([]domain.Assignment, error) {
			return []domain.Assignment{*sampleAssignment()}, nil
		}

		svc := NewAssignmentService(assignmentRepo, mocks.NewMockCourseRepository(), mocks.NewMockEnrollmentRepository(), mocks.NewMockSubmissionRepository(), cache)
		assignments, err := svc.TeacherAssignments(context.Background(), 1)
		if err != nil {
			t.Fatalf("TeacherAssignments() error = %v", err)
		}
		if len(assignments) != 1 {
			t.Fatalf("expected 1 assignment, got %d", len(assignments))
		}
		if !cacheWritten {
			t.Error("listing was not written back to the cache")
		}
	})
}

func TestAssignmentServiceImpl_StudentCourseAssignments(t *testing.T) {
	t.Run("not enrolled", func(t *testing.T) {
		svc := NewAssignmentService(mocks.NewMockAssignmentRepository(), mocks.NewMockCourseRepository(), mocks.NewMockEnrollmentRepository(), mocks.NewMockSubmissionRepository(), mocks.NewMockListingCache())
		_, err := svc.StudentCourseAssignments(context.Background(), 2, 10)
		if err != domain.ErrNotEnrolled {
			t.Fatalf("StudentCourseAssignments() error = %v, want %v", err, domain.ErrNotEnrolled)
		}
	})

	t.Run("enrolled student sees the course assignments", func(t *testing.T) {
		enrollmentRepo := mocks.NewMockEnrollmentRepository()
		enrollmentRepo.ExistsFunc = func(ctx context.Context, studentID, courseID uint) (bool, error) {
			return true, nil
		}
		assignmentRepo := mocks.NewMockAssignmentRepository()
		assignmentRepo.ListByCourseFunc = func(ctx context.Context, courseID uint) ([]domain.Assignment, error) {
			return []domain.Assignment{*sampleAssignment()}, nil
		}

		svc := NewAssignmentService(assignmentRepo, mocks.NewMockCourseRepository(), enrollmentRepo, mocks.NewMockSubmissionRepository(), mocks.NewMockListingCache())
		assignments, err := svc.StudentCourseAssignments(context.Background(), 2, 10)
		if err != nil {
			t.Fatalf("StudentCourseAssignments() error = %v", err)
		}
		if len(assignments) != 1 {
			t.Fatalf("expected 1 assignment, got %d", len(assignments))
		}
	})
}

func TestAssignmentServiceImpl_SubmitAssignment(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockAssignmentRepository, *mocks.MockEnrollmentRepository, *mocks.MockSubmissionRepository)
		expectedError error
	}{
		{
			name: "successful submission",
			setupMocks: func(assignmentRepo *mocks.MockAssignmentRepository, enrollmentRepo *mocks.MockEnrollmentRepository, submissionRepo *mocks.MockSubmissionRepository) {
				assignmentRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Assignment, error) {
					return sampleAssignment(), nil
				}
				enrollmentRepo.ExistsFunc = func(ctx context.Context, studentID, courseID uint) (bool, error) {
					return true, nil
				}
			},
		},
		{
			name:          "unknown assignment",
			setupMocks:    func(*mocks.MockAssignmentRepository, *mocks.MockEnrollmentRepository, *mocks.MockSubmissionRepository) {},
			expectedError: domain.ErrAssignmentNotFound,
		},
		{
			name: "not enrolled in the assignment's course",
			setupMocks: func(assignmentRepo *mocks.MockAssignmentRepository, enrollmentRepo *mocks.MockEnrollmentRepository, submissionRepo *mocks.MockSubmissionRepository) {
				assignmentRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Assignment, error) {
					return sampleAssignment(), nil
				}
			},
			expectedError: domain.ErrNotEnrolled,
		},
		{
			name: "duplicate submission",
			setupMocks: func(assignmentRepo *mocks.MockAssignmentRepository, enrollmentRepo *mocks.MockEnrollmentRepository, submissionRepo *mocks.MockSubmissionRepository) {
				assignmentRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Assignment, error) {
					return sampleAssignment(), nil
				}
				enrollmentRepo.ExistsFunc = func(ctx context.Context, studentID, courseID uint) (bool, error) {
					return true, nil
				}
				submissionRepo.ExistsFunc = func(ctx context.Context, studentID, assignmentID uint) (bool, error) {
					return true, nil
				}
			},
			expectedError: domain.ErrAlreadySubmitted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignmentRepo := mocks.NewMockAssignmentRepository()
			enrollmentRepo := mocks.NewMockEnrollmentRepository()
			submissionRepo := mocks.NewMockSubmissionRepository()
			submissionCreated := false
			submissionRepo.CreateFunc = func(ctx context.Context, submission *domain.Submission) error {
				submissionCreated = true
				return nil
			}
			tt.setupMocks(assignmentRepo, enrollmentRepo, submissionRepo)

			svc := NewAssignmentService(assignmentRepo, mocks.NewMockCourseRepository(), enrollmentRepo, submissionRepo, mocks.NewMockListingCache())
			submission, err := svc.SubmitAssignment(context.Background(), 2, 20, "uploads/hw1.pdf")

			if tt.expectedError != nil {
				if err != tt.expectedError {
					t.Fatalf("SubmitAssignment() error = %v, want %v", err, tt.expectedError)
				}
				if submissionCreated {
					t.Error("submission row was written on a failed submit")
				}
				return
			}
			if err != nil {
				t.Fatalf("SubmitAssignment() error = %v", err)
			}
			if !submissionCreated {
				t.Error("submission row was not written")
			}
			if submission.FilePath != "uploads/hw1.pdf" {
				t.Errorf("file path = %q, want %q", submission.FilePath, "uploads/hw1.pdf")
			}
		})
	}
}
