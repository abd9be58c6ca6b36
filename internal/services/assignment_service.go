package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/6ogunt48/class-manager/domain"
	"github.com/6ogunt48/class-manager/pkg/logger"
)

// AssignmentServiceImpl implements domain.AssignmentService
type AssignmentServiceImpl struct {
	assignmentRepo domain.AssignmentRepository
	courseRepo     domain.CourseRepository
	enrollmentRepo domain.EnrollmentRepository
	submissionRepo domain.SubmissionRepository
	cache          domain.ListingCache
	log            zerolog.Logger
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	assignmentRepo domain.AssignmentRepository,
	courseRepo domain.CourseRepository,
	enrollmentRepo domain.EnrollmentRepository,
	submissionRepo domain.SubmissionRepository,
	cache domain.ListingCache,
) domain.AssignmentService {
	return &AssignmentServiceImpl{
		assignmentRepo: assignmentRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		submissionRepo: submissionRepo,
		cache:          cache,
		log:            logger.Get(),
	}
}

// CreateAssignment implements domain.AssignmentService
func (s *AssignmentServiceImpl) CreateAssignment(ctx context.Context, courseID uint, title, description string, dueDate time.Time, filePath string) (*domain.Assignment, error) {
	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	existing, err := s.assignmentRepo.FindByTitle(ctx, title)
	if err != nil && err != domain.ErrAssignmentNotFound {
		return nil, fmt.Errorf("failed to check assignment title: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrAssignmentTitleTaken
	}

	assignment := &domain.Assignment{
		CourseID:    courseID,
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		FilePath:    filePath,
	}

	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	// Best effort: a stale listing is served at most until the cache TTL.
	if err := s.cache.InvalidateTeacherAssignments(ctx, course.TeacherID); err != nil {
		s.log.Warn().Err(err).Uint("teacher_id", course.TeacherID).Msg("assignment cache invalidation failed")
	}

	return assignment, nil
}

// TeacherAssignments implements domain.AssignmentService
func (s *AssignmentServiceImpl) TeacherAssignments(ctx context.Context, teacherID uint) ([]domain.Assignment, error) {
	if cached, err := s.cache.GetTeacherAssignments(ctx, teacherID); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		s.log.Warn().Err(err).Uint("teacher_id", teacherID).Msg("assignment cache read failed")
	}

	assignments, err := s.assignmentRepo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	if len(assignments) > 0 {
		if err := s.cache.SetTeacherAssignments(ctx, teacherID, assignments); err != nil {
			s.log.Warn().Err(err).Uint("teacher_id", teacherID).Msg("assignment cache write failed")
		}
	}

	return assignments, nil
}

// StudentCourseAssignments implements domain.AssignmentService. The student
// must be enrolled in the course.
func (s *AssignmentServiceImpl) StudentCourseAssignments(ctx context.Context, studentID, courseID uint) ([]domain.Assignment, error) {
	enrolled, err := s.enrollmentRepo.Exists(ctx, studentID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check enrollment: %w", err)
	}
	if !enrolled {
		return nil, domain.ErrNotEnrolled
	}

	assignments, err := s.assignmentRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	return assignments, nil
}

// SubmitAssignment implements domain.AssignmentService. The assignment must
// exist and the student must be enrolled in its course before any write.
func (s *AssignmentServiceImpl) SubmitAssignment(ctx context.Context, studentID, assignmentID uint, filePath string) (*domain.Submission, error) {
	assignment, err := s.assignmentRepo.FindByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.enrollmentRepo.Exists(ctx, studentID, assignment.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check enrollment: %w", err)
	}
	if !enrolled {
		return nil, domain.ErrNotEnrolled
	}

	submitted, err := s.submissionRepo.Exists(ctx, studentID, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check submission: %w", err)
	}
	if submitted {
		return nil, domain.ErrAlreadySubmitted
	}

	submission := &domain.Submission{
		StudentID:    studentID,
		AssignmentID: assignmentID,
		FilePath:     filePath,
	}
	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	return submission, nil
}
