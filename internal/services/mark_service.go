package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/6ogunt48/class-manager/domain"
	"github.com/6ogunt48/class-manager/pkg/logger"
)

// MarkServiceImpl implements domain.MarkService
type MarkServiceImpl struct {
	markRepo       domain.MarkRepository
	assignmentRepo domain.AssignmentRepository
	userRepo       domain.UserRepository
	enrollmentRepo domain.EnrollmentRepository
	submissionRepo domain.SubmissionRepository
	cache          domain.ListingCache
	log            zerolog.Logger
}

// NewMarkService creates a new mark service
func NewMarkService(
	markRepo domain.MarkRepository,
	assignmentRepo domain.AssignmentRepository,
	userRepo domain.UserRepository,
	enrollmentRepo domain.EnrollmentRepository,
	submissionRepo domain.SubmissionRepository,
	cache domain.ListingCache,
) domain.MarkService {
	return &MarkServiceImpl{
		markRepo:       markRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
		submissionRepo: submissionRepo,
		cache:          cache,
		log:            logger.Get(),
	}
}

// CreateMark implements domain.MarkService. Every precondition is checked
// before the row is written: the assignment exists, the graded user is a
// student, the student is enrolled in the assignment's course and has a
// submission for the assignment.
func (s *MarkServiceImpl) CreateMark(ctx context.Context, studentID, assignmentID uint, score int, comments string) (*domain.Mark, error) {
	assignment, err := s.assignmentRepo.FindByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	student, err := s.userRepo.FindByID(ctx, studentID)
	if err != nil {
		return nil, domain.ErrStudentNotFound
	}
	if student.Role != domain.RoleStudent {
		return nil, domain.ErrStudentNotFound
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
	if !submitted {
		return nil, domain.ErrNotSubmitted
	}

	mark := &domain.Mark{
		Score:        score,
		Comments:     comments,
		StudentID:    studentID,
		AssignmentID: assignmentID,
	}
	if err := s.markRepo.Create(ctx, mark); err != nil {
		return nil, fmt.Errorf("failed to create mark: %w", err)
	}

	if err := s.cache.InvalidateStudentMarks(ctx, studentID); err != nil {
		s.log.Warn().Err(err).Uint("student_id", studentID).Msg("marks cache invalidation failed")
	}

	return mark, nil
}

// UpdateMark implements domain.MarkService. Nil fields of the update are
// left unchanged.
func (s *MarkServiceImpl) UpdateMark(ctx context.Context, markID uint, update domain.MarkUpdate) (*domain.Mark, error) {
	mark, err := s.markRepo.FindByID(ctx, markID)
	if err != nil {
		return nil, err
	}

	if update.Score != nil {
		mark.Score = *update.Score
	}
	if update.Comments != nil {
		mark.Comments = *update.Comments
	}

	if err := s.markRepo.Update(ctx, mark); err != nil {
		return nil, fmt.Errorf("failed to update mark: %w", err)
	}

	if err := s.cache.InvalidateStudentMarks(ctx, mark.StudentID); err != nil {
		s.log.Warn().Err(err).Uint("student_id", mark.StudentID).Msg("marks cache invalidation failed")
	}

	return mark, nil
}

// StudentMarks implements domain.MarkService
func (s *MarkServiceImpl) StudentMarks(ctx context.Context, studentID uint) ([]domain.Mark, error) {
	if cached, err := s.cache.GetStudentMarks(ctx, studentID); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		s.log.Warn().Err(err).Uint("student_id", studentID).Msg("marks cache read failed")
	}

	marks, err := s.markRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list marks: %w", err)
	}

	if len(marks) > 0 {
		if err := s.cache.SetStudentMarks(ctx, studentID, marks); err != nil {
			s.log.Warn().Err(err).Uint("student_id", studentID).Msg("marks cache write failed")
		}
	}

	return marks, nil
}
