package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/6ogunt48/class-manager/domain"
)

// SubmissionRepositoryImpl implements domain.SubmissionRepository using GORM
type SubmissionRepositoryImpl struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *gorm.DB) domain.SubmissionRepository {
	return &SubmissionRepositoryImpl{db: db}
}

// Create implements domain.SubmissionRepository
func (r *SubmissionRepositoryImpl) Create(ctx context.Context, submission *domain.Submission) error {
	dbSubmission := &DBSubmission{
		StudentID:    submission.StudentID,
		AssignmentID: submission.AssignmentID,
		FilePath:     submission.FilePath,
	}
	if err := r.db.WithContext(ctx).Create(dbSubmission).Error; err != nil {
		return err
	}
	submission.ID = dbSubmission.ID
	submission.CreatedAt = dbSubmission.CreatedAt
	return nil
}

// Exists implements domain.SubmissionRepository
func (r *SubmissionRepositoryImpl) Exists(ctx context.Context, studentID, assignmentID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBSubmission{}).
		Where("student_id = ? AND assignment_id = ?", studentID, assignmentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
