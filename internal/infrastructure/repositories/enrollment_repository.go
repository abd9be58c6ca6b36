package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/6ogunt48/class-manager/domain"
)

// EnrollmentRepositoryImpl implements domain.EnrollmentRepository using GORM
type EnrollmentRepositoryImpl struct {
	db *gorm.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *gorm.DB) domain.EnrollmentRepository {
	return &EnrollmentRepositoryImpl{db: db}
}

// Create implements domain.EnrollmentRepository
func (r *EnrollmentRepositoryImpl) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	dbEnrollment := &DBEnrollment{
		StudentID: enrollment.StudentID,
		CourseID:  enrollment.CourseID,
	}
	if err := r.db.WithContext(ctx).Create(dbEnrollment).Error; err != nil {
		return err
	}
	enrollment.ID = dbEnrollment.ID
	return nil
}

// Exists implements domain.EnrollmentRepository
func (r *EnrollmentRepositoryImpl) Exists(ctx context.Context, studentID, courseID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBEnrollment{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
