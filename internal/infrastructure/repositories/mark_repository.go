package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/6ogunt48/class-manager/domain"
)

// MarkRepositoryImpl implements domain.MarkRepository using GORM
type MarkRepositoryImpl struct {
	db *gorm.DB
}

// NewMarkRepository creates a new mark repository
func NewMarkRepository(db *gorm.DB) domain.MarkRepository {
	return &MarkRepositoryImpl{db: db}
}

// Create implements domain.MarkRepository
func (r *MarkRepositoryImpl) Create(ctx context.Context, mark *domain.Mark) error {
	dbMark := markToDB(mark)
	if err := r.db.WithContext(ctx).Create(dbMark).Error; err != nil {
		return err
	}
	mark.ID = dbMark.ID
	mark.CreatedAt = dbMark.CreatedAt
	mark.UpdatedAt = dbMark.UpdatedAt
	return nil
}

// FindByID implements domain.MarkRepository
func (r *MarkRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Mark, error) {
	var dbMark DBMark
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbMark).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrMarkNotFound
		}
		return nil, err
	}
	return markToDomain(&dbMark), nil
}

// Update implements domain.MarkRepository
func (r *MarkRepositoryImpl) Update(ctx context.Context, mark *domain.Mark) error {
	return r.db.WithContext(ctx).Model(&DBMark{}).Where("id = ?", mark.ID).Updates(map[string]interface{}{
		"score":    mark.Score,
		"comments": mark.Comments,
	}).Error
}

// ListByStudent implements domain.MarkRepository
func (r *MarkRepositoryImpl) ListByStudent(ctx context.Context, studentID uint) ([]domain.Mark, error) {
	var dbMarks []DBMark
	err := r.db.WithContext(ctx).Where("student_id = ?", studentID).Find(&dbMarks).Error
	if err != nil {
		return nil, err
	}
	marks := make([]domain.Mark, 0, len(dbMarks))
	for i := range dbMarks {
		marks = append(marks, *markToDomain(&dbMarks[i]))
	}
	return marks, nil
}

func markToDB(mark *domain.Mark) *DBMark {
	return &DBMark{
		ID:           mark.ID,
		Score:        mark.Score,
		Comments:     mark.Comments,
		StudentID:    mark.StudentID,
		AssignmentID: mark.AssignmentID,
	}
}

func markToDomain(dbMark *DBMark) *domain.Mark {
	return &domain.Mark{
		ID:           dbMark.ID,
		Score:        dbMark.Score,
		Comments:     dbMark.Comments,
		StudentID:    dbMark.StudentID,
		AssignmentID: dbMark.AssignmentID,
		CreatedAt:    dbMark.CreatedAt,
		UpdatedAt:    dbMark.UpdatedAt,
	}
}
