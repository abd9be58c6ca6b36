package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/6ogunt48/class-manager/domain"
)

// AssignmentRepositoryImpl implements domain.AssignmentRepository using GORM
type AssignmentRepositoryImpl struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) domain.AssignmentRepository {
	return &AssignmentRepositoryImpl{db: db}
}

// Create implements domain.AssignmentRepository
func (r *AssignmentRepositoryImpl) Create(ctx context.Context, assignment *domain.Assignment) error {
	dbAssignment := assignmentToDB(assignment)
	if err := r.db.WithContext(ctx).Create(dbAssignment).Error; err != nil {
		return err
	}
	assignment.ID = dbAssignment.ID
	return nil
}

// FindByID implements domain.AssignmentRepository
func (r *AssignmentRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Assignment, error) {
	var dbAssignment DBAssignment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbAssignment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAssignmentNotFound
		}
		return nil, err
	}
	return assignmentToDomain(&dbAssignment), nil
}

// FindByTitle implements domain.AssignmentRepository
func (r *AssignmentRepositoryImpl) FindByTitle(ctx context.Context, title string) (*domain.Assignment, error) {
	var dbAssignment DBAssignment
	err := r.db.WithContext(ctx).Where("title = ?", title).First(&dbAssignment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrAssignmentNotFound
		}
		return nil, err
	}
	return assignmentToDomain(&dbAssignment), nil
}

// ListByTeacher implements domain.AssignmentRepository. It returns the
// assignments of every course taught by the given teacher.
func (r *AssignmentRepositoryImpl) ListByTeacher(ctx context.Context, teacherID uint) ([]domain.Assignment, error) {
	var dbAssignments []DBAssignment
	err := r.db.WithContext(ctx).
		Joins("JOIN courses ON courses.id = assignments.course_id").
		Where("courses.teacher_id = ?", teacherID).
		Find(&dbAssignments).Error
	if err != nil {
		return nil, err
	}
	return assignmentsToDomain(dbAssignments), nil
}

// ListByCourse implements domain.AssignmentRepository
func (r *AssignmentRepositoryImpl) ListByCourse(ctx context.Context, courseID uint) ([]domain.Assignment, error) {
	var dbAssignments []DBAssignment
	err := r.db.WithContext(ctx).Where("course_id = ?", courseID).Find(&dbAssignments).Error
	if err != nil {
		return nil, err
	}
	return assignmentsToDomain(dbAssignments), nil
}

func assignmentToDB(assignment *domain.Assignment) *DBAssignment {
	return &DBAssignment{
		ID:          assignment.ID,
		CourseID:    assignment.CourseID,
		Title:       assignment.Title,
		Description: assignment.Description,
		DueDate:     assignment.DueDate,
		FilePath:    assignment.FilePath,
	}
}

func assignmentToDomain(dbAssignment *DBAssignment) *domain.Assignment {
	return &domain.Assignment{
		ID:          dbAssignment.ID,
		CourseID:    dbAssignment.CourseID,
		Title:       dbAssignment.Title,
		Description: dbAssignment.Description,
		DueDate:     dbAssignment.DueDate,
		FilePath:    dbAssignment.FilePath,
		CreatedAt:   dbAssignment.CreatedAt,
		UpdatedAt:   dbAssignment.UpdatedAt,
	}
}

func assignmentsToDomain(dbAssignments []DBAssignment) []domain.Assignment {
	assignments := make([]domain.Assignment, 0, len(dbAssignments))
	for i := range dbAssignments {
		assignments = append(assignments, *assignmentToDomain(&dbAssignments[i]))
	}
	return assignments
}
