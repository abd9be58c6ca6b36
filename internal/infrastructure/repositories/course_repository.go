package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/6ogunt48/class-manager/domain"
)

// CourseRepositoryImpl implements domain.CourseRepository using GORM
type CourseRepositoryImpl struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *gorm.DB) domain.CourseRepository {
	return &CourseRepositoryImpl{db: db}
}

// Create implements domain.CourseRepository
func (r *CourseRepositoryImpl) Create(ctx context.Context, course *domain.Course) error {
	dbCourse := courseToDB(course)
	if err := r.db.WithContext(ctx).Create(dbCourse).Error; err != nil {
		return err
	}
	course.ID = dbCourse.ID
	return nil
}

// FindByID implements domain.CourseRepository
func (r *CourseRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Course, error) {
	var dbCourse DBCourse
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbCourse).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}
	return courseToDomain(&dbCourse), nil
}

// FindByCode implements domain.CourseRepository
func (r *CourseRepositoryImpl) FindByCode(ctx context.Context, code string) (*domain.Course, error) {
	var dbCourse DBCourse
	err := r.db.WithContext(ctx).Where("course_code = ?", code).First(&dbCourse).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}
	return courseToDomain(&dbCourse), nil
}

func courseToDB(course *domain.Course) *DBCourse {
	return &DBCourse{
		ID:          course.ID,
		CourseCode:  course.CourseCode,
		Title:       course.Title,
		Description: course.Description,
		TeacherID:   course.TeacherID,
	}
}

func courseToDomain(dbCourse *DBCourse) *domain.Course {
	return &domain.Course{
		ID:          dbCourse.ID,
		CourseCode:  dbCourse.CourseCode,
		Title:       dbCourse.Title,
		Description: dbCourse.Description,
		TeacherID:   dbCourse.TeacherID,
		CreatedAt:   dbCourse.CreatedAt,
		UpdatedAt:   dbCourse.UpdatedAt,
	}
}
