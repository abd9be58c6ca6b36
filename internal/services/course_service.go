package services

import (
	"context"
	"fmt"

	"github.com/6ogunt48/class-manager/domain"
)

// CourseServiceImpl implements domain.CourseService
type CourseServiceImpl struct {
	courseRepo     domain.CourseRepository
	enrollmentRepo domain.EnrollmentRepository
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo domain.CourseRepository, enrollmentRepo domain.EnrollmentRepository) domain.CourseService {
	return &CourseServiceImpl{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// CreateCourse implements domain.CourseService
func (s *CourseServiceImpl) CreateCourse(ctx context.Context, teacherID uint, code, title, description string) (*domain.Course, error) {
	existing, err := s.courseRepo.FindByCode(ctx, code)
	if err != nil && err != domain.ErrCourseNotFound {
		return nil, fmt.Errorf("failed to check course code: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrCourseCodeTaken
	}

	course := &domain.Course{
		CourseCode:  code,
		Title:       title,
		Description: description,
		TeacherID:   teacherID,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	return course, nil
}

// EnrollCourse implements domain.CourseService
func (s *CourseServiceImpl) EnrollCourse(ctx context.Context, studentID, courseID uint) (*domain.Course, error) {
	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.enrollmentRepo.Exists(ctx, studentID, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check enrollment: %w", err)
	}
	if enrolled {
		return nil, domain.ErrAlreadyEnrolled
	}

	enrollment := &domain.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("failed to enroll: %w", err)
	}

	return course, nil
}
