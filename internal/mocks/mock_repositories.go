package mocks

import (
	"context"

	"github.com/6ogunt48/class-manager/domain"
)

// MockCourseRepository implements domain.CourseRepository for testing
type MockCourseRepository struct {
	CreateFunc     func(ctx context.Context, course *domain.Course) error
	FindByIDFunc   func(ctx context.Context, id uint) (*domain.Course, error)
	FindByCodeFunc func(ctx context.Context, code string) (*domain.Course, error)
}

func NewMockCourseRepository() *MockCourseRepository {
	return &MockCourseRepository{}
}

func (m *MockCourseRepository) Create(ctx context.Context, course *domain.Course) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, course)
	}
	return nil
}

func (m *MockCourseRepository) FindByID(ctx context.Context, id uint) (*domain.Course, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrCourseNotFound
}

func (m *MockCourseRepository) FindByCode(ctx context.Context, code string) (*domain.Course, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, domain.ErrCourseNotFound
}

// MockEnrollmentRepository implements domain.EnrollmentRepository for testing
type MockEnrollmentRepository struct {
	CreateFunc func(ctx context.Context, enrollment *domain.Enrollment) error
	ExistsFunc func(ctx context.Context, studentID, courseID uint) (bool, error)
}

func NewMockEnrollmentRepository() *MockEnrollmentRepository {
	return &MockEnrollmentRepository{}
}

func (m *MockEnrollmentRepository) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, enrollment)
	}
	return nil
}

func (m *MockEnrollmentRepository) Exists(ctx context.Context, studentID, courseID uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, studentID, courseID)
	}
	return false, nil
}

// MockAssignmentRepository implements domain.AssignmentRepository for testing
type MockAssignmentRepository struct {
	CreateFunc        func(ctx context.Context, assignment *domain.Assignment) error
	FindByIDFunc      func(ctx context.Context, id uint) (*domain.Assignment, error)
	FindByTitleFunc   func(ctx context.Context, title string) (*domain.Assignment, error)
	ListByTeacherFunc func(ctx context.Context, teacherID uint) ([]domain.Assignment, error)
	ListByCourseFunc  func(ctx context.Context, courseID uint) ([]domain.Assignment, error)
}

func NewMockAssignmentRepository() *MockAssignmentRepository {
	return &MockAssignmentRepository{}
}

func (m *MockAssignmentRepository) Create(ctx context.Context, assignment *domain.Assignment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, assignment)
	}
	return nil
}

func (m *MockAssignmentRepository) FindByID(ctx context.Context, id uint) (*domain.Assignment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrAssignmentNotFound
}

func (m *MockAssignmentRepository) FindByTitle(ctx context.Context, title string) (*domain.Assignment, error) {
	if m.FindByTitleFunc != nil {
		return m.FindByTitleFunc(ctx, title)
	}
	return nil, domain.ErrAssignmentNotFound
}

func (m *MockAssignmentRepository) ListByTeacher(ctx context.Context, teacherID uint) ([]domain.Assignment, error) {
	if m.ListByTeacherFunc != nil {
		return m.ListByTeacherFunc(ctx, teacherID)
	}
	return nil, nil
}

func (m *MockAssignmentRepository) ListByCourse(ctx context.Context, courseID uint) ([]domain.Assignment, error) {
	if m.ListByCourseFunc != nil {
		return m.ListByCourseFunc(ctx, courseID)
	}
	return nil, nil
}

// MockSubmissionRepository implements domain.SubmissionRepository for testing
type MockSubmissionRepository struct {
	CreateFunc func(ctx context.Context, submission *domain.Submission) error
	ExistsFunc func(ctx context.Context, studentID, assignmentID uint) (bool, error)
}

func NewMockSubmissionRepository() *MockSubmissionRepository {
	return &MockSubmissionRepository{}
}

func (m *MockSubmissionRepository) Create(ctx context.Context, submission *domain.Submission) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, submission)
	}
	return nil
}

func (m *MockSubmissionRepository) Exists(ctx context.Context, studentID, assignmentID uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, studentID, assignmentID)
	}
	return false, nil
}

// MockMarkRepository implements domain.MarkRepository for testing
type MockMarkRepository struct {
	CreateFunc        func(ctx context.Context, mark *domain.Mark) error
	FindByIDFunc      func(ctx context.Context, id uint) (*domain.Mark, error)
	UpdateFunc        func(ctx context.Context, mark *domain.Mark) error
	ListByStudentFunc func(ctx context.Context, studentID uint) ([]domain.Mark, error)
}

func NewMockMarkRepository() *MockMarkRepository {
	return &MockMarkRepository{}
}

func (m *MockMarkRepository) Create(ctx context.Context, mark *domain.Mark) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, mark)
	}
	return nil
}

func (m *MockMarkRepository) FindByID(ctx context.Context, id uint) (*domain.Mark, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrMarkNotFound
}

func (m *MockMarkRepository) Update(ctx context.Context, mark *domain.Mark) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, mark)
	}
	return nil
}

func (m *MockMarkRepository) ListByStudent(ctx context.Context, studentID uint) ([]domain.Mark, error) {
	if m.ListByStudentFunc != nil {
		return m.ListByStudentFunc(ctx, studentID)
	}
	return nil, nil
}
