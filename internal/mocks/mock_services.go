package mocks

import (
	"context"
	"time"

	"github.com/6ogunt48/class-manager/domain"
)

// MockPasswordService implements domain.PasswordService for testing
type MockPasswordService struct {
	HashFunc   func(ctx context.Context, password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

func (m *MockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(ctx, password)
	}
	return "hashed_" + password, nil
}

func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return hashedPassword == "hashed_"+password
}

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateFunc func(username string) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) Generate(username string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(username)
	}
	return "token_" + username, nil
}

func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

// MockListingCache implements domain.ListingCache for testing. The default
// behavior is a permanent miss with successful writes.
type MockListingCache struct {
	GetTeacherAssignmentsFunc        func(ctx context.Context, teacherID uint) ([]domain.Assignment, error)
	SetTeacherAssignmentsFunc        func(ctx context.Context, teacherID uint, assignments []domain.Assignment) error
	InvalidateTeacherAssignmentsFunc func(ctx context.Context, teacherID uint) error
	GetStudentMarksFunc              func(ctx context.Context, studentID uint) ([]domain.Mark, error)
	SetStudentMarksFunc              func(ctx context.Context, studentID uint, marks []domain.Mark) error
	InvalidateStudentMarksFunc       func(ctx context.Context, studentID uint) error
}

func NewMockListingCache() *MockListingCache {
	return &MockListingCache{}
}

func (m *MockListingCache) GetTeacherAssignments(ctx context.Context, teacherID uint) ([]domain.Assignment, error) {
	if m.GetTeacherAssignmentsFunc != nil {
		return m.GetTeacherAssignmentsFunc(ctx, teacherID)
	}
	return nil, nil
}

func (m *MockListingCache) SetTeacherAssignments(ctx context.Context, teacherID uint, assignments []domain.Assignment) error {
	if m.SetTeacherAssignmentsFunc != nil {
		return m.SetTeacherAssignmentsFunc(ctx, teacherID, assignments)
	}
	return nil
}

func (m *MockListingCache) InvalidateTeacherAssignments(ctx context.Context, teacherID uint) error {
	if m.InvalidateTeacherAssignmentsFunc != nil {
		return m.InvalidateTeacherAssignmentsFunc(ctx, teacherID)
	}
	return nil
}

func (m *MockListingCache) GetStudentMarks(ctx context.Context, studentID uint) ([]domain.Mark, error) {
	if m.GetStudentMarksFunc != nil {
		return m.GetStudentMarksFunc(ctx, studentID)
	}
	return nil, nil
}

func (m *MockListingCache) SetStudentMarks(ctx context.Context, studentID uint, marks []domain.Mark) error {
	if m.SetStudentMarksFunc != nil {
		return m.SetStudentMarksFunc(ctx, studentID, marks)
	}
	return nil
}

func (m *MockListingCache) InvalidateStudentMarks(ctx context.Context, studentID uint) error {
	if m.InvalidateStudentMarksFunc != nil {
		return m.InvalidateStudentMarksFunc(ctx, studentID)
	}
	return nil
}

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc       func(ctx context.Context, firstName, lastName, username, email, password string, role domain.Role) (*domain.User, error)
	LoginFunc          func(ctx context.Context, username, password string) (*domain.AuthResult, error)
	ChangePasswordFunc func(ctx context.Context, username, password, newPassword string) error
	AuthenticateFunc   func(ctx context.Context, token string) (*domain.User, error)
}

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, firstName, lastName, username, email, password string, role domain.Role) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, firstName, lastName, username, email, password, role)
	}
	return &domain.User{Username: username, Email: email, Role: role}, nil
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockAuthService) ChangePassword(ctx context.Context, username, password, newPassword string) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, username, password, newPassword)
	}
	return nil
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, token)
	}
	return nil, domain.ErrTokenInvalid
}

// MockCourseService implements domain.CourseService for testing
type MockCourseService struct {
	CreateCourseFunc func(ctx context.Context, teacherID uint, code, title, description string) (*domain.Course, error)
	EnrollCourseFunc func(ctx context.Context, studentID, courseID uint) (*domain.Course, error)
}

func NewMockCourseService() *MockCourseService {
	return &MockCourseService{}
}

func (m *MockCourseService) CreateCourse(ctx context.Context, teacherID uint, code, title, description string) (*domain.Course, error) {
	if m.CreateCourseFunc != nil {
		return m.CreateCourseFunc(ctx, teacherID, code, title, description)
	}
	return &domain.Course{CourseCode: code, Title: title, Description: description, TeacherID: teacherID}, nil
}

func (m *MockCourseService) EnrollCourse(ctx context.Context, studentID, courseID uint) (*domain.Course, error) {
	if m.EnrollCourseFunc != nil {
		return m.EnrollCourseFunc(ctx, studentID, courseID)
	}
	return nil, domain.ErrCourseNotFound
}

// MockAssignmentService implements domain.AssignmentService for testing
type MockAssignmentService struct {
	CreateAssignmentFunc         func(ctx context.Context, courseID uint, title, description string, dueDate time.Time, filePath string) (*domain.Assignment, error)
	TeacherAssignmentsFunc       func(ctx context.Context, teacherID uint) ([]domain.Assignment, error)
	StudentCourseAssignmentsFunc func(ctx context.Context, studentID, courseID uint) ([]domain.Assignment, error)
	SubmitAssignmentFunc         func(ctx context.Context, studentID, assignmentID uint, filePath string) (*domain.Submission, error)
}

func NewMockAssignmentService() *MockAssignmentService {
	return &MockAssignmentService{}
}

func (m *MockAssignmentService) CreateAssignment(ctx context.Context, courseID uint, title, description string, dueDate time.Time, filePath string) (*domain.Assignment, error) {
	if m.CreateAssignmentFunc != nil {
		return m.CreateAssignmentFunc(ctx, courseID, title, description, dueDate, filePath)
	}
	return &domain.Assignment{CourseID: courseID, Title: title, Description: description, DueDate: dueDate, FilePath: filePath}, nil
}

func (m *MockAssignmentService) TeacherAssignments(ctx context.Context, teacherID uint) ([]domain.Assignment, error) {
	if m.TeacherAssignmentsFunc != nil {
		return m.TeacherAssignmentsFunc(ctx, teacherID)
	}
	return nil, nil
}

func (m *MockAssignmentService) StudentCourseAssignments(ctx context.Context, studentID, courseID uint) ([]domain.Assignment, error) {
	if m.StudentCourseAssignmentsFunc != nil {
		return m.StudentCourseAssignmentsFunc(ctx, studentID, courseID)
	}
	return nil, nil
}

func (m *MockAssignmentService) SubmitAssignment(ctx context.Context, studentID, assignmentID uint, filePath string) (*domain.Submission, error) {
	if m.SubmitAssignmentFunc != nil {
		return m.SubmitAssignmentFunc(ctx, studentID, assignmentID, filePath)
	}
	return nil, domain.ErrAssignmentNotFound
}

// MockMarkService implements domain.MarkService for testing
type MockMarkService struct {
	CreateMarkFunc   func(ctx context.Context, studentID, assignmentID uint, score int, comments string) (*domain.Mark, error)
	UpdateMarkFunc   func(ctx context.Context, markID uint, update domain.MarkUpdate) (*domain.Mark, error)
	StudentMarksFunc func(ctx context.Context, studentID uint) ([]domain.Mark, error)
}

func NewMockMarkService() *MockMarkService {
	return &MockMarkService{}
}

func (m *MockMarkService) CreateMark(ctx context.Context, studentID, assignmentID uint, score int, comments string) (*domain.Mark, error) {
	if m.CreateMarkFunc != nil {
		return m.CreateMarkFunc(ctx, studentID, assignmentID, score, comments)
	}
	return &domain.Mark{StudentID: studentID, AssignmentID: assignmentID, Score: score, Comments: comments}, nil
}

func (m *MockMarkService) UpdateMark(ctx context.Context, markID uint, update domain.MarkUpdate) (*domain.Mark, error) {
	if m.UpdateMarkFunc != nil {
		return m.UpdateMarkFunc(ctx, markID, update)
	}
	return nil, domain.ErrMarkNotFound
}

func (m *MockMarkService) StudentMarks(ctx context.Context, studentID uint) ([]domain.Mark, error) {
	if m.StudentMarksFunc != nil {
		return m.StudentMarksFunc(ctx, studentID)
	}
	return nil, nil
}
