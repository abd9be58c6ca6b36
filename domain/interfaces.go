package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
}

// CourseRepository defines course data access operations
type CourseRepository interface {
	Create(ctx context.Context, course *Course) error
	FindByID(ctx context.Context, id uint) (*Course, error)
	FindByCode(ctx context.Context, code string) (*Course, error)
}

// EnrollmentRepository defines enrollment data access operations
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *Enrollment) error
	Exists(ctx context.Context, studentID, courseID uint) (bool, error)
}

// AssignmentRepository defines assignment data access operations
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *Assignment) error
	FindByID(ctx context.Context, id uint) (*Assignment, error)
	FindByTitle(ctx context.Context, title string) (*Assignment, error)
	ListByTeacher(ctx context.Context, teacherID uint) ([]Assignment, error)
	ListByCourse(ctx context.Context, courseID uint) ([]Assignment, error)
}

// SubmissionRepository defines submission data access operations
type SubmissionRepository interface {
	Create(ctx context.Context, submission *Submission) error
	Exists(ctx context.Context, studentID, assignmentID uint) (bool, error)
}

// MarkRepository defines mark data access operations
type MarkRepository interface {
	Create(ctx context.Context, mark *Mark) error
	FindByID(ctx context.Context, id uint) (*Mark, error)
	Update(ctx context.Context, mark *Mark) error
	ListByStudent(ctx context.Context, studentID uint) ([]Mark, error)
}

// AuthService defines the authentication gate business logic
type AuthService interface {
	Register(ctx context.Context, firstName, lastName, username, email, password string, role Role) (*User, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	ChangePassword(ctx context.Context, username, password, newPassword string) error
	Authenticate(ctx context.Context, token string) (*User, error)
}

// CourseService defines course business logic
type CourseService interface {
	CreateCourse(ctx context.Context, teacherID uint, code, title, description string) (*Course, error)
	EnrollCourse(ctx context.Context, studentID, courseID uint) (*Course, error)
}

// AssignmentService defines assignment business logic
type AssignmentService interface {
	CreateAssignment(ctx context.Context, courseID uint, title, description string, dueDate time.Time, filePath string) (*Assignment, error)
	TeacherAssignments(ctx context.Context, teacherID uint) ([]Assignment, error)
	StudentCourseAssignments(ctx context.Context, studentID, courseID uint) ([]Assignment, error)
	SubmitAssignment(ctx context.Context, studentID, assignmentID uint, filePath string) (*Submission, error)
}

// MarkService defines mark business logic
type MarkService interface {
	CreateMark(ctx context.Context, studentID, assignmentID uint, score int, comments string) (*Mark, error)
	UpdateMark(ctx context.Context, markID uint, update MarkUpdate) (*Mark, error)
	StudentMarks(ctx context.Context, studentID uint) ([]Mark, error)
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Generate(username string) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// ListingCache caches hot read-only listings. A nil slice with a nil error
// is a cache miss.
type ListingCache interface {
	GetTeacherAssignments(ctx context.Context, teacherID uint) ([]Assignment, error)
	SetTeacherAssignments(ctx context.Context, teacherID uint, assignments []Assignment) error
	InvalidateTeacherAssignments(ctx context.Context, teacherID uint) error
	GetStudentMarks(ctx context.Context, studentID uint) ([]Mark, error)
	SetStudentMarks(ctx context.Context, studentID uint, marks []Mark) error
	InvalidateStudentMarks(ctx context.Context, studentID uint) error
}
