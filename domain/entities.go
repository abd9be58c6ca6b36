package domain

import "time"

// Role is the closed set of user roles in the system.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher:
		return true
	}
	return false
}

// User represents an identity record in the system
type User struct {
	ID             uint
	FirstName      string
	LastName       string
	Username       string
	Email          string
	PasswordHash   string
	ProfilePicture string
	IsActive       bool
	Role           Role
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Course represents a course taught by a teacher
type Course struct {
	ID          uint
	CourseCode  string
	Title       string
	Description string
	TeacherID   uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Enrollment links a student to a course
type Enrollment struct {
	ID        uint
	StudentID uint
	CourseID  uint
	CreatedAt time.Time
}

// Assignment represents an assignment belonging to a course
type Assignment struct {
	ID          uint
	CourseID    uint
	Title       string
	Description string
	DueDate     time.Time
	FilePath    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Submission is a student's submitted work for an assignment
type Submission struct {
	ID           uint
	StudentID    uint
	AssignmentID uint
	FilePath     string
	CreatedAt    time.Time
}

// Mark is a teacher's grade for a student's submission
type Mark struct {
	ID           uint
	Score        int
	Comments     string
	StudentID    uint
	AssignmentID uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AuthResult represents a successful login outcome
type AuthResult struct {
	User        *User
	AccessToken string
	ExpiresIn   int64
}

// TokenClaims represents the verified claims of a session token
type TokenClaims struct {
	Username  string `json:"sub"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// ProfileUpdate carries the mutable profile fields for a self-service edit.
type ProfileUpdate struct {
	FirstName      string
	LastName       string
	Username       string
	Email          string
	ProfilePicture string
}

// MarkUpdate carries a partial mark edit. Nil fields are left unchanged.
type MarkUpdate struct {
	Score    *int
	Comments *string
}
