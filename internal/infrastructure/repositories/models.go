package repositories

import (
	"time"

	"gorm.io/gorm"
)

// DBUser represents the database model for User
type DBUser struct {
	ID             uint   `gorm:"primaryKey"`
	FirstName      string `gorm:"size:50"`
	LastName       string `gorm:"size:50"`
	Username       string `gorm:"uniqueIndex;size:50"`
	Email          string `gorm:"uniqueIndex;size:100"`
	PasswordHash   string `gorm:"column:password_hash;size:150"`
	ProfilePicture string `gorm:"size:255"`
	IsActive       bool
	Role           string         `gorm:"index;size:10"`
	CreatedAt      time.Time      `gorm:"index"`
	UpdatedAt      time.Time      `gorm:"index"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (DBUser) TableName() string { return "users" }

// DBCourse represents the database model for Course
type DBCourse struct {
	ID          uint   `gorm:"primaryKey"`
	CourseCode  string `gorm:"uniqueIndex;size:6"`
	Title       string `gorm:"size:100"`
	Description string `gorm:"type:text"`
	TeacherID   uint   `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (DBCourse) TableName() string { return "courses" }

// DBEnrollment links a student to a course, unique per pair
type DBEnrollment struct {
	ID        uint `gorm:"primaryKey"`
	StudentID uint `gorm:"uniqueIndex:idx_enrollment_student_course"`
	CourseID  uint `gorm:"uniqueIndex:idx_enrollment_student_course"`
	CreatedAt time.Time
}

func (DBEnrollment) TableName() string { return "enrollments" }

// DBAssignment represents the database model for Assignment
type DBAssignment struct {
	ID          uint   `gorm:"primaryKey"`
	CourseID    uint   `gorm:"index"`
	Title       string `gorm:"uniqueIndex;size:100"`
	Description string `gorm:"type:text"`
	DueDate     time.Time
	FilePath    string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (DBAssignment) TableName() string { return "assignments" }

// DBSubmission represents submitted work, unique per student and assignment
type DBSubmission struct {
	ID           uint   `gorm:"primaryKey"`
	StudentID    uint   `gorm:"uniqueIndex:idx_submission_student_assignment"`
	AssignmentID uint   `gorm:"uniqueIndex:idx_submission_student_assignment"`
	FilePath     string `gorm:"size:255"`
	CreatedAt    time.Time
}

func (DBSubmission) TableName() string { return "submissions" }

// DBMark represents the database model for Mark
type DBMark struct {
	ID           uint `gorm:"primaryKey"`
	Score        int
	Comments     string `gorm:"type:text"`
	StudentID    uint   `gorm:"index"`
	AssignmentID uint   `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (DBMark) TableName() string { return "marks" }
