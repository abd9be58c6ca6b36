package domain

import "errors"

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrUserNotFound       = errors.New("user not found")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Registration errors
var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
)

// Authorization errors
var (
	ErrForbidden = errors.New("forbidden")
	ErrNotOwner  = errors.New("not the resource owner")
)

// Course errors
var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrCourseCodeTaken = errors.New("course code already exists")
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")
	ErrNotEnrolled     = errors.New("not enrolled in this course")
)

// Assignment errors
var (
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrAssignmentTitleTaken = errors.New("assignment title already exists")
	ErrAlreadySubmitted     = errors.New("assignment already submitted")
	ErrNotSubmitted         = errors.New("student has not submitted the assignment")
)

// Mark errors
var (
	ErrMarkNotFound    = errors.New("mark not found")
	ErrStudentNotFound = errors.New("student not found or not a student role")
)
