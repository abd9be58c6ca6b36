package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/6ogunt48/class-manager/domain"
	"github.com/6ogunt48/class-manager/internal/http/middleware"
)

// CourseHandlers handles course HTTP requests
type CourseHandlers struct {
	courseSvc domain.CourseService
}

// NewCourseHandlers creates new course handlers
func NewCourseHandlers(courseSvc domain.CourseService) *CourseHandlers {
	return &CourseHandlers{courseSvc: courseSvc}
}

// CreateCourseRequest represents course creation request
type CreateCourseRequest struct {
	CourseCode  string `json:"course_code" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// EnrollCourseRequest represents enrollment request
type EnrollCourseRequest struct {
	CourseID uint `json:"course_id" binding:"required"`
}

func courseJSON(course *domain.Course) gin.H {
	return gin.H{
		"id":          course.ID,
		"course_code": course.CourseCode,
		"title":       course.Title,
		"description": course.Description,
		"teacher_id":  course.TeacherID,
	}
}

// CreateCourse handles course creation by the authenticated teacher
func (h *CourseHandlers) CreateCourse(c *gin.Context) {
	teacher, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.courseSvc.CreateCourse(c.Request.Context(), teacher.ID, req.CourseCode, req.Title, req.Description)
	if err != nil {
		if err == domain.ErrCourseCodeTaken {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Course code already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create course"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Course created successfully",
		"course":  courseJSON(course),
	})
}

// EnrollCourse handles course enrollment by the authenticated student
func (h *CourseHandlers) EnrollCourse(c *gin.Context) {
	student, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req EnrollCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.courseSvc.EnrollCourse(c.Request.Context(), student.ID, req.CourseID)
	if err != nil {
		switch err {
		case domain.ErrCourseNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		case domain.ErrAlreadyEnrolled:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already enrolled in this course"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enroll"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Enrolled successfully",
		"course":  courseJSON(course),
	})
}
