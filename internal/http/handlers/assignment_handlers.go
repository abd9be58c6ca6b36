package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/6ogunt48/class-manager/domain"
	"github.com/6ogunt48/class-manager/internal/http/middleware"
)

// dueDateLayout accepts due dates in MM-DD-YYYY form.
const dueDateLayout = "01-02-2006"

// AssignmentHandlers handles assignment HTTP requests
type AssignmentHandlers struct {
	assignmentSvc domain.AssignmentService
}

// NewAssignmentHandlers creates new assignment handlers
func NewAssignmentHandlers(assignmentSvc domain.AssignmentService) *AssignmentHandlers {
	return &AssignmentHandlers{assignmentSvc: assignmentSvc}
}

// CreateAssignmentRequest represents assignment creation request
type CreateAssignmentRequest struct {
	CourseID    uint   `json:"course_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date" binding:"required"`
	FilePath    string `json:"file_path"`
}

// SubmitAssignmentRequest represents a student submission request
type SubmitAssignmentRequest struct {
	AssignmentID uint   `json:"assignment_id" binding:"required"`
	FilePath     string `json:"file_path"`
}

func assignmentJSON(a *domain.Assignment) gin.H {
	return gin.H{
		"id":          a.ID,
		"course_id":   a.CourseID,
		"title":       a.Title,
		"description": a.Description,
		"due_date":    a.DueDate.Format(dueDateLayout),
		"file_path":   a.FilePath,
	}
}

func assignmentListJSON(assignments []domain.Assignment) []gin.H {
	out := make([]gin.H, 0, len(assignments))
	for i := range assignments {
		out = append(out, assignmentJSON(&assignments[i]))
	}
	return out
}

// CreateAssignment handles assignment creation by the authenticated teacher
func (h *AssignmentHandlers) CreateAssignment(c *gin.Context) {
	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dueDate, err := time.Parse(dueDateLayout, req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "due_date must be in MM-DD-YYYY format"})
		return
	}

	assignment, err := h.assignmentSvc.CreateAssignment(c.Request.Context(), req.CourseID, req.Title, req.Description, dueDate, req.FilePath)
	if err != nil {
		switch err {
		case domain.ErrCourseNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		case domain.ErrAssignmentTitleTaken:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Assignment title already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create assignment"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Assignment created successfully",
		"assignment": assignmentJSON(assignment),
	})
}

// TeacherAssignments lists the assignments of the teacher's courses
func (h *AssignmentHandlers) TeacherAssignments(c *gin.Context) {
	teacher, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	assignments, err := h.assignmentSvc.TeacherAssignments(c.Request.Context(), teacher.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assignments"})
		return
	}
	if len(assignments) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No assignments found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignments": assignmentListJSON(assignments)})
}

// StudentCourseAssignments lists a course's assignments for an enrolled
// student
func (h *AssignmentHandlers) StudentCourseAssignments(c *gin.Context) {
	student, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	courseID, err := strconv.ParseUint(c.Param("course_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	assignments, err := h.assignmentSvc.StudentCourseAssignments(c.Request.Context(), student.ID, uint(courseID))
	if err != nil {
		if err == domain.ErrNotEnrolled {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not enrolled in this course"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assignments"})
		return
	}
	if len(assignments) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No assignments found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignments": assignmentListJSON(assignments)})
}

// SubmitAssignment records a student's submission
func (h *AssignmentHandlers) SubmitAssignment(c *gin.Context) {
	student, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req SubmitAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission, err := h.assignmentSvc.SubmitAssignment(c.Request.Context(), student.ID, req.AssignmentID, req.FilePath)
	if err != nil {
		switch err {
		case domain.ErrAssignmentNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		case domain.ErrNotEnrolled:
			c.JSON(http.StatusForbidden, gin.H{"error": "Not enrolled in this course"})
		case domain.ErrAlreadySubmitted:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Assignment already submitted"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit assignment"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Assignment submitted successfully",
		"submission": gin.H{
			"id":            submission.ID,
			"assignment_id": submission.AssignmentID,
			"student_id":    submission.StudentID,
			"file_path":     submission.FilePath,
		},
	})
}
