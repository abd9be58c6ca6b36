package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/6ogunt48/class-manager/domain"
	"github.com/6ogunt48/class-manager/internal/http/middleware"
)

// MarkHandlers handles grading HTTP requests
type MarkHandlers struct {
	markSvc domain.MarkService
}

// NewMarkHandlers creates new mark handlers
func NewMarkHandlers(markSvc domain.MarkService) *MarkHandlers {
	return &MarkHandlers{markSvc: markSvc}
}

// CreateMarkRequest represents a grading request. Score is a pointer so a
// zero score still binds.
type CreateMarkRequest struct {
	StudentID    uint   `json:"student_id" binding:"required"`
	AssignmentID uint   `json:"assignment_id" binding:"required"`
	Score        *int   `json:"score" binding:"required"`
	Comments     string `json:"comments"`
}

// EditMarkRequest represents a partial mark edit
type EditMarkRequest struct {
	Score    *int    `json:"score"`
	Comments *string `json:"comments"`
}

func markJSON(m *domain.Mark) gin.H {
	return gin.H{
		"id":            m.ID,
		"score":         m.Score,
		"comments":      m.Comments,
		"student_id":    m.StudentID,
		"assignment_id": m.AssignmentID,
	}
}

func markListJSON(marks []domain.Mark) []gin.H {
	out := make([]gin.H, 0, len(marks))
	for i := range marks {
		out = append(out, markJSON(&marks[i]))
	}
	return out
}

// CreateMark grades a student's submission
func (h *MarkHandlers) CreateMark(c *gin.Context) {
	var req CreateMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mark, err := h.markSvc.CreateMark(c.Request.Context(), req.StudentID, req.AssignmentID, *req.Score, req.Comments)
	if err != nil {
		switch err {
		case domain.ErrAssignmentNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		case domain.ErrStudentNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		case domain.ErrNotEnrolled:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Student is not enrolled in this course"})
		case domain.ErrNotSubmitted:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Student has not submitted this assignment"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create mark"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Mark created successfully",
		"mark":    markJSON(mark),
	})
}

// EditMark applies a partial update to an existing mark
func (h *MarkHandlers) EditMark(c *gin.Context) {
	markID, err := strconv.ParseUint(c.Param("mark_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mark ID"})
		return
	}

	var req EditMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mark, err := h.markSvc.UpdateMark(c.Request.Context(), uint(markID), domain.MarkUpdate{
		Score:    req.Score,
		Comments: req.Comments,
	})
	if err != nil {
		if err == domain.ErrMarkNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mark not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update mark"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Mark updated successfully",
		"mark":    markJSON(mark),
	})
}

// StudentMarks lists the authenticated student's own marks
func (h *MarkHandlers) StudentMarks(c *gin.Context) {
	student, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	marks, err := h.markSvc.StudentMarks(c.Request.Context(), student.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list marks"})
		return
	}
	if len(marks) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No marks found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"marks": markListJSON(marks)})
}

// TeacherStudentMarks lists the marks of the student named in the path
func (h *MarkHandlers) TeacherStudentMarks(c *gin.Context) {
	studentID, err := strconv.ParseUint(c.Param("student_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student ID"})
		return
	}

	marks, err := h.markSvc.StudentMarks(c.Request.Context(), uint(studentID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list marks"})
		return
	}
	if len(marks) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No marks found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"marks": markListJSON(marks)})
}
