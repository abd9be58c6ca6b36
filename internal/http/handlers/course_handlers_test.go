package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/6ogunt48/class-manager/domain"
	"github.com/6ogunt48/class-manager/internal/mocks"
)

// asUser injects an authenticated user the way the auth middleware would.
func asUser(user *domain.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("current_user", user)
		c.Set("user_id", user.ID)
		c.Set("user_role", string(user.Role))
		c.Set("username", user.Username)
		c.Next()
	}
}

func testTeacher() *domain.User {
	return &domain.User{ID: 1, Username: "profSmith99", Role: domain.RoleTeacher, IsActive: true}
}

func testStudent() *domain.User {
	return &domain.User{ID: 2, Username: "kolaBouncer23", Role: domain.RoleStudent, IsActive: true}
}

func courseRouter(courseSvc domain.CourseService, user *domain.User) *gin.Engine {
	h := NewCourseHandlers(courseSvc)
	r := gin.New()
	r.POST("/courses/create-course/", asUser(user), h.CreateCourse)
	r.POST("/courses/enroll-course/", asUser(user), h.EnrollCourse)
	return r
}

func TestCourseHandlers_CreateCourse(t *testing.T) {
	t.Run("successful creation uses the authenticated teacher", func(t *testing.T) {
		courseSvc := mocks.NewMockCourseService()
		var gotTeacherID uint
		courseSvc.CreateCourseFunc = func(ctx context.Context, teacherID uint, code, title, description string) (*domain.Course, error) {
			gotTeacherID = teacherID
			return &domain.Course{ID: 10, CourseCode: code, Title: title, TeacherID: teacherID}, nil
		}

		w := performJSON(courseRouter(courseSvc, testTeacher()), http.MethodPost, "/courses/create-course/", gin.H{
			"course_code": "CS101",
			"title":       "Intro to Computer Science",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(1), gotTeacherID)
		assert.Contains(t, w.Body.String(), "CS101")
	})

	t.Run("duplicate course code", func(t *testing.T) {
		courseSvc := mocks.NewMockCourseService()
		courseSvc.CreateCourseFunc = func(ctx context.Context, teacherID uint, code, title, description string) (*domain.Course, error) {
			return nil, domain.ErrCourseCodeTaken
		}
		w := performJSON(courseRouter(courseSvc, testTeacher()), http.MethodPost, "/courses/create-course/", gin.H{
			"course_code": "CS101",
			"title":       "Intro to Computer Science",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Course code already exists")
	})

	t.Run("missing title fails binding", func(t *testing.T) {
		w := performJSON(courseRouter(mocks.NewMockCourseService(), testTeacher()), http.MethodPost, "/courses/create-course/", gin.H{
			"course_code": "CS101",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCourseHandlers_EnrollCourse(t *testing.T) {
	tests := []struct {
		name           string
		enroll         func(ctx context.Context, studentID, courseID uint) (*domain.Course, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful enrollment",
			enroll: func(ctx context.Context, studentID, courseID uint) (*domain.Course, error) {
				return &domain.Course{ID: courseID, CourseCode: "CS101", TeacherID: 1}, nil
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   "Enrolled successfully",
		},
		{
			name: "unknown course",
			enroll: func(ctx context.Context, studentID, courseID uint) (*domain.Course, error) {
				return nil, domain.ErrCourseNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Course not found",
		},
		{
			name: "already enrolled",
			enroll: func(ctx context.Context, studentID, courseID uint) (*domain.Course, error) {
				return nil, domain.ErrAlreadyEnrolled
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Already enrolled in this course",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			courseSvc := mocks.NewMockCourseService()
			courseSvc.EnrollCourseFunc = tt.enroll

			w := performJSON(courseRouter(courseSvc, testStudent()), http.MethodPost, "/courses/enroll-course/", gin.H{
				"course_id": 10,
			})
			require.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
