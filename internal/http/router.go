package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/6ogunt48/class-manager/internal/http/handlers"
	"github.com/6ogunt48/class-manager/internal/http/middleware"
)

func BuildRouter(environment string, ah *handlers.AuthHandlers, uh *handlers.UserHandlers, ch *handlers.CourseHandlers, sh *handlers.AssignmentHandlers, mh *handlers.MarkHandlers, authmw *middleware.AuthMW, cb middleware.CasbinMiddleware) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/env/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong", "environment": environment})
	})

	auth := r.Group("/auth")
	auth.POST("/register-user/", ah.Register)
	auth.POST("/login/", ah.Login)
	auth.POST("/change-password/", ah.ChangePassword)

	users := r.Group("/users").Use(authmw.WithAuth(), cb.Enforce())
	users.GET("/", uh.Profile)
	users.PATCH("/:user_id/profile", uh.UpdateProfile)

	courses := r.Group("/courses").Use(authmw.WithAuth(), cb.Enforce())
	courses.POST("/create-course/", ch.CreateCourse)
	courses.POST("/enroll-course/", ch.EnrollCourse)

	assignment := r.Group("/assignment").Use(authmw.WithAuth(), cb.Enforce())
	assignment.POST("/create-assignment/", sh.CreateAssignment)
	assignment.GET("/teacher/assignments", sh.TeacherAssignments)
	assignment.GET("/student/assignments/:course_id", sh.StudentCourseAssignments)
	assignment.POST("/student/submit-assignment/", sh.SubmitAssignment)

	marks := r.Group("/marks").Use(authmw.WithAuth(), cb.Enforce())
	marks.POST("/create-mark/", mh.CreateMark)
	marks.PATCH("/edit-mark/:mark_id/", mh.EditMark)
	marks.GET("/view-student-marks/", mh.StudentMarks)
	marks.GET("/teacher/marks/:student_id/", mh.TeacherStudentMarks)

	return r
}
