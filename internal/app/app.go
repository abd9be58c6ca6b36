package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/6ogunt48/class-manager/internal/config"
	httpx "github.com/6ogunt48/class-manager/internal/http"
	"github.com/6ogunt48/class-manager/internal/http/handlers"
	"github.com/6ogunt48/class-manager/internal/http/middleware"
	"github.com/6ogunt48/class-manager/pkg/logger"
)

func Run(cfg *config.Config) error {
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Environment == "development",
	})

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	if err := container.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	// Handlers
	authH := handlers.NewAuthHandlers(container.AuthSvc)
	userH := handlers.NewUserHandlers(container.UserRepo)
	courseH := handlers.NewCourseHandlers(container.CourseSvc)
	assignmentH := handlers.NewAssignmentHandlers(container.AssignmentSvc)
	markH := handlers.NewMarkHandlers(container.MarkSvc)

	// Middleware
	authMW := middleware.NewAuthMW(container.AuthSvc)
	casbinMW := middleware.NewRoleCasbinMW(container.Casbin.E)

	r := httpx.BuildRouter(cfg.Environment, authH, userH, courseH, assignmentH, markH, authMW, casbinMW)

	if err := seedPolicies(container); err != nil {
		return err
	}

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("environment", cfg.Environment).Msg("listening")
	return http.ListenAndServe(addr, r)
}

// seedPolicies installs the default role policies on an empty policy table.
func seedPolicies(c *Container) error {
	e := c.Casbin.E

	policies, err := e.GetPolicy()
	if err != nil {
		return err
	}
	if len(policies) > 0 {
		return nil
	}

	defaults := [][]string{
		{"role_teacher", "/users/", "GET"},
		{"role_teacher", "/users/:user_id/profile", "PATCH"},
		{"role_teacher", "/courses/create-course/", "POST"},
		{"role_teacher", "/assignment/create-assignment/", "POST"},
		{"role_teacher", "/assignment/teacher/assignments", "GET"},
		{"role_teacher", "/marks/create-mark/", "POST"},
		{"role_teacher", "/marks/edit-mark/:mark_id/", "PATCH"},
		{"role_teacher", "/marks/teacher/marks/:student_id/", "GET"},
		{"role_student", "/users/", "GET"},
		{"role_student", "/users/:user_id/profile", "PATCH"},
		{"role_student", "/courses/enroll-course/", "POST"},
		{"role_student", "/assignment/student/assignments/:course_id", "GET"},
		{"role_student", "/assignment/student/submit-assignment/", "POST"},
		{"role_student", "/marks/view-student-marks/", "GET"},
	}
	for _, p := range defaults {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return err
		}
	}
	if err := e.SavePolicy(); err != nil {
		return err
	}

	log := logger.Get()
	log.Info().Int("policies", len(defaults)).Msg("casbin: seeded default policies")
	return nil
}
