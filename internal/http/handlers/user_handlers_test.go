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

func userRouter(userRepo domain.UserRepository, user *domain.User) *gin.Engine {
	h := NewUserHandlers(userRepo)
	r := gin.New()
	r.GET("/users/", asUser(user), h.Profile)
	r.PATCH("/users/:user_id/profile", asUser(user), h.UpdateProfile)
	return r
}

func TestUserHandlers_Profile(t *testing.T) {
	t.Run("own profile", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return &domain.User{ID: id, Username: "kolaBouncer23", Email: "john.doe@example.com", Role: domain.RoleStudent}, nil
		}

		w := performJSON(userRouter(userRepo, testStudent()), http.MethodGet, "/users/", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "kolaBouncer23")
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("profile row vanished", func(t *testing.T) {
		w := performJSON(userRouter(mocks.NewMockUserRepository(), testStudent()), http.MethodGet, "/users/", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "User not found")
	})
}

func TestUserHandlers_UpdateProfile(t *testing.T) {
	t.Run("owner updates fields", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return &domain.User{ID: id, FirstName: "John", LastName: "Doe", Username: "kolaBouncer23", Email: "john.doe@example.com", Role: domain.RoleStudent}, nil
		}
		var saved *domain.User
		userRepo.UpdateFunc = func(ctx context.Context, user *domain.User) error {
			saved = user
			return nil
		}

		w := performJSON(userRouter(userRepo, testStudent()), http.MethodPatch, "/users/2/profile", gin.H{
			"first_name": "Johnny",
		})
		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, saved)
		assert.Equal(t, "Johnny", saved.FirstName)
		assert.Equal(t, "Doe", saved.LastName)
	})

	t.Run("editing another user's profile is forbidden", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		updateCalled := false
		userRepo.UpdateFunc = func(ctx context.Context, user *domain.User) error {
			updateCalled = true
			return nil
		}

		w := performJSON(userRouter(userRepo, testStudent()), http.MethodPatch, "/users/1/profile", gin.H{
			"first_name": "Johnny",
		})
		require.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Access denied")
		assert.False(t, updateCalled)
	})

	t.Run("non-numeric user id", func(t *testing.T) {
		w := performJSON(userRouter(mocks.NewMockUserRepository(), testStudent()), http.MethodPatch, "/users/abc/profile", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
