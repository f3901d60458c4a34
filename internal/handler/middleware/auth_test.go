//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"appointment-scheduler/internal/domain/user"
	"appointment-scheduler/internal/handler/middleware"
	"appointment-scheduler/internal/pkg/jwt"
	"appointment-scheduler/tests/common/httptest"
	usecasemock "appointment-scheduler/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *usecasemock.MockTokenValidator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	validator := usecasemock.NewMockTokenValidator(gomock.NewController(t))
	auth := middleware.NewAuthMiddleware(validator)

	router := gin.New()
	echoActor := func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": actor.Role})
	}
	router.GET("/me", auth.RequireAuth(), echoActor)
	router.GET("/admin", auth.RequireAuth(), auth.RequireAdmin(), echoActor)
	router.GET("/misordered", auth.RequireAdmin(), echoActor)
	return router, validator
}

func TestRequireAuth(t *testing.T) {
	id := uuid.New()

	t.Run("valid bearer token puts the actor in the context", func(t *testing.T) {
		router, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("good-token").Return(user.Actor{ID: id, Role: user.RoleUser}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "good-token")

		var body struct {
			ID   uuid.UUID `json:"id"`
			Role string    `json:"role"`
		}
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, id, body.ID)
		assert.Equal(t, "user", body.Role)
	})

	t.Run("missing token is 401", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("non-bearer scheme is 401", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		req := httptest.NewJSONRequest(t, http.MethodGet, "/me", nil, "")
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.Serve(router, req)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("rejected token is 401", func(t *testing.T) {
		router, validator := newAuthRouter(t)
		validator.EXPECT().ValidateToken("expired").Return(user.Actor{}, jwt.ErrExpiredToken)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "expired")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireAdmin(t *testing.T) {
	testCases := []struct {
		name       string
		role       user.Role
		expectCode int
	}{
		{name: "admin passes", role: user.RoleAdmin, expectCode: http.StatusOK},
		{name: "user is forbidden", role: user.RoleUser, expectCode: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, validator := newAuthRouter(t)
			validator.EXPECT().ValidateToken("token").Return(user.Actor{ID: uuid.New(), Role: tc.role}, nil)

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, "token")
			assert.Equal(t, tc.expectCode, rec.Code)
		})
	}

	t.Run("without RequireAuth in front it fails closed", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/misordered", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
