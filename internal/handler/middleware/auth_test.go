//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bus-seat-booking/internal/domain/user"
	"bus-seat-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubValidator struct {
	userID uuid.UUID
	role   user.Role
	err    error
}

func (v stubValidator) ValidateToken(string) (uuid.UUID, user.Role, error) {
	return v.userID, v.role, v.err
}

func newAuthRouter(v stubValidator, minRole user.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	m := middleware.NewAuthMiddleware(v)
	r.GET("/guarded", m.RequireAuth(), m.RequireRoleAtLeast(minRole), func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": actor.ID.String(), "role": actor.Role.String()})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	testCases := []struct {
		name       string
		validator  stubValidator
		minRole    user.Role
		header     string
		expectCode int
	}{
		{
			name:       "valid viewer token",
			validator:  stubValidator{userID: userID, role: user.RoleViewer},
			minRole:    user.RoleViewer,
			header:     "Bearer good",
			expectCode: http.StatusOK,
		},
		{
			name:       "missing header",
			validator:  stubValidator{userID: userID, role: user.RoleViewer},
			minRole:    user.RoleViewer,
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "non bearer scheme",
			validator:  stubValidator{userID: userID, role: user.RoleViewer},
			minRole:    user.RoleViewer,
			header:     "Basic Zm9vOmJhcg==",
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			validator:  stubValidator{err: errors.New("token is expired")},
			minRole:    user.RoleViewer,
			header:     "Bearer stale",
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "viewer on admin route",
			validator:  stubValidator{userID: userID, role: user.RoleViewer},
			minRole:    user.RoleAdmin,
			header:     "Bearer good",
			expectCode: http.StatusForbidden,
		},
		{
			name:       "admin on operator route",
			validator:  stubValidator{userID: userID, role: user.RoleAdmin},
			minRole:    user.RoleOperator,
			header:     "Bearer good",
			expectCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newAuthRouter(tc.validator, tc.minRole)
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.expectCode, w.Code, w.Body.String())
		})
	}
}
