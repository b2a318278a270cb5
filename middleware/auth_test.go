package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
)

func ownerGuardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/owner-only", AuthRequired(), OwnerRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": GetRole(c)})
	})
	return r
}

func tokenForRole(t *testing.T, role models.UserRole) string {
	t.Helper()
	token, err := GenerateToken(&models.User{ID: 1, Email: "user@test.com", Role: role})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func TestOwnerRequired(t *testing.T) {
	r := ownerGuardedRouter()

	tests := []struct {
		name string
		role models.UserRole
		want int
	}{
		{"owner allowed", models.RoleOwner, http.StatusOK},
		{"staff forbidden", models.RoleStaff, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/owner-only", nil)
			req.Header.Set("Authorization", "Bearer "+tokenForRole(t, tt.role))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestGetRoleWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := GetRole(c); got != "" {
		t.Errorf("GetRole = %q, want empty", got)
	}
}
