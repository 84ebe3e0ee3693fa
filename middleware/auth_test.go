package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"pupinn-backend/models"
	"pupinn-backend/utils"
)

const testSecret = "test-secret"

func buildTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	authed := r.Group("", RequireAuth(testSecret))
	authed.GET("/me", func(c *gin.Context) {
		actor, _ := GetActor(c)
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID, "role": actor.Role, "name": actor.FullName})
	})

	staff := authed.Group("", RequireRole(models.RoleAdmin, models.RoleStaff))
	staff.GET("/staff-only", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func signToken(t *testing.T, userID uint, role string, ttl time.Duration) string {
	t.Helper()
	token, _, err := utils.NewAccessToken(testSecret, userID, role, "Test User", ttl)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	return token
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	r := buildTestRouter()

	if w := doRequest(r, "/me", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}
	if w := doRequest(r, "/me", "not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", w.Code)
	}

	expired := signToken(t, 1, models.RoleStaff, -time.Minute)
	if w := doRequest(r, "/me", expired); w.Code != http.StatusUnauthorized {
		t.Errorf("expired token: status = %d, want 401", w.Code)
	}

	wrongKey, _, err := utils.NewAccessToken("other-secret", 1, models.RoleStaff, "X", time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if w := doRequest(r, "/me", wrongKey); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong signing key: status = %d, want 401", w.Code)
	}

	valid := signToken(t, 42, models.RoleGuest, time.Hour)
	w := doRequest(r, "/me", valid)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
}

func TestRequireRole(t *testing.T) {
	r := buildTestRouter()

	guest := signToken(t, 7, models.RoleGuest, time.Hour)
	if w := doRequest(r, "/staff-only", guest); w.Code != http.StatusForbidden {
		t.Errorf("guest on staff route: status = %d, want 403", w.Code)
	}

	cleaner := signToken(t, 8, models.RoleCleaner, time.Hour)
	if w := doRequest(r, "/staff-only", cleaner); w.Code != http.StatusForbidden {
		t.Errorf("cleaner on staff route: status = %d, want 403", w.Code)
	}

	staff := signToken(t, 9, models.RoleStaff, time.Hour)
	if w := doRequest(r, "/staff-only", staff); w.Code != http.StatusOK {
		t.Errorf("staff on staff route: status = %d, want 200", w.Code)
	}

	admin := signToken(t, 1, models.RoleAdmin, time.Hour)
	if w := doRequest(r, "/staff-only", admin); w.Code != http.StatusOK {
		t.Errorf("admin on staff route: status = %d, want 200", w.Code)
	}
}
