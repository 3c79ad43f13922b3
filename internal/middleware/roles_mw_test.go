package middleware

import (
	"net/http"
	"testing"

	"news_api/internal/model"
	"news_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRoleRouter(jwtUtil *utils.JWTUtil) *gin.Engine {
	r := gin.New()
	r.GET("/admin", JWTAuthMiddleware(jwtUtil), AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/any", JWTAuthMiddleware(jwtUtil), UserMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	// Role gate without auth middleware in front, to exercise the
	// missing-identity branch directly
	r.GET("/bare", AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRoleMiddleware_AdminGate(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 1)
	r := newRoleRouter(jwtUtil)

	userToken, _ := jwtUtil.GenerateToken(1, "u@x.com", model.RoleUser)
	adminToken, _ := jwtUtil.GenerateToken(2, "a@x.com", model.RoleAdmin)

	// USER hitting an ADMIN-only gate is always 403
	w := doRequest(r, "/admin", "Bearer "+userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, model.ErrCodeForbidden, resp.Error)
	assert.Equal(t, []string{model.RoleAdmin}, resp.RequiredRoles)
	assert.Equal(t, model.RoleUser, resp.UserRole)
	assert.Contains(t, resp.Message, "Required roles: ADMIN")
	assert.Contains(t, resp.Message, "Your role: USER")

	// ADMIN hitting the same gate always succeeds
	w = doRequest(r, "/admin", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleMiddleware_UserOrAdminGate(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 1)
	r := newRoleRouter(jwtUtil)

	userToken, _ := jwtUtil.GenerateToken(1, "u@x.com", model.RoleUser)
	adminToken, _ := jwtUtil.GenerateToken(2, "a@x.com", model.RoleAdmin)

	w := doRequest(r, "/any", "Bearer "+userToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, "/any", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleMiddleware_NoIdentity(t *testing.T) {
	r := newRoleRouter(utils.NewJWTUtil("secret", 1))

	// Absent identity yields 401 regardless of gate
	w := doRequest(r, "/bare", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, model.ErrCodeUnauthorized, resp.Error)
}
