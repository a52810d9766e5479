package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRoleTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestRequireRole_MissingRoleRejected(t *testing.T) {
	c, w := newRoleTestContext(t)

	RequireRole("admin")(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// A token can carry any JSON value in the role claim; a non-string
// role must be rejected, not panic the handler chain.
func TestRequireRole_NonStringRoleRejected(t *testing.T) {
	c, w := newRoleTestContext(t)
	c.Set("customer_role", 42)

	RequireRole("admin")(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_WrongRoleRejected(t *testing.T) {
	c, w := newRoleTestContext(t)
	c.Set("customer_role", "customer")

	RequireRole("admin")(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_MatchingRolePasses(t *testing.T) {
	c, _ := newRoleTestContext(t)
	c.Set("customer_role", "admin")

	RequireRole("admin")(c)

	assert.False(t, c.IsAborted())
}
