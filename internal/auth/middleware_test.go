package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiddlewareRouter(t *testing.T) (*gin.Engine, *Service, func(id uint)) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, store, db := newTestService(t)
	mw := NewMiddleware(svc.tokens, store)

	router := gin.New()
	router.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": GetUserID(c), "username": GetUsername(c)})
	})
	router.GET("/optional", mw.OptionalAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"authenticated": IsAuthenticated(c), "userId": GetUserID(c)})
	})

	return router, svc, func(id uint) { deleteUser(t, db, id) }
}

func doGet(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMiddleware_RequireAuth(t *testing.T) {
	router, svc, removeUser := newMiddlewareRouter(t)

	user, pair, err := svc.Signup("alice", "alice@example.com", "password12345")
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		w := doGet(router, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Not authorized, no token")
	})

	t.Run("malformed header", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Token abcdef")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Not authorized, no token")
	})

	t.Run("invalid token", func(t *testing.T) {
		w := doGet(router, "/protected", "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Not authorized, token failed")
	})

	t.Run("valid token", func(t *testing.T) {
		w := doGet(router, "/protected", pair.Access)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"alice"`)
	})

	t.Run("valid token for a deleted account", func(t *testing.T) {
		removeUser(user.ID)
		w := doGet(router, "/protected", pair.Access)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Not authorized, token failed")
	})
}

func TestMiddleware_OptionalAuth(t *testing.T) {
	router, svc, _ := newMiddlewareRouter(t)

	_, pair, err := svc.Signup("alice", "alice@example.com", "password12345")
	require.NoError(t, err)

	t.Run("anonymous request passes through", func(t *testing.T) {
		w := doGet(router, "/optional", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"authenticated":false`)
	})

	t.Run("broken token is treated as anonymous", func(t *testing.T) {
		w := doGet(router, "/optional", "garbage")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"authenticated":false`)
	})

	t.Run("valid token attaches identity", func(t *testing.T) {
		w := doGet(router, "/optional", pair.Access)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"authenticated":true`)
	})
}
