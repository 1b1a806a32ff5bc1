package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"book_market/internal/domain"
	"book_market/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func guardedRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/admin")
	g.Use(JWTAuthMiddleware(secret), AdminOnlyMiddleware())
	g.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return r
}

func requestWithToken(t *testing.T, r *gin.Engine, user *domain.User, secret string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if user != nil {
		token, err := utils.GenerateJWT(user, secret)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminOnly_AllowsAdmin(t *testing.T) {
	t.Parallel()

	r := guardedRouter("secret")
	admin := &domain.User{ID: 1, Name: "Root", Email: "admin@example.com", UserType: domain.TypeAdmin}
	w := requestWithToken(t, r, admin, "secret")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAdminOnly_ForbidsOrdinaryUser(t *testing.T) {
	t.Parallel()

	r := guardedRouter("secret")
	user := &domain.User{ID: 2, Name: "Jane", Email: "jane@x.com", UserType: domain.TypeUser}
	w := requestWithToken(t, r, user, "secret")
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminOnly_RejectsMissingToken(t *testing.T) {
	t.Parallel()

	r := guardedRouter("secret")
	w := requestWithToken(t, r, nil, "secret")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
