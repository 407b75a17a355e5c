package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetify/booking-api/internal/model"
	"github.com/vetify/booking-api/internal/repository/memory"
	authservice "github.com/vetify/booking-api/internal/service/auth"
	"github.com/vetify/booking-api/pkg/auth"
	"github.com/vetify/booking-api/pkg/security"
)

func setupRouter(t *testing.T) (*gin.Engine, *authservice.Service, *memory.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	jwtSvc := auth.NewJWTService("test-secret", "test-refresh-secret", 1, 24)
	authSvc := authservice.NewService(store.Users(), security.NewBcryptHasher(4), jwtSvc)
	m := NewAuthMiddleware(authSvc)

	r := gin.New()
	protected := r.Group("/", m.Authenticate())
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": CurrentUser(c).Username})
	})
	admin := protected.Group("/admin", m.RequireSuperuser())
	admin.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r, authSvc, store
}

func loginToken(t *testing.T, svc *authservice.Service, store *memory.Store, username string, superuser bool) string {
	t.Helper()
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Phone:    "5551234",
		Password: "sup3rsecret",
	})
	require.NoError(t, err)

	if superuser {
		user, err := store.Users().GetByUsername(ctx, username)
		require.NoError(t, err)
		user.IsSuperuser = true
		require.NoError(t, store.Users().Create(ctx, user))
	}

	tokens, err := svc.Login(ctx, &model.LoginRequest{Username: username, Password: "sup3rsecret"})
	require.NoError(t, err)
	return tokens.AccessToken
}

func TestAuthenticateRejectsMissingOrBadToken(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/me", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Basic abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateResolvesUser(t *testing.T) {
	r, svc, store := setupRouter(t)
	token := loginToken(t, svc, store, "alice", false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestRequireSuperuser(t *testing.T) {
	r, svc, store := setupRouter(t)
	userToken := loginToken(t, svc, store, "alice", false)
	adminToken := loginToken(t, svc, store, "root", true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "regular users cannot reach the admin surface")

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticateRejectsDeactivatedUser(t *testing.T) {
	r, svc, store := setupRouter(t)
	token := loginToken(t, svc, store, "alice", false)

	user, err := store.Users().GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	_, err = store.Users().ToggleActive(context.Background(), user.ID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "a live token dies with the account")
}
