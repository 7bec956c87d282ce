package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"school-cms-api/internal/models"
	"school-cms-api/internal/token"
)

const testAPIKey = "secret-key"

type pipelineEnv struct {
	router  *gin.Engine
	tokens  *token.Manager
	reached *bool
}

// setupPipeline wires the full gate order the way the server does: API key,
// then token verification with the public allow-list, then (on /admin) the
// role check. The handler flips reached so tests can assert that failures
// happen before any handler logic runs.
func setupPipeline(t *testing.T, bypass bool) pipelineEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := token.NewManager("test-secret", 30*time.Minute)
	require.NoError(t, err)

	reached := false
	handler := func(c *gin.Context) {
		reached = true
		claims, _ := GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"identity": claims})
	}

	r := gin.New()
	api := r.Group("", APIKeyRequired(testAPIKey, bypass))
	auth := api.Group("", RequireAuth(tokens, bypass, PublicRoutes()))
	auth.GET("/post/page", handler)
	auth.GET("/post/public/:id", handler)
	auth.GET("/post/e/:id", handler)
	auth.GET("/admin", RequireAdmin(), handler)

	return pipelineEnv{router: r, tokens: tokens, reached: &reached}
}

func (env pipelineEnv) request(t *testing.T, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env pipelineEnv) issueToken(t *testing.T, isAdmin bool) string {
	t.Helper()
	signed, err := env.tokens.Issue(&models.User{
		ID:       1,
		Username: "someone",
		Email:    "someone@mail.com",
		IsAdmin:  isAdmin,
	})
	require.NoError(t, err)
	return signed
}

func TestPipeline_MissingAPIKey(t *testing.T) {
	env := setupPipeline(t, false)

	w := env.request(t, "/post/e/1", nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "API key invalid or missing")
	require.False(t, *env.reached, "handler must not run when the API key is missing")
}

func TestPipeline_WrongAPIKey(t *testing.T) {
	env := setupPipeline(t, false)

	w := env.request(t, "/post/e/1", map[string]string{"x-api-key": "nope"})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, *env.reached)
}

func TestPipeline_TokenRequired(t *testing.T) {
	env := setupPipeline(t, false)

	w := env.request(t, "/post/e/1", map[string]string{"x-api-key": testAPIKey})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "token required")
	require.False(t, *env.reached)
}

func TestPipeline_TokenInvalid(t *testing.T) {
	env := setupPipeline(t, false)

	w := env.request(t, "/post/e/1", map[string]string{
		"x-api-key":     testAPIKey,
		"Authorization": "Bearer garbage",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "token invalid")
	require.False(t, *env.reached)
}

func TestPipeline_ExpiredToken(t *testing.T) {
	env := setupPipeline(t, false)

	expired, err := token.NewManager("test-secret", -time.Minute)
	require.NoError(t, err)
	signed, err := expired.Issue(&models.User{ID: 1})
	require.NoError(t, err)

	w := env.request(t, "/post/e/1", map[string]string{
		"x-api-key":     testAPIKey,
		"Authorization": "Bearer " + signed,
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "token invalid")
}

func TestPipeline_ValidToken(t *testing.T) {
	env := setupPipeline(t, false)

	w := env.request(t, "/post/e/1", map[string]string{
		"x-api-key":     testAPIKey,
		"Authorization": "Bearer " + env.issueToken(t, false),
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, *env.reached)
	require.Contains(t, w.Body.String(), "someone@mail.com")
}

func TestPipeline_PublicRoutesSkipToken(t *testing.T) {
	env := setupPipeline(t, false)

	w := env.request(t, "/post/page", map[string]string{"x-api-key": testAPIKey})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, "/post/public/42", map[string]string{"x-api-key": testAPIKey})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestPipeline_BypassMode(t *testing.T) {
	env := setupPipeline(t, true)

	w := env.request(t, "/post/e/1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, *env.reached)
}

func TestPipeline_AdminOnly(t *testing.T) {
	env := setupPipeline(t, false)

	w := env.request(t, "/admin", map[string]string{
		"x-api-key":     testAPIKey,
		"Authorization": "Bearer " + env.issueToken(t, false),
	})

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "admins only")
}

func TestPipeline_AdminAllowed(t *testing.T) {
	env := setupPipeline(t, false)

	w := env.request(t, "/admin", map[string]string{
		"x-api-key":     testAPIKey,
		"Authorization": "Bearer " + env.issueToken(t, true),
	})

	require.Equal(t, http.StatusOK, w.Code)
}

// Bypass mode sets no identity, so admin routes still refuse.
func TestPipeline_BypassDoesNotGrantAdmin(t *testing.T) {
	env := setupPipeline(t, true)

	w := env.request(t, "/admin", nil)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAllowList_Match(t *testing.T) {
	allow := PublicRoutes()

	require.True(t, allow.Match("/post/page"))
	require.True(t, allow.Match("/post/public/13"))
	require.False(t, allow.Match("/post/page/extra"))
	require.False(t, allow.Match("/post/publicity"))
	require.False(t, allow.Match("/post/e/13"))
}
