package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"secondbrain/internal/database"
	"secondbrain/internal/middleware"
	"secondbrain/internal/modules/auth"
	"secondbrain/internal/modules/content"
	"secondbrain/internal/modules/share"
	jwtsvc "secondbrain/internal/pkg/jwt"
	"secondbrain/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type E2ETestSuite struct {
	router *gin.Engine
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	// Shared-cache in-memory SQLite so every pooled connection sees the
	// same schema.
	db, err := database.Connect(fmt.Sprintf("file:e2e_%d?mode=memory&cache=shared", time.Now().UnixNano()))
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, repository.AutoMigrate(db), "Failed to migrate schema")

	userRepo := repository.NewUserRepository(db)
	contentRepo := repository.NewContentRepository(db)
	shareRepo := repository.NewShareLinkRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	authService := auth.NewService(userRepo, jwtService)
	authHandler := auth.NewHandler(authService)

	contentService := content.NewService(contentRepo)
	contentHandler := content.NewHandler(contentService)

	shareService := share.NewService(shareRepo, contentRepo, 30*24*time.Hour)
	shareHandler := share.NewHandler(shareService, "http://localhost:3000/shared")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	root := r.Group("/")
	authHandler.RegisterPublicRoutes(root)

	protected := root.Group("/")
	protected.Use(middleware.JWTAuth(jwtService))
	{
		authHandler.RegisterProtectedRoutes(protected)
		contentHandler.RegisterRoutes(protected)
	}

	v1 := r.Group("/api/v1")
	shareHandler.RegisterPublicRoutes(v1)

	v1Protected := v1.Group("/")
	v1Protected.Use(middleware.JWTAuth(jwtService))
	{
		shareHandler.RegisterProtectedRoutes(v1Protected)
	}

	return &E2ETestSuite{router: r}
}

func (s *E2ETestSuite) request(t *testing.T, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, TestResponse) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var parsed TestResponse
	_ = json.Unmarshal(w.Body.Bytes(), &parsed)
	return w, parsed
}

func (s *E2ETestSuite) signupAndLogin(t *testing.T, username, password string) (int64, string) {
	w, _ := s.request(t, "POST", "/signup", gin.H{"username": username, "password": password}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := s.request(t, "POST", "/login", gin.H{"username": username, "password": password}, "")
	require.Equal(t, http.StatusOK, w.Code)

	token := resp.Data["token"].(string)
	user := resp.Data["user"].(map[string]interface{})
	return int64(user["id"].(float64)), token
}

func TestFullFlow_SignupToPublicShare(t *testing.T) {
	s := setupTestSuite(t)

	// signup
	w, resp := s.request(t, "POST", "/signup", gin.H{"username": "alice", "password": "pw123456"}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	aliceID := int64(resp.Data["user"].(map[string]interface{})["id"].(float64))

	// login
	w, resp = s.request(t, "POST", "/login", gin.H{"username": "alice", "password": "pw123456"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token := resp.Data["token"].(string)
	require.NotEmpty(t, token)

	// create content
	w, resp = s.request(t, "POST", "/contents", gin.H{
		"title":        "t",
		"link":         "http://x",
		"content_type": "article",
		"user_id":      aliceID,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	contentID := int64(resp.Data["content"].(map[string]interface{})["id"].(float64))

	// list by owner id
	w, resp = s.request(t, "GET", fmt.Sprintf("/contents/%d", aliceID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	contents := resp.Data["contents"].([]interface{})
	require.Len(t, contents, 1)
	assert.Equal(t, float64(contentID), contents[0].(map[string]interface{})["id"])

	// share
	w, resp = s.request(t, "POST", "/api/v1/brain/share", gin.H{"contentId": contentID}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	shareURL := resp.Data["shareUrl"].(string)
	require.NotEmpty(t, resp.Data["expiresAt"])

	parts := strings.Split(shareURL, "/")
	shareToken := parts[len(parts)-1]
	require.Len(t, shareToken, 32)

	// resolve without any auth
	w, resp = s.request(t, "GET", "/api/v1/brain/shared/"+shareToken, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	shared := resp.Data["content"].(map[string]interface{})
	assert.Equal(t, "t", shared["title"])
	assert.Equal(t, "http://x", shared["link"])
	assert.Equal(t, "article", shared["content_type"])
}

func TestSignup_DuplicateUsername(t *testing.T) {
	s := setupTestSuite(t)

	w, _ := s.request(t, "POST", "/signup", gin.H{"username": "alice", "password": "pw123456"}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// Same username, different password: still a conflict.
	w, resp := s.request(t, "POST", "/signup", gin.H{"username": "alice", "password": "other-pass"}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "USERNAME_EXISTS", resp.Error.Code)
}

func TestSignup_MissingFields(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.request(t, "POST", "/signup", gin.H{"username": "alice"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestLogin_BadCredentials(t *testing.T) {
	s := setupTestSuite(t)
	s.signupAndLogin(t, "alice", "pw123456")

	w, resp := s.request(t, "POST", "/login", gin.H{"username": "alice", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)

	w, resp = s.request(t, "POST", "/login", gin.H{"username": "nobody", "password": "pw123456"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
}

func TestListUsers_RequiresToken(t *testing.T) {
	s := setupTestSuite(t)
	_, token := s.signupAndLogin(t, "alice", "pw123456")

	w, _ := s.request(t, "GET", "/users", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.request(t, "GET", "/users", nil, "garbage-token")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, resp := s.request(t, "GET", "/users", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	users := resp.Data["users"].([]interface{})
	require.Len(t, users, 1)
	entry := users[0].(map[string]interface{})
	assert.Equal(t, "alice", entry["username"])
	assert.NotEmpty(t, entry["created_at"])
}

func TestCreateContent_RejectsUnknownType(t *testing.T) {
	s := setupTestSuite(t)
	aliceID, token := s.signupAndLogin(t, "alice", "pw123456")

	w, resp := s.request(t, "POST", "/contents", gin.H{
		"title":        "t",
		"link":         "http://x",
		"content_type": "pdf",
		"user_id":      aliceID,
	}, token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_CONTENT_TYPE", resp.Error.Code)
	// The message enumerates the accepted values.
	for _, want := range []string{"image", "video", "article", "audio", "document", "twitter"} {
		assert.Contains(t, resp.Error.Message, want)
	}
}

func TestDeleteContent_CascadesToShareLinks(t *testing.T) {
	s := setupTestSuite(t)
	_, token := s.signupAndLogin(t, "alice", "pw123456")

	w, resp := s.request(t, "POST", "/contents", gin.H{
		"title": "doomed", "link": "http://x", "content_type": "article",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	contentID := int64(resp.Data["content"].(map[string]interface{})["id"].(float64))

	w, resp = s.request(t, "POST", "/api/v1/brain/share", gin.H{"contentId": contentID}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	shareURL := resp.Data["shareUrl"].(string)
	parts := strings.Split(shareURL, "/")
	shareToken := parts[len(parts)-1]

	w, resp = s.request(t, "DELETE", fmt.Sprintf("/contents/%d", contentID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "doomed", resp.Data["title"])

	w, resp = s.request(t, "GET", "/api/v1/brain/shared/"+shareToken, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SHARE_NOT_FOUND", resp.Error.Code)
}

func TestDeleteContent_NotFound(t *testing.T) {
	s := setupTestSuite(t)
	_, token := s.signupAndLogin(t, "alice", "pw123456")

	w, resp := s.request(t, "DELETE", "/contents/424242", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CONTENT_NOT_FOUND", resp.Error.Code)
}

// Documents a known gap inherited from the original API: deletion only
// checks that the caller holds a valid token, not that the caller owns
// the content. If ownership enforcement is ever added, this test should
// start failing and be rewritten to expect 403/404.
func TestDeleteContent_OtherUsersContent_KnownGap(t *testing.T) {
	s := setupTestSuite(t)
	_, aliceToken := s.signupAndLogin(t, "alice", "pw123456")
	_, bobToken := s.signupAndLogin(t, "bob", "pw123456")

	w, resp := s.request(t, "POST", "/contents", gin.H{
		"title": "alice's", "link": "http://x", "content_type": "article",
	}, aliceToken)
	require.Equal(t, http.StatusCreated, w.Code)
	contentID := int64(resp.Data["content"].(map[string]interface{})["id"].(float64))

	w, _ = s.request(t, "DELETE", fmt.Sprintf("/contents/%d", contentID), nil, bobToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestShare_UnknownContent(t *testing.T) {
	s := setupTestSuite(t)
	_, token := s.signupAndLogin(t, "alice", "pw123456")

	w, resp := s.request(t, "POST", "/api/v1/brain/share", gin.H{"contentId": 999}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CONTENT_NOT_FOUND", resp.Error.Code)

	w, resp = s.request(t, "POST", "/api/v1/brain/share", gin.H{}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestResolve_UnknownToken(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.request(t, "GET", "/api/v1/brain/shared/deadbeefdeadbeefdeadbeefdeadbeef", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SHARE_NOT_FOUND", resp.Error.Code)
}
