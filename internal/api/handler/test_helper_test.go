package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/martijn/bloglist/internal/api/dto"
	"github.com/martijn/bloglist/internal/api/middleware"
	"github.com/martijn/bloglist/internal/core/domain"
	"github.com/martijn/bloglist/internal/core/repository"
	"github.com/martijn/bloglist/internal/core/service"
	"github.com/martijn/bloglist/internal/infrastructure/sqlite"
)

const testJWTSecret = "test-secret"

// testEnv holds all test dependencies
type testEnv struct {
	db          *sqlite.DB
	router      *gin.Engine
	userRepo    repository.UserRepository
	blogRepo    repository.BlogRepository
	authService *service.AuthService
	userService *service.UserService
}

// setupTestEnv creates a test environment with in-memory SQLite database and
// the same route/middleware wiring the real server uses
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// Use in-memory SQLite database
	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	// Create repositories
	userRepo := sqlite.NewUserRepository(db)
	blogRepo := sqlite.NewBlogRepository(db)

	// Create services
	authService := service.NewAuthService(userRepo, testJWTSecret, "HS256", time.Hour)
	blogService := service.NewBlogService(blogRepo, userRepo)
	userService := service.NewUserService(userRepo, authService)

	// Create handlers
	authHandler := NewAuthHandler(authService)
	blogHandler := NewBlogHandler(blogService)
	userHandler := NewUserHandler(userService)

	// Setup gin router in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()

	authMiddleware := middleware.AuthMiddleware(authService)

	router.POST("/api/login", authHandler.Login)
	router.GET("/api/blogs", blogHandler.ListBlogs)
	router.POST("/api/blogs", authMiddleware, blogHandler.CreateBlog)
	router.PUT("/api/blogs/:id", blogHandler.UpdateBlog)
	router.DELETE("/api/blogs/:id", authMiddleware, blogHandler.DeleteBlog)
	router.POST("/api/users", userHandler.CreateUser)
	router.GET("/api/users", userHandler.ListUsers)

	return &testEnv{
		db:          db,
		router:      router,
		userRepo:    userRepo,
		blogRepo:    blogRepo,
		authService: authService,
		userService: userService,
	}
}

// cleanup closes the test database
func (env *testEnv) cleanup() {
	if env.db != nil {
		env.db.Close()
	}
}

// seedRootUser stores the root user and returns it together with a valid token
func (env *testEnv) seedRootUser(t *testing.T) (*domain.User, string) {
	t.Helper()

	user, err := env.userService.Create(context.Background(), "root", "Root User", "sekret")
	if err != nil {
		t.Fatalf("failed to seed root user: %v", err)
	}

	w := env.makeRequest(t, http.MethodPost, "/api/login", map[string]any{
		"username": "root",
		"password": "sekret",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", w.Code, w.Body.String())
	}

	var resp dto.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse login response: %v", err)
	}

	return user, resp.Token
}

// seedBlogs stores the initial blog fixtures owned by the given user
func (env *testEnv) seedBlogs(t *testing.T, owner *domain.User) []*domain.Blog {
	t.Helper()

	fixtures := []*domain.Blog{
		domain.NewBlog("HTML is easy", "Edsger W. Dijkstra", "https://example.com/html-is-easy", 5, owner.ID),
		domain.NewBlog("Browser can execute only JavaScript", "Michael Chan", "https://example.com/browser-javascript", 7, owner.ID),
	}

	for _, blog := range fixtures {
		if err := env.blogRepo.Create(context.Background(), blog); err != nil {
			t.Fatalf("failed to seed blog %q: %v", blog.Title, err)
		}
	}

	return fixtures
}

// makeRequest performs a request with an optional JSON body and bearer token
func (env *testEnv) makeRequest(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// blogCount returns the number of stored blogs
func (env *testEnv) blogCount(t *testing.T) int {
	t.Helper()

	count, err := env.blogRepo.Count(context.Background())
	if err != nil {
		t.Fatalf("failed to count blogs: %v", err)
	}
	return count
}

// parseBlogListResponse parses the response body into a list of blogs
func parseBlogListResponse(t *testing.T, w *httptest.ResponseRecorder) []dto.BlogResponse {
	t.Helper()

	var resp []dto.BlogResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

// parseBlogResponse parses the response body into a single blog
func parseBlogResponse(t *testing.T, w *httptest.ResponseRecorder) dto.BlogResponse {
	t.Helper()

	var resp dto.BlogResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

// parseErrorResponse parses the response body into ErrorResponse
func parseErrorResponse(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}
