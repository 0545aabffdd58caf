package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kiernans/blog-top/internal/middleware"
	"github.com/kiernans/blog-top/internal/models"
	"github.com/kiernans/blog-top/internal/service"
	"github.com/kiernans/blog-top/internal/validation"
	"gorm.io/gorm"
)

// =============================================================================
// Mock PostService
// =============================================================================

type mockPostService struct {
	listFunc   func(ctx context.Context) ([]models.Post, error)
	createFunc func(ctx context.Context, ownerID int64, req service.CreatePostRequest) (*models.Post, error)
	getFunc    func(ctx context.Context, id, ownerID int64) (*models.Post, error)
	updateFunc func(ctx context.Context, id, ownerID int64, req service.UpdatePostRequest) (*models.Post, error)
	deleteFunc func(ctx context.Context, id, ownerID int64) (*models.Post, error)
}

func (m *mockPostService) List(ctx context.Context) ([]models.Post, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPostService) Create(ctx context.Context, ownerID int64, req service.CreatePostRequest) (*models.Post, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, ownerID, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPostService) Get(ctx context.Context, id, ownerID int64) (*models.Post, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id, ownerID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPostService) Update(ctx context.Context, id, ownerID int64, req service.UpdatePostRequest) (*models.Post, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, ownerID, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPostService) Delete(ctx context.Context, id, ownerID int64) (*models.Post, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id, ownerID)
	}
	return nil, errors.New("not implemented")
}

// =============================================================================
// Test Helpers
// =============================================================================

// fakeAuth stands in for the bearer gate and attaches a fixed user id.
func fakeAuth(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Next()
	}
}

func setupPostsRouter(postSvc service.PostService, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewPostsHandler(postSvc)

	posts := router.Group("/posts", fakeAuth(userID))
	posts.GET("", h.List)
	posts.POST("", h.Create)
	posts.GET("/:postId", h.Get)
	posts.PUT("/:postId", h.Update)
	posts.DELETE("/:postId", h.Delete)

	return router
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// =============================================================================
// List Tests
// =============================================================================

func TestPostsList(t *testing.T) {
	postSvc := &mockPostService{
		listFunc: func(ctx context.Context) ([]models.Post, error) {
			return []models.Post{{ID: 1, Title: "First Post Title"}, {ID: 2, Title: "Second Post Title"}}, nil
		},
	}
	router := setupPostsRouter(postSvc, 7)

	w := doJSON(router, http.MethodGet, "/posts", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var posts []models.Post
	if err := json.Unmarshal(w.Body.Bytes(), &posts); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("got %d posts, want 2", len(posts))
	}
}

// =============================================================================
// Create Tests
// =============================================================================

func TestPostsCreate(t *testing.T) {
	var gotOwner int64
	postSvc := &mockPostService{
		createFunc: func(ctx context.Context, ownerID int64, req service.CreatePostRequest) (*models.Post, error) {
			gotOwner = ownerID
			return &models.Post{ID: 10, Title: req.Title, Content: req.Content, UserID: ownerID}, nil
		},
	}
	router := setupPostsRouter(postSvc, 7)

	w := doJSON(router, http.MethodPost, "/posts", map[string]string{
		"title":   "Hello World Post",
		"content": "This is long enough.",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
	}
	if gotOwner != 7 {
		t.Errorf("owner id passed to service = %d, want 7", gotOwner)
	}
}

func TestPostsCreate_OwnerNotTakenFromBody(t *testing.T) {
	var gotOwner int64
	postSvc := &mockPostService{
		createFunc: func(ctx context.Context, ownerID int64, req service.CreatePostRequest) (*models.Post, error) {
			gotOwner = ownerID
			return &models.Post{ID: 10, UserID: ownerID}, nil
		},
	}
	router := setupPostsRouter(postSvc, 7)

	// A user_id in the body must be ignored.
	w := doJSON(router, http.MethodPost, "/posts", map[string]any{
		"title":   "Hello World Post",
		"content": "This is long enough.",
		"user_id": 999,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if gotOwner != 7 {
		t.Errorf("owner id = %d, want the authenticated user 7", gotOwner)
	}
}

func TestPostsCreate_ValidationErrors(t *testing.T) {
	postSvc := &mockPostService{
		createFunc: func(ctx context.Context, ownerID int64, req service.CreatePostRequest) (*models.Post, error) {
			return nil, &service.ValidationError{Fields: []validation.FieldError{
				{Field: "title", Message: "Title must be at least 5 characters long."},
			}}
		},
	}
	router := setupPostsRouter(postSvc, 7)

	w := doJSON(router, http.MethodPost, "/posts", map[string]string{
		"title":   "Hi",
		"content": "This is long enough.",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var body struct {
		Title  string                  `json:"title"`
		Status int                     `json:"status"`
		Errors []validation.FieldError `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(body.Errors) != 1 || body.Errors[0].Field != "title" {
		t.Errorf("errors = %+v, want a single title error", body.Errors)
	}
}

// =============================================================================
// Get / Ownership Tests
// =============================================================================

func TestPostsGet_NotOwned(t *testing.T) {
	postSvc := &mockPostService{
		getFunc: func(ctx context.Context, id, ownerID int64) (*models.Post, error) {
			return nil, fmt.Errorf("failed to find post %d: %w", id, gorm.ErrRecordNotFound)
		},
	}
	router := setupPostsRouter(postSvc, 7)

	w := doJSON(router, http.MethodGet, "/posts/3", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestPostsGet_InvalidID(t *testing.T) {
	router := setupPostsRouter(&mockPostService{}, 7)

	for _, path := range []string{"/posts/abc", "/posts/-1", "/posts/0"} {
		if w := doJSON(router, http.MethodGet, path, nil); w.Code != http.StatusBadRequest {
			t.Errorf("GET %s status = %d, want 400", path, w.Code)
		}
	}
}

// =============================================================================
// Update Tests
// =============================================================================

func TestPostsUpdate_PartialBody(t *testing.T) {
	var gotReq service.UpdatePostRequest
	postSvc := &mockPostService{
		updateFunc: func(ctx context.Context, id, ownerID int64, req service.UpdatePostRequest) (*models.Post, error) {
			gotReq = req
			return &models.Post{ID: id, UserID: ownerID}, nil
		},
	}
	router := setupPostsRouter(postSvc, 7)

	w := doJSON(router, http.MethodPut, "/posts/3", map[string]string{
		"content": "Replacement content text.",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	if gotReq.Title != nil {
		t.Errorf("title was decoded as present for an absent field")
	}
	if gotReq.Content == nil || *gotReq.Content != "Replacement content text." {
		t.Errorf("content = %v, want pointer to replacement text", gotReq.Content)
	}
}

func TestPostsUpdate_NotOwned(t *testing.T) {
	postSvc := &mockPostService{
		updateFunc: func(ctx context.Context, id, ownerID int64, req service.UpdatePostRequest) (*models.Post, error) {
			return nil, fmt.Errorf("failed to update post %d: %w", id, gorm.ErrRecordNotFound)
		},
	}
	router := setupPostsRouter(postSvc, 99)

	w := doJSON(router, http.MethodPut, "/posts/3", map[string]string{"title": "Another Title Here"})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

// =============================================================================
// Delete Tests
// =============================================================================

func TestPostsDelete(t *testing.T) {
	postSvc := &mockPostService{
		deleteFunc: func(ctx context.Context, id, ownerID int64) (*models.Post, error) {
			return &models.Post{ID: id, UserID: ownerID, Title: "Deleted Post Title"}, nil
		},
	}
	router := setupPostsRouter(postSvc, 7)

	w := doJSON(router, http.MethodDelete, "/posts/3", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var post models.Post
	if err := json.Unmarshal(w.Body.Bytes(), &post); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if post.ID != 3 {
		t.Errorf("deleted post id = %d, want 3", post.ID)
	}
}

func TestPostsDelete_NotOwned(t *testing.T) {
	postSvc := &mockPostService{
		deleteFunc: func(ctx context.Context, id, ownerID int64) (*models.Post, error) {
			return nil, fmt.Errorf("failed to delete post %d: %w", id, gorm.ErrRecordNotFound)
		},
	}
	router := setupPostsRouter(postSvc, 99)

	w := doJSON(router, http.MethodDelete, "/posts/3", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
