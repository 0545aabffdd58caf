package service

import (
	"context"

	"github.com/kiernans/blog-top/internal/models"
	"github.com/kiernans/blog-top/internal/repository"
	"github.com/kiernans/blog-top/internal/validation"
)

// CreatePostRequest is the payload for creating a post. The owner is taken
// from the authenticated request context, never from the body.
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePostRequest is the payload for a partial post update. Pointer
// fields distinguish "absent" from "empty": only fields present in the
// request are changed.
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// PostService defines post CRUD operations.
type PostService interface {
	List(ctx context.Context) ([]models.Post, error)
	Create(ctx context.Context, ownerID int64, req CreatePostRequest) (*models.Post, error)
	Get(ctx context.Context, id, ownerID int64) (*models.Post, error)
	Update(ctx context.Context, id, ownerID int64, req UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, id, ownerID int64) (*models.Post, error)
}

type postService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new PostService instance.
func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) List(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.List(ctx)
}

func (s *postService) Create(ctx context.Context, ownerID int64, req CreatePostRequest) (*models.Post, error) {
	if fields := validation.PostCreate(req.Title, req.Content); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	post := &models.Post{
		Title:   req.Title,
		Content: req.Content,
		UserID:  ownerID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Get(ctx context.Context, id, ownerID int64) (*models.Post, error) {
	return s.postRepo.FindOwned(ctx, id, ownerID)
}

func (s *postService) Update(ctx context.Context, id, ownerID int64, req UpdatePostRequest) (*models.Post, error) {
	if fields := validation.PostUpdate(req.Title, req.Content); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	changes := make(map[string]any)
	if req.Title != nil {
		changes["title"] = *req.Title
	}
	if req.Content != nil {
		changes["content"] = *req.Content
	}
	if len(changes) == 0 {
		// Nothing to change; behave as a read so callers still get the
		// owner-scoped not-found semantics.
		return s.postRepo.FindOwned(ctx, id, ownerID)
	}

	return s.postRepo.UpdateOwned(ctx, id, ownerID, changes)
}

func (s *postService) Delete(ctx context.Context, id, ownerID int64) (*models.Post, error) {
	return s.postRepo.DeleteOwned(ctx, id, ownerID)
}
