package service

import (
	"context"

	"github.com/kiernans/blog-top/internal/models"
	"github.com/kiernans/blog-top/internal/repository"
	"github.com/kiernans/blog-top/internal/validation"
)

// CommentRequest is the payload for creating or updating a comment.
type CommentRequest struct {
	Content string `json:"content"`
}

// CommentService defines comment CRUD operations nested under a post.
type CommentService interface {
	ListByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	Create(ctx context.Context, postID, ownerID int64, req CommentRequest) (*models.Comment, error)
	Get(ctx context.Context, id, postID, ownerID int64) (*models.Comment, error)
	Update(ctx context.Context, id, postID, ownerID int64, req CommentRequest) (*models.Comment, error)
	Delete(ctx context.Context, id, postID, ownerID int64) (*models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

func (s *commentService) ListByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

func (s *commentService) Create(ctx context.Context, postID, ownerID int64, req CommentRequest) (*models.Comment, error) {
	if fields := validation.CommentContent(req.Content); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	comment := &models.Comment{
		Content: req.Content,
		PostID:  postID,
		UserID:  ownerID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Get(ctx context.Context, id, postID, ownerID int64) (*models.Comment, error) {
	return s.commentRepo.FindOwned(ctx, id, postID, ownerID)
}

func (s *commentService) Update(ctx context.Context, id, postID, ownerID int64, req CommentRequest) (*models.Comment, error) {
	if fields := validation.CommentContent(req.Content); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	return s.commentRepo.UpdateOwned(ctx, id, postID, ownerID, map[string]any{
		"content": req.Content,
	})
}

func (s *commentService) Delete(ctx context.Context, id, postID, ownerID int64) (*models.Comment, error) {
	return s.commentRepo.DeleteOwned(ctx, id, postID, ownerID)
}
