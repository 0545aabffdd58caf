package repository

import (
	"context"
	"fmt"

	"github.com/kiernans/blog-top/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations.
//
// Listing is scoped by parent post only: a post's comments are visible to
// any authenticated viewer. Single-comment operations additionally conjoin
// the owner id, with the same not-found semantics as posts.
type CommentRepository interface {
	ListByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	FindOwned(ctx context.Context, id, postID, ownerID int64) (*models.Comment, error)
	UpdateOwned(ctx context.Context, id, postID, ownerID int64, changes map[string]any) (*models.Comment, error)
	DeleteOwned(ctx context.Context, id, postID, ownerID int64) (*models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository instance.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) ListByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("id").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for post %d: %w", postID, err)
	}
	return comments, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *commentRepository) FindOwned(ctx context.Context, id, postID, ownerID int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Where("id = ? AND post_id = ? AND user_id = ?", id, postID, ownerID).
		First(&comment).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find comment %d: %w", id, err)
	}
	return &comment, nil
}

func (r *commentRepository) UpdateOwned(ctx context.Context, id, postID, ownerID int64, changes map[string]any) (*models.Comment, error) {
	result := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("id = ? AND post_id = ? AND user_id = ?", id, postID, ownerID).
		Updates(changes)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update comment %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("failed to update comment %d: %w", id, gorm.ErrRecordNotFound)
	}
	return r.FindOwned(ctx, id, postID, ownerID)
}

func (r *commentRepository) DeleteOwned(ctx context.Context, id, postID, ownerID int64) (*models.Comment, error) {
	comment, err := r.FindOwned(ctx, id, postID, ownerID)
	if err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).
		Where("id = ? AND post_id = ? AND user_id = ?", id, postID, ownerID).
		Delete(&models.Comment{})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to delete comment %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("failed to delete comment %d: %w", id, gorm.ErrRecordNotFound)
	}
	return comment, nil
}
