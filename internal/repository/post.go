package repository

import (
	"context"
	"fmt"

	"github.com/kiernans/blog-top/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
//
// The *Owned methods conjoin the post id with the owner id in the lookup
// predicate, so a non-owner observes gorm.ErrRecordNotFound rather than a
// permission error. Ownership and existence are indistinguishable by
// design.
type PostRepository interface {
	List(ctx context.Context) ([]models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	FindOwned(ctx context.Context, id, ownerID int64) (*models.Post, error)
	UpdateOwned(ctx context.Context, id, ownerID int64, changes map[string]any) (*models.Post, error)
	DeleteOwned(ctx context.Context, id, ownerID int64) (*models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository instance.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).Order("id").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *postRepository) FindOwned(ctx context.Context, id, ownerID int64) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&post).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find post %d: %w", id, err)
	}
	return &post, nil
}

func (r *postRepository) UpdateOwned(ctx context.Context, id, ownerID int64, changes map[string]any) (*models.Post, error) {
	result := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(changes)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update post %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("failed to update post %d: %w", id, gorm.ErrRecordNotFound)
	}
	return r.FindOwned(ctx, id, ownerID)
}

func (r *postRepository) DeleteOwned(ctx context.Context, id, ownerID int64) (*models.Post, error) {
	post, err := r.FindOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.Post{})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to delete post %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("failed to delete post %d: %w", id, gorm.ErrRecordNotFound)
	}
	return post, nil
}
