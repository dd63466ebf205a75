// File: /repositories/comment_repository.go
package repositories

import (
	"context"
	"errors"

	"github.com/saeed5077/blog-app/models"
	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *CommentRepository) ByID(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).Preload("Author").First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// TopLevelByPost returns the comments attached directly to a post, newest
// first. Authors are joined in at read time, never stored on the comment.
func (r *CommentRepository) TopLevelByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ? AND parent_id IS NULL", postID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// RepliesByParent returns a comment's replies, oldest first.
func (r *CommentRepository) RepliesByParent(ctx context.Context, parentID string) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("parent_id = ?", parentID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Comment{}).Error
}

// DeleteReplies removes every comment whose parent is the given comment.
func (r *CommentRepository) DeleteReplies(ctx context.Context, parentID string) error {
	return r.db.WithContext(ctx).Where("parent_id = ?", parentID).Delete(&models.Comment{}).Error
}

// DeleteByPost removes every comment referencing the given post, top-level
// comments and replies alike, since both carry the same post id.
func (r *CommentRepository) DeleteByPost(ctx context.Context, postID string) error {
	return r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&models.Comment{}).Error
}

func (r *CommentRepository) SaveLikes(ctx context.Context, id string, likedBy models.StringSlice) error {
	return r.db.WithContext(ctx).Model(&models.Comment{}).Where("id = ?", id).
		Update("liked_by", likedBy).Error
}
