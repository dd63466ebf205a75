// File: /repositories/post_repository.go
package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/saeed5077/blog-app/models"
	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *PostRepository) ByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Preload("Author").First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) BySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Preload("Author").First(&post, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// IncrementViews bumps the view counter in a single atomic column update so
// concurrent reads never lose an increment.
func (r *PostRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func (r *PostRepository) Updates(ctx context.Context, id string, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Updates(updates).Error
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Post{}).Error
}

func (r *PostRepository) SaveLikes(ctx context.Context, id string, likedBy models.StringSlice) error {
	return r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).
		Update("liked_by", likedBy).Error
}

// List returns one page of published posts matching the filter, newest first.
func (r *PostRepository) List(ctx context.Context, filter models.ListFilter) ([]models.Post, error) {
	posts := make([]models.Post, 0, filter.Limit)
	err := r.filtered(ctx, filter).
		Preload("Author").
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Count returns the total number of posts matching the filter, independent of
// pagination.
func (r *PostRepository) Count(ctx context.Context, filter models.ListFilter) (int64, error) {
	var total int64
	err := r.filtered(ctx, filter).Model(&models.Post{}).Count(&total).Error
	return total, err
}

func (r *PostRepository) filtered(ctx context.Context, filter models.ListFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Where("published = ?", true)

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(body) LIKE ?", pattern, pattern)
	}

	if filter.Tag != "" {
		// exact, case-sensitive membership test against the JSON tags column
		query = query.Where("JSON_CONTAINS(tags, JSON_QUOTE(?))", filter.Tag)
	}

	return query
}
