// File: /services/post_service.go
package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/saeed5077/blog-app/models"
)

// PostStore is the persistence contract the post engine depends on.
type PostStore interface {
	Create(ctx context.Context, post *models.Post) error
	ByID(ctx context.Context, id string) (*models.Post, error)
	BySlug(ctx context.Context, slug string) (*models.Post, error)
	IncrementViews(ctx context.Context, id string) error
	Updates(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	SaveLikes(ctx context.Context, id string, likedBy models.StringSlice) error
	List(ctx context.Context, filter models.ListFilter) ([]models.Post, error)
	Count(ctx context.Context, filter models.ListFilter) (int64, error)
}

// CommentPurger is the slice of the comment store the cascade coordinator
// needs when a post is removed.
type CommentPurger interface {
	DeleteByPost(ctx context.Context, postID string) error
}

// AssetRemover deletes a stored asset. Failures are tolerated: a broken asset
// store must never block content lifecycle operations.
type AssetRemover interface {
	Delete(ctx context.Context, assetID string) error
}

type CreatePostInput struct {
	Title     string
	Body      string
	Tags      []string
	Published bool
	AuthorID  string
	Cover     *models.CoverImage
}

type UpdatePostInput struct {
	Title     *string
	Body      *string
	Tags      []string
	Published *bool
	Cover     *models.CoverImage
}

type PostService struct {
	posts    PostStore
	comments CommentPurger
	assets   AssetRemover
	logger   zerolog.Logger
}

func NewPostService(posts PostStore, comments CommentPurger, assets AssetRemover, logger zerolog.Logger) *PostService {
	return &PostService{
		posts:    posts,
		comments: comments,
		assets:   assets,
		logger:   logger,
	}
}

// Create validates the input, derives the slug and persists the post.
func (s *PostService) Create(ctx context.Context, input CreatePostInput) (*models.Post, error) {
	post, err := models.NewPost(input.Title, input.Body, input.Tags, input.Published, input.AuthorID)
	if err != nil {
		return nil, err
	}

	if input.Cover != nil {
		post.CoverImage = *input.Cover
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.posts.ByID(ctx, post.ID)
}

// List returns one page of published posts matching the filter plus the
// pagination metadata. The page fetch and the count run as two independent
// queries against the same filter; a small staleness window between them is
// accepted.
func (s *PostService) List(ctx context.Context, filter models.ListFilter) ([]models.Post, models.Pagination, error) {
	filter = filter.Normalized()

	posts, err := s.posts.List(ctx, filter)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	total, err := s.posts.Count(ctx, filter)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	return posts, models.NewPagination(filter.Page, filter.Limit, total), nil
}

// BySlug fetches a post for display and counts the view. The increment is a
// single atomic column update, so the counter only ever moves forward.
func (s *PostService) BySlug(ctx context.Context, slug string) (*models.Post, error) {
	post, err := s.posts.BySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.posts.IncrementViews(ctx, post.ID); err != nil {
		return nil, err
	}
	post.Views++

	return post, nil
}

// Update applies field edits to a post owned by the actor (or any post, for an
// admin). The slug is never re-derived, even when the title changes. A new
// cover image replaces the old one; the old asset is deleted best-effort.
func (s *PostService) Update(ctx context.Context, id, actorID string, role models.Role, input UpdatePostInput) (*models.Post, error) {
	post, err := s.posts.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !models.CanMutate(actorID, post.AuthorID, role) {
		return nil, models.ErrForbidden
	}

	updates := make(map[string]interface{})

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if err := models.ValidateTitle(title); err != nil {
			return nil, err
		}
		updates["title"] = title
	}
	if input.Body != nil {
		updates["body"] = *input.Body
	}
	if input.Tags != nil {
		updates["tags"] = models.StringSlice(input.Tags)
	}
	if input.Published != nil {
		updates["published"] = *input.Published
	}
	if input.Cover != nil {
		s.removeAsset(ctx, post.CoverImage.AssetID)
		updates["cover_url"] = input.Cover.URL
		updates["cover_asset_id"] = input.Cover.AssetID
	}

	if len(updates) > 0 {
		if err := s.posts.Updates(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	return s.posts.ByID(ctx, id)
}

// Delete removes a post and cascades to everything hanging off it: the cover
// image asset (best-effort), then every comment referencing the post, then the
// post itself. The steps are not wrapped in a transaction; a crash midway can
// leave orphaned comments behind.
func (s *PostService) Delete(ctx context.Context, id, actorID string, role models.Role) error {
	post, err := s.posts.ByID(ctx, id)
	if err != nil {
		return err
	}

	if !models.CanMutate(actorID, post.AuthorID, role) {
		return models.ErrForbidden
	}

	s.removeAsset(ctx, post.CoverImage.AssetID)

	if err := s.comments.DeleteByPost(ctx, id); err != nil {
		return err
	}

	return s.posts.Delete(ctx, id)
}

// ToggleLike flips the actor's membership in the post's like set and returns
// the new size and membership.
func (s *PostService) ToggleLike(ctx context.Context, id, actorID string) (int, bool, error) {
	post, err := s.posts.ByID(ctx, id)
	if err != nil {
		return 0, false, err
	}

	likedBy, count, liked := models.ToggleLike(post.LikedBy, actorID)
	if err := s.posts.SaveLikes(ctx, id, likedBy); err != nil {
		return 0, false, err
	}

	return count, liked, nil
}

// removeAsset deletes a cover image from the asset store, logging failures
// instead of surfacing them.
func (s *PostService) removeAsset(ctx context.Context, assetID string) {
	if assetID == "" {
		return
	}
	if err := s.assets.Delete(ctx, assetID); err != nil {
		s.logger.Warn().Err(err).Str("asset_id", assetID).Msg("failed to delete cover image asset")
	}
}
