package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/saeed5077/blog-app/models"
)

// In-memory stand-ins for the gorm repositories. They honor the same
// contracts, including the documented result ordering.

type fakePostStore struct {
	posts map[string]*models.Post
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: make(map[string]*models.Post)}
}

func (s *fakePostStore) Create(ctx context.Context, post *models.Post) error {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	s.posts[post.ID] = post
	return nil
}

func (s *fakePostStore) ByID(ctx context.Context, id string) (*models.Post, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return post, nil
}

func (s *fakePostStore) BySlug(ctx context.Context, slug string) (*models.Post, error) {
	for _, post := range s.posts {
		if post.Slug == slug {
			return post, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *fakePostStore) IncrementViews(ctx context.Context, id string) error {
	post, ok := s.posts[id]
	if !ok {
		return models.ErrNotFound
	}
	post.Views++
	return nil
}

func (s *fakePostStore) Updates(ctx context.Context, id string, updates map[string]interface{}) error {
	post, ok := s.posts[id]
	if !ok {
		return models.ErrNotFound
	}
	for column, value := range updates {
		switch column {
		case "title":
			post.Title = value.(string)
		case "body":
			post.Body = value.(string)
		case "tags":
			post.Tags = value.(models.StringSlice)
		case "published":
			post.Published = value.(bool)
		case "cover_url":
			post.CoverImage.URL = value.(string)
		case "cover_asset_id":
			post.CoverImage.AssetID = value.(string)
		}
	}
	return nil
}

func (s *fakePostStore) Delete(ctx context.Context, id string) error {
	delete(s.posts, id)
	return nil
}

func (s *fakePostStore) SaveLikes(ctx context.Context, id string, likedBy models.StringSlice) error {
	post, ok := s.posts[id]
	if !ok {
		return models.ErrNotFound
	}
	post.LikedBy = likedBy
	return nil
}

func (s *fakePostStore) matches(post *models.Post, filter models.ListFilter) bool {
	if !post.Published {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(post.Title), needle) &&
			!strings.Contains(strings.ToLower(post.Body), needle) {
			return false
		}
	}
	if filter.Tag != "" && !post.Tags.Contains(filter.Tag) {
		return false
	}
	return true
}

func (s *fakePostStore) List(ctx context.Context, filter models.ListFilter) ([]models.Post, error) {
	matched := make([]models.Post, 0)
	for _, post := range s.posts {
		if s.matches(post, filter) {
			matched = append(matched, *post)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	start := filter.Offset()
	if start >= len(matched) {
		return []models.Post{}, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (s *fakePostStore) Count(ctx context.Context, filter models.ListFilter) (int64, error) {
	var total int64
	for _, post := range s.posts {
		if s.matches(post, filter) {
			total++
		}
	}
	return total, nil
}

type fakeCommentStore struct {
	comments map[string]*models.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: make(map[string]*models.Comment)}
}

func (s *fakeCommentStore) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	s.comments[comment.ID] = comment
	return nil
}

func (s *fakeCommentStore) ByID(ctx context.Context, id string) (*models.Comment, error) {
	comment, ok := s.comments[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return comment, nil
}

func (s *fakeCommentStore) TopLevelByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	result := make([]models.Comment, 0)
	for _, c := range s.comments {
		if c.PostID == postID && c.ParentID == nil {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *fakeCommentStore) RepliesByParent(ctx context.Context, parentID string) ([]models.Comment, error) {
	result := make([]models.Comment, 0)
	for _, c := range s.comments {
		if c.ParentID != nil && *c.ParentID == parentID {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (s *fakeCommentStore) Delete(ctx context.Context, id string) error {
	delete(s.comments, id)
	return nil
}

func (s *fakeCommentStore) DeleteReplies(ctx context.Context, parentID string) error {
	for id, c := range s.comments {
		if c.ParentID != nil && *c.ParentID == parentID {
			delete(s.comments, id)
		}
	}
	return nil
}

func (s *fakeCommentStore) DeleteByPost(ctx context.Context, postID string) error {
	for id, c := range s.comments {
		if c.PostID == postID {
			delete(s.comments, id)
		}
	}
	return nil
}

func (s *fakeCommentStore) SaveLikes(ctx context.Context, id string, likedBy models.StringSlice) error {
	comment, ok := s.comments[id]
	if !ok {
		return models.ErrNotFound
	}
	comment.LikedBy = likedBy
	return nil
}

type fakeAssetStore struct {
	deleted []string
	err     error
}

func (s *fakeAssetStore) Delete(ctx context.Context, assetID string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, assetID)
	return nil
}
