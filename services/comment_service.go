// File: /services/comment_service.go
package services

import (
	"context"

	"github.com/saeed5077/blog-app/models"
)

// CommentStore is the persistence contract the comment engine depends on.
// Implementations must honor the documented ordering: TopLevelByPost newest
// first, RepliesByParent oldest first.
type CommentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
	ByID(ctx context.Context, id string) (*models.Comment, error)
	TopLevelByPost(ctx context.Context, postID string) ([]models.Comment, error)
	RepliesByParent(ctx context.Context, parentID string) ([]models.Comment, error)
	Delete(ctx context.Context, id string) error
	DeleteReplies(ctx context.Context, parentID string) error
	DeleteByPost(ctx context.Context, postID string) error
	SaveLikes(ctx context.Context, id string, likedBy models.StringSlice) error
}

// PostGetter is the slice of the post store the comment engine needs to verify
// that a post referenced by a new comment actually exists.
type PostGetter interface {
	ByID(ctx context.Context, id string) (*models.Post, error)
}

type CommentService struct {
	comments CommentStore
	posts    PostGetter
}

func NewCommentService(comments CommentStore, posts PostGetter) *CommentService {
	return &CommentService{
		comments: comments,
		posts:    posts,
	}
}

// Create validates and persists a comment or reply. The referenced post must
// exist; if parentID is set, the parent must exist and must itself be a
// top-level comment, keeping thread depth capped at two levels by construction.
func (s *CommentService) Create(ctx context.Context, body, postID, authorID string, parentID *string) (*models.Comment, error) {
	if _, err := s.posts.ByID(ctx, postID); err != nil {
		return nil, err
	}

	if parentID != nil {
		parent, err := s.comments.ByID(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		if parent.ParentID != nil {
			return nil, &models.ValidationError{
				Fields: map[string]string{"parent": "Cannot reply to a reply"},
			}
		}
	}

	comment, err := models.NewComment(body, postID, authorID, parentID)
	if err != nil {
		return nil, err
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	// reload so the author is denormalized into the response
	return s.comments.ByID(ctx, comment.ID)
}

// Thread assembles the two-level comment view for a post: top-level comments
// newest first, each annotated with its replies oldest first. One query fetches
// the top level, then one query per top-level comment fetches its replies.
func (s *CommentService) Thread(ctx context.Context, postID string) ([]models.ThreadedComment, error) {
	if _, err := s.posts.ByID(ctx, postID); err != nil {
		return nil, err
	}

	topLevel, err := s.comments.TopLevelByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	thread := make([]models.ThreadedComment, 0, len(topLevel))
	for _, comment := range topLevel {
		replies, err := s.comments.RepliesByParent(ctx, comment.ID)
		if err != nil {
			return nil, err
		}
		thread = append(thread, models.ThreadedComment{
			Comment: comment,
			Replies: replies,
		})
	}

	return thread, nil
}

// Delete removes a comment and cascades to its replies. Only the comment
// author or an admin may delete. Replies are removed first so a completed
// delete never leaves an orphaned reply behind its thread root.
func (s *CommentService) Delete(ctx context.Context, id, actorID string, role models.Role) error {
	comment, err := s.comments.ByID(ctx, id)
	if err != nil {
		return err
	}

	if !models.CanMutate(actorID, comment.AuthorID, role) {
		return models.ErrForbidden
	}

	if err := s.comments.DeleteReplies(ctx, id); err != nil {
		return err
	}

	return s.comments.Delete(ctx, id)
}

// ToggleLike flips the actor's membership in the comment's like set and
// returns the new size and membership.
func (s *CommentService) ToggleLike(ctx context.Context, id, actorID string) (int, bool, error) {
	comment, err := s.comments.ByID(ctx, id)
	if err != nil {
		return 0, false, err
	}

	likedBy, count, liked := models.ToggleLike(comment.LikedBy, actorID)
	if err := s.comments.SaveLikes(ctx, id, likedBy); err != nil {
		return 0, false, err
	}

	return count, liked, nil
}
