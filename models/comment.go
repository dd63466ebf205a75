// File: /models/comment.go
package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const maxCommentLength = 500

type Comment struct {
	ID        string      `json:"id" gorm:"primaryKey;size:191"`
	PostID    string      `json:"post_id" gorm:"not null;size:191;index"`
	ParentID  *string     `json:"parent_id" gorm:"size:191;index"`
	AuthorID  string      `json:"author_id" gorm:"not null;size:191;index"`
	Body      string      `json:"body" gorm:"not null;size:500"`
	LikedBy   StringSlice `json:"liked_by" gorm:"type:json"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`

	Author User `json:"author" gorm:"foreignKey:AuthorID"`
}

// NewComment validates the input and constructs a comment ready to persist.
// A nil parentID means a top-level comment attached directly to the post.
func NewComment(body, postID, authorID string, parentID *string) (*Comment, error) {
	ve := newValidationError()

	body = strings.TrimSpace(body)
	if body == "" {
		ve.add("body", "Comment body is required")
	} else if utf8.RuneCountInString(body) > maxCommentLength {
		ve.add("body", "Comment cannot exceed 500 characters")
	}

	if postID == "" {
		ve.add("post", "Post is required")
	}

	if authorID == "" {
		ve.add("author", "Author is required")
	}

	if ve.hasErrors() {
		return nil, ve
	}

	return &Comment{
		ID:       uuid.New().String(),
		PostID:   postID,
		ParentID: parentID,
		AuthorID: authorID,
		Body:     body,
		LikedBy:  StringSlice{},
	}, nil
}

// ThreadedComment is a top-level comment annotated with its replies, in the
// shape the thread resolver returns: the comment itself plus its ordered
// replies, authors denormalized at read time.
type ThreadedComment struct {
	Comment
	Replies []Comment `json:"replies"`
}
