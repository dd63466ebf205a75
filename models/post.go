// File: /models/post.go
package models

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

const maxTitleLength = 100

// CoverImage is an opaque handle into the asset store. AssetID is kept so the
// stored object can be deleted when the image is replaced or the post removed.
type CoverImage struct {
	URL     string `json:"url" gorm:"size:500"`
	AssetID string `json:"asset_id" gorm:"size:255"`
}

type Post struct {
	ID         string      `json:"id" gorm:"primaryKey;size:191"`
	Title      string      `json:"title" gorm:"not null;size:100"`
	Slug       string      `json:"slug" gorm:"uniqueIndex;not null;size:191"`
	Body       string      `json:"body" gorm:"not null;type:text"`
	CoverImage CoverImage  `json:"cover_image" gorm:"embedded;embeddedPrefix:cover_"`
	AuthorID   string      `json:"author_id" gorm:"not null;size:191;index"`
	Tags       StringSlice `json:"tags" gorm:"type:json"`
	LikedBy    StringSlice `json:"liked_by" gorm:"type:json"`
	Views      int         `json:"views" gorm:"default:0"`
	Published  bool        `json:"published" gorm:"default:true"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`

	Author User `json:"author" gorm:"foreignKey:AuthorID"`
}

// NewPost validates the input and constructs a post ready to persist. The slug
// is derived here, exactly once; later title edits never touch it.
func NewPost(title, body string, tags []string, published bool, authorID string) (*Post, error) {
	ve := newValidationError()

	title = strings.TrimSpace(title)
	if title == "" {
		ve.add("title", "Title is required")
	} else if utf8.RuneCountInString(title) > maxTitleLength {
		ve.add("title", "Title cannot exceed 100 characters")
	}

	if strings.TrimSpace(body) == "" {
		ve.add("body", "Post body is required")
	}

	if authorID == "" {
		ve.add("author", "Author is required")
	}

	if ve.hasErrors() {
		return nil, ve
	}

	return &Post{
		ID:        uuid.New().String(),
		Title:     title,
		Slug:      GenerateSlug(title),
		Body:      body,
		AuthorID:  authorID,
		Tags:      StringSlice(tags),
		LikedBy:   StringSlice{},
		Published: published,
	}, nil
}

// ValidateTitle checks a replacement title on update. The slug is not re-derived.
func ValidateTitle(title string) error {
	ve := newValidationError()
	if strings.TrimSpace(title) == "" {
		ve.add("title", "Title is required")
	} else if utf8.RuneCountInString(strings.TrimSpace(title)) > maxTitleLength {
		ve.add("title", "Title cannot exceed 100 characters")
	}
	if ve.hasErrors() {
		return ve
	}
	return nil
}

// GenerateSlug derives a unique URL-safe identifier from a post title:
// lowercased, special characters stripped, whitespace collapsed to hyphens,
// suffixed with the current Unix-nanosecond timestamp so no uniqueness
// round trip against the store is needed.
func GenerateSlug(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
		// anything else (punctuation, symbols) is dropped
	}

	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = "post"
	}

	return slug + "-" + strconv.FormatInt(time.Now().UnixNano(), 10)
}

// ParseTags splits a comma separated tag list: "js, react" -> ["js" "react"]
func ParseTags(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}

	parts := strings.Split(csv, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
