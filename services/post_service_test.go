package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/saeed5077/blog-app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostFixture(t *testing.T) (*PostService, *fakePostStore, *fakeCommentStore, *fakeAssetStore) {
	t.Helper()

	posts := newFakePostStore()
	comments := newFakeCommentStore()
	assets := &fakeAssetStore{}

	svc := NewPostService(posts, comments, assets, zerolog.Nop())
	return svc, posts, comments, assets
}

func TestPostService_Create_SlugFormat(t *testing.T) {
	svc, _, _, _ := newPostFixture(t)

	post, err := svc.Create(context.Background(), CreatePostInput{
		Title:     "Hello, World!",
		Body:      "first post",
		Published: true,
		AuthorID:  "author-1",
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^hello-world-\d+$`), post.Slug)
}

func TestPostService_Create_Validation(t *testing.T) {
	svc, _, _, _ := newPostFixture(t)

	_, err := svc.Create(context.Background(), CreatePostInput{
		Body:     "no title",
		AuthorID: "author-1",
	})

	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "title")
}

func TestPostService_Update_TitleEditKeepsSlug(t *testing.T) {
	svc, _, _, _ := newPostFixture(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, CreatePostInput{
		Title:     "Original Title",
		Body:      "body",
		Published: true,
		AuthorID:  "author-1",
	})
	require.NoError(t, err)
	originalSlug := post.Slug

	newTitle := "A Completely Different Title"
	updated, err := svc.Update(ctx, post.ID, "author-1", models.RoleUser, UpdatePostInput{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, originalSlug, updated.Slug)
}

func TestPostService_Update_TrimsTitle(t *testing.T) {
	svc, _, _, _ := newPostFixture(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, CreatePostInput{
		Title:     "Original Title",
		Body:      "body",
		Published: true,
		AuthorID:  "author-1",
	})
	require.NoError(t, err)

	padded := "  Padded Title  "
	updated, err := svc.Update(ctx, post.ID, "author-1", models.RoleUser, UpdatePostInput{Title: &padded})
	require.NoError(t, err)

	assert.Equal(t, "Padded Title", updated.Title)
}

func TestPostService_Update_Authorization(t *testing.T) {
	svc, _, _, _ := newPostFixture(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, CreatePostInput{
		Title:     "Mine",
		Body:      "body",
		Published: true,
		AuthorID:  "author-1",
	})
	require.NoError(t, err)

	title := "Hijacked"
	_, err = svc.Update(ctx, post.ID, "intruder", models.RoleUser, UpdatePostInput{Title: &title})
	assert.ErrorIs(t, err, models.ErrForbidden)

	_, err = svc.Update(ctx, post.ID, "moderator", models.RoleAdmin, UpdatePostInput{Title: &title})
	assert.NoError(t, err)
}

func TestPostService_Update_CoverReplacementDeletesOldAsset(t *testing.T) {
	svc, _, _, assets := newPostFixture(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, CreatePostInput{
		Title:     "With Cover",
		Body:      "body",
		Published: true,
		AuthorID:  "author-1",
		Cover:     &models.CoverImage{URL: "http://assets/old.png", AssetID: "old-asset"},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, post.ID, "author-1", models.RoleUser, UpdatePostInput{
		Cover: &models.CoverImage{URL: "http://assets/new.png", AssetID: "new-asset"},
	})
	require.NoError(t, err)

	assert.Equal(t, "new-asset", updated.CoverImage.AssetID)
	assert.Equal(t, []string{"old-asset"}, assets.deleted)
}

func TestPostService_Delete_CascadesComments(t *testing.T) {
	svc, posts, comments, assets := newPostFixture(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, CreatePostInput{
		Title:     "Doomed",
		Body:      "body",
		Published: true,
		AuthorID:  "author-1",
		Cover:     &models.CoverImage{URL: "http://assets/c.png", AssetID: "cover-1"},
	})
	require.NoError(t, err)

	top := &models.Comment{ID: "c1", PostID: post.ID, AuthorID: "user-a", Body: "top"}
	reply := &models.Comment{ID: "c2", PostID: post.ID, ParentID: &top.ID, AuthorID: "user-b", Body: "reply"}
	require.NoError(t, comments.Create(ctx, top))
	require.NoError(t, comments.Create(ctx, reply))

	// a non-owner, non-admin user is rejected
	err = svc.Delete(ctx, post.ID, "user-b", models.RoleUser)
	assert.ErrorIs(t, err, models.ErrForbidden)

	// an admin succeeds and everything referencing the post goes with it
	require.NoError(t, svc.Delete(ctx, post.ID, "moderator", models.RoleAdmin))

	_, err = posts.ByID(ctx, post.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = comments.ByID(ctx, "c1")
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = comments.ByID(ctx, "c2")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, []string{"cover-1"}, assets.deleted)
}

func TestPostService_Delete_AssetFailureDoesNotBlock(t *testing.T) {
	svc, posts, _, assets := newPostFixture(t)
	ctx := context.Background()

	assets.err = errors.New("asset store down")

	post, err := svc.Create(ctx, CreatePostInput{
		Title:     "Still Deletable",
		Body:      "body",
		Published: true,
		AuthorID:  "author-1",
		Cover:     &models.CoverImage{URL: "http://assets/c.png", AssetID: "cover-1"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, post.ID, "author-1", models.RoleUser))

	_, err = posts.ByID(ctx, post.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPostService_BySlug_IncrementsViews(t *testing.T) {
	svc, _, _, _ := newPostFixture(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, CreatePostInput{
		Title:     "Counted",
		Body:      "body",
		Published: true,
		AuthorID:  "author-1",
	})
	require.NoError(t, err)
	require.Equal(t, 0, post.Views)

	first, err := svc.BySlug(ctx, post.Slug)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Views)

	second, err := svc.BySlug(ctx, post.Slug)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Views)
}

func TestPostService_BySlug_NotFound(t *testing.T) {
	svc, _, _, _ := newPostFixture(t)

	_, err := svc.BySlug(context.Background(), "no-such-slug")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPostService_List_TagFilter(t *testing.T) {
	svc, posts, _, _ := newPostFixture(t)
	ctx := context.Background()

	seed := []*models.Post{
		{ID: "p1", Title: "JS Tips", Slug: "js-tips-1", Body: "b", AuthorID: "a", Published: true, Tags: models.StringSlice{"javascript", "web"}},
		{ID: "p2", Title: "Go Tips", Slug: "go-tips-1", Body: "b", AuthorID: "a", Published: true, Tags: models.StringSlice{"golang"}},
		{ID: "p3", Title: "Casing", Slug: "casing-1", Body: "b", AuthorID: "a", Published: true, Tags: models.StringSlice{"JavaScript"}},
	}
	for _, p := range seed {
		require.NoError(t, posts.Create(ctx, p))
	}

	// tag match is exact and case-sensitive
	result, _, err := svc.List(ctx, models.ListFilter{Tag: "javascript"})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "p1", result[0].ID)
}

func TestPostService_List_SearchIsCaseInsensitive(t *testing.T) {
	svc, posts, _, _ := newPostFixture(t)
	ctx := context.Background()

	require.NoError(t, posts.Create(ctx, &models.Post{
		ID: "p1", Title: "Concurrency Patterns", Slug: "cp-1", Body: "channels and goroutines",
		AuthorID: "a", Published: true,
	}))
	require.NoError(t, posts.Create(ctx, &models.Post{
		ID: "p2", Title: "Unrelated", Slug: "u-1", Body: "nothing here",
		AuthorID: "a", Published: true,
	}))

	result, _, err := svc.List(ctx, models.ListFilter{Search: "GOROUTINES"})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "p1", result[0].ID)
}

func TestPostService_List_ExcludesUnpublished(t *testing.T) {
	svc, posts, _, _ := newPostFixture(t)
	ctx := context.Background()

	require.NoError(t, posts.Create(ctx, &models.Post{ID: "p1", Title: "Draft", Slug: "d-1", Body: "b", AuthorID: "a", Published: false}))
	require.NoError(t, posts.Create(ctx, &models.Post{ID: "p2", Title: "Live", Slug: "l-1", Body: "b", AuthorID: "a", Published: true}))

	result, pagination, err := svc.List(ctx, models.ListFilter{})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "p2", result[0].ID)
	assert.Equal(t, int64(1), pagination.TotalPosts)
}

func TestPostService_List_Pagination(t *testing.T) {
	svc, posts, _, _ := newPostFixture(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 25; i++ {
		require.NoError(t, posts.Create(ctx, &models.Post{
			ID:        fmt.Sprintf("p%02d", i),
			Title:     fmt.Sprintf("Post %d", i),
			Slug:      fmt.Sprintf("post-%d", i),
			Body:      "b",
			AuthorID:  "a",
			Published: true,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	// defaults: page 1, limit 10
	result, pagination, err := svc.List(ctx, models.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, result, 10)
	assert.Equal(t, 1, pagination.CurrentPage)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.Equal(t, int64(25), pagination.TotalPosts)
	assert.True(t, pagination.HasNextPage)
	assert.False(t, pagination.HasPrevPage)

	// newest first
	assert.Equal(t, "p24", result[0].ID)

	// last page
	result, pagination, err = svc.List(ctx, models.ListFilter{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, result, 5)
	assert.False(t, pagination.HasNextPage)
	assert.True(t, pagination.HasPrevPage)
}

func TestPostService_ToggleLike_IsItsOwnInverse(t *testing.T) {
	svc, _, _, _ := newPostFixture(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, CreatePostInput{
		Title:     "Likeable",
		Body:      "body",
		Published: true,
		AuthorID:  "author-1",
	})
	require.NoError(t, err)

	likes, liked, err := svc.ToggleLike(ctx, post.ID, "user-b")
	require.NoError(t, err)
	assert.Equal(t, 1, likes)
	assert.True(t, liked)

	likes, liked, err = svc.ToggleLike(ctx, post.ID, "user-b")
	require.NoError(t, err)
	assert.Equal(t, 0, likes)
	assert.False(t, liked)
}
