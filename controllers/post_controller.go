// File: /controllers/post_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saeed5077/blog-app/middleware"
	"github.com/saeed5077/blog-app/models"
	"github.com/saeed5077/blog-app/services"
	"github.com/saeed5077/blog-app/utils"
)

type PostController struct {
	postService    *services.PostService
	commentService *services.CommentService
	assetService   *services.AssetService
}

func NewPostController(postService *services.PostService, commentService *services.CommentService, assetService *services.AssetService) *PostController {
	return &PostController{
		postService:    postService,
		commentService: commentService,
		assetService:   assetService,
	}
}

type CreatePostRequest struct {
	Title     string `form:"title"`
	Body      string `form:"body"`
	Tags      string `form:"tags"` // comma separated: "js, react"
	Published *bool  `form:"published"`
}

// GetPosts returns one page of the published post feed, optionally narrowed by
// search text and an exact tag match.
func (pc *PostController) GetPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := models.ListFilter{
		Search: c.Query("search"),
		Tag:    c.Query("tag"),
		Page:   page,
		Limit:  limit,
	}

	posts, pagination, err := pc.postService.List(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	for i := range posts {
		posts[i].Author.Password = ""
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":      posts,
		"pagination": pagination,
	})
}

// GetPost fetches a single post by slug together with its threaded comments.
// Every fetch counts as a view.
func (pc *PostController) GetPost(c *gin.Context) {
	slug := c.Param("slug")

	post, err := pc.postService.BySlug(c.Request.Context(), slug)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	comments, err := pc.commentService.Thread(c.Request.Context(), post.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	post.Author.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"post":     post,
		"comments": comments,
	})
}

func (pc *PostController) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	input := services.CreatePostInput{
		Title:     req.Title,
		Body:      req.Body,
		Tags:      models.ParseTags(req.Tags),
		Published: published,
		AuthorID:  userID,
	}

	cover, err := pc.uploadCover(c)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to upload cover image")
		return
	}
	input.Cover = cover

	post, err := pc.postService.Create(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	post.Author.Password = ""
	c.JSON(http.StatusCreated, post)
}

func (pc *PostController) UpdatePost(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	var input services.UpdatePostInput

	if title, ok := c.GetPostForm("title"); ok {
		input.Title = &title
	}
	if body, ok := c.GetPostForm("body"); ok {
		input.Body = &body
	}
	if tags, ok := c.GetPostForm("tags"); ok {
		input.Tags = models.ParseTags(tags)
	}
	if published, ok := c.GetPostForm("published"); ok {
		value, err := strconv.ParseBool(published)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "published must be true or false"})
			return
		}
		input.Published = &value
	}

	cover, err := pc.uploadCover(c)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to upload cover image")
		return
	}
	input.Cover = cover

	post, err := pc.postService.Update(c.Request.Context(), postID, userID, middleware.ActorRole(c), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	post.Author.Password = ""
	c.JSON(http.StatusOK, post)
}

func (pc *PostController) DeletePost(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	err := pc.postService.Delete(c.Request.Context(), postID, userID, middleware.ActorRole(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post and associated comments deleted"})
}

// ToggleLike flips the caller's like on a post and returns the new count and
// membership.
func (pc *PostController) ToggleLike(c *gin.Context) {
	userID := c.GetString("user_id")
	postID := c.Param("id")

	likes, liked, err := pc.postService.ToggleLike(c.Request.Context(), postID, userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"likes": likes,
		"liked": liked,
	})
}

// uploadCover stores the optional cover_image file from a multipart request.
// Returns nil when the request carries no file.
func (pc *PostController) uploadCover(c *gin.Context) (*models.CoverImage, error) {
	fileHeader, err := c.FormFile("cover_image")
	if err != nil {
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	return pc.assetService.Upload(c.Request.Context(), file, fileHeader.Size, fileHeader.Filename, contentType)
}
