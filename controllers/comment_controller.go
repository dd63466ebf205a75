// File: /controllers/comment_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saeed5077/blog-app/middleware"
	"github.com/saeed5077/blog-app/services"
	"github.com/saeed5077/blog-app/utils"
)

type CommentController struct {
	commentService *services.CommentService
}

func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

type CreateCommentRequest struct {
	Body     string  `json:"body"`
	PostID   string  `json:"post_id"`
	ParentID *string `json:"parent_id"`
}

// CreateComment creates a top-level comment or a reply, depending on whether
// parent_id is set.
func (cc *CommentController) CreateComment(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := cc.commentService.Create(c.Request.Context(), req.Body, req.PostID, userID, req.ParentID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	comment.Author.Password = ""
	c.JSON(http.StatusCreated, comment)
}

// GetComments returns the threaded comment view for a post.
func (cc *CommentController) GetComments(c *gin.Context) {
	postID := c.Param("postId")

	thread, err := cc.commentService.Thread(c.Request.Context(), postID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	for i := range thread {
		thread[i].Author.Password = ""
		for j := range thread[i].Replies {
			thread[i].Replies[j].Author.Password = ""
		}
	}

	c.JSON(http.StatusOK, thread)
}

// DeleteComment removes a comment and every reply hanging off it.
func (cc *CommentController) DeleteComment(c *gin.Context) {
	userID := c.GetString("user_id")
	commentID := c.Param("id")

	err := cc.commentService.Delete(c.Request.Context(), commentID, userID, middleware.ActorRole(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment and replies deleted"})
}

// ToggleLike flips the caller's like on a comment.
func (cc *CommentController) ToggleLike(c *gin.Context) {
	userID := c.GetString("user_id")
	commentID := c.Param("id")

	likes, liked, err := cc.commentService.ToggleLike(c.Request.Context(), commentID, userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"likes": likes,
		"liked": liked,
	})
}
