// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/saeed5077/blog-app/config"
	"github.com/saeed5077/blog-app/controllers"
	"github.com/saeed5077/blog-app/middleware"
	"github.com/saeed5077/blog-app/repositories"
	"github.com/saeed5077/blog-app/services"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, assetService *services.AssetService, emailService *services.EmailService) {
	// Repositories
	postRepo := repositories.NewPostRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	// Services
	postService := services.NewPostService(postRepo, commentRepo, assetService, log.Logger)
	commentService := services.NewCommentService(commentRepo, postRepo)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	postController := controllers.NewPostController(postService, commentService, assetService)
	commentController := controllers.NewCommentController(commentService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Public content routes
	v1.GET("/posts", postController.GetPosts)
	v1.GET("/posts/:slug", postController.GetPost)
	v1.GET("/comments/post/:postId", commentController.GetComments)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/auth/me", authController.Me)
		protected.PUT("/auth/password", authController.UpdatePassword)

		posts := protected.Group("/posts")
		{
			posts.POST("", postController.CreatePost)
			posts.PUT("/:id", postController.UpdatePost)
			posts.DELETE("/:id", postController.DeletePost)
			posts.PUT("/:id/like", postController.ToggleLike)
		}

		comments := protected.Group("/comments")
		{
			comments.POST("", commentController.CreateComment)
			comments.DELETE("/:id", commentController.DeleteComment)
			comments.PUT("/:id/like", commentController.ToggleLike)
		}
	}
}

// SetupCORS provides a permissive CORS policy for the frontend
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
