// Package routes defines HTTP routes for the blog service.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kiernans/blog-top/internal/handlers"
	"github.com/kiernans/blog-top/internal/metrics"
	"github.com/kiernans/blog-top/internal/middleware"
	"github.com/kiernans/blog-top/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Handlers groups the handler instances wired into the route table.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Users    *handlers.UsersHandler
	Posts    *handlers.PostsHandler
	Comments *handlers.CommentsHandler
	Health   *handlers.HealthHandler
}

// Setup configures all HTTP routes for the application. Everything under
// the protected group passes the bearer-auth gate, which attaches the
// current user to the request context.
func Setup(router *gin.Engine, h Handlers, authService service.AuthService, jwtService service.JWTService, m *metrics.Metrics, logger *logrus.Logger) {
	router.Use(middleware.RequestLogger(logger))
	router.Use(m.Middleware())

	// Operational endpoints
	router.GET("/health", h.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public auth endpoints
	router.POST("/create", h.Auth.Signup)
	router.POST("/login", h.Auth.Login)

	// Protected endpoints
	protected := router.Group("/")
	protected.Use(middleware.Auth(authService, jwtService))
	{
		protected.POST("/logout", h.Auth.Logout)
		protected.GET("/users", h.Users.List)

		posts := protected.Group("/posts")
		{
			posts.GET("", h.Posts.List)
			posts.POST("", h.Posts.Create)
			posts.GET("/:postId", h.Posts.Get)
			posts.PUT("/:postId", h.Posts.Update)
			posts.DELETE("/:postId", h.Posts.Delete)

			comments := posts.Group("/:postId/comments")
			{
				comments.GET("", h.Comments.List)
				comments.POST("", h.Comments.Create)
				comments.GET("/:commentId", h.Comments.Get)
				comments.PUT("/:commentId", h.Comments.Update)
				comments.DELETE("/:commentId", h.Comments.Delete)
			}
		}
	}
}
