// Package router contains routing for the API delivery.
package router

import (
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	CategoryHandler     *handler.CategoryHandler
	ShopHandler         *handler.ShopHandler
	PostHandler         *handler.PostHandler
	VoteHandler         *handler.VoteHandler
	CommentHandler      *handler.CommentHandler
	SubscriptionHandler *handler.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimiter         *middleware.RateLimiter
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	categoryHandler     *handler.CategoryHandler
	shopHandler         *handler.ShopHandler
	postHandler         *handler.PostHandler
	voteHandler         *handler.VoteHandler
	commentHandler      *handler.CommentHandler
	subscriptionHandler *handler.SubscriptionHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimiter         *middleware.RateLimiter
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		categoryHandler:     params.CategoryHandler,
		shopHandler:         params.ShopHandler,
		postHandler:         params.PostHandler,
		voteHandler:         params.VoteHandler,
		commentHandler:      params.CommentHandler,
		subscriptionHandler: params.SubscriptionHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimiter:         params.RateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/register-admin", r.authHandler.RegisterAdmin)
		authGroup.POST("/login", r.authHandler.Login)
	}

	categoriesGroup := apiV1.Group("/categories")
	{
		categoriesGroup.GET("", r.categoryHandler.List)
		categoriesGroup.POST("", r.categoryHandler.Create, r.authMiddleware.Authenticate, requireAdmin)
		categoriesGroup.PATCH("/:id", r.categoryHandler.Update, r.authMiddleware.Authenticate, requireAdmin)
		categoriesGroup.DELETE("/:id", r.categoryHandler.Delete, r.authMiddleware.Authenticate, requireAdmin)
	}

	shopsGroup := apiV1.Group("/shops")
	shopsGroup.Use(r.authMiddleware.Authenticate)
	{
		shopsGroup.POST("", r.shopHandler.Create, r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleVendor))
		shopsGroup.GET("", r.shopHandler.List)
		shopsGroup.GET("/my", r.shopHandler.MyShops)
		shopsGroup.GET("/slug/:slug", r.shopHandler.GetBySlug)
		shopsGroup.GET("/:id", r.shopHandler.GetByID)
	}

	postsGroup := apiV1.Group("/posts")
	{
		postsGroup.GET("", r.postHandler.List, r.authMiddleware.Optional)
		postsGroup.POST("", r.postHandler.Create, r.authMiddleware.Authenticate)
		postsGroup.GET("/:id", r.postHandler.GetByID, r.authMiddleware.Optional)
		postsGroup.PATCH("/:id/approve", r.postHandler.Approve, r.authMiddleware.Authenticate, requireAdmin)
		postsGroup.PATCH("/:id/reject", r.postHandler.Reject, r.authMiddleware.Authenticate, requireAdmin)
	}

	// Votes and comments are write-heavy and share the rate limiter.
	votesGroup := postsGroup.Group("/:postId/votes", r.authMiddleware.Authenticate, r.rateLimiter.Limit)
	{
		votesGroup.POST("/upvote", r.voteHandler.Upvote)
		votesGroup.POST("/downvote", r.voteHandler.Downvote)
		votesGroup.POST("/unvote", r.voteHandler.Unvote)
	}

	commentsGroup := postsGroup.Group("/:postId/comments")
	{
		commentsGroup.GET("", r.commentHandler.List)
		commentsGroup.POST("", r.commentHandler.Create, r.authMiddleware.Authenticate, r.rateLimiter.Limit)
		commentsGroup.DELETE("/:commentId", r.commentHandler.Delete, r.authMiddleware.Authenticate, requireAdmin)
	}

	subscriptionsGroup := apiV1.Group("/subscriptions")
	subscriptionsGroup.Use(r.authMiddleware.Authenticate)
	{
		subscriptionsGroup.POST("/checkout", r.subscriptionHandler.Checkout)
		subscriptionsGroup.GET("/status", r.subscriptionHandler.Status)
	}
}
