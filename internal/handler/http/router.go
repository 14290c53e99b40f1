package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/henok-tadesse/socialnet/internal/handler/http/middleware"
	usecasecontract "github.com/henok-tadesse/socialnet/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	userHandler     *UserHandler
	postHandler     *PostHandler
	reactionHandler *ReactionHandler
	userUsecase     usecasecontract.IUserUseCase
}

func NewRouter(userUsecase usecasecontract.IUserUseCase, postUsecase usecasecontract.IPostUseCase, reactionUsecase usecasecontract.IReactionUseCase) *Router {
	return &Router{
		userHandler:     NewUserHandler(userUsecase),
		postHandler:     NewPostHandler(postUsecase),
		reactionHandler: NewReactionHandler(reactionUsecase),
		userUsecase:     userUsecase,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.userHandler.RegisterHandler)
		auth.POST("/login", r.userHandler.LoginHandler)
		auth.POST("/refresh-token", r.userHandler.RefreshTokenHandler)
	}

	// Public user routes
	users := v1.Group("/users")
	{
		users.GET("/profile/:id", r.userHandler.GetUserHandler)
	}

	// Public post routes
	posts := v1.Group("/posts")
	{
		posts.GET("", r.postHandler.GetFeedHandler)
		posts.GET("/:postID", r.postHandler.GetPostHandler)
	}

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.userUsecase))
	{
		// Current user routes
		protected.GET("/me", r.userHandler.GetCurrentUserHandler)
		protected.PUT("/me", r.userHandler.UpdateProfileHandler)

		// Post routes
		protected.POST("/posts", r.postHandler.CreatePostHandler)
		protected.DELETE("/posts/:postID", r.postHandler.DeletePostHandler)

		// Reaction routes
		protected.POST("/posts/:postID/reactions", r.reactionHandler.ToggleReactionHandler)
		protected.GET("/posts/:postID/reactions", r.reactionHandler.GetReactionHandler)
	}

	// Logout accepts the refresh token from the request body and invalidates the session
	v1.POST("/logout", r.userHandler.LogoutHandler)
}
