// Package routes wires controllers onto the HTTP surface.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kadirhan/alumniport/internal/app/controllers"
	"github.com/kadirhan/alumniport/internal/middleware"
)

// SetupRouter configures all application routes.
//
// Three tiers: public auth routes, authenticated routes (profile and
// chat, reachable before verification) and verified routes (the
// dashboard surface an unverified account must not touch).
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	postController *controllers.PostController,
	jobController *controllers.JobController,
	eventController *controllers.EventController,
	mentorshipController *controllers.MentorshipController,
	adminController *controllers.AdminController,
	chatController *controllers.ChatController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	users := authenticated.Group("/users")
	{
		// Profile routes stay reachable for unverified accounts so
		// they can see their own pending state.
		users.GET("/profile", userController.GetMe)
		users.PUT("/profile", userController.UpdateProfile)
	}

	authenticated.POST("/chat", chatController.Chat)

	// --- Verified routes ---
	verified := authenticated.Group("")
	verified.Use(authMiddleware.VerifiedRequired())
	{
		usersVerified := verified.Group("/users")
		{
			usersVerified.GET("/alumni", userController.ListAlumni)
			usersVerified.GET("/:id", userController.GetProfile)
		}

		posts := verified.Group("/posts")
		{
			posts.GET("", postController.GetFeed)
			posts.POST("", postController.Create)
			posts.GET("/user/:id", postController.GetByUser)
			posts.PUT("/:id/like", postController.ToggleLike)
			posts.POST("/:id/comment", postController.Comment)
			posts.DELETE("/:id", postController.Delete)
		}

		jobs := verified.Group("/jobs")
		{
			jobs.GET("", jobController.GetAll)
			jobs.POST("", jobController.Create)
			jobs.DELETE("/:id", jobController.Delete)
		}

		events := verified.Group("/events")
		{
			events.GET("", eventController.GetAll)
			events.POST("", eventController.Create)
			events.PUT("/:id", eventController.Update)
			events.DELETE("/:id", eventController.Delete)
			events.PUT("/:id/register", eventController.Register)
			events.PUT("/:id/unregister", eventController.Unregister)
		}

		mentorship := verified.Group("/mentorship")
		{
			mentorship.POST("/request", mentorshipController.Send)
			mentorship.GET("/requests", mentorshipController.List)
			mentorship.PUT("/respond/:id", mentorshipController.Respond)
		}

		admin := verified.Group("/admin")
		{
			admin.GET("/verify", adminController.ListUnverified)
			admin.PUT("/verify/:id", adminController.Verify)
		}
	}
}
