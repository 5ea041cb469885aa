package routes

import (
	"net/http"
	"time"

	"artisanhub/handlers"
	"artisanhub/middleware"
	"artisanhub/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterStudentRoutes registers student account endpoints plus the public
// artisan discovery endpoints students browse before signing in.
func RegisterStudentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/students")
	{
		api.POST("/register", hb.Students.Register)
		api.POST("/login", hb.Students.Login)

		// Public discovery of approved artisans.
		api.GET("/artisans", hb.Artisans.Search)
		api.GET("/artisans/:id", hb.Artisans.GetByID)
		api.GET("/artisans/:id/previous-works", hb.Artisans.PublicPreviousWorks)
		api.GET("/artisans/:id/previous-works/:workId", hb.Artisans.PublicPreviousWork)

		// Protected routes (Require Authentication)
		api.Use(middleware.RequireRole(models.RoleStudent))
		api.PUT("/update", hb.Students.Update)
		api.POST("/logout", handlers.Logout)
		api.GET("/:id", hb.Students.GetByID)
	}
}

// RegisterArtisanRoutes registers artisan account and portfolio endpoints.
func RegisterArtisanRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/artisans")
	{
		api.POST("/register", hb.Artisans.Register)
		api.POST("/login", hb.Artisans.Login)

		// Protected routes (Require Authentication)
		api.Use(middleware.RequireRole(models.RoleArtisan))
		api.PUT("/update", hb.Artisans.Update)
		api.POST("/logout", handlers.Logout)
		api.POST("/previous-works", hb.Artisans.AddPreviousWork)
		api.GET("/previous-works", hb.Artisans.ListPreviousWorks)
		api.GET("/previous-works/:workId", hb.Artisans.GetPreviousWork)
		api.PUT("/previous-works/:workId", hb.Artisans.UpdatePreviousWork)
		api.DELETE("/previous-works/:workId", hb.Artisans.DeletePreviousWork)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints. Students
// create and list their bookings; only the assigned artisan may move a
// booking through its lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", middleware.RequireRole(models.RoleStudent), hb.Bookings.Create)
		api.GET("/student", middleware.RequireRole(models.RoleStudent), hb.Bookings.ListForStudent)
		api.GET("/artisan", middleware.RequireRole(models.RoleArtisan), hb.Bookings.ListForArtisan)
		api.PUT("/artisan/:bookingId", middleware.RequireRole(models.RoleArtisan), hb.Bookings.Transition)
	}
}

// RegisterReviewRoutes registers review submission and listing endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.POST("", middleware.RequireRole(models.RoleStudent), hb.Reviews.Submit)
		api.GET("/student/me", middleware.RequireRole(models.RoleStudent), hb.Reviews.ListMineStudent)
		api.GET("/artisan/me", middleware.RequireRole(models.RoleArtisan), hb.Reviews.ListMineArtisan)
		api.GET("/:artisanId", hb.Reviews.ListForArtisan)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", hb.Admin.Login)

		api.Use(middleware.RequireRole(models.RoleAdmin))
		api.PUT("/artisans/approve/:artisanId", hb.Admin.ApproveArtisan)
		api.PUT("/artisans/reject/:artisanId", hb.Admin.RejectArtisan)
		api.GET("/artisans", hb.Admin.ListArtisans)
		api.GET("/students", hb.Admin.ListStudents)
		api.DELETE("/students/:id", hb.Admin.DeleteStudent)
		api.GET("/analytics", hb.Admin.Analytics)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm ArtisanHub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterStudentRoutes(r, hb)
	RegisterArtisanRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
