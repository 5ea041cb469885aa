package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artisanhub/config"
	"artisanhub/database"
	adminRepoPkg "artisanhub/database/repository/admin"
	artisanRepoPkg "artisanhub/database/repository/artisan"
	bookingRepoPkg "artisanhub/database/repository/booking"
	reviewRepoPkg "artisanhub/database/repository/review"
	studentRepoPkg "artisanhub/database/repository/student"
	"artisanhub/handlers"
	"artisanhub/middleware"
	"artisanhub/routes"
	"artisanhub/services/admin"
	"artisanhub/services/artisan"
	"artisanhub/services/booking"
	"artisanhub/services/notification"
	"artisanhub/services/review"
	"artisanhub/services/student"
	"artisanhub/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	studentRepo := studentRepoPkg.NewMongoStudentRepo()
	artisanRepo := artisanRepoPkg.NewMongoArtisanRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()

	// services.
	notifier := &notification.DefaultNotifier{
		Students: studentRepo,
		Artisans: artisanRepo,
		FCM:      utils.FCMClient,
	}

	studentService := &student.DefaultStudentService{
		Repo: studentRepo,
	}
	artisanService := &artisan.DefaultArtisanService{
		Repo:     artisanRepo,
		Notifier: notifier,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Artisans: artisanRepo,
		Notifier: notifier,
	}
	reviewService := &review.DefaultReviewService{
		Repo:     reviewRepo,
		Bookings: bookingRepo,
		Artisans: artisanRepo,
	}
	adminService := &admin.DefaultAdminService{
		Repo:     adminRepo,
		Artisans: artisanRepo,
		Students: studentRepo,
		Bookings: bookingRepo,
	}
	if err := adminService.Bootstrap(
		config.AppConfig.AdminName,
		config.AppConfig.AdminEmail,
		config.AppConfig.AdminPassword,
	); err != nil {
		logger.Sugar().Fatalf("main: failed to bootstrap admin account: %v", err)
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Students: handlers.NewStudentHandler(studentService),
		Artisans: handlers.NewArtisanHandler(artisanService, storageService, utils.GetCacheClient()),
		Bookings: handlers.NewBookingHandler(bookingService),
		Reviews:  handlers.NewReviewHandler(reviewService),
		Admin:    handlers.NewAdminHandler(adminService, artisanService, studentService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
