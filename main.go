// File: ayursutra/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ayursutra/config"
	croncmd "ayursutra/cron"
	"ayursutra/database"
	bookingRepoPkg "ayursutra/database/repository/booking"
	therapyRepoPkg "ayursutra/database/repository/therapy"
	userRepoPkg "ayursutra/database/repository/user"
	"ayursutra/handlers"
	"ayursutra/middleware"
	"ayursutra/routes"
	"ayursutra/services/notification"
	"ayursutra/services/scheduling"
	"ayursutra/services/therapy"
	"ayursutra/services/user"
	"ayursutra/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	therapyRepo := therapyRepoPkg.NewMongoTherapyRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	if mongoBookings, ok := bookingRepo.(*bookingRepoPkg.MongoBookingRepo); ok {
		if err := mongoBookings.EnsureIndexes(); err != nil {
			logger.Sugar().Warnf("main: failed to ensure booking indexes: %v", err)
		}
	}

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	therapyService := &therapy.DefaultTherapyService{
		Repo:  therapyRepo,
		Cache: utils.GetCacheClient(),
	}

	notificationService := &notification.DefaultNotificationService{
		Bookings: bookingRepo,
		Users:    userRepo,
		SMS: notification.NewTwilioSender(
			config.AppConfig.TwilioAccountSID,
			config.AppConfig.TwilioAuthToken,
			config.AppConfig.TwilioFromNumber,
		),
		Email: notification.NewSendGridSender(
			config.AppConfig.SendGridAPIKey,
			config.AppConfig.EmailFrom,
			config.AppConfig.EmailFromName,
		),
	}

	schedulingService := &scheduling.DefaultSchedulingService{
		Bookings:  bookingRepo,
		Therapies: therapyRepo,
		Users:     userRepo,
		Notifier:  notificationService,
	}

	userHandler := handlers.NewUserHandler(userService)
	therapyHandler := handlers.NewTherapyHandler(therapyService)
	bookingHandler := handlers.NewBookingHandler(schedulingService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// User endpoints.
		RegisterUserHandler:      userHandler.RegisterHandler,
		AuthenticateUserHandler:  userHandler.LoginHandler,
		MeHandler:                userHandler.MeHandler,
		ListPractitionersHandler: userHandler.PractitionersHandler,

		// Therapy endpoints.
		CreateTherapyHandler: therapyHandler.CreateHandler,
		ListTherapiesHandler: therapyHandler.ListHandler,
		GetTherapyHandler:    therapyHandler.GetHandler,

		// Booking endpoints.
		CreateBookingHandler:        bookingHandler.CreateBookingHandler,
		MyBookingsHandler:           bookingHandler.MyBookingsHandler,
		PractitionerBookingsHandler: bookingHandler.PractitionerBookingsHandler,
		RescheduleAllHandler:        bookingHandler.RescheduleAllHandler,
		RescheduleOneHandler:        bookingHandler.RescheduleOneHandler,
		CompleteSessionHandler:      bookingHandler.CompleteSessionHandler,
		MissSessionHandler:          bookingHandler.MissSessionHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background work: the reminder queue worker plus the periodic sweep.
	croncmd.InitReminderWorker(notificationService)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	sweeper := &croncmd.Sweeper{
		Scheduler: schedulingService,
		Bookings:  bookingRepo,
		Therapies: therapyRepo,
		Queue:     croncmd.NewReminderQueueClient(),
	}
	go sweeper.Start(sweepCtx, config.AppConfig.RescheduleInterval)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8000"
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
	stopSweep()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
