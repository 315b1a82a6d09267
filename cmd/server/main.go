package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron"

	config "github.com/adchartview/tips-api/configs"
	"github.com/adchartview/tips-api/internal/api/handlers"
	"github.com/adchartview/tips-api/internal/api/middleware"
	job "github.com/adchartview/tips-api/internal/jobs"
	"github.com/adchartview/tips-api/internal/queue"
	"github.com/adchartview/tips-api/internal/repository"
	"github.com/adchartview/tips-api/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
		BodyLimit:    20 * 1024 * 1024, // 20 MB, enough for chart images
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	userRepo := repository.NewUserRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	tipRepo := repository.NewTipRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	planRepo := repository.NewPlanRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	otpRepo := repository.NewOtpRepository(db)

	authService := service.NewAuthService(*cfg, userRepo)
	userService := service.NewUserService(userRepo)
	r2Service := service.NewR2Service(*cfg)
	pushService := service.NewPushService(*cfg)
	smsService := service.NewSMSService(*cfg)
	entitlementService := service.NewEntitlementService(subscriptionRepo)
	notifierService := service.NewNotifierService(*cfg, subscriptionRepo, notificationRepo, pushService)
	tipService := service.NewTipService(userRepo, tipRepo, entitlementService, notifierService, r2Service)
	subscriptionService := service.NewSubscriptionService(*cfg, db, userRepo, subscriptionRepo, planRepo, paymentRepo)
	otpService := service.NewOtpService(otpRepo)
	adminService := service.NewAdminService(userRepo, subscriptionRepo, tipRepo, paymentRepo)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	auth := handlers.NewAuthHandler(*cfg, authService)
	app.Get("/login", auth.Login)
	app.Get("/login/callback", auth.LoginCallbackHandler)

	otp := handlers.NewOtpHandler(otpService, client)
	app.Post("/otp/send", otp.SendOtp)
	app.Post("/otp/verify", otp.VerifyOtp)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	user := handlers.NewUserHandler(userService)
	api.Get("/user/info", user.GetUserInfo)
	api.Post("/user/update", user.UpdateProfile)
	api.Post("/push/register", user.RegisterPushEndpoint)

	subscription := handlers.NewSubscriptionHandler(entitlementService, planRepo)
	api.Get("/user/subscriptions", subscription.ListActive)
	api.Get("/plans", subscription.ListPlans)

	payment := handlers.NewPaymentHandler(subscriptionService)
	api.Post("/payment/verify", payment.VerifyPayment)

	tip := handlers.NewTipHandler(tipService)
	api.Get("/tips", tip.ListTips)
	api.Post("/tips", tip.CreateTip)
	api.Put("/tips", tip.UpdateTip)
	api.Delete("/tips", tip.RemoveTip)

	notification := handlers.NewNotificationHandler(notificationRepo)
	api.Get("/notifications", notification.ListNotifications)
	api.Post("/notifications/seen", notification.MarkSeen)

	admin := handlers.NewAdminHandler(adminService)
	api.Get("/admin/stats", admin.GetStats)

	// cron jobs
	otpCleanupJob := job.NewOtpCleanupJob(otpRepo)

	// queue
	queueW := queue.NewQueue(smsService)

	c := cron.New()
	c.AddFunc("@every 00h10m00s", otpCleanupJob.CleanupExpired)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypeOtpSMS, queueW.HandleOtpSMSTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
