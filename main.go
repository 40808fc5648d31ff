package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	appConfig "github.com/nkr-tech/nkr-tech-api/config"
	"github.com/nkr-tech/nkr-tech-api/controllers"
	"github.com/nkr-tech/nkr-tech-api/middleware"
	"github.com/nkr-tech/nkr-tech-api/services"
)

func main() {
	log.Println("Starting NKR Tech Solutions API server...")

	cfg, err := appConfig.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := appConfig.ConnectDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := appConfig.MigrateDatabase(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	if err := appConfig.SeedDefaultAdmin(db); err != nil {
		log.Fatalf("Failed to seed default admin: %v", err)
	}

	images, err := services.NewImageService(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize image storage: %v", err)
	}

	router := setupRouter(cfg, db, images)

	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter wires all routes and their controllers onto a Gin engine
func setupRouter(cfg *appConfig.Config, db *gorm.DB, images services.ImageService) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	mailer := services.NewEmailSender(cfg)
	notifier := services.NewNotifier(mailer, cfg.AdminEmail)
	sms := services.NewSMSSender(cfg)

	demoCtrl := controllers.NewDemoController(db, notifier)
	orderCtrl := controllers.NewOrderController(db, notifier)
	contactCtrl := controllers.NewContactController(db, notifier)
	feedbackCtrl := controllers.NewFeedbackController(db, notifier)
	statsCtrl := controllers.NewStatsController(db)
	authCtrl := controllers.NewAuthController(db, cfg.JWTSecret)
	adminCtrl := controllers.NewAdminController(db)
	userAuthCtrl := controllers.NewUserAuthController(db, cfg.JWTSecret, notifier, cfg.ResetBaseURL)
	otpCtrl := controllers.NewOTPController(db, cfg.JWTSecret, sms)
	uploadCtrl := controllers.NewUploadController(db, images)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheck)

		// Public intake endpoints
		api.POST("/demo", demoCtrl.CreateDemoRequest)
		api.POST("/orders", orderCtrl.CreateOrder)
		api.POST("/contact", contactCtrl.CreateContact)
		api.POST("/feedback", feedbackCtrl.SubmitFeedback)
		api.GET("/feedback", feedbackCtrl.ListApprovedFeedback)
		api.GET("/stats", statsCtrl.GetStats)

		// Admin session
		api.POST("/auth/login", authCtrl.AdminLogin)

		// Locally stored profile pictures
		api.GET("/uploads/:filename", uploadCtrl.GetUploadedImage)
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.RequireAuth(cfg.JWTSecret, middleware.AudienceAdmin))
	{
		admin.GET("/stats", adminCtrl.GetStats)
		admin.GET("/capabilities", adminCtrl.GetCapabilities)

		admin.GET("/demo", demoCtrl.ListDemoRequests)
		admin.PUT("/demo/:id", demoCtrl.UpdateDemoRequest)
		admin.DELETE("/demo/:id", demoCtrl.DeleteDemoRequest)

		admin.GET("/orders", orderCtrl.ListOrders)
		admin.PUT("/orders/:id", orderCtrl.UpdateOrder)
		admin.DELETE("/orders/:id", orderCtrl.DeleteOrder)

		admin.GET("/contacts", contactCtrl.ListContacts)
		admin.DELETE("/contacts/:id", contactCtrl.DeleteContact)

		admin.GET("/feedback", feedbackCtrl.ListFeedback)
		admin.PUT("/feedback/:id/approve", feedbackCtrl.ApproveFeedback)
		admin.DELETE("/feedback/:id", feedbackCtrl.DeleteFeedback)

		admin.GET("/users", adminCtrl.ListUsers)
		admin.PUT("/users/:id", adminCtrl.UpdateUser)
		admin.DELETE("/users/:id", adminCtrl.DeleteUser)

		// Capabilities not offered by this deployment
		admin.GET("/notifications", adminCtrl.NotImplemented)
		admin.GET("/payments", adminCtrl.NotImplemented)
		admin.GET("/developer-messages", adminCtrl.NotImplemented)
	}

	user := router.Group("/api/user")
	{
		user.POST("/signup", userAuthCtrl.Signup)
		user.POST("/login", userAuthCtrl.Login)
		user.POST("/google-signin", userAuthCtrl.GoogleSignIn)
		user.POST("/forgot-password", userAuthCtrl.ForgotPassword)
		user.POST("/reset-password", userAuthCtrl.ResetPassword)

		authed := user.Group("")
		authed.Use(middleware.RequireAuth(cfg.JWTSecret, middleware.AudienceUser))
		{
			authed.GET("/verify-token", userAuthCtrl.VerifyToken)
			authed.GET("/profile", userAuthCtrl.GetProfile)
			authed.PUT("/profile", userAuthCtrl.UpdateProfile)
			authed.POST("/change-password", userAuthCtrl.ChangePassword)
			authed.POST("/send-otp", otpCtrl.SendOTP)
			authed.POST("/verify-otp", otpCtrl.VerifyOTP)
			authed.POST("/profile-picture", uploadCtrl.UploadProfilePicture)
			authed.GET("/my-orders", orderCtrl.ListMyOrders)

			// Unbuilt account surfaces answer 501 behind the capability map
			authed.GET("/capabilities", userAuthCtrl.GetCapabilities)
			authed.GET("/notifications", userAuthCtrl.NotImplemented)
			authed.GET("/payments", userAuthCtrl.NotImplemented)
			authed.GET("/payment-methods", userAuthCtrl.NotImplemented)
			authed.POST("/contact-developer", userAuthCtrl.NotImplemented)
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "NKR Tech Solutions API is running",
	})
}
