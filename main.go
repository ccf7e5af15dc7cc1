package main

import (
	"fmt"
	"log"

	"github.com/yaeboye/cityspark-events/applications/auth"
	"github.com/yaeboye/cityspark-events/applications/event"
	"github.com/yaeboye/cityspark-events/applications/serp"
	"github.com/yaeboye/cityspark-events/applications/user"
	"github.com/yaeboye/cityspark-events/applications/weather"
	"github.com/yaeboye/cityspark-events/config"
	"github.com/yaeboye/cityspark-events/controllers"
	"github.com/yaeboye/cityspark-events/db"
	"github.com/yaeboye/cityspark-events/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file. Continuing...")
	}

	logger.Log.Info("[main] program started")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration loading failed: %v", err)
	}
	auth.SetSigningKey(cfg.JWTSecret)

	e := echo.New()

	// Global Middleware: Logger and CORS. The search and weather endpoints
	// are called straight from browser components, so cross-origin access
	// stays permissive and OPTIONS pre-flights are answered here.
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
	}))

	// --- DATABASE CONNECTION ---
	logger.Log.Info("[main] Attempting to connect to PostgreSQL...")
	if err := db.InitDB(cfg.DatabaseURL); err != nil {
		logger.Log.Error(fmt.Sprintf("[main] Database connection failed: %v", err))
		log.Fatalf("Database initialization failed: %v", err)
	}
	logger.Log.Info("[main] Database connection successful.")
	defer db.DB.Close()

	// --- MIGRATIONS ---
	logger.Log.Info("[main] Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.Log.Error(fmt.Sprintf("[main] Database migration failed: %v", err))
		log.Fatalf("Database migration failed: %v", err)
	}

	// Seed the admin account so the panel is reachable on a fresh install.
	if err := user.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Log.Error(fmt.Sprintf("[main] Admin seeding failed: %v", err))
	}

	// --- PROVIDER WIRING ---
	controllers.Init(
		event.NewAggregator(serp.NewClient(cfg.SerpAPIKey)),
		weather.NewNormalizer(weather.NewClient(cfg.OpenWeatherMapKey)),
	)

	// --- 1. PUBLIC ROUTES (No Auth Required) ---
	logger.Log.Info("[router] Registering public routes.")

	e.POST("/login", controllers.LoginHandler)
	e.POST("/register", controllers.RegisterHandler)

	// Provider-backed endpoints consumed directly by UI components.
	e.POST("/api/search-events", controllers.SearchEventsController)
	e.POST("/api/weather", controllers.GetWeatherController)

	e.GET("/api/v1/events", controllers.GetAllEventsController)
	e.GET("/api/v1/events/:eventID", controllers.GetEventController)
	e.GET("/api/v1/testimonials", controllers.GetTestimonialsController)

	// --- 2. PROTECTED GROUP (Requires Valid JWT Token) ---
	logger.Log.Info("[router] Configuring '/api/v1' protected group (JWT Required).")

	r := e.Group("/api/v1")
	r.Use(auth.JWTAuthMiddleware)

	// Tickets
	r.POST("/tickets", controllers.PurchaseTicketController)
	r.GET("/tickets", controllers.GetMyTicketsController)
	r.GET("/tickets/:ticketID/eticket", controllers.DownloadETicketController)

	// Bookmarks
	r.POST("/bookmarks", controllers.AddBookmarkController)
	r.GET("/bookmarks", controllers.GetBookmarksController)
	r.DELETE("/bookmarks/:bookmarkID", controllers.DeleteBookmarkController)

	// Testimonials
	r.POST("/testimonials", controllers.SubmitTestimonialController)

	// --- 3. ADMIN-ONLY GROUP (Requires JWT + Admin Role) ---
	logger.Log.Info("[router] Configuring '/api/v1/admin' group (Admin Role Required).")

	admin := r.Group("/admin")
	admin.Use(auth.AdminOnlyMiddleware)

	// Events moderation
	admin.POST("/events", controllers.CreateEventController)
	admin.PUT("/events/:eventID", controllers.UpdateEventController)
	admin.PATCH("/events/:eventID/approve", controllers.ApproveEventController)
	admin.PATCH("/events/:eventID/verify", controllers.VerifyEventController)
	admin.DELETE("/events/:eventID", controllers.DeleteEventController)
	admin.GET("/events/pending", controllers.GetPendingEventsController)

	// Ticket records
	admin.GET("/tickets", controllers.GetAllTicketsAdminController)
	admin.PATCH("/tickets/:ticketID/status", controllers.UpdatePaymentStatusController)

	// Testimonial moderation
	admin.GET("/testimonials", controllers.GetAllTestimonialsAdminController)
	admin.PATCH("/testimonials/:testimonialID/approve", controllers.ApproveTestimonialController)
	admin.DELETE("/testimonials/:testimonialID", controllers.DeleteTestimonialController)

	// 4. Start the server
	log.Printf("Starting Echo server on %s", cfg.ListenAddr)
	e.Logger.Fatal(e.Start(cfg.ListenAddr))
}
