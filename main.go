package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"pupinn-backend/config"
	"pupinn-backend/controllers"
	"pupinn-backend/routes"
	"pupinn-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot issue or verify tokens.")
	}

	tokenTTL := 24 * time.Hour
	if raw := os.Getenv("JWT_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("❌ ERROR: invalid JWT_TTL %q: %v", raw, err)
		}
		tokenTTL = ttl
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}

	// Initialize services
	userService := services.NewUserService(db)
	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db)
	noteService := services.NewGuestNoteService(db)
	employeeService := services.NewEmployeeService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(userService, jwtSecret, tokenTTL)
	roomController := controllers.NewRoomController(roomService, bookingService)
	bookingController := controllers.NewBookingController(bookingService)
	guestBookingController := controllers.NewGuestBookingController(bookingService)
	noteController := controllers.NewGuestNoteController(noteService, userService)
	employeeController := controllers.NewEmployeeController(employeeService)

	router := routes.SetupRouter(
		authController,
		roomController,
		bookingController,
		guestBookingController,
		noteController,
		employeeController,
		jwtSecret,
	)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
