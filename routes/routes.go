package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pupinn-backend/controllers"
	"pupinn-backend/middleware"
	"pupinn-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers onto the API surface. Staff routes sit
// behind staff/admin roles, guest portal routes behind any authenticated
// account, and the cleaner dashboard behind the cleaner role.
func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	gbc *controllers.GuestBookingController,
	gnc *controllers.GuestNoteController,
	ec *controllers.EmployeeController,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
		}

		authed := api.Group("")
		authed.Use(middleware.RequireAuth(jwtSecret))

		// Availability search is shared: staff pick rooms for walk-ins,
		// guests search before booking.
		authed.GET("/rooms/available", rc.AvailableRooms)

		staff := authed.Group("")
		staff.Use(middleware.RequireRole(models.RoleAdmin, models.RoleStaff))
		{
			rooms := staff.Group("/rooms")
			{
				rooms.GET("", rc.ListRooms)
				rooms.POST("", rc.CreateRoom)
				rooms.GET("/:id", rc.GetRoom)
				rooms.PUT("/:id", rc.UpdateRoom)
				rooms.PATCH("/:id", rc.UpdateRoom)
				rooms.GET("/:id/financials", bc.RoomFinancials)
			}

			bookings := staff.Group("/bookings")
			{
				bookings.GET("", bc.ListBookings)
				bookings.POST("", bc.CreateBooking)
				bookings.GET("/:id", bc.GetBooking)
				bookings.GET("/reference/:reference", bc.GetBookingByReference)
				bookings.POST("/:id/checkin", bc.CheckIn)
				bookings.POST("/:id/checkout", bc.CheckOut)
				bookings.POST("/:id/cancel", bc.Cancel)
			}

			guests := staff.Group("/guests")
			{
				guests.GET("", gnc.ListGuests)
				guests.GET("/:id/notes", gnc.ListNotes)
				guests.POST("/:id/notes", gnc.CreateNote)
			}
			staff.PUT("/guest-notes/:id", gnc.UpdateNote)
			staff.DELETE("/guest-notes/:id", gnc.DeleteNote)

			staff.GET("/settings/hotel", controllers.GetHotelSettings)
			staff.PUT("/settings/hotel", controllers.UpdateHotelSettings)
		}

		admin := authed.Group("/employees")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("", ec.ListEmployees)
			admin.POST("", ec.CreateEmployee)
			admin.GET("/:id", ec.GetEmployee)
			admin.PATCH("/:id", ec.UpdateEmployee)
			admin.POST("/:id/deactivate", ec.DeactivateEmployee)
			admin.POST("/:id/reactivate", ec.ReactivateEmployee)
			admin.POST("/:id/reset-password", ec.ResetPassword)
		}

		cleaner := authed.Group("/cleaner")
		cleaner.Use(middleware.RequireRole(models.RoleCleaner, models.RoleAdmin))
		{
			cleaner.GET("/rooms", rc.ListCleanerRooms)
			cleaner.PATCH("/rooms/:id/status", rc.UpdateCleanerRoomStatus)
		}

		guest := authed.Group("/guest")
		guest.Use(middleware.RequireRole(models.RoleGuest))
		{
			guest.POST("/bookings", gbc.CreateBooking)
			guest.GET("/bookings", gbc.ListBookings)
			guest.GET("/bookings/:id", gbc.GetBooking)
			guest.POST("/bookings/:id/cancel", gbc.Cancel)

			guest.POST("/proposals/resolve", gbc.ResolveProposal)
			guest.POST("/proposals/accept", gbc.AcceptProposal)
		}
	}

	return r
}
