package routes

import (
	"net/http"
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterServiceRoutes registers the public catalog and availability endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/services", hb.Services.ListServices)
	r.GET("/available", hb.Bookings.GetAvailable)
}

// RegisterUserRoutes registers account and role endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	verify := middleware.VerifyJWT(hb.Tokens)
	admin := middleware.RequireAdmin(hb.Admins)

	r.GET("/user", verify, hb.Users.ListUsers)
	r.GET("/admin/:email", hb.Users.IsAdmin)
	r.PUT("/user/admin/:email", verify, admin, hb.Users.MakeAdmin)
	r.PUT("/user/:email", hb.Users.UpsertUser)
}

// RegisterBookingRoutes registers booking and payment confirmation endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	verify := middleware.VerifyJWT(hb.Tokens)

	r.POST("/booking", hb.Bookings.CreateBooking)

	protected := r.Group("/booking")
	protected.Use(verify)
	{
		protected.GET("", hb.Bookings.ListBookings)
		protected.GET("/:id", hb.Bookings.GetBooking)
		protected.PATCH("/:id", hb.Bookings.ConfirmPayment)
	}

	r.GET("/notifications", verify, hb.Notifications.ListNotifications)
}

// RegisterDoctorRoutes registers doctor management endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	verify := middleware.VerifyJWT(hb.Tokens)
	admin := middleware.RequireAdmin(hb.Admins)

	r.GET("/doctor", verify, admin, hb.Doctors.ListDoctors)
	r.POST("/doctor", verify, hb.Doctors.AddDoctor)
	r.DELETE("/doctor/:id", verify, hb.Doctors.DeleteDoctor)
}

// RegisterPaymentRoutes registers the payment intent endpoint.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-payment-intent", middleware.VerifyJWT(hb.Tokens), hb.Payments.CreatePaymentIntent)
}

// RegisterHealthRoutes registers the liveness and health-check endpoints.
func RegisterHealthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doctors Portal server is running")
	})
	r.GET("/health", func(c *gin.Context) {
		if hb.Health == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		status := hb.Health.Status()
		code := http.StatusOK
		if !status.Mongo {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}
