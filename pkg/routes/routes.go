package pkg

import (
	"ClinicBook/internal/appointment"
	"ClinicBook/internal/auth"
	"ClinicBook/internal/config"
	"ClinicBook/internal/doctor"
	"ClinicBook/internal/notification"
	"ClinicBook/pkg/logger"
	"ClinicBook/pkg/middleware"
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var EchoModules = fx.Module("echo",
	fx.Provide(NewEchoServer),
	fx.Provide(logger.New),
	fx.Provide(config.NewMongoDBConfig),
	fx.Provide(config.NewMongoDBClient),
	fx.Provide(config.NewResendConfig),
	fx.Provide(config.NewEmailService),
	fx.Provide(auth.NewUserRepository),
	fx.Provide(auth.NewUserService),
	fx.Provide(auth.NewAuthHandler),
	fx.Provide(notification.NewNotificationRepository),
	fx.Provide(notification.NewNotificationService),
	fx.Provide(notification.NewNotificationHandler),
	fx.Provide(doctor.NewDoctorRepository),
	fx.Provide(doctor.NewDoctorService),
	fx.Provide(doctor.NewDoctorHandler),
	fx.Provide(appointment.NewAppointmentRepository),
	fx.Provide(appointment.NewAppointmentService),
	fx.Provide(appointment.NewAppointmentHandler),
	fx.Provide(NewAuthRateLimiter),
	fx.Invoke(config.EnsureIndexes),
	fx.Invoke(RegisterRoutes))

// NewAuthRateLimiter limits signup/login attempts per client IP.
func NewAuthRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(1, 5)
}

func NewEchoServer(lc fx.Lifecycle) *echo.Echo {
	e := echo.New()
	middleware.SetupMiddleware(e)
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Println("Server running on http://localhost:" + port)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(":" + port); err != nil {
					log.Fatal("Failed to start the server:", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("shutting down the server ...")
			return e.Shutdown(ctx)
		},
	})
	return e
}

func RegisterRoutes(
	e *echo.Echo,
	limiter *middleware.RateLimiter,
	authHandler *auth.AuthHandler,
	notificationHandler *notification.NotificationHandler,
	doctorHandler *doctor.DoctorHandler,
	appointmentHandler *appointment.AppointmentHandler,
) {
	api := e.Group("/api")

	users := api.Group("/users")
	users.POST("/signup", authHandler.Signup, limiter.Middleware)
	users.POST("/login", authHandler.Login, limiter.Middleware)

	doctors := api.Group("/doctors")
	doctors.GET("", doctorHandler.GetAll)
	doctors.GET("/approved-doctors", doctorHandler.GetApproved)

	// Everything below requires a verified identity.
	users.Use(middleware.JWTMiddleware)
	users.GET("", authHandler.GetAllUsers, middleware.CasbinMiddleware)
	users.GET("/verify-user", authHandler.VerifyUser)
	users.GET("/verify-user/:id", authHandler.VerifyUser)
	users.GET("/:id", authHandler.GetUser)
	users.DELETE("/:id", authHandler.DeleteUser, middleware.CasbinMiddleware)
	users.POST("/book-appointment", appointmentHandler.Book)
	users.GET("/user-appointments/:id", appointmentHandler.UserAppointments)
	users.POST("/mark-all-notification-as-seen", notificationHandler.MarkAllSeen)
	users.POST("/delete-all-notifications", notificationHandler.DeleteAll)
	users.POST("/change-doctor-status", doctorHandler.ChangeStatus, middleware.CasbinMiddleware)

	doctors.Use(middleware.JWTMiddleware)
	doctors.POST("/signup", doctorHandler.Apply)
	doctors.GET("/:id", doctorHandler.Get)
	doctors.PUT("/:id", doctorHandler.Update)
	doctors.GET("/appointments/:id", appointmentHandler.DoctorAppointments)
	doctors.GET("/booked-appointments/:id", appointmentHandler.BookedAppointments)
	doctors.POST("/change-appointment-status", appointmentHandler.ChangeStatus)
	doctors.POST("/check-booking-availability", appointmentHandler.CheckAvailability)
}
