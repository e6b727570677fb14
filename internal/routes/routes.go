package routes

import (
	"clinic-dashboard-server/internal/config"
	"clinic-dashboard-server/internal/handlers"
	"clinic-dashboard-server/internal/mailer"
	"clinic-dashboard-server/internal/middleware"
	"clinic-dashboard-server/internal/models"
	"clinic-dashboard-server/internal/schedule"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, log zerolog.Logger) {
	// Wire the scheduling service over the database-backed store.
	store := schedule.NewGormStore(db)
	svc := schedule.New(store, log)
	sender := mailer.New(cfg.SMTP, cfg.Clinic.Name)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	patientHandler := handlers.NewPatientHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(svc, log)
	reminderHandler := handlers.NewReminderHandler(svc, sender, db, log)
	settingsHandler := handlers.NewSettingsHandler(db, cfg)
	analyticsHandler := handlers.NewAnalyticsHandler(svc)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
			authRoutesPrivate.PUT("/profile", authHandler.UpdateProfile)
		}

		// Appointment routes: list/search, scheduling form, status changes,
		// calendar views and the dashboard counters.
		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.GET("", appointmentHandler.ListAppointments)
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.PATCH("/:id/status", appointmentHandler.UpdateAppointmentStatus)
			appointmentRoutes.GET("/day", appointmentHandler.GetDay)
			appointmentRoutes.GET("/month", appointmentHandler.GetMonth)
			appointmentRoutes.GET("/stats", appointmentHandler.GetStats)

			// Only admins can remove appointments outright.
			appointmentRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), appointmentHandler.DeleteAppointment)
		}

		// Patient record routes
		patientRoutes := private.Group("/patients")
		{
			patientRoutes.POST("", patientHandler.CreatePatient)
			patientRoutes.GET("", patientHandler.GetPatients)
			patientRoutes.GET("/:id", patientHandler.GetPatientByID)
			patientRoutes.PUT("/:id", patientHandler.UpdatePatient)
			patientRoutes.DELETE("/:id", middleware.RoleAuthMiddleware(models.RoleAdmin), patientHandler.DeletePatient)
		}

		// Reminder routes
		reminderRoutes := private.Group("/reminders")
		{
			reminderRoutes.POST("/send", reminderHandler.SendPending)
			reminderRoutes.GET("/log", reminderHandler.GetLog)
		}

		// Settings routes
		settingsRoutes := private.Group("/settings")
		{
			settingsRoutes.GET("", settingsHandler.GetSettings)
			settingsRoutes.PUT("/clinic", settingsHandler.UpdateClinic)
			settingsRoutes.PUT("/notifications", settingsHandler.UpdateNotifications)
		}

		// Analytics
		private.GET("/analytics", analyticsHandler.GetReport)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
