package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"dental-clinic-server/internal/config"
	"dental-clinic-server/internal/handlers"
	"dental-clinic-server/internal/schedule"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, log *logrus.Logger, calendar *schedule.HolidayCalendar) {
	// Initialize handlers
	patientHandler := handlers.NewPatientHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(db)
	treatmentHandler := handlers.NewTreatmentHandler(db)
	labWorkHandler := handlers.NewLabWorkHandler(db, cfg.MaxUploadSizeMB)
	prescriptionHandler := handlers.NewPrescriptionHandler(db, cfg.Clinic)
	holidayHandler := handlers.NewHolidayHandler(db, calendar)
	paymentHandler := handlers.NewPaymentHandler(db)
	closureHandler := handlers.NewClosureHandler(schedule.NewClosureManager(db, log), calendar)

	api := router.Group("/api/v1")
	{
		// Patient registration and records
		patientRoutes := api.Group("/patients")
		{
			patientRoutes.POST("", patientHandler.CreatePatient)
			patientRoutes.GET("", patientHandler.GetPatients)
			patientRoutes.GET("/:id", patientHandler.GetPatientByID)
			patientRoutes.PUT("/:id", patientHandler.UpdatePatient)
			patientRoutes.GET("/:id/summary", patientHandler.GetPatientSummary)
			patientRoutes.GET("/:id/ledger", paymentHandler.GetPatientLedger)
		}

		// Appointment scheduling
		appointmentRoutes := api.Group("/appointments")
		{
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("", appointmentHandler.GetAppointments)
			appointmentRoutes.GET("/today", appointmentHandler.GetTodaysAppointments)
			appointmentRoutes.GET("/week", appointmentHandler.GetWeekAppointments)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.PATCH("/:id/status", appointmentHandler.UpdateAppointmentStatus)
			appointmentRoutes.PATCH("/:id/reschedule", appointmentHandler.RescheduleAppointment)
		}

		// Treatment sessions
		treatmentRoutes := api.Group("/treatments")
		{
			treatmentRoutes.POST("", treatmentHandler.CreateTreatment)
			treatmentRoutes.GET("", treatmentHandler.GetTreatments)
			treatmentRoutes.GET("/:id", treatmentHandler.GetTreatmentByID)
			treatmentRoutes.PATCH("/:id/status", treatmentHandler.UpdateTreatmentStatus)
		}

		// Lab work orders and their file attachments
		labWorkRoutes := api.Group("/lab-work")
		{
			labWorkRoutes.POST("", labWorkHandler.CreateLabWork)
			labWorkRoutes.GET("", labWorkHandler.GetLabWork)
			labWorkRoutes.GET("/:id", labWorkHandler.GetLabWorkByID)
			labWorkRoutes.PUT("/:id", labWorkHandler.UpdateLabWork)
			labWorkRoutes.DELETE("/:id", labWorkHandler.DeleteLabWork)
			labWorkRoutes.POST("/:id/attachments", labWorkHandler.UploadLabWorkAttachment)

			// Attachment ID is globally unique, so retrieval sits outside
			// the per-order group.
			api.GET("/lab-work/attachments/:attachmentId", labWorkHandler.GetLabWorkAttachment)
		}

		// Prescriptions and their export documents
		prescriptionRoutes := api.Group("/prescriptions")
		{
			prescriptionRoutes.POST("", prescriptionHandler.CreatePrescription)
			prescriptionRoutes.GET("", prescriptionHandler.GetPrescriptions)
			prescriptionRoutes.GET("/:id", prescriptionHandler.GetPrescriptionByID)
			prescriptionRoutes.GET("/:id/document", prescriptionHandler.GetPrescriptionDocument)
		}

		// Clinic holidays (source of truth for the holiday predicate)
		holidayRoutes := api.Group("/holidays")
		{
			holidayRoutes.POST("", holidayHandler.CreateHoliday)
			holidayRoutes.GET("", holidayHandler.GetHolidays)
			holidayRoutes.DELETE("/:id", holidayHandler.DeleteHoliday)
		}

		// Patient ledger
		api.POST("/payments", paymentHandler.CreatePaymentEntry)

		// Clinic closure workflow and calendar availability
		closureRoutes := api.Group("/closures")
		{
			closureRoutes.POST("/preview", closureHandler.PreviewClosure)
			closureRoutes.POST("/apply", closureHandler.ApplyClosure)
		}
		api.GET("/schedule/availability", closureHandler.GetDayAvailability)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
