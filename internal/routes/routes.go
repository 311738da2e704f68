package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/styllus/barber-site/internal/audit"
	"github.com/styllus/barber-site/internal/config"
	"github.com/styllus/barber-site/internal/handlers"
	infraRepo "github.com/styllus/barber-site/internal/infra/repository"
	"github.com/styllus/barber-site/internal/middleware"
	ucAppointment "github.com/styllus/barber-site/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	// A coleção vive em memória e nasce com os dados de demonstração.
	appointmentRepo := infraRepo.NewAppointmentMemoryRepository(infraRepo.DefaultSeed())

	auditLogger := audit.New(500)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg)

	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentRepo,
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(appointmentRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	publicHandler := handlers.NewPublicHandler(createAppointmentUC)
	publicWebHandler := handlers.NewPublicWebHandler()
	appWebHandler := handlers.NewAppWebHandler()

	// ======================================================
	// 🌍 ROTAS WEB (HTML)
	// ======================================================
	r.GET("/", publicWebHandler.ShowHomePage)

	webApp := r.Group("/web/app")
	{
		webApp.GET("/login", appWebHandler.LoginPage)
		webApp.GET("/dashboard", appWebHandler.Dashboard)
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/gallery", publicHandler.ListGallery)
			publicAPI.GET("/time-slots", publicHandler.ListTimeSlots)
			publicAPI.GET("/calendar", publicHandler.Calendar)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/dashboard", dashboardHandler.GetDashboard)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
