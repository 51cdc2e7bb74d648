package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/luciddatattoo/studio-scheduler/internal/audit"
	"github.com/luciddatattoo/studio-scheduler/internal/cache"
	"github.com/luciddatattoo/studio-scheduler/internal/config"
	"github.com/luciddatattoo/studio-scheduler/internal/handlers"
	infraRepo "github.com/luciddatattoo/studio-scheduler/internal/infra/repository"
	"github.com/luciddatattoo/studio-scheduler/internal/middleware"
	"github.com/luciddatattoo/studio-scheduler/internal/notify"
	ucAppointment "github.com/luciddatattoo/studio-scheduler/internal/usecase/appointment"
	ucBooking "github.com/luciddatattoo/studio-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	mailer := notify.NewMailer(cfg)
	notifyDispatcher := notify.NewDispatcher(mailer, db)

	availCache := cache.NewAvailability(rdb)

	// ======================================================
	// 🧠 USE CASES — RESERVA PÚBLICA
	// ======================================================
	createLinkUC := ucBooking.NewCreateBookingLink(
		bookingRepo,
		auditDispatcher,
	)

	linkInfoUC := ucBooking.NewGetLinkInfo(bookingRepo)

	availableDatesUC := ucBooking.NewGetAvailableDates(
		bookingRepo,
		availCache,
	)

	availableTimesUC := ucBooking.NewGetAvailableTimes(bookingRepo)

	bookUC := ucBooking.NewBookAppointment(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
		availCache,
	)

	// ======================================================
	// 🧠 USE CASES — PAINEL DA ARTISTA
	// ======================================================
	listUpcomingUC := ucAppointment.NewListUpcoming(bookingRepo)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		bookingRepo,
		auditDispatcher,
		availCache,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		bookingRepo,
		auditDispatcher,
		availCache,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	bookingLinksHandler := handlers.NewBookingLinksHandler(db, cfg, createLinkUC)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db, availCache)
	overridesHandler := handlers.NewOverridesHandler(db, availCache)

	appointmentsHandler := handlers.NewAppointmentsHandler(
		listUpcomingUC,
		cancelAppointmentUC,
		updateAppointmentUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicBookingHandler := handlers.NewPublicBookingHandler(
		linkInfoUC,
		availableDatesUC,
		availableTimesUC,
		bookUC,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (via link de uso único)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/booking/:token", publicBookingHandler.LinkInfo)
			publicAPI.GET("/booking/:token/dates", publicBookingHandler.AvailableDates)
			publicAPI.GET("/booking/:token/times", publicBookingHandler.AvailableTimes)
			publicAPI.POST("/booking/:token", publicBookingHandler.Book)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me/push-token", meHandler.UpdatePushToken)

			secured.POST("/me/booking-links", bookingLinksHandler.Create)
			secured.GET("/me/booking-links", bookingLinksHandler.List)

			secured.GET("/me/working-hours", workingHoursHandler.Get)
			secured.PUT("/me/working-hours", workingHoursHandler.Update)

			secured.GET("/me/overrides", overridesHandler.List)
			secured.POST("/me/overrides", overridesHandler.Create)
			secured.DELETE("/me/overrides/:id", overridesHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentsHandler.ListUpcoming)
			secured.PATCH("/me/appointments/:id", appointmentsHandler.Update)
			secured.PATCH("/me/appointments/:id/cancel", appointmentsHandler.Cancel)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
