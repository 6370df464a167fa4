package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/LavaJatoPro/carwash-scheduler/internal/audit"
	"github.com/LavaJatoPro/carwash-scheduler/internal/config"
	"github.com/LavaJatoPro/carwash-scheduler/internal/handlers"
	infraRepo "github.com/LavaJatoPro/carwash-scheduler/internal/infra/repository"
	"github.com/LavaJatoPro/carwash-scheduler/internal/middleware"
	"github.com/LavaJatoPro/carwash-scheduler/internal/payments"
	"github.com/LavaJatoPro/carwash-scheduler/internal/settings"
	"github.com/LavaJatoPro/carwash-scheduler/internal/storage"
	ucschedule "github.com/LavaJatoPro/carwash-scheduler/internal/usecase/schedule"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *logrus.Logger,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	settingsStore := settings.New(db, rdb, log)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	var paymentGW ucschedule.PaymentGateway
	if cfg.MPAccessToken != "" {
		gw, err := payments.New(cfg.MPAccessToken, log)
		if err != nil {
			log.WithError(err).Warn("mercado pago disabled")
		} else {
			paymentGW = gw
		}
	}

	var photoStore ucschedule.PhotoStore
	if cfg.S3Bucket != "" {
		photoStore = storage.New(storage.Options{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			BaseURL:   cfg.S3BaseURL,
		})
	}

	// ======================================================
	// USE CASES: SCHEDULES
	// ======================================================
	createStaffUC := ucschedule.NewCreateStaffSchedule(
		scheduleRepo,
		settingsStore,
		auditDispatcher,
		log,
	)

	createPortalUC := ucschedule.NewCreatePortalSchedule(
		scheduleRepo,
		settingsStore,
		paymentGW,
		auditDispatcher,
		log,
	)

	updateUC := ucschedule.NewUpdateSchedule(
		scheduleRepo,
		settingsStore,
		auditDispatcher,
	)

	rescheduleUC := ucschedule.NewReschedulePortal(
		scheduleRepo,
		settingsStore,
		auditDispatcher,
	)

	deleteUC := ucschedule.NewDeleteSchedule(scheduleRepo, auditDispatcher)
	startUC := ucschedule.NewStartSchedule(scheduleRepo, auditDispatcher)
	completeUC := ucschedule.NewCompleteSchedule(scheduleRepo, auditDispatcher)
	cancelUC := ucschedule.NewCancelSchedule(scheduleRepo, auditDispatcher)
	payUC := ucschedule.NewPaySchedule(scheduleRepo, auditDispatcher)

	listUC := ucschedule.NewListSchedules(scheduleRepo)
	getUC := ucschedule.NewGetSchedule(scheduleRepo)
	availabilityUC := ucschedule.NewGetAvailability(scheduleRepo, settingsStore)
	suggestedUC := ucschedule.NewSuggestedSlots(scheduleRepo, settingsStore)
	historyUC := ucschedule.NewClientHistory(scheduleRepo)
	lastUC := ucschedule.NewLastSchedule(scheduleRepo)
	photoUC := ucschedule.NewAttachPhoto(scheduleRepo, photoStore, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	scheduleHandler := handlers.NewScheduleHandler(
		createStaffUC,
		updateUC,
		deleteUC,
		startUC,
		completeUC,
		cancelUC,
		payUC,
		listUC,
		getUC,
		availabilityUC,
		photoUC,
	)

	portalHandler := handlers.NewPortalHandler(
		createPortalUC,
		rescheduleUC,
		suggestedUC,
		historyUC,
		lastUC,
	)

	settingsHandler := handlers.NewSettingsHandler(settingsStore, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/portal/auth/register", authHandler.PortalRegister)
		api.POST("/portal/auth/login", authHandler.PortalLogin)

		// ------------------------------
		// STAFF
		// ------------------------------
		staff := api.Group("/")
		staff.Use(middleware.AuthStaff(cfg))
		{
			staff.GET("/schedule", scheduleHandler.List)
			staff.GET("/schedule/available-times", scheduleHandler.AvailableTimes)
			staff.GET("/schedule/:id", scheduleHandler.Get)

			staff.POST("/schedule", scheduleHandler.Create)
			staff.PUT("/schedule/:id", scheduleHandler.Update)
			staff.DELETE("/schedule/:id", scheduleHandler.Delete)

			staff.PATCH("/schedule/:id/start", scheduleHandler.Start)
			staff.PATCH("/schedule/:id/complete", scheduleHandler.Complete)
			staff.PATCH("/schedule/:id/cancel", scheduleHandler.Cancel)
			staff.PATCH("/schedule/:id/pay", scheduleHandler.Pay)
			staff.POST("/schedule/:id/photo", scheduleHandler.UploadPhoto)

			admin := staff.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/settings", settingsHandler.Get)
				admin.PUT("/settings", settingsHandler.Update)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}

		// ------------------------------
		// PORTAL (customers)
		// ------------------------------
		portal := api.Group("/portal")
		portal.Use(middleware.AuthPortal(cfg))
		{
			portal.POST("/schedule", portalHandler.CreateSchedule)
			portal.PATCH("/schedule/:id/reschedule", portalHandler.Reschedule)
			portal.GET("/slots/suggested", portalHandler.SuggestedSlots)
			portal.GET("/history", portalHandler.History)
			portal.GET("/last-schedule", portalHandler.LastSchedule)
		}
	}
}
