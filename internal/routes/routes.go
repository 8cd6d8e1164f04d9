package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SweepOpsFR/sweep-scheduler/internal/audit"
	"github.com/SweepOpsFR/sweep-scheduler/internal/config"
	"github.com/SweepOpsFR/sweep-scheduler/internal/geo"
	"github.com/SweepOpsFR/sweep-scheduler/internal/handlers"
	infraRepo "github.com/SweepOpsFR/sweep-scheduler/internal/infra/repository"
	"github.com/SweepOpsFR/sweep-scheduler/internal/middleware"
	"github.com/SweepOpsFR/sweep-scheduler/internal/notify"
	ucBlock "github.com/SweepOpsFR/sweep-scheduler/internal/usecase/block"
	ucBooking "github.com/SweepOpsFR/sweep-scheduler/internal/usecase/booking"
	ucRoute "github.com/SweepOpsFR/sweep-scheduler/internal/usecase/route"
	"github.com/SweepOpsFR/sweep-scheduler/internal/zone"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	blockRepo := infraRepo.NewBlockGormRepository(db)
	technicianRepo := infraRepo.NewTechnicianGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifier := notify.NewDispatcher(notify.NewLogSender(log), log)

	zones := zone.New(cfg.ServedPostalPrefixes)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	geocoder := geo.NewCachedGeocoder(
		geo.NewHTTPGeocoder(cfg.GeocodeBaseURL),
		rdb,
		cfg.GeocodeTTL,
		log,
	)

	// ======================================================
	// USE CASES: BOOKINGS
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		blockRepo,
		zones,
		cfg,
	)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		blockRepo,
		zones,
		cfg,
		notifier,
		auditDispatcher,
	)

	transitionUC := ucBooking.NewTransitionBooking(
		bookingRepo,
		cfg,
		notifier,
		auditDispatcher,
	)

	cancelPublicUC := ucBooking.NewCancelPublicBooking(
		bookingRepo,
		cfg,
		notifier,
		auditDispatcher,
	)

	assignTechnicianUC := ucBooking.NewAssignTechnician(
		bookingRepo,
		technicianRepo,
		auditDispatcher,
	)

	getByRefUC := ucBooking.NewGetBookingByRef(bookingRepo)

	listByDateUC := ucBooking.NewListBookingsByDate(bookingRepo, cfg)
	listByMonthUC := ucBooking.NewListBookingsByMonth(bookingRepo, cfg)

	// ======================================================
	// USE CASES: BLOCKS & ROUTES
	// ======================================================
	blockDayUC := ucBlock.NewBlockDay(blockRepo, auditDispatcher)
	unblockUC := ucBlock.NewUnblock(blockRepo, auditDispatcher)
	listBlocksUC := ucBlock.NewListBlocks(blockRepo, cfg)

	buildRouteUC := ucRoute.NewBuildRoute(
		bookingRepo,
		technicianRepo,
		geocoder,
		log,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	publicHandler := handlers.NewPublicHandler(
		availabilityUC,
		createBookingUC,
		cancelPublicUC,
		getByRefUC,
		cfg,
	)

	bookingHandler := handlers.NewBookingHandler(
		availabilityUC,
		listByDateUC,
		listByMonthUC,
		transitionUC,
		assignTechnicianUC,
		cfg,
	)

	blockHandler := handlers.NewBlockHandler(
		blockDayUC,
		unblockUC,
		listBlocksUC,
		cfg,
	)

	routeHandler := handlers.NewRouteHandler(buildRouteUC, cfg)
	technicianHandler := handlers.NewTechnicianHandler(
		technicianRepo,
		geocoder,
		auditDispatcher,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC FUNNEL
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
			publicAPI.GET("/bookings/:ref", publicHandler.GetBooking)
			publicAPI.PATCH("/bookings/:ref/cancel", publicHandler.CancelBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// BACK OFFICE
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/availability", bookingHandler.Availability)

			secured.GET("/bookings", bookingHandler.ListByDate)
			secured.GET("/bookings/month", bookingHandler.ListByMonth)
			secured.PATCH("/bookings/:id/status", bookingHandler.Transition)
			secured.PATCH("/bookings/:id/technician", bookingHandler.AssignTechnician)

			secured.GET("/blocks", blockHandler.List)
			secured.POST("/blocks", blockHandler.Create)
			secured.DELETE("/blocks", blockHandler.Delete)

			secured.GET("/technicians", technicianHandler.List)
			secured.POST("/technicians", technicianHandler.Create)
			secured.PATCH("/technicians/:id", technicianHandler.Update)

			secured.GET("/routes/:technicianId", routeHandler.Get)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
