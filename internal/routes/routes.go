package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dcarehealth/transport-api/internal/audit"
	"github.com/dcarehealth/transport-api/internal/config"
	"github.com/dcarehealth/transport-api/internal/dispatch"
	"github.com/dcarehealth/transport-api/internal/handlers"
	infraRepo "github.com/dcarehealth/transport-api/internal/infra/repository"
	"github.com/dcarehealth/transport-api/internal/middleware"
	"github.com/dcarehealth/transport-api/internal/token"
	ucBooking "github.com/dcarehealth/transport-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	notifier dispatch.Notifier,
) {

	// ------------------------------
	// Infra (singletons)
	// ------------------------------
	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)

	bookingRepo := infraRepo.NewBookingGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ------------------------------
	// Use cases — bookings
	// ------------------------------
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		notifier,
	)

	listBookingsUC := ucBooking.NewListBookings(
		bookingRepo,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
	)

	// ------------------------------
	// Handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(userRepo, tokens, auditDispatcher)
	dashboardHandler := handlers.NewDashboardHandler(db)
	profileHandler := handlers.NewProfileHandler(db, auditDispatcher)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		listBookingsUC,
		cancelBookingUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ------------------------------
	// API (JSON)
	// ------------------------------
	api := r.Group("/api")
	{
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.GET("/dashboard", dashboardHandler.Get)

			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.List)
			secured.DELETE("/bookings", bookingHandler.Cancel)

			secured.POST("/patient/profile", profileHandler.Save)
			secured.GET("/patient/profile", profileHandler.Get)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
