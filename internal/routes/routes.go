package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fitpulsehq/gym-manager/internal/audit"
	"github.com/fitpulsehq/gym-manager/internal/cache"
	"github.com/fitpulsehq/gym-manager/internal/config"
	"github.com/fitpulsehq/gym-manager/internal/domain/role"
	"github.com/fitpulsehq/gym-manager/internal/handlers"
	infraRepo "github.com/fitpulsehq/gym-manager/internal/infra/repository"
	"github.com/fitpulsehq/gym-manager/internal/middleware"
	ucAccount "github.com/fitpulsehq/gym-manager/internal/usecase/account"
	ucAttendance "github.com/fitpulsehq/gym-manager/internal/usecase/attendance"
	ucPayment "github.com/fitpulsehq/gym-manager/internal/usecase/payment"
	ucSubscription "github.com/fitpulsehq/gym-manager/internal/usecase/subscription"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, store *cache.Cache) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	subscriptionRepo := infraRepo.NewSubscriptionGormRepository(db)
	paymentRepo := infraRepo.NewPaymentGormRepository(db)
	attendanceRepo := infraRepo.NewAttendanceGormRepository(db)
	accountRepo := infraRepo.NewAccountGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	provisionUC := ucAccount.NewProvisionDefaultRole(accountRepo)

	createSubscriptionUC := ucSubscription.NewCreateSubscription(
		subscriptionRepo,
		auditDispatcher,
	)
	activateSubscriptionUC := ucSubscription.NewActivateSubscription(
		subscriptionRepo,
		auditDispatcher,
	)
	cancelSubscriptionUC := ucSubscription.NewCancelSubscription(
		subscriptionRepo,
		auditDispatcher,
	)
	checkExpiryUC := ucSubscription.NewCheckExpiry(
		subscriptionRepo,
		auditDispatcher,
	)

	createPaymentUC := ucPayment.NewCreatePayment(
		paymentRepo,
		auditDispatcher,
	)
	completePaymentUC := ucPayment.NewCompletePayment(
		paymentRepo,
		auditDispatcher,
	)
	failPaymentUC := ucPayment.NewFailPayment(
		paymentRepo,
		auditDispatcher,
	)

	checkInUC := ucAttendance.NewCheckIn(
		attendanceRepo,
		auditDispatcher,
	)
	checkOutUC := ucAttendance.NewCheckOut(
		attendanceRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, store, provisionUC)
	meHandler := handlers.NewMeHandler(db)
	planHandler := handlers.NewPlanHandler(db)
	memberHandler := handlers.NewMemberHandler(db)

	subscriptionHandler := handlers.NewSubscriptionHandler(
		db,
		subscriptionRepo,
		createSubscriptionUC,
		activateSubscriptionUC,
		cancelSubscriptionUC,
		checkExpiryUC,
	)

	paymentHandler := handlers.NewPaymentHandler(
		db,
		createPaymentUC,
		completePaymentUC,
		failPaymentUC,
	)

	attendanceHandler := handlers.NewAttendanceHandler(
		db,
		attendanceRepo,
		checkInUC,
		checkOutUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(db, store)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	publicHandler := handlers.NewPublicHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/plans", publicHandler.Plans)
			publicAPI.GET("/trainers", publicHandler.Trainers)
			publicAPI.GET("/pages/:slug", publicHandler.Page)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/verify", authHandler.Verify)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			// ------------------------------
			// MEMBER SELF-SERVICE
			// ------------------------------
			member := secured.Group("/me")
			member.Use(middleware.RequireRole(role.Member))
			{
				member.GET("/subscription", subscriptionHandler.MySubscription)
				member.GET("/attendance", attendanceHandler.MyAttendance)
				member.GET("/dashboard", dashboardHandler.Member)
			}

			// ------------------------------
			// TRAINER
			// ------------------------------
			trainer := secured.Group("/")
			trainer.Use(middleware.RequireRole(role.Trainer, role.Admin))
			{
				trainer.GET("/dashboard/trainer", dashboardHandler.Trainer)
			}

			// ------------------------------
			// FRONT DESK (STAFF / ADMIN)
			// ------------------------------
			desk := secured.Group("/")
			desk.Use(middleware.RequireRole(role.Staff, role.Admin))
			{
				desk.GET("/attendance", attendanceHandler.List)
				desk.POST("/attendance/check-in", attendanceHandler.CheckIn)
				desk.PATCH("/attendance/:id/check-out", attendanceHandler.CheckOut)

				desk.GET("/subscriptions", subscriptionHandler.List)
				desk.POST("/subscriptions", subscriptionHandler.Create)
				desk.PATCH("/subscriptions/:id/activate", subscriptionHandler.Activate)
				desk.PATCH("/subscriptions/:id/cancel", subscriptionHandler.Cancel)

				desk.POST("/payments", paymentHandler.Create)
				desk.PATCH("/payments/:id/complete", paymentHandler.Complete)
				desk.PATCH("/payments/:id/fail", paymentHandler.Fail)

				desk.GET("/dashboard/staff", dashboardHandler.Staff)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(role.Admin))
			{
				admin.GET("/plans", planHandler.List)
				admin.POST("/plans", planHandler.Create)
				admin.PATCH("/plans/:id", planHandler.Update)
				admin.DELETE("/plans/:id", planHandler.Delete)

				admin.GET("/members", memberHandler.List)
				admin.GET("/members/:id", memberHandler.Get)

				admin.GET("/payments", paymentHandler.List)

				admin.GET("/dashboard", dashboardHandler.Admin)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
