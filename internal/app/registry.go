package app

import (
	"context"
	"database/sql"

	"transferdesk/internal/analytics"
	"transferdesk/internal/auth"
	"transferdesk/internal/designation"
	"transferdesk/internal/employee"
	"transferdesk/internal/export"
	"transferdesk/internal/messaging/kafka"
	"transferdesk/internal/middleware"
	"transferdesk/internal/rbac"
	"transferdesk/internal/registration"
	"transferdesk/internal/shared/counter"
	"transferdesk/internal/transfer"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	designationRepo := designation.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	transferRepo := transfer.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	draftStore := registration.NewDraftStore(rdb)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	if err := auth.SeedAdminAccount(context.Background(), authRepo, logger); err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo)
	designationService := designation.NewService(designationRepo, rdb, logger)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb, logger)
	registrationService := registration.NewService(draftStore, employeeService, logger)
	transferService := transfer.NewService(db, transferRepo, employeeRepo, counterRepo, outboxRepo, rdb, logger)
	rankComparator := analytics.NewRankComparator()
	analyticsService := analytics.NewService(employeeRepo, rankComparator, rdb, logger)
	exportService := export.NewService(employeeRepo, transferRepo, rankComparator, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	designationHandler := designation.NewHandler(designationService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	registrationHandler := registration.NewHandler(registrationService, logger)
	transferHandler := transfer.NewHandler(transferService, logger)
	analyticsHandler := analytics.NewHandler(analyticsService, logger)
	exportHandler := export.NewHandler(exportService, logger)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		designation.RegisterRoutes(api, designationHandler, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, rdb, logger)
		registration.RegisterRoutes(api, registrationHandler, rbacService, rdb, logger)
		transfer.RegisterRoutes(api, transferHandler, rbacService, rdb, logger)
		analytics.RegisterRoutes(api, analyticsHandler, rbacService, logger)
		export.RegisterRoutes(api, exportHandler, rbacService, logger)
	}

	return nil
}
