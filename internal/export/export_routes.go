package export

import (
	"transferdesk/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	exports := r.Group("/exports")
	exports.Use(middleware.AuthMiddleware())
	exports.Use(middleware.ContextLogger(logger))
	// Exports scan the full table; keep the per-user rate tight.
	exports.Use(middleware.RateLimitByUser(1, 3))
	exports.Use(middleware.RBACAuthorize(rbacService, "export", "read"))
	{
		exports.GET("/employees.csv", handler.EmployeesCSV)
		exports.GET("/employees.xlsx", handler.EmployeesExcel)
		exports.GET("/employees.pdf", handler.EmployeesPDF)
		exports.GET("/transfers.csv", handler.TransfersCSV)
		exports.GET("/promotions.csv", handler.PromotionsCSV)
	}
}
