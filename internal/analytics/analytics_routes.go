package analytics

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
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	reports.Use(middleware.ContextLogger(logger))
	reports.Use(middleware.RateLimitByUser(3, 10))
	{
		reports.GET("/transfers",
			middleware.RBACAuthorize(rbacService, "report", "read"),
			handler.TransferReport,
		)
		reports.GET("/promotions",
			middleware.RBACAuthorize(rbacService, "report", "read"),
			handler.PromotionReport,
		)
	}
}
