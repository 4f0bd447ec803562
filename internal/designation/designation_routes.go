package designation

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
	designations := r.Group("/designations")
	designations.Use(middleware.AuthMiddleware())
	designations.Use(middleware.ContextLogger(logger))
	{
		designations.GET("/options",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "designation", "read"),
			handler.GetOptions,
		)

		designations.GET("/groups",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "designation", "read"),
			handler.GetGroups,
		)

		designations.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "designation", "read"),
			handler.GetById,
		)
	}
}
