package transfer

import (
	"transferdesk/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	transfers := r.Group("/transfers")
	transfers.Use(middleware.AuthMiddleware())
	transfers.Use(middleware.ContextLogger(logger))
	{
		transfers.POST("/employees/:id",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "transfer", "create"),
			middleware.Idempotency(rdb),
			handler.Transfer,
		)

		transfers.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "transfer", "read"),
			handler.GetAll,
		)

		transfers.GET("/employees/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "transfer", "read"),
			handler.GetByEmployee,
		)

		transfers.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "transfer", "read"),
			handler.GetById,
		)
	}
}
