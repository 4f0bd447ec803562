package registration

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
	drafts := r.Group("/registration/drafts")
	drafts.Use(middleware.AuthMiddleware())
	drafts.Use(middleware.ContextLogger(logger))
	drafts.Use(middleware.RateLimitByUser(5, 20))
	{
		drafts.POST("",
			middleware.RBACAuthorize(rbacService, "registration", "create"),
			handler.StartDraft,
		)
		drafts.GET("/:id",
			middleware.RBACAuthorize(rbacService, "registration", "read"),
			handler.GetDraft,
		)

		edit := drafts.Group("")
		edit.Use(middleware.RBACAuthorize(rbacService, "registration", "update"))
		{
			edit.PUT("/:id/form", handler.UpdateForm)
			edit.POST("/:id/entries", handler.AddEntry)
			edit.DELETE("/:id/entries/:index", handler.RemoveEntry)
			edit.PATCH("/:id/entries/:index", handler.UpdateEntry)

			edit.POST("/:id/preview", handler.Preview)
			edit.POST("/:id/edit-section", handler.EditSection)
			edit.POST("/:id/save-section", handler.SaveSection)
			edit.POST("/:id/cancel-edit", handler.CancelEdit)
			edit.POST("/:id/declare", handler.ProceedToDeclaration)
			edit.POST("/:id/back-to-preview", handler.BackToPreview)
			edit.PUT("/:id/declarations", handler.UpdateDeclarations)
			edit.POST("/:id/submit",
				middleware.Idempotency(rdb),
				handler.Submit,
			)
		}
	}
}
