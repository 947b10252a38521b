package routes

import (
	"bcpartners_backend/internal/handlers"
	"bcpartners_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "bcpartners_backend/docs"
)

// RegisterRoutes attaches every route group to the engine.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	// Crawler surface lives at the origin root.
	h.Site.RegisterRoutes(r)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		h.Auth.RegisterRoutes(api)
		h.Listing.RegisterRoutes(api)
		h.Review.RegisterRoutes(api)
		h.Claim.RegisterRoutes(api)

		// The moderation surface never reports auth failures; requests
		// without a valid operator session bounce to the public entry.
		admin := api.Group("/admin")
		admin.Use(middleware.ModerationGate("/"))
		{
			h.Listing.RegisterAdminRoutes(admin)
			h.Review.RegisterAdminRoutes(admin)
			h.Claim.RegisterAdminRoutes(admin)
		}
	}
}
