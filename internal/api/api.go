package api

import (
	"net/http"

	affiliateHandler "aitoolshub/internal/affiliate/handler"
	authHandler "aitoolshub/internal/auth/handler"
	catalogHandler "aitoolshub/internal/catalog/handler"
	"aitoolshub/internal/diagnostics"
	"aitoolshub/internal/ratelimit"
	"aitoolshub/internal/seo"

	"github.com/gin-gonic/gin"
)

type API struct {
	router             *gin.RouterGroup
	authHandler        authHandler.Handler
	catalogHandler     catalogHandler.Handler
	affiliateHandler   affiliateHandler.Handler
	seoHandler         seo.Handler
	diagnosticsHandler diagnostics.Handler
	rateLimiter        *ratelimit.Service
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	catalogHandler catalogHandler.Handler,
	affiliateHandler affiliateHandler.Handler,
	seoHandler seo.Handler,
	diagnosticsHandler diagnostics.Handler,
	rateLimiter *ratelimit.Service,
) API {
	return API{
		router:             router,
		authHandler:        authHandler,
		catalogHandler:     catalogHandler,
		affiliateHandler:   affiliateHandler,
		seoHandler:         seoHandler,
		diagnosticsHandler: diagnosticsHandler,
		rateLimiter:        rateLimiter,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/sitemap.xml", a.seoHandler.HandleSitemap)

	a.router.GET("/tools", a.catalogHandler.HandleListPublishedTools)
	toolGroup := a.router.Group("/tools/:slug")
	{
		toolGroup.GET("", a.catalogHandler.HandleGetToolDetail)
		toolGroup.GET("/reviews", a.catalogHandler.HandleListToolReviews)
		toolGroup.POST("/reviews", a.catalogHandler.HandleSubmitReview)
	}
	a.router.GET("/categories", a.catalogHandler.HandleListPublicCategories)
	a.router.GET("/categories/:slug", a.catalogHandler.HandleGetCategoryDetail)
	a.router.GET("/compare", a.catalogHandler.HandleCompareTools)

	affiliateGroup := a.router.Group("/affiliate")
	{
		affiliateGroup.POST("/click", a.rateLimiter.Middleware("click"), a.affiliateHandler.HandleRecordClick)
		affiliateGroup.POST("/conversion", a.rateLimiter.Middleware("conversion"), a.affiliateHandler.HandleRecordConversion)
		affiliateGroup.GET("/report", a.authHandler.HandleJWTMiddleware, a.affiliateHandler.HandleGetReport)
	}

	adminGroup := a.router.Group("/admin", a.authHandler.HandleJWTMiddleware)
	{
		adminGroup.GET("/me", a.authHandler.HandleGetCurrentAdmin)
		adminGroup.GET("/stats", a.catalogHandler.HandleGetDashboardStats)
		adminGroup.GET("/env-check", a.diagnosticsHandler.HandleEnvCheck)
		adminGroup.GET("/test-db", a.diagnosticsHandler.HandleTestDB)

		adminGroup.GET("/tools", a.catalogHandler.HandleListTools)
		adminGroup.POST("/tools", a.catalogHandler.HandleCreateTool)
		adminGroup.GET("/tools/:id", a.catalogHandler.HandleGetTool)
		adminGroup.PUT("/tools/:id", a.catalogHandler.HandleUpdateTool)
		adminGroup.DELETE("/tools/:id", a.catalogHandler.HandleDeleteTool)

		adminGroup.GET("/categories", a.catalogHandler.HandleListCategories)
		adminGroup.POST("/categories", a.catalogHandler.HandleCreateCategory)
		adminGroup.PUT("/categories/:id", a.catalogHandler.HandleUpdateCategory)
		adminGroup.DELETE("/categories/:id", a.catalogHandler.HandleDeleteCategory)

		adminGroup.GET("/vendors", a.catalogHandler.HandleListVendors)
		adminGroup.POST("/vendors", a.catalogHandler.HandleCreateVendor)
		adminGroup.PUT("/vendors/:id", a.catalogHandler.HandleUpdateVendor)
		adminGroup.DELETE("/vendors/:id", a.catalogHandler.HandleDeleteVendor)

		adminGroup.GET("/reviews", a.catalogHandler.HandleListReviews)
		adminGroup.PUT("/reviews/:id", a.catalogHandler.HandleModerateReview)
		adminGroup.DELETE("/reviews/:id", a.catalogHandler.HandleDeleteReview)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
