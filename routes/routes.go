package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GravielPV/Leiny-Informaciones-sub000/controllers"
	"github.com/GravielPV/Leiny-Informaciones-sub000/middleware"
	"github.com/GravielPV/Leiny-Informaciones-sub000/models"
	"github.com/GravielPV/Leiny-Informaciones-sub000/ws"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.GET("/health", controllers.HealthCheck)
	r.GET("/robots.txt", controllers.RobotsTxt)
	r.GET("/sitemap.xml", controllers.SitemapXML)
	r.GET("/ws/live", ws.HandleLiveWebSocket)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.GET("/me", middleware.AuthMiddleware(), controllers.Me)
	}

	// Lado público del sitio
	{
		api.GET("/articles", controllers.GetPublishedArticles)
		api.GET("/articles/featured", controllers.GetFeaturedArticles)
		api.GET("/articles/:slug", controllers.GetArticleBySlug)
		api.POST("/articles/:slug/view", controllers.RegisterArticleView)

		api.GET("/categories", controllers.GetCategoriesPublic)
		api.GET("/categories/:slug/articles", controllers.GetArticlesByCategory)

		api.GET("/search", controllers.SearchFullHandler(db))
		api.GET("/search/preview", controllers.SearchPreviewHandler(db))

		api.GET("/ads", controllers.GetResolvedAds)
		api.GET("/live", controllers.GetLiveVideo)

		api.POST("/newsletter/subscribe", controllers.SubscribeNewsletter)
	}

	// CMS: admin y publicista
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.DBMiddleware(db),
		middleware.RequireRoles(string(models.RoleAdmin), string(models.RolePublicista)))
	{
		// Artículos
		admin.POST("/articles", controllers.CreateArticle)
		admin.GET("/articles", controllers.AdminListArticles)
		admin.GET("/articles/:id", controllers.AdminGetArticle)
		admin.PUT("/articles/:id", controllers.UpdateArticle)
		admin.DELETE("/articles/:id", controllers.DeleteArticle)

		// Categorías
		admin.POST("/categories", controllers.CreateCategory)
		admin.GET("/categories", controllers.GetCategories)
		admin.GET("/categories/:id", controllers.GetCategoryDetail)
		admin.PUT("/categories/:id", controllers.UpdateCategory)
		admin.DELETE("/categories/:id", controllers.DeleteCategory)

		// Anuncios
		admin.GET("/ads", controllers.AdminGetAdSettings)
		admin.PUT("/ads/:slot", controllers.AdminUpsertAdSetting)

		// Video en vivo
		admin.GET("/live-videos", controllers.AdminListLiveVideos)
		admin.POST("/live-videos", controllers.AdminCreateLiveVideo)
		admin.PUT("/live-videos/:id", controllers.AdminUpdateLiveVideo)
		admin.DELETE("/live-videos/:id", controllers.AdminDeleteLiveVideo)
		admin.PATCH("/live-videos/:id/enable", controllers.AdminEnableLiveVideo)
		admin.PATCH("/live-videos/disable-all", controllers.AdminDisableLiveVideos)

		// Subida de imágenes
		admin.POST("/upload/image", controllers.UploadImage)

		// Panel
		admin.GET("/stats/overview", controllers.GetDashboardOverview)

		// Gestión de usuarios y boletín: el rol admin se re-verifica
		// dentro de cada handler
		admin.GET("/users", controllers.AdminListUsers)
		admin.POST("/users", controllers.AdminCreateUser)
		admin.PATCH("/users/:id/role", controllers.AdminUpdateUserRole)
		admin.DELETE("/users/:id", controllers.AdminDeleteUser)

		admin.GET("/newsletter", controllers.AdminListSubscribers)
		admin.DELETE("/newsletter/:id", controllers.AdminDeleteSubscriber)
	}

	return r
}
