package router

import (
	"github.com/gin-gonic/gin"

	"pressdesk.app/unassigned/internal/http/handler"
	"pressdesk.app/unassigned/internal/http/middleware"
	"pressdesk.app/unassigned/internal/model"
	"pressdesk.app/unassigned/internal/service"
	"pressdesk.app/unassigned/internal/store"
)

type RouterConfig struct {
	DashboardURL string
	IsProduction bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, stores *store.Stores, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authService := services.Auth()

	authHandler := handler.NewAuthHandler(authService, cfg.DashboardURL, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler)

	// Read routes accept any editorial role in the journal; mutations are
	// reserved for senior editors.
	readRole := middleware.RequireRole(stores.Articles(), stores.Accounts(),
		model.RoleEditor, model.RoleSectionEditor, model.RoleSeniorEditor)
	seniorRole := middleware.RequireRole(stores.Articles(), stores.Accounts(),
		model.RoleSeniorEditor)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequireAuth(authService))
	{
		articleHandler := handler.NewArticleHandler(services.Articles())
		assignmentHandler := handler.NewAssignmentHandler(services.Assignments())

		v1.GET("/journals/:journal_id/unassigned", readRole, articleHandler.ListUnassigned)

		articles := v1.Group("/articles/:article_id")
		ArticleRouter(articles, articleHandler, readRole)
		AssignmentRouter(articles.Group("/assignments"), assignmentHandler, seniorRole)
	}
}
