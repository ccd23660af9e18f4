package router

import (
	"github.com/gin-gonic/gin"

	"pressdesk.app/unassigned/internal/http/handler"
)

func ArticleRouter(rg *gin.RouterGroup, h *handler.ArticleHandler, readRole gin.HandlerFunc) {
	rg.GET("", readRole, h.Detail)
	rg.POST("/crosscheck", readRole, h.SubmitCrosscheck)
}
