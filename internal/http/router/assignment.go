package router

import (
	"github.com/gin-gonic/gin"

	"pressdesk.app/unassigned/internal/http/handler"
)

func AssignmentRouter(rg *gin.RouterGroup, h *handler.AssignmentHandler, seniorRole gin.HandlerFunc) {
	rg.POST("", seniorRole, h.Create)
	rg.DELETE("/:editor_id", seniorRole, h.Delete)
	rg.POST("/:editor_id/notification", seniorRole, h.Notify)
	rg.GET("/:editor_id/notification", seniorRole, h.Preview)
}
