package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the JSON API of the screen.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	s := g.Group("/screen")
	{
		s.GET("", h.Get)
		s.POST("/prev", h.Prev)
		s.POST("/next", h.Next)
		s.GET("/avatar", h.Avatar)
	}
}

// RegisterPageRoutes registers the HTML page and its button targets.
func RegisterPageRoutes(r gin.IRoutes, h *Handler) {
	r.GET("/", h.Page)
	r.POST("/prev", h.PagePrev)
	r.POST("/next", h.PageNext)
}
