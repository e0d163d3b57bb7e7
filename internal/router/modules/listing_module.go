package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/avisoslab/avisos-api/internal/interface/middleware"

	handlers "github.com/avisoslab/avisos-api/internal/interface/http"
	"github.com/avisoslab/avisos-api/pkg/helpers"
)

type ListingModule struct {
	Handler *handlers.ListingHandler
	JWT     *helpers.JWTManager
}

func NewListingModule(h *handlers.ListingHandler, jwt *helpers.JWTManager) *ListingModule {
	return &ListingModule{Handler: h, JWT: jwt}
}

func (m *ListingModule) Register(rg *gin.RouterGroup) {
	// Public reads
	rg.GET("/avisos", m.Handler.List)
	rg.GET("/avisos/:id", m.Handler.Get)

	// Mutations require authentication
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("/avisos", m.Handler.Create)
		auth.PUT("/avisos/:id", m.Handler.Update)
		auth.DELETE("/avisos/:id", m.Handler.Delete)
	}
}
