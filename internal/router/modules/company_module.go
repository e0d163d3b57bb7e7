package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/avisoslab/avisos-api/internal/interface/http"
)

type CompanyModule struct {
	Handler *handlers.CompanyHandler
}

func NewCompanyModule(h *handlers.CompanyHandler) *CompanyModule {
	return &CompanyModule{Handler: h}
}

func (m *CompanyModule) Register(rg *gin.RouterGroup) {
	rg.GET("/empresas", m.Handler.List)
	rg.GET("/empresas/:id", m.Handler.Get)
	rg.POST("/empresas", m.Handler.Create)
	rg.PUT("/empresas/:id", m.Handler.Update)
	rg.DELETE("/empresas/:id", m.Handler.Delete)
}
