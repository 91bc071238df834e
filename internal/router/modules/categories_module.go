package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/campusboard/bulletin-api/internal/interface/http"
)

type CategoriesModule struct {
	Handler *handlers.CategoryHandler
}

func NewCategoriesModule(h *handlers.CategoryHandler) *CategoriesModule {
	return &CategoriesModule{Handler: h}
}

func (m *CategoriesModule) Register(rg *gin.RouterGroup) {
	rg.GET("/categories", m.Handler.List)
	rg.POST("/categories", m.Handler.Create)
	rg.GET("/categories/:id", m.Handler.GetByID)
	rg.PUT("/categories/:id", m.Handler.Update)
	rg.DELETE("/categories/:id", m.Handler.Delete)
}
