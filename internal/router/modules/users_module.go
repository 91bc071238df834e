package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/campusboard/bulletin-api/internal/interface/http"
)

type UsersModule struct {
	Handler *handlers.UserHandler
}

func NewUsersModule(h *handlers.UserHandler) *UsersModule {
	return &UsersModule{Handler: h}
}

func (m *UsersModule) Register(rg *gin.RouterGroup) {
	rg.GET("/users", m.Handler.List)
	rg.POST("/users", m.Handler.Create)
	rg.GET("/users/count", m.Handler.Count)
	rg.DELETE("/users/:id", m.Handler.Delete)
}
