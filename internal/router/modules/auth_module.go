package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/campusboard/bulletin-api/internal/container"
	handlers "github.com/campusboard/bulletin-api/internal/interface/http"
	"github.com/campusboard/bulletin-api/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", m.Handler.Signup)
	rg.POST("/auth/login", m.Handler.Login)
	rg.POST("/auth/logout", m.Handler.Logout)
	rg.GET("/auth/status", m.Handler.Status)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetSessions()))
	{
		auth.GET("/auth/admindashboard", m.Handler.AdminDashboard)
	}
}
