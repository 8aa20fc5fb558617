package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kmulatu/ezana-academy/internal/container"
	handlers "github.com/kmulatu/ezana-academy/internal/interface/http"
	"github.com/kmulatu/ezana-academy/internal/interface/middleware"
	"github.com/kmulatu/ezana-academy/pkg/helpers"
)

// AuthModule wires the session routes.
// Public: POST /api/login, POST /api/refresh
// Protected: POST /api/logout, GET /api/me, POST /api/me/avatar
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/refresh", refreshLimiter, m.Handler.Refresh)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/me", m.Handler.Me)
		auth.POST("/me/avatar", m.Handler.UploadAvatar)
	}
}
