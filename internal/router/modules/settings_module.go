package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/kmulatu/ezana-academy/internal/interface/http"
	"github.com/kmulatu/ezana-academy/internal/interface/middleware"
	"github.com/kmulatu/ezana-academy/pkg/helpers"
)

// SettingsModule wires the site-settings routes. Reads are public; writes
// are admin only.
type SettingsModule struct {
	Handler *handlers.SettingsHandler
	JWT     *helpers.JWTManager
}

func NewSettingsModule(h *handlers.SettingsHandler, jwt *helpers.JWTManager) *SettingsModule {
	return &SettingsModule{Handler: h, JWT: jwt}
}

func (m *SettingsModule) Register(rg *gin.RouterGroup) {
	rg.GET("/settings", m.Handler.Get)

	auth := rg.Group("/settings")
	auth.Use(middleware.Auth(m.JWT), middleware.RequireAdmin())
	{
		auth.PUT("", m.Handler.Update)
	}
}
