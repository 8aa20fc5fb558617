package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/kmulatu/ezana-academy/internal/interface/http"
	"github.com/kmulatu/ezana-academy/internal/interface/middleware"
	"github.com/kmulatu/ezana-academy/pkg/helpers"
)

// UserModule wires the directory routes. Listing and deletion are admin
// operations; profile updates are open to any signed-in account.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/users")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.PUT("/:id", m.Handler.Update)

		admin := auth.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("", m.Handler.List)
			admin.DELETE("/:id", m.Handler.Delete)
		}
	}
}
