package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/kmulatu/ezana-academy/internal/interface/http"
)

// NavModule wires the view-state routes. They mirror the events the client
// shell can raise, so the orchestrator is fully drivable over HTTP.
type NavModule struct {
	Handler *handlers.NavHandler
}

func NewNavModule(h *handlers.NavHandler) *NavModule {
	return &NavModule{Handler: h}
}

func (m *NavModule) Register(rg *gin.RouterGroup) {
	nav := rg.Group("/nav")
	{
		nav.GET("/state", m.Handler.State)
		nav.POST("/start", m.Handler.Start)
		nav.POST("/fragment", m.Handler.Fragment)
		nav.POST("/navigate", m.Handler.Navigate)
		nav.POST("/select-course", m.Handler.SelectCourse)
		nav.POST("/back", m.Handler.Back)
		nav.POST("/open-auth", m.Handler.OpenAuth)
		nav.POST("/open-contact", m.Handler.OpenContact)
	}
	rg.GET("/dashboard/sections/:role", m.Handler.Sections)
}
