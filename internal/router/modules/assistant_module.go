package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kmulatu/ezana-academy/internal/container"
	handlers "github.com/kmulatu/ezana-academy/internal/interface/http"
	"github.com/kmulatu/ezana-academy/internal/interface/middleware"
)

// AssistantModule exposes the grounding context for the chat frontend.
type AssistantModule struct {
	Handler *handlers.AssistantHandler
}

func NewAssistantModule(h *handlers.AssistantHandler) *AssistantModule {
	return &AssistantModule{Handler: h}
}

func (m *AssistantModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/assistant/context", rl, m.Handler.Context)
}
