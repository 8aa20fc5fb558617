package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/kmulatu/ezana-academy/internal/application"
	"github.com/kmulatu/ezana-academy/pkg/response"
)

type AssistantHandler struct {
	Assistant *app.Assistant
}

func NewAssistantHandler(assistant *app.Assistant) *AssistantHandler {
	return &AssistantHandler{Assistant: assistant}
}

// Context returns the grounding string the chat frontend prepends to each
// conversation with the model.
func (h *AssistantHandler) Context(c *gin.Context) {
	ctx := h.Assistant.Context(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"context": ctx}, "assistant context", nil)
}
