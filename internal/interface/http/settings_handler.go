package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/kmulatu/ezana-academy/internal/application"
	"github.com/kmulatu/ezana-academy/pkg/response"
)

type SettingsHandler struct {
	Data   *app.DataService
	Logger *logrus.Logger
}

func NewSettingsHandler(data *app.DataService, logger *logrus.Logger) *SettingsHandler {
	return &SettingsHandler{Data: data, Logger: logger}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, degraded := h.Data.GetSettings(c.Request.Context())
	response.Success(c, http.StatusOK, settings, "settings", response.Degraded(degraded))
}

// Update shallow-merges the submitted fields over the stored record.
func (h *SettingsHandler) Update(c *gin.Context) {
	var partial map[string]any
	if err := c.ShouldBindJSON(&partial); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", nil)
		return
	}
	settings, degraded := h.Data.UpdateSettings(c.Request.Context(), partial)
	response.Success(c, http.StatusOK, settings, "settings updated", response.Degraded(degraded))
}
