package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/kmulatu/ezana-academy/internal/application"
	"github.com/kmulatu/ezana-academy/internal/domain/entity"
	"github.com/kmulatu/ezana-academy/pkg/response"
	"github.com/kmulatu/ezana-academy/pkg/validation"
)

type UserHandler struct {
	Data   *app.DataService
	Logger *logrus.Logger
}

func NewUserHandler(data *app.DataService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Data: data, Logger: logger}
}

// List returns the user directory.
func (h *UserHandler) List(c *gin.Context) {
	users, degraded := h.Data.GetUsers(c.Request.Context())
	response.Success(c, http.StatusOK, users, "users", response.Degraded(degraded))
}

type updateUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email" binding:"omitempty,email"`
	Avatar string `json:"avatar" binding:"omitempty,url"`
	Title  string `json:"title"`
	Bio    string `json:"bio"`
}

// Update merges profile fields onto the directory entry. Role and joinDate
// are not accepted here.
func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	user, degraded := h.Data.UpdateUser(c.Request.Context(), entity.User{
		ID:     id,
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
		Title:  req.Title,
		Bio:    req.Bio,
	})
	response.Success(c, http.StatusOK, user, "user updated", response.Degraded(degraded))
}

// Delete removes a directory entry. Deleting an unknown id succeeds.
func (h *UserHandler) Delete(c *gin.Context) {
	users, degraded := h.Data.DeleteUser(c.Request.Context(), c.Param("id"))
	response.Success(c, http.StatusOK, users, "user deleted", response.Degraded(degraded))
}
