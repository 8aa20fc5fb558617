package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/kmulatu/ezana-academy/internal/application"
	"github.com/kmulatu/ezana-academy/internal/interface/middleware"
	"github.com/kmulatu/ezana-academy/pkg/helpers"
	"github.com/kmulatu/ezana-academy/pkg/response"
	"github.com/kmulatu/ezana-academy/pkg/validation"
)

type AuthHandler struct {
	Auth    *app.AuthService
	Data    *app.DataService
	Nav     *app.Navigator
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewAuthHandler(auth *app.AuthService, data *app.DataService, nav *app.Navigator, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Auth: auth, Data: data, Nav: nav, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	user, pair, degraded, err := h.Auth.Login(c.Request.Context(), req.Email)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "login failed", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)

	state := h.Nav.LoginSucceeded(c.Request.Context(), user)
	response.Success(c, http.StatusOK, gin.H{"user": user, "nav": state}, "login successful", response.Degraded(degraded))
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie("refresh_token")
	if err != nil || refresh == "" {
		response.Error[any](c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	pair, err := h.Auth.Refresh(refresh)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success[any](c, http.StatusOK, gin.H{"refreshed": true}, "token refreshed", nil)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	state := h.Nav.Logout(c.Request.Context())
	h.Cookies.Clear(c)
	response.Success(c, http.StatusOK, gin.H{"nav": state}, "logged out", nil)
}

// Me returns the persisted session identity.
func (h *AuthHandler) Me(c *gin.Context) {
	user, degraded := h.Data.GetSessionUser(c.Request.Context())
	if user == nil {
		response.Error[any](c, http.StatusUnauthorized, "no active session", nil)
		return
	}
	response.Success(c, http.StatusOK, user, "session", response.Degraded(degraded))
}

// UploadAvatar accepts a multipart image and applies it to the signed-in account.
func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing avatar file", nil)
		return
	}
	defer func() { _ = file.Close() }()

	contentType := header.Header.Get("Content-Type")
	user, degraded, err := h.Auth.UploadAvatar(c.Request.Context(), userID, contentType, file)
	if err != nil {
		h.Logger.WithError(err).Warn("avatar upload failed")
		response.Error[any](c, http.StatusBadGateway, "avatar upload failed", nil)
		return
	}
	response.Success(c, http.StatusOK, user, "avatar updated", response.Degraded(degraded))
}
