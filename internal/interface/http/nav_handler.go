package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/kmulatu/ezana-academy/internal/application"
	"github.com/kmulatu/ezana-academy/internal/domain/dashboard"
	"github.com/kmulatu/ezana-academy/internal/domain/entity"
	"github.com/kmulatu/ezana-academy/pkg/response"
	"github.com/kmulatu/ezana-academy/pkg/validation"
)

type NavHandler struct {
	Nav    *app.Navigator
	Data   *app.DataService
	Logger *logrus.Logger
}

func NewNavHandler(nav *app.Navigator, data *app.DataService, logger *logrus.Logger) *NavHandler {
	return &NavHandler{Nav: nav, Data: data, Logger: logger}
}

// State returns the current view-state snapshot.
func (h *NavHandler) State(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Nav.State(), "nav state", nil)
}

// Start re-hydrates the orchestrator from the persisted session and the
// current address fragment, as a fresh page load does.
func (h *NavHandler) Start(c *gin.Context) {
	state := h.Nav.Start(c.Request.Context())
	response.Success(c, http.StatusOK, state, "nav started", nil)
}

type fragmentRequest struct {
	Fragment string `json:"fragment"`
}

// Fragment applies an externally-changed address fragment.
func (h *NavHandler) Fragment(c *gin.Context) {
	var req fragmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	state := h.Nav.FragmentChanged(c.Request.Context(), req.Fragment)
	response.Success(c, http.StatusOK, state, "fragment applied", nil)
}

type navigateRequest struct {
	Section string `json:"section" binding:"required"`
}

// Navigate scrolls the home view to a named section.
func (h *NavHandler) Navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	state := h.Nav.Navigate(c.Request.Context(), req.Section)
	response.Success(c, http.StatusOK, state, "navigated", nil)
}

type selectCourseRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}

// SelectCourse opens the detail view for a catalog entry.
func (h *NavHandler) SelectCourse(c *gin.Context) {
	var req selectCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	courses, degraded := h.Data.GetCourses(c.Request.Context())
	var course *entity.Course
	for i := range courses {
		if courses[i].ID == req.CourseID {
			course = &courses[i]
			break
		}
	}
	if course == nil {
		response.Error[any](c, http.StatusNotFound, "course not found", nil)
		return
	}
	state := h.Nav.SelectCourse(c.Request.Context(), *course)
	response.Success(c, http.StatusOK, state, "course selected", response.Degraded(degraded))
}

// Back leaves the course-detail view.
func (h *NavHandler) Back(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Nav.BackFromCourseDetail(c.Request.Context()), "back", nil)
}

func (h *NavHandler) OpenAuth(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Nav.OpenAuth(c.Request.Context()), "auth opened", nil)
}

func (h *NavHandler) OpenContact(c *gin.Context) {
	response.Success(c, http.StatusOK, h.Nav.OpenContact(c.Request.Context()), "contact opened", nil)
}

// Sections returns the dashboard sidebar and landing section for a role.
func (h *NavHandler) Sections(c *gin.Context) {
	role := c.Param("role")
	response.Success(c, http.StatusOK, gin.H{
		"sections": dashboard.Sections(role),
		"default":  dashboard.DefaultSection(role),
	}, "sections", nil)
}
