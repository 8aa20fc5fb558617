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

type CourseHandler struct {
	Data     *app.DataService
	Resolver *app.LessonResolver
	Search   *app.CourseSearch
	Logger   *logrus.Logger
}

func NewCourseHandler(data *app.DataService, lessons *app.LessonResolver, search *app.CourseSearch, logger *logrus.Logger) *CourseHandler {
	return &CourseHandler{Data: data, Resolver: lessons, Search: search, Logger: logger}
}

// List returns the catalog with seed overrides applied.
func (h *CourseHandler) List(c *gin.Context) {
	courses, degraded := h.Data.GetCourses(c.Request.Context())
	response.Success(c, http.StatusOK, courses, "courses", response.Degraded(degraded))
}

type addCourseRequest struct {
	Title          string  `json:"title" binding:"required"`
	Category       string  `json:"category" binding:"required,category"`
	Description    string  `json:"description"`
	Image          string  `json:"image" binding:"omitempty,url"`
	InstructorName string  `json:"instructorName" binding:"required"`
	InstructorID   string  `json:"instructorId"`
	Price          float64 `json:"price" binding:"gte=0"`
}

// Add appends a course to the catalog and indexes it for search.
func (h *CourseHandler) Add(c *gin.Context) {
	var req addCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	course, degraded := h.Data.AddCourse(c.Request.Context(), entity.Course{
		Title:          req.Title,
		Category:       req.Category,
		Description:    req.Description,
		Image:          req.Image,
		InstructorName: req.InstructorName,
		InstructorID:   req.InstructorID,
		Price:          req.Price,
	})
	if h.Search != nil {
		if err := h.Search.IndexCourse(c.Request.Context(), course); err != nil {
			h.Logger.WithError(err).WithField("course_id", course.ID).Warn("course index failed")
		}
	}
	response.Success(c, http.StatusCreated, course, "course created", response.Degraded(degraded))
}

// Delete removes a catalog entry.
func (h *CourseHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	courses, degraded := h.Data.DeleteCourse(c.Request.Context(), id)
	if h.Search != nil {
		h.Search.RemoveCourse(c.Request.Context(), id)
	}
	response.Success(c, http.StatusOK, courses, "course deleted", response.Degraded(degraded))
}

// Lessons resolves the lesson list for a course, falling back to the
// substitute set when the external catalog cannot serve.
func (h *CourseHandler) Lessons(c *gin.Context) {
	id := c.Param("id")
	courses, degraded := h.Data.GetCourses(c.Request.Context())

	var course *entity.Course
	for i := range courses {
		if courses[i].ID == id {
			course = &courses[i]
			break
		}
	}
	if course == nil {
		response.Error[any](c, http.StatusNotFound, "course not found", nil)
		return
	}

	lessons, fellBack := h.Resolver.Resolve(c.Request.Context(), *course)
	meta := map[string]any{"fallback": fellBack}
	if degraded {
		meta["degraded"] = true
	}
	response.Success(c, http.StatusOK, lessons, "lessons", meta)
}

// SearchCourses answers a free-text catalog query.
func (h *CourseHandler) SearchCourses(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	courses, fellBack := h.Search.Search(c.Request.Context(), q, 10)
	meta := map[string]any{}
	if fellBack {
		meta["fallback"] = true
	}
	response.Success(c, http.StatusOK, courses, "search results", meta)
}
