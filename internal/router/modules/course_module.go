package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kmulatu/ezana-academy/internal/container"
	handlers "github.com/kmulatu/ezana-academy/internal/interface/http"
	"github.com/kmulatu/ezana-academy/internal/interface/middleware"
	"github.com/kmulatu/ezana-academy/pkg/helpers"
)

// CourseModule wires the catalog routes. Reads are public so the landing
// page can render without a session.
type CourseModule struct {
	Handler *handlers.CourseHandler
	JWT     *helpers.JWTManager
}

func NewCourseModule(h *handlers.CourseHandler, jwt *helpers.JWTManager) *CourseModule {
	return &CourseModule{Handler: h, JWT: jwt}
}

func (m *CourseModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/courses", readLimiter, m.Handler.List)
	rg.GET("/courses/search", readLimiter, m.Handler.SearchCourses)
	rg.GET("/courses/:id/lessons", readLimiter, m.Handler.Lessons)

	auth := rg.Group("/courses")
	auth.Use(middleware.Auth(m.JWT), middleware.RequireAdmin())
	{
		auth.POST("", m.Handler.Add)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
