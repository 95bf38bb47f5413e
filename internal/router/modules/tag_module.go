package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/omarFareed23/recipe-api/internal/container"
	handlers "github.com/omarFareed23/recipe-api/internal/interface/http"
	"github.com/omarFareed23/recipe-api/internal/interface/middleware"
)

// TagModule wires owner-scoped tag routes under /api/tags.
// Every route requires a bearer token.
type TagModule struct {
	Handler  *handlers.TagHandler
	Resolver middleware.TokenResolver
}

func NewTagModule(h *handlers.TagHandler, resolver middleware.TokenResolver) *TagModule {
	return &TagModule{Handler: h, Resolver: resolver}
}

func (m *TagModule) Register(rg *gin.RouterGroup) {
	tags := rg.Group("/tags")
	tags.Use(middleware.Auth(m.Resolver))
	tags.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByUserID(), nil))
	{
		tags.GET("", m.Handler.List)
		tags.POST("", m.Handler.Create)
		tags.GET("/:id", m.Handler.Get)
		tags.PUT("/:id", m.Handler.Update)
		tags.PATCH("/:id", m.Handler.Update)
		tags.DELETE("/:id", m.Handler.Delete)
	}
}
