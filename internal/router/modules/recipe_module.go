package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/omarFareed23/recipe-api/internal/container"
	handlers "github.com/omarFareed23/recipe-api/internal/interface/http"
	"github.com/omarFareed23/recipe-api/internal/interface/middleware"
)

// RecipeModule wires owner-scoped recipe routes under /api/recipes.
// Every route requires a bearer token.
type RecipeModule struct {
	Handler  *handlers.RecipeHandler
	Resolver middleware.TokenResolver
}

func NewRecipeModule(h *handlers.RecipeHandler, resolver middleware.TokenResolver) *RecipeModule {
	return &RecipeModule{Handler: h, Resolver: resolver}
}

func (m *RecipeModule) Register(rg *gin.RouterGroup) {
	recipes := rg.Group("/recipes")
	recipes.Use(middleware.Auth(m.Resolver))
	recipes.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByUserID(), nil))
	{
		recipes.GET("", m.Handler.List)
		recipes.POST("", m.Handler.Create)
		recipes.GET("/:id", m.Handler.Get)
		recipes.PUT("/:id", m.Handler.Update)
		recipes.PATCH("/:id", m.Handler.Update)
		recipes.DELETE("/:id", m.Handler.Delete)
	}
}
