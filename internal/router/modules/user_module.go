package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/omarFareed23/recipe-api/internal/container"
	handlers "github.com/omarFareed23/recipe-api/internal/interface/http"
	"github.com/omarFareed23/recipe-api/internal/interface/middleware"
)

// UserModule wires account and token routes.
// Public: POST /api/user/create, POST /api/user/token
// Protected: GET/PUT/PATCH /api/user/me
type UserModule struct {
	Handler  *handlers.UserHandler
	Resolver middleware.TokenResolver
}

func NewUserModule(h *handlers.UserHandler, resolver middleware.TokenResolver) *UserModule {
	return &UserModule{Handler: h, Resolver: resolver}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	createLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIPAndPath(), nil)
	tokenLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil) // 10 req/min per IP

	rg.POST("/user/create", createLimiter, m.Handler.Create)
	rg.POST("/user/token", tokenLimiter, m.Handler.Token)

	auth := rg.Group("/user")
	auth.Use(middleware.Auth(m.Resolver))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/me", m.Handler.Me)
		auth.PUT("/me", m.Handler.UpdateMe)
		auth.PATCH("/me", m.Handler.UpdateMe)
	}
}
