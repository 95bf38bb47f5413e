package router

import (
	app "github.com/omarFareed23/recipe-api/internal/application"
	"github.com/omarFareed23/recipe-api/internal/container"
	pginfra "github.com/omarFareed23/recipe-api/internal/infrastructure/postgres"
	handlers "github.com/omarFareed23/recipe-api/internal/interface/http"
	"github.com/omarFareed23/recipe-api/internal/router/modules"
)

// InitModules builds services and handlers from the container singletons and
// registers every feature module with the router registry. Called once during
// application startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()

	userSvc := app.NewUserService(
		pginfra.NewUserRepository(pool),
		pginfra.NewTokenRepository(pool),
		logger,
	)
	recipeSvc := app.NewRecipeService(pginfra.NewRecipeRepository(pool), logger)
	tagSvc := app.NewTagService(pginfra.NewTagRepository(pool), logger)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), userSvc))
	r.Add(modules.NewRecipeModule(handlers.NewRecipeHandler(recipeSvc, logger), userSvc))
	r.Add(modules.NewTagModule(handlers.NewTagHandler(tagSvc, logger), userSvc))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
