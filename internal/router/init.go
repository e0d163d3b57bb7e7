package router

import (
	"github.com/avisoslab/avisos-api/internal/application"
	"github.com/avisoslab/avisos-api/internal/container"
	pginfra "github.com/avisoslab/avisos-api/internal/infrastructure/postgres"
	handlers "github.com/avisoslab/avisos-api/internal/interface/http"
	"github.com/avisoslab/avisos-api/internal/router/modules"
)

// InitModules wires every feature module from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	authSvc := application.NewAuthService(pginfra.NewUserRepository(pool), jwt, logger)
	listingSvc := application.NewListingService(pginfra.NewListingRepository(pool))
	companySvc := application.NewCompanyService(pginfra.NewCompanyRepository(pool))

	r.AddRoot(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewListingModule(handlers.NewListingHandler(listingSvc, logger), jwt))
	r.Add(modules.NewCompanyModule(handlers.NewCompanyHandler(companySvc, logger)))
}
