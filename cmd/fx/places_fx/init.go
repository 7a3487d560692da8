package places_fx

import (
	"go.uber.org/fx"

	"github.com/aniket856/sanskriti/internal/services"
	"github.com/aniket856/sanskriti/pkg/utils"
)

var Module = fx.Provide(
	providePlacesClient, provideEnrichmentService)

func providePlacesClient() services.PlacesClientInterface {
	return services.NewPlacesDirectoryClient(services.NewInMemorySearchCache())
}

func provideEnrichmentService(
	places services.PlacesClientInterface,
	pool *utils.TaskPool,
	config services.PlanningConfig,
) services.EnrichmentServiceInterface {
	return services.NewEnrichmentService(places, pool, config)
}
