package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/aniket856/sanskriti/internal/repositories"
	"github.com/aniket856/sanskriti/internal/services"
	"github.com/aniket856/sanskriti/pkg/utils"
)

var Module = fx.Provide(provideItineraryRepo, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	enrichment services.EnrichmentServiceInterface,
	prompts services.PromptServiceInterface,
	aiClient utils.TextGenerationClientInterface,
	repo repositories.ItineraryRepository,
	config services.PlanningConfig,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(enrichment, prompts, aiClient, repo, config)
}
