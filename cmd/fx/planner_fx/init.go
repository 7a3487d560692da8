package planner_fx

import (
	"context"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"github.com/aniket856/sanskriti/internal/services"
	"github.com/aniket856/sanskriti/pkg/utils"
)

// Enrichment fans out exactly three lookups per request.
const enrichmentWorkers = 3

var Module = fx.Provide(
	provideTaskPool,
	provideTextGenerationClient,
	providePlanningConfig,
	providePromptService)

func provideTaskPool(lc fx.Lifecycle) *utils.TaskPool {
	pool := utils.NewTaskPool(enrichmentWorkers)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			pool.Close()
			return nil
		},
	})

	return pool
}

// provideTextGenerationClient creates a text-generation client based on
// environment variables. Defaults to the free Gemini tier.
func provideTextGenerationClient() (utils.TextGenerationClientInterface, error) {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = os.Getenv("OPENAI_MODEL")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = os.Getenv("GEMINI_MODEL")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	log.Printf("Initializing %s text-generation client", provider)
	return utils.NewTextGenerationClient(provider, apiKey, model)
}

func providePlanningConfig() services.PlanningConfig {
	return services.DefaultPlanningConfig()
}

func providePromptService() services.PromptServiceInterface {
	return services.NewPromptService()
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
