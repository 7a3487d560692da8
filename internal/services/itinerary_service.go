package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/aniket856/sanskriti/internal/models/request_models"
	"github.com/aniket856/sanskriti/internal/models/response_models"
	"github.com/aniket856/sanskriti/internal/repositories"
	"github.com/aniket856/sanskriti/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, request request_models.TripRequest) (*response_models.Itinerary, error)
	GetItineraryByID(ctx context.Context, id string) (*response_models.Itinerary, error)
}

type ItineraryService struct {
	enrichment EnrichmentServiceInterface
	prompts    PromptServiceInterface
	aiClient   utils.TextGenerationClientInterface
	repo       repositories.ItineraryRepository
	config     PlanningConfig
}

func NewItineraryService(
	enrichment EnrichmentServiceInterface,
	prompts PromptServiceInterface,
	aiClient utils.TextGenerationClientInterface,
	repo repositories.ItineraryRepository,
	config PlanningConfig,
) ItineraryServiceInterface {
	return &ItineraryService{
		enrichment: enrichment,
		prompts:    prompts,
		aiClient:   aiClient,
		repo:       repo,
		config:     config,
	}
}

// GenerateItinerary runs the full planning pipeline: validate, enrich,
// prompt, generate, parse-or-fallback, compute impact, persist. Upstream
// misbehavior (directory down, model off-script) is absorbed before this
// level returns; only invalid input and storage failures surface as errors.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, request request_models.TripRequest) (*response_models.Itinerary, error) {
	request.ApplyDefaults()
	if err := validateTripRequest(request); err != nil {
		return nil, err
	}

	bundle := s.enrichment.EnrichTrip(ctx, request)

	data, ok := s.generateItineraryData(ctx, request, bundle)
	if !ok {
		log.Printf("Model reply unusable for %q, using fallback itinerary", request.Destination)
		data = buildFallbackItinerary(s.config, request)
	}

	impact := ComputeCommunityImpact(s.config, data.CommunityExperiences, request.Budget)

	itinerary := &response_models.Itinerary{
		ID:              uuid.New().String(),
		Destination:     request.Destination,
		Budget:          request.Budget,
		Duration:        request.Duration,
		Theme:           request.Theme,
		TravelMode:      request.TravelMode,
		PeriodFriendly:  request.PeriodFriendly,
		Days:            data.Days,
		TotalCost:       data.TotalCost,
		CommunityImpact: impact,
		SafetyScore:     data.SafetyScore,
		CreatedAt:       utils.NowIST(),
	}

	if err := s.repo.Save(ctx, itinerary); err != nil {
		log.Printf("Error saving itinerary: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return itinerary, nil
}

func (s *ItineraryService) GetItineraryByID(ctx context.Context, id string) (*response_models.Itinerary, error) {
	if strings.TrimSpace(id) == "" {
		return nil, utils.ErrItineraryNotFound
	}

	itinerary, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrItineraryNotFound) {
			return nil, err
		}
		log.Printf("Error loading itinerary %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}

	return itinerary, nil
}

// generateItineraryData calls the model and parses its reply. One transient
// failure is retried with the same prompt; one unparsable reply is retried
// with a stricter prompt. Anything beyond that reports !ok so the caller can
// fall back.
func (s *ItineraryService) generateItineraryData(ctx context.Context, request request_models.TripRequest, bundle response_models.EnrichmentBundle) (response_models.ItineraryData, bool) {
	prompt := s.prompts.BuildTripPrompt(request, bundle)

	raw, err := s.aiClient.GenerateItinerary(ctx, prompt)
	if err != nil {
		log.Printf("Text generation failed, retrying once: %v", err)
		raw, err = s.aiClient.GenerateItinerary(ctx, prompt)
	}
	if err != nil {
		log.Printf("Text generation failed after retry: %v", err)
		return response_models.ItineraryData{}, false
	}

	data, parseErr := parseItineraryReply(raw, request.Duration)
	if parseErr == nil {
		return data, true
	}
	log.Printf("Model reply failed to parse (%v), re-prompting with strict instructions", parseErr)

	raw, err = s.aiClient.GenerateItinerary(ctx, s.prompts.BuildStrictRetryPrompt(request, bundle))
	if err != nil {
		log.Printf("Strict re-prompt failed: %v", err)
		return response_models.ItineraryData{}, false
	}

	data, parseErr = parseItineraryReply(raw, request.Duration)
	if parseErr != nil {
		log.Printf("Strict re-prompt reply failed to parse: %v", parseErr)
		return response_models.ItineraryData{}, false
	}

	return data, true
}

func validateTripRequest(request request_models.TripRequest) error {
	if strings.TrimSpace(request.Destination) == "" {
		return utils.ErrInvalidInput
	}
	if request.Budget <= 0 || request.Duration <= 0 {
		return utils.ErrInvalidInput
	}
	if _, ok := themeProfiles[request.Theme]; !ok {
		return utils.ErrInvalidInput
	}
	return nil
}

var fallbackSafetyTips = []string{
	"Share your live location with a trusted contact",
	"Keep emergency contacts handy (dial 112)",
	"Prefer well-lit, populated areas after dark",
	"Use registered taxis or prepaid cabs",
}

// buildFallbackItinerary synthesizes a placeholder plan purely from the
// request arithmetic: one templated activity per day, lodging at the
// accommodation share of the daily budget, three meals on the meal share.
// This is the liveness guarantee behind the generate endpoint.
func buildFallbackItinerary(cfg PlanningConfig, request request_models.TripRequest) response_models.ItineraryData {
	perDay := request.Budget / request.Duration
	accommodationCost := int(float64(perDay) * cfg.AccommodationShare)
	mealBudget := int(float64(perDay) * cfg.MealShare)

	breakfast := mealBudget * 20 / 100
	lunch := mealBudget * 40 / 100
	dinner := mealBudget - breakfast - lunch

	days := make([]response_models.ItineraryDay, 0, request.Duration)
	for day := 1; day <= request.Duration; day++ {
		days = append(days, response_models.ItineraryDay{
			Day: day,
			Activities: []response_models.Activity{
				{
					Time:        "10:00 AM",
					Activity:    fmt.Sprintf("Day %d exploration of %s", day, request.Destination),
					Description: fmt.Sprintf("Guided %s experiences around %s", request.Theme, request.Destination),
					Location:    request.Destination,
					Cost:        0,
					SafetyLevel: "high",
					Duration:    "4 hours",
				},
			},
			Accommodation: response_models.Accommodation{
				Name:          fmt.Sprintf("%s Heritage Residency", request.Destination),
				Type:          "guesthouse",
				Location:      fmt.Sprintf("Central %s", request.Destination),
				Cost:          accommodationCost,
				SafetyRating:  5,
				WomenFriendly: true,
				Amenities:     []string{"WiFi", "24/7 Security"},
			},
			Meals: []response_models.Meal{
				{Meal: "breakfast", Restaurant: fmt.Sprintf("Rasoi of %s", request.Destination), Cuisine: "Local", Cost: breakfast, Location: "Near hotel"},
				{Meal: "lunch", Restaurant: fmt.Sprintf("%s Spice Kitchen", request.Destination), Cuisine: "Local", Cost: lunch, Location: "Near attraction"},
				{Meal: "dinner", Restaurant: fmt.Sprintf("The Courtyard Cafe %s", request.Destination), Cuisine: "Local", Cost: dinner, Location: "Near hotel"},
			},
			EstimatedCost: accommodationCost + mealBudget,
			SafetyTips:    fallbackSafetyTips,
		})
	}

	return response_models.ItineraryData{
		Days:        days,
		TotalCost:   int(float64(request.Budget) * cfg.FallbackTotalShare),
		SafetyScore: cfg.FallbackSafetyScore,
		CommunityExperiences: []response_models.CommunityExperience{
			{
				Activity: fmt.Sprintf("Local artisan workshop in %s", request.Destination),
				Host:     "Community host collective",
				Cost:     perDay / 10,
				Impact:   "Supports local families and craftspeople",
			},
		},
	}
}
