package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aniket856/sanskriti/internal/models/request_models"
	"github.com/aniket856/sanskriti/internal/models/response_models"
)

// PromptServiceInterface builds the single instruction string sent to the
// text-generation service. Pure functions of their inputs; no validation or
// retries happen here.
type PromptServiceInterface interface {
	BuildTripPrompt(request request_models.TripRequest, bundle response_models.EnrichmentBundle) string
	BuildStrictRetryPrompt(request request_models.TripRequest, bundle response_models.EnrichmentBundle) string
}

type PromptService struct{}

func NewPromptService() PromptServiceInterface {
	return &PromptService{}
}

// replyExample is one complete worked example of the exact JSON shape the
// model must return. Embedded verbatim in every prompt.
const replyExample = `{
    "days": [
        {
            "day": 1,
            "activities": [
                {
                    "time": "10:00 AM",
                    "activity": "Visit Red Fort",
                    "description": "Explore the historic Mughal architecture",
                    "location": "Red Fort, Delhi",
                    "cost": 50,
                    "safety_level": "high",
                    "duration": "2 hours"
                }
            ],
            "accommodation": {
                "name": "Hotel Name",
                "type": "hotel/guesthouse",
                "location": "Area name",
                "cost": 2500,
                "safety_rating": 5,
                "women_friendly": true,
                "amenities": ["WiFi", "24/7 Security"]
            },
            "meals": [
                {
                    "meal": "breakfast/lunch/dinner",
                    "restaurant": "Restaurant name",
                    "cuisine": "North Indian",
                    "cost": 400,
                    "location": "Near hotel/attraction"
                }
            ],
            "estimated_cost": 3000,
            "safety_tips": ["Stay in groups after 8 PM", "Keep emergency contacts handy"]
        }
    ],
    "total_cost": 15000,
    "safety_score": 85,
    "community_experiences": [
        {
            "activity": "Village pottery workshop",
            "host": "Local artisan Meera",
            "cost": 800,
            "impact": "Supports local craftswoman"
        }
    ]
}`

func (p *PromptService) BuildTripPrompt(request request_models.TripRequest, bundle response_models.EnrichmentBundle) string {
	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf(
		"Create a detailed %d-day itinerary for %s with a budget of ₹%d focusing on %s experiences.\n",
		request.Duration, request.Destination, request.Budget, request.Theme))

	if request.TravelMode == request_models.DefaultTravelMode {
		prompt.WriteString("This is for a solo female traveler. IMPORTANT REQUIREMENTS:\n")
		prompt.WriteString("- Prioritize women-safe accommodations with good reviews and security\n")
		prompt.WriteString("- Include well-lit, populated areas for activities\n")
		prompt.WriteString("- Suggest reliable transportation options\n")
		prompt.WriteString("- Provide emergency contacts and safety tips for each day\n")
		if request.PeriodFriendly {
			prompt.WriteString("- Include period-friendly facilities (clean restrooms, nearby pharmacies, comfortable spaces)\n")
		}
		prompt.WriteString("- Focus on empowering and enriching experiences\n")
	}

	if request.SpecialPreferences != "" {
		prompt.WriteString(fmt.Sprintf("\nSpecial preferences: %s\n", request.SpecialPreferences))
	}

	prompt.WriteString("\nVerified places for this trip (JSON). Use ONLY hotel, restaurant and attraction names from this list:\n")
	prompt.WriteString(serializeBundle(bundle))

	prompt.WriteString("\n\nReturn a JSON response with this exact structure:\n")
	prompt.WriteString(replyExample)

	prompt.WriteString(fmt.Sprintf(
		"\n\nEnsure all costs are in Indian Rupees and realistic for %s. Total cost should not exceed the budget of ₹%d.",
		request.Destination, request.Budget))

	return prompt.String()
}

// BuildStrictRetryPrompt wraps the base prompt in a harder instruction set.
// Used once, after the first reply failed to parse.
func (p *PromptService) BuildStrictRetryPrompt(request request_models.TripRequest, bundle response_models.EnrichmentBundle) string {
	var prompt strings.Builder

	prompt.WriteString("=== CRITICAL INSTRUCTIONS ===\n")
	prompt.WriteString(fmt.Sprintf("You MUST return valid JSON only, with exactly %d entries in \"days\". No explanations, no markdown.\n", request.Duration))
	prompt.WriteString("Every day needs activities, one accommodation, meals and safety_tips.\n\n")

	prompt.WriteString(p.BuildTripPrompt(request, bundle))

	prompt.WriteString(fmt.Sprintf(
		"\n\n=== REMINDER ===\nReturn exactly %d days in the JSON structure above. Nothing else.\n", request.Duration))

	return prompt.String()
}

func serializeBundle(bundle response_models.EnrichmentBundle) string {
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
