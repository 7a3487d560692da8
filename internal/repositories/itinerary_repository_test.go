package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/aniket856/sanskriti/internal/models/response_models"
)

func sampleItinerary() *response_models.Itinerary {
	return &response_models.Itinerary{
		ID:          uuid.New().String(),
		Destination: "Jaipur",
		Budget:      25000,
		Duration:    1,
		Theme:       "heritage",
		TravelMode:  "solo_female",
		Days: []response_models.ItineraryDay{
			{
				Day: 1,
				Activities: []response_models.Activity{
					{Time: "10:00 AM", Activity: "Visit Amber Fort", Location: "Amer", Cost: 500, SafetyLevel: "high", Duration: "3 hours"},
				},
				Accommodation: response_models.Accommodation{Name: "Pearl Palace", Cost: 2400, SafetyRating: 5, WomenFriendly: true},
				Meals: []response_models.Meal{
					{Meal: "lunch", Restaurant: "LMB", Cuisine: "Rajasthani", Cost: 400},
				},
				EstimatedCost: 3300,
				SafetyTips:    []string{"Keep emergency contacts handy"},
			},
		},
		TotalCost: 3300,
		CommunityImpact: response_models.CommunityImpact{
			TotalImpact:       10000,
			FamiliesBenefited: 1,
			ImpactPercentage:  40,
			CommunityExperiences: []response_models.CommunityExperience{
				{Activity: "Block printing workshop", Host: "Meera Sharma", Cost: 800, Impact: "Supports artisans"},
			},
		},
		SafetyScore: 90,
		CreatedAt:   time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC),
	}
}

func TestRecordRoundTrip(t *testing.T) {
	t.Parallel()

	itinerary := sampleItinerary()

	record, err := toRecord(itinerary)
	require.NoError(t, err)
	require.Equal(t, itinerary.ID, record.ID.String())
	require.NotEmpty(t, record.Days)
	require.Contains(t, record.CreatedAt, "+05:30")

	restored, err := fromRecord(record)
	require.NoError(t, err)

	require.Equal(t, itinerary.ID, restored.ID)
	require.Equal(t, itinerary.Destination, restored.Destination)
	require.Equal(t, itinerary.Budget, restored.Budget)
	require.Equal(t, itinerary.Days, restored.Days)
	require.Equal(t, itinerary.CommunityImpact, restored.CommunityImpact)
	require.Equal(t, itinerary.SafetyScore, restored.SafetyScore)

	// The timestamp survives as the same instant, rendered in IST.
	require.True(t, restored.CreatedAt.Equal(itinerary.CreatedAt))
}

func TestToRecordRejectsMalformedID(t *testing.T) {
	t.Parallel()

	itinerary := sampleItinerary()
	itinerary.ID = "not-a-uuid"

	_, err := toRecord(itinerary)
	require.Error(t, err)
}
