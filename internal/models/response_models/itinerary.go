package response_models

import "time"

type Activity struct {
	Time        string `json:"time"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Cost        int    `json:"cost"`
	SafetyLevel string `json:"safety_level"`
	Duration    string `json:"duration"`
}

type Accommodation struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Location      string   `json:"location"`
	Cost          int      `json:"cost"`
	SafetyRating  int      `json:"safety_rating"`
	WomenFriendly bool     `json:"women_friendly"`
	Amenities     []string `json:"amenities"`
}

type Meal struct {
	Meal       string `json:"meal"`
	Restaurant string `json:"restaurant"`
	Cuisine    string `json:"cuisine"`
	Cost       int    `json:"cost"`
	Location   string `json:"location"`
}

type ItineraryDay struct {
	Day           int           `json:"day"`
	Activities    []Activity    `json:"activities"`
	Accommodation Accommodation `json:"accommodation"`
	Meals         []Meal        `json:"meals"`
	EstimatedCost int           `json:"estimated_cost"`
	SafetyTips    []string      `json:"safety_tips"`
}

type CommunityExperience struct {
	Activity string `json:"activity"`
	Host     string `json:"host"`
	Cost     int    `json:"cost"`
	Impact   string `json:"impact"`
}

// ItineraryData is the payload the text-generation model is asked to
// return. It is also what the fallback generator synthesizes when the
// model reply cannot be used.
type ItineraryData struct {
	Days                 []ItineraryDay        `json:"days"`
	TotalCost            int                   `json:"total_cost"`
	SafetyScore          int                   `json:"safety_score"`
	CommunityExperiences []CommunityExperience `json:"community_experiences"`
}

type CommunityImpact struct {
	TotalImpact          int                   `json:"total_impact"`
	FamiliesBenefited    int                   `json:"families_benefited"`
	LocalJobsSupported   int                   `json:"local_jobs_supported"`
	CommunityExperiences []CommunityExperience `json:"community_experiences"`
	ImpactPercentage     int                   `json:"impact_percentage"`
}

// Itinerary is the persisted output record for one planning request.
// Immutable once written; retrievable by ID.
type Itinerary struct {
	ID              string          `json:"id"`
	Destination     string          `json:"destination"`
	Budget          int             `json:"budget"`
	Duration        int             `json:"duration"`
	Theme           string          `json:"theme"`
	TravelMode      string          `json:"travel_mode"`
	PeriodFriendly  bool            `json:"period_friendly"`
	Days            []ItineraryDay  `json:"days"`
	TotalCost       int             `json:"total_cost"`
	CommunityImpact CommunityImpact `json:"community_impact"`
	SafetyScore     int             `json:"safety_score"`
	CreatedAt       time.Time       `json:"created_at"`
}
