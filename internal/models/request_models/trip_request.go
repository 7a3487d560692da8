package request_models

// TripRequest is the body of POST /api/itinerary/generate.
// Theme is restricted to the five planning profiles the enrichment layer
// knows how to query for.
type TripRequest struct {
	Destination        string `json:"destination" binding:"required"`
	Budget             int    `json:"budget" binding:"required,gt=0"`
	Duration           int    `json:"duration" binding:"required,gt=0"`
	Theme              string `json:"theme" binding:"required,oneof=heritage spiritual adventure wellness culinary"`
	TravelMode         string `json:"travel_mode"`
	PeriodFriendly     bool   `json:"period_friendly"`
	SpecialPreferences string `json:"special_preferences"`
}

const DefaultTravelMode = "solo_female"

// ApplyDefaults fills the fields the caller may omit.
func (r *TripRequest) ApplyDefaults() {
	if r.TravelMode == "" {
		r.TravelMode = DefaultTravelMode
	}
}
