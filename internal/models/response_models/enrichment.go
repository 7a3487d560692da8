package response_models

// EnrichedCandidate is one hotel, restaurant or attraction surfaced by the
// places directory (or synthesized by the fallback generators). Consumed only
// by the prompt builder, never persisted.
type EnrichedCandidate struct {
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	Cost          int     `json:"cost"`
	Rating        float64 `json:"rating"`
	WomenFriendly bool    `json:"women_friendly,omitempty"`
	Cuisine       string  `json:"cuisine,omitempty"`
	VisitDuration string  `json:"visit_duration,omitempty"`
	BestTime      string  `json:"best_time,omitempty"`
}

type EnrichmentBundle struct {
	Hotels      []EnrichedCandidate `json:"hotels"`
	Restaurants []EnrichedCandidate `json:"restaurants"`
	Attractions []EnrichedCandidate `json:"attractions"`
}
