package response_models

// CommunityHost is a host profile served by GET /api/community/hosts.
// Curated, not persisted.
type CommunityHost struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Services []string `json:"services"`
	Rating   float64  `json:"rating"`
	Story    string   `json:"story"`
	PhotoURL string   `json:"photo_url"`
}
