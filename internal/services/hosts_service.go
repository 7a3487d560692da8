package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/aniket856/sanskriti/internal/models/response_models"
)

type HostsServiceInterface interface {
	ListCommunityHosts(ctx context.Context) []response_models.CommunityHost
}

// HostsService serves the curated community-host profiles. The list is
// static; ids are minted once at startup so repeat fetches stay stable.
type HostsService struct {
	hosts []response_models.CommunityHost
}

func NewHostsService() HostsServiceInterface {
	return &HostsService{hosts: []response_models.CommunityHost{
		{
			ID:       uuid.New().String(),
			Name:     "Meera Sharma",
			Location: "Jaipur, Rajasthan",
			Services: []string{"Pottery Workshop", "Traditional Cooking", "Henna Art"},
			Rating:   4.8,
			Story:    "Local artisan preserving traditional Rajasthani pottery techniques for 15+ years",
			PhotoURL: "https://images.unsplash.com/photo-1520466809213-7b9a56adcd45?crop=entropy&cs=srgb&fm=jpg&q=85",
		},
		{
			ID:       uuid.New().String(),
			Name:     "Ravi Kumar",
			Location: "Munnar, Kerala",
			Services: []string{"Spice Farm Tour", "Tea Plantation Walk", "Ayurvedic Wellness"},
			Rating:   4.9,
			Story:    "Third-generation spice farmer sharing Kerala's natural heritage with travelers",
			PhotoURL: "https://images.unsplash.com/photo-1626964799839-aadc2fc1e738?crop=entropy&cs=srgb&fm=jpg&q=85",
		},
	}}
}

func (s *HostsService) ListCommunityHosts(ctx context.Context) []response_models.CommunityHost {
	return s.hosts
}
