package services

import (
	"math"

	"github.com/aniket856/sanskriti/internal/models/response_models"
)

// PlanningConfig collects the budget-split and impact ratios the planner
// applies. The defaults mirror long-standing product numbers; they carry no
// further rationale and are deliberately kept together rather than scattered
// as literals.
type PlanningConfig struct {
	// Share of the per-day budget assigned to lodging, and to the three
	// meals, on the fallback path. They also size the enrichment ceilings.
	AccommodationShare float64
	MealShare          float64

	// Fallback itinerary totals.
	FallbackTotalShare  float64
	FallbackSafetyScore int

	// Community impact summary.
	CommunityShare   float64
	ImpactPercentage int
}

func DefaultPlanningConfig() PlanningConfig {
	return PlanningConfig{
		AccommodationShare:  0.40,
		MealShare:           0.60,
		FallbackTotalShare:  0.80,
		FallbackSafetyScore: 85,
		CommunityShare:      0.40,
		ImpactPercentage:    40,
	}
}

// ComputeCommunityImpact derives the fixed-formula impact summary. It always
// succeeds; an empty experience list still benefits at least one family.
func ComputeCommunityImpact(cfg PlanningConfig, experiences []response_models.CommunityExperience, budget int) response_models.CommunityImpact {
	families := len(experiences)
	if families < 1 {
		families = 1
	}

	return response_models.CommunityImpact{
		TotalImpact:          int(math.Floor(float64(budget) * cfg.CommunityShare)),
		FamiliesBenefited:    families,
		LocalJobsSupported:   len(experiences),
		CommunityExperiences: experiences,
		ImpactPercentage:     cfg.ImpactPercentage,
	}
}
