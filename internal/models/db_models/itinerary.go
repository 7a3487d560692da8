package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItineraryRecord is the persisted form of a generated itinerary. The day
// plan and community impact are stored as JSON text; CreatedAt is stored as
// an RFC3339 string and parsed back on read.
type ItineraryRecord struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Destination     string
	Budget          int
	Duration        int
	Theme           string
	TravelMode      string
	PeriodFriendly  bool
	Days            string `gorm:"type:jsonb"`
	TotalCost       int
	CommunityImpact string `gorm:"type:jsonb"`
	SafetyScore     int
	CreatedAt       string
}

func (r *ItineraryRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
