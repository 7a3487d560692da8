package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aniket856/sanskriti/internal/models/db_models"
	"github.com/aniket856/sanskriti/internal/models/response_models"
	"github.com/aniket856/sanskriti/pkg/utils"
)

// ItineraryRepository is an append-only keyed store: each itinerary is
// written once under a fresh UUID and read back by that id. No update or
// delete.
type ItineraryRepository interface {
	Save(ctx context.Context, itinerary *response_models.Itinerary) error
	GetByID(ctx context.Context, id string) (*response_models.Itinerary, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Save(ctx context.Context, itinerary *response_models.Itinerary) error {
	record, err := toRecord(itinerary)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *itineraryRepository) GetByID(ctx context.Context, id string) (*response_models.Itinerary, error) {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrItineraryNotFound
	}

	var record db_models.ItineraryRecord
	if err := r.db.WithContext(ctx).Where("id = ?", recordID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrItineraryNotFound
		}
		return nil, err
	}

	return fromRecord(&record)
}

func toRecord(itinerary *response_models.Itinerary) (*db_models.ItineraryRecord, error) {
	recordID, err := uuid.Parse(itinerary.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid itinerary id %q: %w", itinerary.ID, err)
	}

	days, err := json.Marshal(itinerary.Days)
	if err != nil {
		return nil, fmt.Errorf("marshal days: %w", err)
	}
	impact, err := json.Marshal(itinerary.CommunityImpact)
	if err != nil {
		return nil, fmt.Errorf("marshal community impact: %w", err)
	}

	return &db_models.ItineraryRecord{
		ID:              recordID,
		Destination:     itinerary.Destination,
		Budget:          itinerary.Budget,
		Duration:        itinerary.Duration,
		Theme:           itinerary.Theme,
		TravelMode:      itinerary.TravelMode,
		PeriodFriendly:  itinerary.PeriodFriendly,
		Days:            string(days),
		TotalCost:       itinerary.TotalCost,
		CommunityImpact: string(impact),
		SafetyScore:     itinerary.SafetyScore,
		CreatedAt:       utils.FormatRFC3339IST(itinerary.CreatedAt),
	}, nil
}

func fromRecord(record *db_models.ItineraryRecord) (*response_models.Itinerary, error) {
	var days []response_models.ItineraryDay
	if err := json.Unmarshal([]byte(record.Days), &days); err != nil {
		return nil, fmt.Errorf("unmarshal days: %w", err)
	}
	var impact response_models.CommunityImpact
	if err := json.Unmarshal([]byte(record.CommunityImpact), &impact); err != nil {
		return nil, fmt.Errorf("unmarshal community impact: %w", err)
	}

	return &response_models.Itinerary{
		ID:              record.ID.String(),
		Destination:     record.Destination,
		Budget:          record.Budget,
		Duration:        record.Duration,
		Theme:           record.Theme,
		TravelMode:      record.TravelMode,
		PeriodFriendly:  record.PeriodFriendly,
		Days:            days,
		TotalCost:       record.TotalCost,
		CommunityImpact: impact,
		SafetyScore:     record.SafetyScore,
		CreatedAt:       utils.ParseRFC3339(record.CreatedAt),
	}, nil
}
