package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid trip request")
	ErrItineraryNotFound      = errors.New("itinerary not found")
	ErrDatabaseError          = errors.New("database error")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected ai response")
	ErrPlacesDisabled         = errors.New("places directory disabled")
	ErrNoPlacesFound          = errors.New("no places found")
)
