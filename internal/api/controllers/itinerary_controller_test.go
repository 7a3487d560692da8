package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/aniket856/sanskriti/internal/models/request_models"
	"github.com/aniket856/sanskriti/internal/models/response_models"
	"github.com/aniket856/sanskriti/pkg/utils"
)

type stubItineraryService struct {
	itinerary *response_models.Itinerary
	err       error
	gotID     string
}

func (s *stubItineraryService) GenerateItinerary(_ context.Context, _ request_models.TripRequest) (*response_models.Itinerary, error) {
	return s.itinerary, s.err
}

func (s *stubItineraryService) GetItineraryByID(_ context.Context, id string) (*response_models.Itinerary, error) {
	s.gotID = id
	return s.itinerary, s.err
}

func newItineraryRouter(svc *stubItineraryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewItineraryController(svc)
	router.POST("/api/itinerary/generate", controller.GenerateItinerary)
	router.GET("/api/itinerary/:id", controller.GetItineraryByID)
	return router
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) utils.APIResponse {
	t.Helper()
	var envelope utils.APIResponse
	require.NoError(t, json.Unmarshal(body.Bytes(), &envelope))
	return envelope
}

func TestGenerateItineraryEndpoint(t *testing.T) {
	svc := &stubItineraryService{itinerary: &response_models.Itinerary{
		ID:          "0b5f9f3e-9f9a-4f1e-8c2e-0f34a1d9a111",
		Destination: "Jaipur",
		Budget:      25000,
		Duration:    3,
		Theme:       "heritage",
		TotalCost:   20000,
		SafetyScore: 85,
	}}
	router := newItineraryRouter(svc)

	payload := `{"destination": "Jaipur", "budget": 25000, "duration": 3, "theme": "heritage"}`
	req := httptest.NewRequest(http.MethodPost, "/api/itinerary/generate", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	envelope := decodeEnvelope(t, recorder.Body)
	require.Equal(t, "success", envelope.Status)

	data, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var itinerary response_models.Itinerary
	require.NoError(t, json.Unmarshal(data, &itinerary))
	require.Equal(t, "Jaipur", itinerary.Destination)
	require.Equal(t, 20000, itinerary.TotalCost)
}

func TestGenerateItineraryEndpointRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"missing destination", `{"budget": 25000, "duration": 3, "theme": "heritage"}`},
		{"zero budget", `{"destination": "Jaipur", "budget": 0, "duration": 3, "theme": "heritage"}`},
		{"unknown theme", `{"destination": "Jaipur", "budget": 25000, "duration": 3, "theme": "nightlife"}`},
		{"not json", `destination=Jaipur`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			router := newItineraryRouter(&stubItineraryService{})

			req := httptest.NewRequest(http.MethodPost, "/api/itinerary/generate", bytes.NewBufferString(tt.payload))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
			envelope := decodeEnvelope(t, recorder.Body)
			require.Equal(t, "error", envelope.Status)
			require.Contains(t, envelope.Message, "Invalid trip request")
		})
	}
}

func TestGenerateItineraryEndpointServiceErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid input", utils.ErrInvalidInput, http.StatusUnprocessableEntity},
		{"database down", utils.ErrDatabaseError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			router := newItineraryRouter(&stubItineraryService{err: tt.err})

			payload := `{"destination": "Jaipur", "budget": 25000, "duration": 3, "theme": "heritage"}`
			req := httptest.NewRequest(http.MethodPost, "/api/itinerary/generate", bytes.NewBufferString(payload))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			require.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}

func TestGetItineraryByIDEndpoint(t *testing.T) {
	svc := &stubItineraryService{itinerary: &response_models.Itinerary{
		ID:          "0b5f9f3e-9f9a-4f1e-8c2e-0f34a1d9a111",
		Destination: "Jaipur",
	}}
	router := newItineraryRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/itinerary/0b5f9f3e-9f9a-4f1e-8c2e-0f34a1d9a111", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "0b5f9f3e-9f9a-4f1e-8c2e-0f34a1d9a111", svc.gotID)
}

func TestGetItineraryByIDEndpointNotFound(t *testing.T) {
	router := newItineraryRouter(&stubItineraryService{err: utils.ErrItineraryNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/itinerary/unknown-id", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusNotFound, recorder.Code)
	envelope := decodeEnvelope(t, recorder.Body)
	require.Equal(t, "Itinerary not found", envelope.Message)
}
