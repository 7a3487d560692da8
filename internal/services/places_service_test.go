package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aniket856/sanskriti/pkg/utils"
)

func newDirectoryClient(baseURL, apiKey string) *PlacesDirectoryClient {
	return &PlacesDirectoryClient{
		HTTP:       &http.Client{Timeout: 5 * time.Second},
		APIKey:     apiKey,
		BaseURL:    baseURL,
		Cache:      NewInMemorySearchCache(),
		DefaultTTL: time.Minute,
	}
}

func TestSearchPlacesDisabledWithoutKey(t *testing.T) {
	t.Parallel()

	client := newDirectoryClient("http://unused.invalid", "")
	_, err := client.SearchPlaces(context.Background(), "hotels in Jaipur", CategoryLodging)
	require.ErrorIs(t, err, utils.ErrPlacesDisabled)
}

func TestSearchPlacesQueriesDirectoryAndCaches(t *testing.T) {
	t.Parallel()

	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		require.Equal(t, "hotels in Jaipur", r.URL.Query().Get("query"))
		require.Equal(t, CategoryLodging, r.URL.Query().Get("type"))
		require.Equal(t, "test-key", r.URL.Query().Get("key"))

		json.NewEncoder(w).Encode(map[string]any{
			"status": "OK",
			"results": []Place{
				{Name: "Pearl Palace", FormattedAddress: "Jaipur", Rating: 4.7, PriceLevel: 2},
			},
		})
	}))
	defer server.Close()

	client := newDirectoryClient(server.URL, "test-key")

	places, err := client.SearchPlaces(context.Background(), "hotels in Jaipur", CategoryLodging)
	require.NoError(t, err)
	require.Len(t, places, 1)
	require.Equal(t, "Pearl Palace", places[0].Name)

	// Second identical search is served from cache.
	places, err = client.SearchPlaces(context.Background(), "hotels in Jaipur", CategoryLodging)
	require.NoError(t, err)
	require.Len(t, places, 1)
	require.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestSearchPlacesEmptyResults(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "ZERO_RESULTS", "results": []Place{}})
	}))
	defer server.Close()

	client := newDirectoryClient(server.URL, "test-key")
	_, err := client.SearchPlaces(context.Background(), "hotels in Atlantis", CategoryLodging)
	require.ErrorIs(t, err, utils.ErrNoPlacesFound)
}

func TestSearchPlacesUpstreamError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newDirectoryClient(server.URL, "test-key")
	_, err := client.SearchPlaces(context.Background(), "hotels in Jaipur", CategoryLodging)
	require.Error(t, err)
	require.NotErrorIs(t, err, utils.ErrPlacesDisabled)
}

func TestSearchCacheExpiry(t *testing.T) {
	t.Parallel()

	cache := NewInMemorySearchCache()
	key := searchKey{Query: "q", Category: CategoryLodging}

	cache.Set(key, []Place{{Name: "A"}}, 10*time.Millisecond)
	got, ok := cache.Get(key)
	require.True(t, ok)
	require.Len(t, got, 1)

	time.Sleep(20 * time.Millisecond)
	_, ok = cache.Get(key)
	require.False(t, ok)
}
