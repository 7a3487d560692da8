package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/aniket856/sanskriti/pkg/utils"
)

// Place is one point of interest as returned by the places directory.
type Place struct {
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	PriceLevel       int      `json:"price_level"`
	Types            []string `json:"types"`
}

// Directory categories the enrichment layer queries.
const (
	CategoryLodging    = "lodging"
	CategoryRestaurant = "restaurant"
	CategoryAttraction = "tourist_attraction"
)

type PlacesClientInterface interface {
	SearchPlaces(ctx context.Context, query, category string) ([]Place, error)
}

// --------- In-memory cache keyed by (query, category) ---------

type searchKey struct {
	Query    string
	Category string
}

type searchCacheEntry struct {
	Places    []Place
	ExpiresAt time.Time
}

type PlacesSearchCache interface {
	Get(k searchKey) ([]Place, bool)
	Set(k searchKey, v []Place, ttl time.Duration)
}

type inMemorySearchCache struct {
	mu    sync.RWMutex
	store map[searchKey]searchCacheEntry
}

func NewInMemorySearchCache() PlacesSearchCache {
	return &inMemorySearchCache{store: make(map[searchKey]searchCacheEntry)}
}

func (c *inMemorySearchCache) Get(k searchKey) ([]Place, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[k]
	if !ok || time.Now().After(it.ExpiresAt) {
		return nil, false
	}
	return it.Places, true
}

func (c *inMemorySearchCache) Set(k searchKey, v []Place, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[k] = searchCacheEntry{Places: v, ExpiresAt: time.Now().Add(ttl)}
}

// -------------- Places directory client ---------------

// PlacesDirectoryClient talks to the external places directory. With no API
// key configured the client is disabled and every search reports
// ErrPlacesDisabled, which the enrichment layer downgrades to its static
// fallbacks.
type PlacesDirectoryClient struct {
	HTTP       *http.Client
	APIKey     string
	BaseURL    string
	Cache      PlacesSearchCache
	DefaultTTL time.Duration
}

const defaultPlacesBaseURL = "https://maps.googleapis.com/maps/api/place/textsearch/json"

func NewPlacesDirectoryClient(cache PlacesSearchCache) *PlacesDirectoryClient {
	baseURL := os.Getenv("PLACES_BASE_URL")
	if baseURL == "" {
		baseURL = defaultPlacesBaseURL
	}
	return &PlacesDirectoryClient{
		HTTP:       &http.Client{Timeout: 15 * time.Second},
		APIKey:     os.Getenv("PLACES_API_KEY"),
		BaseURL:    baseURL,
		Cache:      cache,
		DefaultTTL: 30 * time.Minute,
	}
}

func (c *PlacesDirectoryClient) SearchPlaces(ctx context.Context, query, category string) ([]Place, error) {
	if c.APIKey == "" {
		return nil, utils.ErrPlacesDisabled
	}

	k := searchKey{Query: query, Category: category}
	if cached, ok := c.Cache.Get(k); ok {
		return cached, nil
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("places base url: %w", err)
	}
	q := url.Values{}
	q.Set("query", query)
	q.Set("type", category)
	q.Set("key", c.APIKey)
	u.RawQuery = q.Encode()

	req, _ := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places search status %d", resp.StatusCode)
	}

	var payload struct {
		Results []Place `json:"results"`
		Status  string  `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("places search decode: %w", err)
	}
	if len(payload.Results) == 0 {
		return nil, utils.ErrNoPlacesFound
	}

	c.Cache.Set(k, payload.Results, c.DefaultTTL)
	return payload.Results, nil
}
